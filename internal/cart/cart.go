// Package cart owns the shopping cart: the ordered list of lines and the
// totals derived from it. Every mutation is load, change, write back whole;
// readers never see a partially written cart.
package cart

import (
	"context"

	"github.com/giannis-supplies/storefront/internal/catalog"
	"github.com/giannis-supplies/storefront/internal/events"
	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/models"
	"github.com/giannis-supplies/storefront/internal/store"
)

type Service struct {
	Store    *store.Store
	Catalog  *catalog.Catalog
	Producer *events.Producer
}

// Items returns the current cart snapshot, empty when nothing was saved yet.
func (s *Service) Items(ctx context.Context) ([]models.CartLine, error) {
	var lines []models.CartLine
	if _, err := s.Store.Get(ctx, store.KeyCart, &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return lines, nil
}

// AddItem puts one unit of the product into the cart. An unknown product ID
// is a no-op. An existing line gets its quantity bumped; otherwise a new line
// is appended with name, price and icon snapshotted from the catalog.
func (s *Service) AddItem(ctx context.Context, productID int) error {
	product, ok := s.Catalog.Get(productID)
	if !ok {
		logging.FromContext(ctx).Debug("add_item_skipped", "reason", "unknown product", "product_id", productID)
		return nil
	}

	lines, err := s.Items(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
			Icon:      product.Icon,
		})
	}

	if err := s.Store.Set(ctx, store.KeyCart, lines); err != nil {
		return err
	}
	s.publish(ctx, map[string]any{"action": "item_added", "product_id": productID})
	return nil
}

// RemoveItem drops the line for the product; absent IDs are a no-op.
func (s *Service) RemoveItem(ctx context.Context, productID int) error {
	lines, err := s.Items(ctx)
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}

	if err := s.Store.Set(ctx, store.KeyCart, kept); err != nil {
		return err
	}
	s.publish(ctx, map[string]any{"action": "item_removed", "product_id": productID})
	return nil
}

// SetQuantity sets the line's quantity, clamping anything below 1 up to 1.
// Absent product IDs are a no-op.
func (s *Service) SetQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	lines, err := s.Items(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	if err := s.Store.Set(ctx, store.KeyCart, lines); err != nil {
		return err
	}
	s.publish(ctx, map[string]any{"action": "quantity_set", "product_id": productID, "quantity": quantity})
	return nil
}

// Clear empties the cart and persists the empty snapshot.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.Store.Set(ctx, store.KeyCart, []models.CartLine{}); err != nil {
		return err
	}
	s.publish(ctx, map[string]any{"action": "cleared"})
	return nil
}

// Totals computes the live totals for the persisted cart.
func (s *Service) Totals(ctx context.Context) (models.Totals, error) {
	lines, err := s.Items(ctx)
	if err != nil {
		return models.Totals{}, err
	}
	return ComputeTotals(lines), nil
}

func (s *Service) publish(ctx context.Context, event map[string]any) {
	if err := s.Producer.Publish(ctx, events.TopicCartEvents, "cart", event); err != nil {
		logging.FromContext(ctx).Error("cart_event_publish_failed", "error", err)
	}
}
