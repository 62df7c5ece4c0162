// Package order turns a cart into an immutable order record: history entry,
// current-order slot for the invoice, and the cart cleared afterwards.
package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/giannis-supplies/storefront/internal/cart"
	"github.com/giannis-supplies/storefront/internal/events"
	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/models"
	"github.com/giannis-supplies/storefront/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

// IDGenerator produces order IDs. Injected so tests can use a deterministic
// counter instead of random IDs.
type IDGenerator func() string

// NewOrderID is the default generator.
func NewOrderID() string {
	return "ORD-" + uuid.NewString()
}

type Service struct {
	Store    *store.Store
	Cart     *cart.Service
	Producer *events.Producer
	NewID    IDGenerator
}

func (s *Service) orderID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return NewOrderID()
}

// Checkout snapshots the cart and its totals into a new order, appends it to
// the history, stores it as the current order, and only then clears the cart.
// The cart is never cleared before the order is durably recorded.
func (s *Service) Checkout(ctx context.Context, customer models.Customer, payment models.Payment) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout")

	lines, err := s.Cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		l.Warn("checkout_rejected", "reason", "empty cart")
		return nil, ErrEmptyCart
	}

	payment.CardNumber = maskCard(payment.CardNumber)

	order := models.Order{
		OrderID:  s.orderID(),
		Date:     time.Now().UTC().Format(time.RFC3339),
		Customer: customer,
		Items:    lines,
		Payment:  payment,
		Totals:   cart.ComputeTotals(lines),
	}

	var history []models.Order
	if _, err := s.Store.Get(ctx, store.KeyOrders, &history); err != nil {
		return nil, err
	}
	history = append(history, order)

	if err := s.Store.Set(ctx, store.KeyOrders, history); err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, store.KeyCurrentOrder, order); err != nil {
		return nil, err
	}
	if err := s.Cart.Clear(ctx); err != nil {
		return nil, err
	}

	if err := s.Producer.Publish(ctx, events.TopicOrderEvents, order.OrderID, map[string]any{
		"action":   "order_placed",
		"order_id": order.OrderID,
		"total":    order.Totals.Total,
	}); err != nil {
		l.Error("order_event_publish_failed", "error", err)
	}

	l.Info("order_placed", "order_id", order.OrderID)
	return &order, nil
}

// LastOrder returns the most recent checkout for invoice rendering, or nil
// when none exists.
func (s *Service) LastOrder(ctx context.Context) (*models.Order, error) {
	var order models.Order
	found, err := s.Store.Get(ctx, store.KeyCurrentOrder, &order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &order, nil
}

// History returns all orders ever placed, oldest first.
func (s *Service) History(ctx context.Context) ([]models.Order, error) {
	var history []models.Order
	if _, err := s.Store.Get(ctx, store.KeyOrders, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.Order{}
	}
	return history, nil
}

// maskCard keeps the last four digits only; the stored record never holds
// the full card number.
func maskCard(number string) string {
	digits := strings.TrimSpace(number)
	if len(digits) <= 4 {
		return digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
