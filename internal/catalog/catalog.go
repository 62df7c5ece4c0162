// Package catalog holds the static product range of the store. Products are
// defined at startup and never mutated.
package catalog

import (
	"strings"

	"github.com/giannis-supplies/storefront/internal/models"
)

var categoryNames = map[string]string{
	"clippers": "Clippers & Trimmers",
	"styling":  "Styling Products",
	"shaving":  "Shaving Supplies",
	"combs":    "Combs & Brushes",
}

type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[int]models.Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// Default returns the catalog with the store's full product range.
func Default() *Catalog {
	return New(defaultProducts)
}

func (c *Catalog) Get(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns every product, in definition order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByCategory(category string) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the homepage strip: the first four products.
func (c *Catalog) Featured() []models.Product {
	n := 4
	if len(c.products) < n {
		n = len(c.products)
	}
	out := make([]models.Product, n)
	copy(out, c.products[:n])
	return out
}

// Query is the in-memory fallback used when no search backend is configured:
// a case-insensitive substring match over name and description.
func (c *Catalog) Query(q string) []models.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.Product, 0)
	if q == "" {
		return out
	}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryName maps a category slug to its display name, falling back to
// "Products" for unknown slugs.
func CategoryName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "Products"
}
