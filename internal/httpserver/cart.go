package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/giannis-supplies/storefront/internal/cart"
	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/models"
	"github.com/giannis-supplies/storefront/internal/store"
)

type CartHTTP struct {
	Svc *cart.Service
}

type cartLineView struct {
	models.CartLine
	Subtotal decimal.Decimal `json:"subtotal"`
}

type cartView struct {
	Items  []cartLineView `json:"items"`
	Count  int            `json:"count"`
	Totals models.Totals  `json:"totals"`
}

func (h *CartHTTP) view(c echo.Context) error {
	ctx := c.Request().Context()
	lines, err := h.Svc.Items(ctx)
	if err != nil {
		return h.fail(c, "cart.view", err)
	}
	items := make([]cartLineView, len(lines))
	for i, l := range lines {
		items[i] = cartLineView{CartLine: l, Subtotal: cart.LineSubtotal(l)}
	}
	return c.JSON(http.StatusOK, cartView{
		Items:  items,
		Count:  cart.ItemCount(lines),
		Totals: cart.ComputeTotals(lines),
	})
}

func (h *CartHTTP) fail(c echo.Context, handler string, err error) error {
	l := logging.FromContext(c.Request().Context()).With("handler", handler)
	var de *store.DecodeError
	if errors.As(err, &de) {
		l.Error("corrupt_record", "key", de.Key, "error", err)
		return c.JSON(http.StatusInternalServerError, "stored data is corrupt")
	}
	l.Error("cart_error", "error", err)
	return c.JSON(http.StatusInternalServerError, "internal error")
}

func (h *CartHTTP) Get(c echo.Context) error {
	return h.view(c)
}

// AddItem adds one unit of a product. Unknown products are silently ignored
// and the current cart comes back unchanged.
func (h *CartHTTP) AddItem(c echo.Context) error {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.AddItem(c.Request().Context(), req.ProductID); err != nil {
		return h.fail(c, "cart.add", err)
	}
	return h.view(c)
}

// SetQuantity updates a line's quantity. Non-numeric input coerces to 1, the
// service clamps anything below 1.
func (h *CartHTTP) SetQuantity(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}

	var req struct {
		Quantity any `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.SetQuantity(c.Request().Context(), id, coerceQuantity(req.Quantity)); err != nil {
		return h.fail(c, "cart.set_quantity", err)
	}
	return h.view(c)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}

	if err := h.Svc.RemoveItem(c.Request().Context(), id); err != nil {
		return h.fail(c, "cart.remove", err)
	}
	return h.view(c)
}

func (h *CartHTTP) Clear(c echo.Context) error {
	if err := h.Svc.Clear(c.Request().Context()); err != nil {
		return h.fail(c, "cart.clear", err)
	}
	return h.view(c)
}

// coerceQuantity mirrors the quantity form field: numbers are truncated to
// integers, anything unparsable becomes 1.
func coerceQuantity(v any) int {
	switch q := v.(type) {
	case float64:
		return int(q)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(q)); err == nil {
			return n
		}
	}
	return 1
}
