package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/models"
	"github.com/giannis-supplies/storefront/internal/order"
)

type OrderHTTP struct {
	Svc *order.Service
}

type checkoutRequest struct {
	Customer struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Address string `json:"address" validate:"required"`
		City    string `json:"city" validate:"required"`
		Phone   string `json:"phone" validate:"required"`
	} `json:"customer"`
	Payment struct {
		Method     string `json:"method" validate:"required"`
		CardHolder string `json:"card_name" validate:"required"`
		CardNumber string `json:"card_number" validate:"required"`
	} `json:"payment"`
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.checkout")

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if errs := FieldErrors(c.Validate(&req)); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, errs)
	}

	customer := models.Customer{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Address: req.Customer.Address,
		City:    req.Customer.City,
		Phone:   req.Customer.Phone,
	}
	payment := models.Payment{
		Method:     req.Payment.Method,
		CardHolder: req.Payment.CardHolder,
		CardNumber: req.Payment.CardNumber,
	}

	placed, err := h.Svc.Checkout(ctx, customer, payment)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			return c.JSON(http.StatusConflict, "cart is empty")
		}
		l.Error("checkout_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusCreated, placed)
}

// Last serves the invoice page: the most recent order, if any.
func (h *OrderHTTP) Last(c echo.Context) error {
	ctx := c.Request().Context()

	last, err := h.Svc.LastOrder(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("last_order_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	if last == nil {
		return c.JSON(http.StatusNotFound, "no order found")
	}
	return c.JSON(http.StatusOK, last)
}

func (h *OrderHTTP) History(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.history", "username", c.Get("username"))

	history, err := h.Svc.History(ctx)
	if err != nil {
		l.Error("history_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, history)
}
