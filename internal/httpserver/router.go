package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Products  *ProductHTTP
	Cart      *CartHTTP
	Auth      *AuthHTTP
	Orders    *OrderHTTP
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/products", d.Products.List)
	e.GET("/products/featured", d.Products.Featured)
	e.GET("/products/search", d.Products.Search)
	e.GET("/products/:id", d.Products.Get)

	cart := e.Group("/cart")
	cart.GET("", d.Cart.Get)
	cart.POST("/items", d.Cart.AddItem)
	cart.PATCH("/items/:id", d.Cart.SetQuantity)
	cart.DELETE("/items/:id", d.Cart.RemoveItem)
	cart.DELETE("", d.Cart.Clear)

	auth := e.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/logout", d.Auth.Logout)
	auth.GET("/me", d.Auth.Me)

	e.POST("/checkout", d.Orders.Checkout)
	e.GET("/orders/last", d.Orders.Last)
	e.GET("/orders", d.Orders.History, RequireAuth(d.JWTSecret))
}
