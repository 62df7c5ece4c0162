package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Image       string  `json:"image"`
}

// CartLine snapshots name/price/icon from the product at add-time, so a line
// keeps the price the customer saw even if the catalog entry changed later.
type CartLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Icon      string  `json:"icon"`
}

// Totals are derived from the live cart on every read, never stored on their
// own. decimal fields marshal as strings, e.g. "27.31".
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type User struct {
	FullName     string `json:"fullname"`
	Email        string `json:"email"`
	DateOfBirth  string `json:"dob"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	RegisteredAt string `json:"registered_at"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

type Payment struct {
	Method     string `json:"method"`
	CardHolder string `json:"card_name"`
	CardNumber string `json:"card_number"`
}

type Order struct {
	OrderID  string     `json:"order_id"`
	Date     string     `json:"date"`
	Customer Customer   `json:"customer"`
	Items    []CartLine `json:"items"`
	Payment  Payment    `json:"payment"`
	Totals   Totals     `json:"totals"`
}
