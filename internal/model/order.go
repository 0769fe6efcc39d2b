package model

import "time"

// CustomerInfo holds the contact details supplied at checkout.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItem is a snapshot of one purchased line. It is copied from the cart
// view at settlement time and never re-reads the catalog afterwards.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is the immutable settlement record produced by checkout. Monetary
// fields are kept unrounded; 2-decimal rounding is applied only when the
// order is rendered or persisted.
type Order struct {
	Ref           string
	OwnerID       string
	Customer      CustomerInfo
	Items         []OrderItem
	Subtotal      float64
	Tax           float64
	Total         float64
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
}
