// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for order confirmations.
package queue

// OrderConfirmedEvent is published when checkout settles an order. It
// carries enough for downstream consumers to log or notify without querying
// the primary store.
type OrderConfirmedEvent struct {
	OrderRef      string  `json:"order_ref"`
	OwnerID       string  `json:"owner_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	ItemCount     int     `json:"item_count"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"payment_method"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
