package model

// CartLine is one (owner, product, quantity) record. There is exactly one
// line per (OwnerID, ProductID) pair at any time; repeated adds accumulate
// into the existing line's quantity.
type CartLine struct {
	ID        string
	OwnerID   string
	ProductID int64
	Quantity  int
}

// LineView is a cart line joined with the current catalog entry.
type LineView struct {
	LineID    string  `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// CartView is the materialized, priced cart for one owner. GrandTotal is the
// unrounded sum of line subtotals; rounding happens at presentation time.
type CartView struct {
	Items      []LineView
	GrandTotal float64
}
