// Package model defines the domain entities shared by the stores, services
// and handlers of the storefront.
package model

// Product is one sellable catalog item. IDs are stable numeric identifiers
// issued by the catalog (sequentially for admin-created products) and are
// never reused.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
