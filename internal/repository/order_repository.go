package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/vibecommerce/storefront/internal/model"
)

// OrderRepo persists settled orders. Orders are write-once: there is no
// update path, and line items are stored as a JSON snapshot so later catalog
// edits cannot reach back into a receipt.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// Insert stores a freshly settled order.
func (r *OrderRepo) Insert(ctx context.Context, o *model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO orders
		 (ref, owner_id, customer_name, customer_email, items, subtotal, tax, total, payment_method, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.Ref, o.OwnerID, o.Customer.Name, o.Customer.Email, items,
		o.Subtotal, o.Tax, o.Total, o.PaymentMethod, o.Status, o.CreatedAt.UTC())
	return err
}

// ListByOwner returns the owner's orders, newest first.
func (r *OrderRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ref, owner_id, customer_name, customer_email, items, subtotal, tax, total, payment_method, status, created_at
		 FROM orders WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		var items []byte
		if err := rows.Scan(&o.Ref, &o.OwnerID, &o.Customer.Name, &o.Customer.Email, &items,
			&o.Subtotal, &o.Tax, &o.Total, &o.PaymentMethod, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
