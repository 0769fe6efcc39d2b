package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vibecommerce/storefront/internal/model"
)

// CartRepo maintains the owner-partitioned cart lines. The unique key on
// (owner_id, product_id) guarantees at most one line per pair and makes the
// merge a single atomic statement: no read-modify-write window exists, so
// concurrent adds for the same pair cannot lose an increment.
type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo { return &CartRepo{db: db} }

// AddOrMerge creates the line for (ownerID, productID) or accumulates qty
// into the existing one. The fresh uuid is only used when a new row is
// inserted; a merged row keeps its original id.
func (r *CartRepo) AddOrMerge(ctx context.Context, ownerID string, productID int64, qty int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_lines (id, owner_id, product_id, quantity)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
		uuid.NewString(), ownerID, productID, qty)
	return err
}

// Remove deletes a single line by id. Removing an absent line is a no-op.
func (r *CartRepo) Remove(ctx context.Context, lineID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE id = ?`, lineID)
	return err
}

// Clear deletes every line for the owner. Idempotent; used by settlement.
func (r *CartRepo) Clear(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE owner_id = ?`, ownerID)
	return err
}

// ListByOwner returns the owner's raw lines in insertion order (by id the
// rows have no natural order, so product id keeps views stable).
func (r *CartRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.CartLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, product_id, quantity FROM cart_lines
		 WHERE owner_id = ? ORDER BY product_id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.ProductID, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
