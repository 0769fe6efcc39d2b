// Package repository holds the MySQL-backed data access layer. Every store
// here has an in-memory counterpart in internal/store; the services only see
// the interfaces defined in internal/service.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibecommerce/storefront/internal/model"
)

// ProductRepo provides catalog reads for shoppers and CRUD for admins.
type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns the whole catalog ordered by id.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches one product. Returns model.ErrProductNotFound when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price FROM products WHERE id = ? LIMIT 1`, id).
		Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Product{}, model.ErrProductNotFound
		}
		return model.Product{}, err
	}
	return p, nil
}

// Create inserts a product under the next sequential id (max+1) and fills in
// the issued id on the passed struct. The issuance runs in a transaction so
// two concurrent creates cannot claim the same id.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) + 1 FROM products FOR UPDATE`).Scan(&next); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO products (id, name, price) VALUES (?, ?, ?)`,
		next, p.Name, p.Price); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	p.ID = next
	return nil
}

// Update rewrites name and price. Returns model.ErrProductNotFound when no
// row matched.
func (r *ProductRepo) Update(ctx context.Context, p model.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, price = ? WHERE id = ?`, p.Name, p.Price, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

// Delete removes a product. Deleting an absent product is a no-op success;
// cart lines that still reference it simply vanish from priced views.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}
