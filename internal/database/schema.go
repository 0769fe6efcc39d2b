package database

import (
	"context"
	"database/sql"
)

// schema contains the idempotent DDL executed at startup. The unique key on
// (owner_id, product_id) is what lets cart adds merge atomically with a
// single INSERT .. ON DUPLICATE KEY UPDATE statement.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(190) NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		role          VARCHAR(16)  NOT NULL DEFAULT 'USER',
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id    BIGINT NOT NULL PRIMARY KEY,
		name  VARCHAR(190) NOT NULL,
		price DOUBLE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cart_lines (
		id         VARCHAR(36) NOT NULL PRIMARY KEY,
		owner_id   VARCHAR(64) NOT NULL,
		product_id BIGINT NOT NULL,
		quantity   INT NOT NULL,
		UNIQUE KEY uq_owner_product (owner_id, product_id),
		KEY idx_owner (owner_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		ref            VARCHAR(16) NOT NULL PRIMARY KEY,
		owner_id       VARCHAR(64) NOT NULL,
		customer_name  VARCHAR(190) NOT NULL,
		customer_email VARCHAR(190) NOT NULL,
		items          JSON NOT NULL,
		subtotal       DECIMAL(12,2) NOT NULL,
		tax            DECIMAL(12,2) NOT NULL,
		total          DECIMAL(12,2) NOT NULL,
		payment_method VARCHAR(32) NOT NULL,
		status         VARCHAR(16) NOT NULL,
		created_at     DATETIME NOT NULL,
		KEY idx_orders_owner (owner_id)
	)`,
}

// EnsureSchema creates the storefront tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
