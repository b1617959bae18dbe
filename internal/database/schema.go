package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the DDL for all tables, in dependency order. Statements are
// idempotent (CREATE TABLE IF NOT EXISTS) so EnsureSchema can run on every
// startup. order_items carries ON DELETE CASCADE: deleting a dine-in order
// removes its item rows in the same statement, which is the cascading
// delete contract the delete endpoint relies on. online_order_items is
// deleted explicitly inside the delete transaction instead.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS menu_items (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(255)  NOT NULL,
		description TEXT          NOT NULL,
		price       DECIMAL(10,2) NOT NULL,
		category    VARCHAR(100)  NOT NULL,
		is_active   TINYINT(1)    NOT NULL DEFAULT 1,
		created_at  TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		first_name    VARCHAR(100) NOT NULL,
		last_name     VARCHAR(100) NOT NULL,
		employee_code VARCHAR(50)  NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_tables (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		table_number INT UNSIGNED NOT NULL UNIQUE,
		capacity     INT UNSIGNED NOT NULL,
		status       VARCHAR(50)  NOT NULL DEFAULT 'available',
		zone         VARCHAR(100) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		table_id     BIGINT UNSIGNED NOT NULL,
		employee_id  BIGINT UNSIGNED NOT NULL,
		total_amount DECIMAL(10,2)   NOT NULL,
		status       VARCHAR(50)     NOT NULL DEFAULT 'open',
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_orders_table    FOREIGN KEY (table_id)    REFERENCES restaurant_tables (id),
		CONSTRAINT fk_orders_employee FOREIGN KEY (employee_id) REFERENCES employees (id)
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		order_id     BIGINT UNSIGNED NOT NULL,
		menu_item_id BIGINT UNSIGNED NOT NULL,
		quantity     INT UNSIGNED    NOT NULL,
		price        DECIMAL(10,2)   NOT NULL,
		CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE,
		CONSTRAINT fk_order_items_menu  FOREIGN KEY (menu_item_id) REFERENCES menu_items (id)
	)`,
	`CREATE TABLE IF NOT EXISTS online_orders (
		id                  BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		customer_first_name VARCHAR(100)  NOT NULL,
		customer_last_name  VARCHAR(100)  NOT NULL,
		customer_phone      VARCHAR(50)   NOT NULL,
		customer_location   VARCHAR(255)  NOT NULL,
		status              VARCHAR(50)   NOT NULL DEFAULT 'pending',
		total_amount        DECIMAL(10,2) NOT NULL,
		tax_amount          DECIMAL(10,2) NOT NULL,
		payment_status      VARCHAR(50)   NOT NULL DEFAULT 'unpaid',
		delivery_type       VARCHAR(50)   NOT NULL DEFAULT 'delivery',
		created_at          TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS online_order_items (
		id              BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		online_order_id BIGINT UNSIGNED NOT NULL,
		menu_item_id    BIGINT UNSIGNED NOT NULL,
		quantity        INT UNSIGNED    NOT NULL,
		price           DECIMAL(10,2)   NOT NULL,
		CONSTRAINT fk_online_items_order FOREIGN KEY (online_order_id) REFERENCES online_orders (id),
		CONSTRAINT fk_online_items_menu  FOREIGN KEY (menu_item_id) REFERENCES menu_items (id)
	)`,
}

// EnsureSchema creates any missing tables. It is safe to call on every
// startup against an already provisioned database.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
