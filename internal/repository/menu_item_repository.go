package repository // repository defines data access for menu items

import (
	"context"
	"database/sql"

	"github.com/11930018-user/Backend/internal/model"
)

// MenuItemRepo provides CRUD operations for the menu_items table. The
// order flow never mutates menu items; prices read from here are only used
// for display, order lines carry their own snapshots.
type MenuItemRepo struct {
	db *sql.DB
}

// NewMenuItemRepo constructs a MenuItemRepo with the given DB handle.
func NewMenuItemRepo(db *sql.DB) *MenuItemRepo {
	return &MenuItemRepo{db: db}
}

// ListActive returns all menu items with is_active = 1.
func (r *MenuItemRepo) ListActive(ctx context.Context) ([]model.MenuItem, error) {
	const q = `SELECT id, name, description, price, category, is_active, created_at
	           FROM menu_items
	           WHERE is_active = 1`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.MenuItem, 0)
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Price, &m.Category,
			&m.IsActive, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a menu item. On success the item's ID is populated.
func (r *MenuItemRepo) Create(ctx context.Context, m *model.MenuItem) error {
	const q = `INSERT INTO menu_items (name, description, price, category, is_active)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Description, m.Price, m.Category, m.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns of a menu item. Returns
// ErrMenuItemNotFound when no row matches the ID.
func (r *MenuItemRepo) Update(ctx context.Context, m *model.MenuItem) error {
	const q = `UPDATE menu_items
	           SET name = ?, description = ?, price = ?, category = ?, is_active = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Description, m.Price, m.Category, m.IsActive, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// Delete removes a menu item by ID. Returns ErrMenuItemNotFound when no
// row matches.
func (r *MenuItemRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM menu_items WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
