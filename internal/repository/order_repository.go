package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/11930018-user/Backend/internal/model"
)

// OrderRepo provides data access for dine-in orders and their line items.
// Creation, status changes and deletion span multiple rows (order + items
// + table status), so those methods take an explicit *sql.Tx and the
// handler owns the transaction boundary. order_items rows are removed by
// the ON DELETE CASCADE constraint when the parent order is deleted.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo returns a new OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions.
func (r *OrderRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a new order within the scope of an existing
// transaction and populates the generated ID on the provided record.
// The caller must commit or rollback.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	const q = `INSERT INTO orders (table_id, employee_id, total_amount, status) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, o.TableID, o.EmployeeID, o.TotalAmount, o.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	return nil
}

// CreateItemsBulkTx inserts all line items of an order in a single
// statement. Each item's price is the snapshot supplied by the caller.
// Passing an empty slice has no effect and returns nil.
func (r *OrderRepo) CreateItemsBulkTx(ctx context.Context, tx *sql.Tx, orderID uint64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO order_items (order_id, menu_item_id, quantity, price) VALUES `
	args := make([]interface{}, 0, len(items)*4)
	for i, it := range items {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, orderID, it.MenuItemID, it.Quantity, it.Price)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// TableIDTx returns the table an order occupies, within a transaction.
// sql.ErrNoRows is surfaced unchanged when the order does not exist;
// callers translate it into a not-found response after rolling back.
func (r *OrderRepo) TableIDTx(ctx context.Context, tx *sql.Tx, orderID uint64) (uint64, error) {
	const q = `SELECT table_id FROM orders WHERE id = ?`
	var tableID uint64
	if err := tx.QueryRowContext(ctx, q, orderID).Scan(&tableID); err != nil {
		return 0, err
	}
	return tableID, nil
}

// UpdateStatusTx overwrites an order's status within a transaction.
// Returns sql.ErrNoRows when the update affects zero rows.
func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, orderID uint64, status string) error {
	const q = `UPDATE orders SET status = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, status, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteTx removes an order row within a transaction; the FK cascade
// removes its order_items rows in the same statement. Returns
// sql.ErrNoRows when the delete affects zero rows.
func (r *OrderRepo) DeleteTx(ctx context.Context, tx *sql.Tx, orderID uint64) error {
	const q = `DELETE FROM orders WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// OrderDetail is a dine-in order joined with its creator and table for
// the order listing. It is returned by ListWithDetails.
type OrderDetail struct {
	ID           uint64          `json:"id"`
	TableID      uint64          `json:"table_id"`
	EmployeeID   uint64          `json:"employee_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	EmployeeCode string          `json:"employee_code"`
	TableNumber  uint32          `json:"table_number"`
}

// ListWithDetails returns all dine-in orders joined with employee and
// table info, newest first.
func (r *OrderRepo) ListWithDetails(ctx context.Context) ([]OrderDetail, error) {
	const q = `SELECT o.id, o.table_id, o.employee_id, o.total_amount, o.status, o.created_at,
	                  e.first_name, e.last_name, e.employee_code,
	                  t.table_number
	           FROM orders o
	           JOIN employees e ON o.employee_id = e.id
	           JOIN restaurant_tables t ON o.table_id = t.id
	           ORDER BY o.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]OrderDetail, 0)
	for rows.Next() {
		var d OrderDetail
		if err := rows.Scan(
			&d.ID, &d.TableID, &d.EmployeeID, &d.TotalAmount, &d.Status, &d.CreatedAt,
			&d.FirstName, &d.LastName, &d.EmployeeCode,
			&d.TableNumber,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// OrderItemDetail is a line item joined with its menu item for display.
type OrderItemDetail struct {
	ID         uint64          `json:"id"`
	OrderID    uint64          `json:"order_id"`
	MenuItemID uint64          `json:"menu_item_id"`
	Quantity   uint32          `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
}

// ItemsByOrder returns the line items of one order joined with menu item
// name and category. An order with no items yields an empty slice.
func (r *OrderRepo) ItemsByOrder(ctx context.Context, orderID uint64) ([]OrderItemDetail, error) {
	const q = `SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price,
	                  m.name, m.category
	           FROM order_items oi
	           JOIN menu_items m ON oi.menu_item_id = m.id
	           WHERE oi.order_id = ?`
	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemDetail, 0)
	for rows.Next() {
		var it OrderItemDetail
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.Price,
			&it.Name, &it.Category,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
