package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/11930018-user/Backend/internal/model"
)

// OnlineOrderRepo provides data access for online orders and their line
// items. Online orders have no table coupling, but item replacement and
// deletion still span multiple rows, so those paths run through *Tx
// methods under a handler-owned transaction. Unlike order_items there is
// no delete cascade here: item rows are removed explicitly inside the
// same transaction as the parent.
type OnlineOrderRepo struct {
	db *sql.DB
}

// NewOnlineOrderRepo returns a new OnlineOrderRepo bound to the given database.
func NewOnlineOrderRepo(db *sql.DB) *OnlineOrderRepo { return &OnlineOrderRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions.
func (r *OnlineOrderRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a new online order within the scope of an existing
// transaction and populates the generated ID on the provided record.
func (r *OnlineOrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *model.OnlineOrder) error {
	const q = `INSERT INTO online_orders
	             (customer_first_name, customer_last_name, customer_phone, customer_location,
	              status, total_amount, tax_amount, payment_status, delivery_type)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		o.FirstName, o.LastName, o.Phone, o.Location,
		o.Status, o.TotalAmount, o.TaxAmount, o.PaymentStatus, o.DeliveryType,
	)
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

// CreateItemsBulkTx inserts all line items of an online order in a single
// statement. Passing an empty slice has no effect and returns nil.
func (r *OnlineOrderRepo) CreateItemsBulkTx(ctx context.Context, tx *sql.Tx, orderID uint64, items []model.OnlineOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO online_order_items (online_order_id, menu_item_id, quantity, price) VALUES `
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

// DeleteItemsTx removes every line item of an online order within a
// transaction. Deleting zero rows is not an error; the parent row is the
// authority on whether the order exists.
func (r *OnlineOrderRepo) DeleteItemsTx(ctx context.Context, tx *sql.Tx, orderID uint64) error {
	const q = `DELETE FROM online_order_items WHERE online_order_id = ?`
	_, err := tx.ExecContext(ctx, q, orderID)
	return err
}

// UpdateTotalsTx overwrites total_amount and tax_amount on the parent row
// after an item replacement. Returns sql.ErrNoRows when zero rows are
// affected — this is where a replacement against a nonexistent order is
// discovered, and the caller must roll back the already-performed item
// delete/insert.
func (r *OnlineOrderRepo) UpdateTotalsTx(ctx context.Context, tx *sql.Tx, orderID uint64, total, tax decimal.Decimal) error {
	const q = `UPDATE online_orders SET total_amount = ?, tax_amount = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, total, tax, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteTx removes the parent online order row within a transaction.
// Returns sql.ErrNoRows when the delete affects zero rows; the caller
// must then roll back the preceding item deletion as well.
func (r *OnlineOrderRepo) DeleteTx(ctx context.Context, tx *sql.Tx, orderID uint64) error {
	const q = `DELETE FROM online_orders WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatusFields applies a partial update of status and/or
// payment_status. Only non-nil fields are written; the caller guarantees
// at least one is present. Returns sql.ErrNoRows when no row is affected.
func (r *OnlineOrderRepo) UpdateStatusFields(ctx context.Context, orderID uint64, status, paymentStatus *string) error {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	if status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *status)
	}
	if paymentStatus != nil {
		sets = append(sets, "payment_status = ?")
		args = append(args, *paymentStatus)
	}
	query := `UPDATE online_orders SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, orderID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns all online orders, newest first.
func (r *OnlineOrderRepo) List(ctx context.Context) ([]model.OnlineOrder, error) {
	const q = `SELECT id, customer_first_name, customer_last_name, customer_phone, customer_location,
	                  status, total_amount, tax_amount, payment_status, delivery_type,
	                  created_at, updated_at
	           FROM online_orders
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.OnlineOrder, 0)
	for rows.Next() {
		var o model.OnlineOrder
		if err := rows.Scan(
			&o.ID, &o.FirstName, &o.LastName, &o.Phone, &o.Location,
			&o.Status, &o.TotalAmount, &o.TaxAmount, &o.PaymentStatus, &o.DeliveryType,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// OnlineOrderItemDetail is an online order line joined with its menu item.
type OnlineOrderItemDetail struct {
	ID            uint64          `json:"id"`
	OnlineOrderID uint64          `json:"online_order_id"`
	MenuItemID    uint64          `json:"menu_item_id"`
	Quantity      uint32          `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	ItemName      string          `json:"item_name"`
	Category      string          `json:"category"`
}

const onlineItemDetailQuery = `SELECT oi.id, oi.online_order_id, oi.menu_item_id, oi.quantity, oi.price,
	       m.name AS item_name, m.category
	FROM online_order_items oi
	JOIN menu_items m ON oi.menu_item_id = m.id`

// ItemsByOrder returns the line items of one online order joined with
// menu item name and category.
func (r *OnlineOrderRepo) ItemsByOrder(ctx context.Context, orderID uint64) ([]OnlineOrderItemDetail, error) {
	return r.queryItemDetails(ctx, onlineItemDetailQuery+` WHERE oi.online_order_id = ?`, orderID)
}

// ListItems returns every online order line across all orders.
func (r *OnlineOrderRepo) ListItems(ctx context.Context) ([]OnlineOrderItemDetail, error) {
	return r.queryItemDetails(ctx, onlineItemDetailQuery)
}

func (r *OnlineOrderRepo) queryItemDetails(ctx context.Context, query string, args ...interface{}) ([]OnlineOrderItemDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OnlineOrderItemDetail, 0)
	for rows.Next() {
		var it OnlineOrderItemDetail
		if err := rows.Scan(
			&it.ID, &it.OnlineOrderID, &it.MenuItemID, &it.Quantity, &it.Price,
			&it.ItemName, &it.Category,
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
