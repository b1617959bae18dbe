package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dine-in order statuses. Orders are created "open"; the status column is
// otherwise an open-ended string, but only "done" has a side effect (it
// frees the order's table).
const (
	OrderStatusOpen = "open"
	OrderStatusDone = "done"
)

// Order records a dine-in order placed at a table by an employee. It owns
// its OrderItem rows: the items are inserted in the same transaction as the
// order and are removed with it (ON DELETE CASCADE on order_items).
//
// Fields:
//  ID          – primary key identifier.
//  TableID     – table the order occupies.
//  EmployeeID  – employee who created the order.
//  TotalAmount – tax-inclusive total (DECIMAL(10,2)).
//  Status      – lifecycle status (see constants above).
//  CreatedAt   – creation timestamp.
type Order struct {
	ID          uint64          `json:"id"`           // orders.id
	TableID     uint64          `json:"table_id"`     // orders.table_id
	EmployeeID  uint64          `json:"employee_id"`  // orders.employee_id
	TotalAmount decimal.Decimal `json:"total_amount"` // orders.total_amount
	Status      string          `json:"status"`       // orders.status
	CreatedAt   time.Time       `json:"created_at"`   // orders.created_at
}

// OrderItem is one line of a dine-in order. Price is a snapshot taken at
// order time and is immutable once written; it does not follow later
// menu_items price changes.
type OrderItem struct {
	ID         uint64          `json:"id"`           // order_items.id
	OrderID    uint64          `json:"order_id"`     // order_items.order_id
	MenuItemID uint64          `json:"menu_item_id"` // order_items.menu_item_id
	Quantity   uint32          `json:"quantity"`     // order_items.quantity
	Price      decimal.Decimal `json:"price"`        // order_items.price (snapshot)
}
