package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Online order defaults. Status and payment status are open-ended strings
// patched independently by the status endpoint; these are only the values
// written at creation time.
const (
	OnlineOrderStatusPending = "pending"
	PaymentStatusUnpaid      = "unpaid"
	DeliveryTypeDefault      = "delivery"
)

// OnlineOrder records an order placed by a remote customer. Customer
// identity is denormalized onto the row (no customer entity exists).
// Unlike a dine-in order its item set may be wholesale replaced after
// creation, which recomputes TotalAmount and TaxAmount from the new set.
//
// Fields:
//  ID            – primary key identifier.
//  FirstName     – customer given name.
//  LastName      – customer family name.
//  Phone         – customer phone number.
//  Location      – delivery address / pickup location.
//  Status        – lifecycle status ("pending", ...).
//  TotalAmount   – tax-inclusive total (DECIMAL(10,2)).
//  TaxAmount     – tax portion, stored separately for online orders only.
//  PaymentStatus – payment state ("unpaid", ...).
//  DeliveryType  – "delivery" or "pickup".
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type OnlineOrder struct {
	ID            uint64          `json:"id"`             // online_orders.id
	FirstName     string          `json:"first_name"`     // online_orders.customer_first_name
	LastName      string          `json:"last_name"`      // online_orders.customer_last_name
	Phone         string          `json:"phone"`          // online_orders.customer_phone
	Location      string          `json:"location"`       // online_orders.customer_location
	Status        string          `json:"status"`         // online_orders.status
	TotalAmount   decimal.Decimal `json:"total_amount"`   // online_orders.total_amount
	TaxAmount     decimal.Decimal `json:"tax_amount"`     // online_orders.tax_amount
	PaymentStatus string          `json:"payment_status"` // online_orders.payment_status
	DeliveryType  string          `json:"delivery_type"`  // online_orders.delivery_type
	CreatedAt     time.Time       `json:"created_at"`     // online_orders.created_at
	UpdatedAt     time.Time       `json:"updated_at"`     // online_orders.updated_at
}

// OnlineOrderItem is one line of an online order. Price is a snapshot at
// order (or replacement) time, same trust rules as OrderItem.
type OnlineOrderItem struct {
	ID            uint64          `json:"id"`              // online_order_items.id
	OnlineOrderID uint64          `json:"online_order_id"` // online_order_items.online_order_id
	MenuItemID    uint64          `json:"menu_item_id"`    // online_order_items.menu_item_id
	Quantity      uint32          `json:"quantity"`        // online_order_items.quantity
	Price         decimal.Decimal `json:"price"`           // online_order_items.price (snapshot)
}
