package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem represents a row of the `menu_items` table. Prices are carried
// as decimals end to end; order items copy the price at order time, so a
// later menu edit never changes an existing order.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the dish.
//  Description – optional free-text description.
//  Price       – current price (DECIMAL(10,2)).
//  Category    – menu section (e.g. "mains", "drinks").
//  IsActive    – soft-delete flag; listings only show active items.
//  CreatedAt   – creation timestamp.
type MenuItem struct {
	ID          uint64          `json:"id"`          // menu_items.id
	Name        string          `json:"name"`        // menu_items.name
	Description string          `json:"description"` // menu_items.description
	Price       decimal.Decimal `json:"price"`       // menu_items.price
	Category    string          `json:"category"`    // menu_items.category
	IsActive    bool            `json:"is_active"`   // menu_items.is_active
	CreatedAt   time.Time       `json:"created_at"`  // menu_items.created_at
}
