package model

// Statuses written to restaurant_tables.status by the order lifecycle.
// Other values (e.g. a table manually marked out of service) may exist in
// the column, but the order flow only ever writes these two and it
// overwrites whatever value was present.
const (
	TableStatusAvailable = "available"
	TableStatusReserved  = "reserved"
)

// RestaurantTable represents a row of the `restaurant_tables` table.
//
// Fields:
//  ID          – primary key identifier.
//  TableNumber – human-facing table number.
//  Capacity    – number of seats.
//  Status      – occupancy status (see constants above).
//  Zone        – optional floor zone (nullable).
type RestaurantTable struct {
	ID          uint64  `json:"id"`           // restaurant_tables.id
	TableNumber uint32  `json:"table_number"` // restaurant_tables.table_number
	Capacity    uint32  `json:"capacity"`     // restaurant_tables.capacity
	Status      string  `json:"status"`       // restaurant_tables.status
	Zone        *string `json:"zone"`         // restaurant_tables.zone (nullable)
}

// OrderEvent is a dine-in order lifecycle change that may drive a table
// status transition.
type OrderEvent int

const (
	OrderCreated   OrderEvent = iota // new order opened on the table
	OrderCompleted                   // order status set to "done"
	OrderDeleted                     // order removed
)

// NextTableStatus maps an order event to the table status it forces.
// Creating an order reserves its table; completing or deleting the order
// frees it again. ok is false for events that leave the table untouched.
// The transition is applied point-in-time per order, not derived from a
// live count of open orders on the table.
func NextTableStatus(ev OrderEvent) (status string, ok bool) {
	switch ev {
	case OrderCreated:
		return TableStatusReserved, true
	case OrderCompleted, OrderDeleted:
		return TableStatusAvailable, true
	}
	return "", false
}
