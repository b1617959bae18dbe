// Package queue defines the message payloads exchanged over the broker
// and the background consumer that turns them into the order log.
package queue

// Order channels carried in OrderPlacedEvent.Channel.
const (
	ChannelDineIn = "dine_in"
	ChannelOnline = "online"
)

// OrderPlacedEvent is published after an order creation transaction
// commits. It carries enough for downstream consumers (kitchen display,
// logging) to act without querying the primary database. Money fields are
// decimal strings to avoid float drift in consumers.
type OrderPlacedEvent struct {
	OrderID      uint64 `json:"order_id"`
	Channel      string `json:"channel"`
	TableID      uint64 `json:"table_id,omitempty"`
	EmployeeID   uint64 `json:"employee_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	DeliveryType string `json:"delivery_type,omitempty"`
	ItemCount    int    `json:"item_count"`
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	TotalAmount  string `json:"total_amount"`
	PlacedAt     string `json:"placed_at"`
}
