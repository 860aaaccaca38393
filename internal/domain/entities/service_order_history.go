package entities

import "time"

// StatusChange is one row of a service order's status history.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: changed_at (fixed-width UTC timestamp, sortable)
type StatusChange struct {
	OrderID   int64              `json:"order_id"`
	From      ServiceOrderStatus `json:"from,omitempty"`
	To        ServiceOrderStatus `json:"to"`
	ChangedAt time.Time          `json:"changed_at"`
	ChangedBy string             `json:"changed_by,omitempty"`
}

// ServiceOrderEventType names the integration events published for other
// services (billing consumes them to calculate estimates).
type ServiceOrderEventType string

const (
	ServiceOrderEventCreated       ServiceOrderEventType = "service_order.created"
	ServiceOrderEventItemsRevised  ServiceOrderEventType = "service_order.items_revised"
	ServiceOrderEventStatusChanged ServiceOrderEventType = "service_order.status_changed"
)

type ServiceOrderEvent struct {
	ID         string                `json:"id"`
	Type       ServiceOrderEventType `json:"type"`
	OrderID    int64                 `json:"order_id"`
	ClientID   int64                 `json:"client_id"`
	VehicleID  int64                 `json:"vehicle_id"`
	Status     ServiceOrderStatus    `json:"status"`
	Services   []int64               `json:"services,omitempty"`
	Supplies   []int64               `json:"supplies,omitempty"`
	OccurredAt time.Time             `json:"occurred_at"`
}
