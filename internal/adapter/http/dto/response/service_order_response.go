package response

import (
	"os-service-api/internal/domain/entities"
	"time"
)

type ServiceLineResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type SupplyLineResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

type ServiceOrderResponse struct {
	ID          int64                 `json:"id"`
	ClientID    int64                 `json:"clientId"`
	VehicleID   int64                 `json:"vehicleId"`
	Services    []ServiceLineResponse `json:"services"`
	Supplies    []SupplyLineResponse  `json:"supplies"`
	CreatedAt   time.Time             `json:"createdAt"`
	FinalizedAt *time.Time            `json:"finalizedAt"`
	Status      string                `json:"status"`
	TotalPrice  float64               `json:"totalPrice"`
}

// ServiceOrderItemsResponse is returned by update-diagnosis: line items are
// projected to their ids only.
type ServiceOrderItemsResponse struct {
	ID          int64      `json:"id"`
	ClientID    int64      `json:"clientId"`
	VehicleID   int64      `json:"vehicleId"`
	Services    []int64    `json:"services"`
	Supplies    []int64    `json:"supplies"`
	CreatedAt   time.Time  `json:"createdAt"`
	FinalizedAt *time.Time `json:"finalizedAt"`
	Status      string     `json:"status"`
}

type ServiceOrderStatusResponse struct {
	ID          int64      `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	FinalizedAt *time.Time `json:"finalizedAt"`
	Status      string     `json:"status"`
}

type StatusChangeResponse struct {
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy,omitempty"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	services := make([]ServiceLineResponse, 0, len(o.Services))
	for _, l := range o.Services {
		line := ServiceLineResponse{ID: l.ID}
		if l.Resolved() {
			price := l.Service.Price
			line.Name = l.Service.Name
			line.Description = l.Service.Description
			line.Price = &price
		}
		services = append(services, line)
	}

	supplies := make([]SupplyLineResponse, 0, len(o.Supplies))
	for _, l := range o.Supplies {
		line := SupplyLineResponse{ID: l.ID}
		if l.Resolved() {
			qty, price := l.Supply.Quantity, l.Supply.Price
			line.Name = l.Supply.Name
			line.Quantity = &qty
			line.Price = &price
		}
		supplies = append(supplies, line)
	}

	return ServiceOrderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		VehicleID:   o.VehicleID,
		Services:    services,
		Supplies:    supplies,
		CreatedAt:   o.CreatedAt,
		FinalizedAt: o.FinalizedAt,
		Status:      o.Status.String(),
		TotalPrice:  o.TotalServicePrice,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

func FromServiceOrderItems(o entities.ServiceOrder) ServiceOrderItemsResponse {
	return ServiceOrderItemsResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		VehicleID:   o.VehicleID,
		Services:    entities.ServiceLineIDs(o.Services),
		Supplies:    entities.SupplyLineIDs(o.Supplies),
		CreatedAt:   o.CreatedAt,
		FinalizedAt: o.FinalizedAt,
		Status:      o.Status.String(),
	}
}

func FromServiceOrderStatus(o entities.ServiceOrder) ServiceOrderStatusResponse {
	return ServiceOrderStatusResponse{
		ID:          o.ID,
		CreatedAt:   o.CreatedAt,
		FinalizedAt: o.FinalizedAt,
		Status:      o.Status.String(),
	}
}

func FromStatusChanges(changes []entities.StatusChange) []StatusChangeResponse {
	out := make([]StatusChangeResponse, 0, len(changes))
	for _, c := range changes {
		out = append(out, StatusChangeResponse{
			From:      c.From.String(),
			To:        c.To.String(),
			ChangedAt: c.ChangedAt,
			ChangedBy: c.ChangedBy,
		})
	}
	return out
}
