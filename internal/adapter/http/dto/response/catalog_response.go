package response

import (
	"os-service-api/internal/domain/entities"
	"time"
)

type ClientResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Identifier string    `json:"identifier"`
	CreatedAt  time.Time `json:"createdAt"`
}

type VehicleResponse struct {
	ID           int64     `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"licensePlate"`
	ClientID     int64     `json:"clientId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SupplyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Identifier: c.Identifier, CreatedAt: c.CreatedAt}
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		ClientID:     v.ClientID,
		CreatedAt:    v.CreatedAt,
	}
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price, CreatedAt: s.CreatedAt}
}

func FromSupply(s entities.Supply) SupplyResponse {
	return SupplyResponse{ID: s.ID, Name: s.Name, Quantity: s.Quantity, Price: s.Price, CreatedAt: s.CreatedAt}
}

// mapSlice projects a catalog listing into its response type.
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func FromClients(in []entities.Client) []ClientResponse { return mapSlice(in, FromClient) }

func FromVehicles(in []entities.Vehicle) []VehicleResponse { return mapSlice(in, FromVehicle) }

func FromServices(in []entities.Service) []ServiceResponse { return mapSlice(in, FromService) }

func FromSupplies(in []entities.Supply) []SupplyResponse { return mapSlice(in, FromSupply) }
