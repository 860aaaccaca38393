package request

import "os-service-api/internal/usecase"

type ClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Identifier string `json:"identifier" binding:"required"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{Name: r.Name, Identifier: r.Identifier}
}

type VehicleRequest struct {
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
	ClientID     int64  `json:"clientId" binding:"required"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	return usecase.VehicleInput{
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		LicensePlate: r.LicensePlate,
		ClientID:     r.ClientID,
	}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{Name: r.Name, Description: r.Description, Price: r.Price}
}

// SupplyRequest allows zero quantity and price, so neither is "required".
type SupplyRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (r SupplyRequest) ToInput() usecase.SupplyInput {
	return usecase.SupplyInput{Name: r.Name, Quantity: r.Quantity, Price: r.Price}
}
