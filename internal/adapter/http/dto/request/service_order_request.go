package request

import (
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"
	"time"
)

// CreateServiceOrderRequest opens an order for a client (by CPF) and vehicle.
type CreateServiceOrderRequest struct {
	ClientIdentifier string  `json:"clientIdentifier" binding:"required"`
	VehicleID        int64   `json:"vehicleId" binding:"required"`
	Services         []int64 `json:"services"`
	Supplies         []int64 `json:"supplies"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		ClientIdentifier: r.ClientIdentifier,
		VehicleID:        r.VehicleID,
		Services:         r.Services,
		Supplies:         r.Supplies,
	}
}

// UpdateDiagnosisRequest replaces the line items of an order in diagnosis.
// An omitted list is left untouched. An explicit empty supplies list clears
// the supplies; services must stay non-empty.
type UpdateDiagnosisRequest struct {
	Services []int64 `json:"services"`
	Supplies []int64 `json:"supplies"`
}

func (r UpdateDiagnosisRequest) ToInput(id int64) usecase.ReviseLineItemsInput {
	return usecase.ReviseLineItemsInput{ID: id, Services: r.Services, Supplies: r.Supplies}
}

// UpdateStatusRequest moves an order to Status. FinishedAt is honored for
// FINISHED and CANCELLED only.
type UpdateStatusRequest struct {
	Status     string     `json:"status" binding:"required"`
	FinishedAt *time.Time `json:"finishedAt"`
}

func (r UpdateStatusRequest) ToInput(id int64) (usecase.TransitionStatusInput, bool) {
	status, ok := entities.ParseServiceOrderStatus(r.Status)
	if !ok {
		return usecase.TransitionStatusInput{}, false
	}
	return usecase.TransitionStatusInput{ID: id, Status: status, FinishedAt: r.FinishedAt}, true
}

// FinalizeRequest is the optional body of PUT /service-orders/:id/finalize.
type FinalizeRequest struct {
	FinishedAt *time.Time `json:"finishedAt"`
}
