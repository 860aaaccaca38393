package entities

import (
	"time"
)

// ServiceOrder (ordem de serviço) binds a client, a vehicle and the billable
// line items, and carries them through the repair lifecycle.
//
// Storage model (Postgres):
//   - PK: id (bigserial, assigned on create)
//   - services / supplies: JSONB arrays of {"id": n}
//   - partial unique index on (vehicle_id, client_id) while the order is open
//
// Every status change goes through the named transition methods (or
// ApplyTransition, which dispatches to them); assigning Status directly
// bypasses the lifecycle rules and is reserved for repositories rehydrating
// persisted state.
type ServiceOrder struct {
	ID                int64
	ClientID          int64
	VehicleID         int64
	Services          []ServiceLine
	Supplies          []SupplyLine
	CreatedAt         time.Time
	FinalizedAt       *time.Time
	Status            ServiceOrderStatus
	TotalServicePrice float64
	Version           int64
}

// NewServiceOrder validates the construction invariants and returns the order.
func NewServiceOrder(o ServiceOrder) (ServiceOrder, error) {
	if err := o.Validate(); err != nil {
		return ServiceOrder{}, err
	}
	return o, nil
}

// Validate checks the field invariants that hold in every state.
func (o ServiceOrder) Validate() error {
	if o.ClientID <= 0 {
		return NewValidationError("client id is required")
	}
	if o.VehicleID <= 0 {
		return NewValidationError("vehicle id is required")
	}
	if len(o.Services) == 0 {
		return NewValidationError("at least one service is required")
	}
	if o.CreatedAt.IsZero() {
		return NewValidationError("created at is required")
	}
	return nil
}

func (o *ServiceOrder) StartDiagnosis() error {
	if err := o.requireStatus(ServiceOrderStatusReceived, "start diagnosis"); err != nil {
		return err
	}
	o.Status = ServiceOrderStatusInDiagnosis
	return nil
}

// UpdateServices replaces the service line items. Only allowed during diagnosis.
func (o *ServiceOrder) UpdateServices(services []ServiceLine) error {
	if err := o.requireStatus(ServiceOrderStatusInDiagnosis, "update services"); err != nil {
		return err
	}
	if len(services) == 0 {
		return NewValidationError("at least one service is required")
	}
	o.Services = services
	return nil
}

// UpdateSupplies replaces the supply line items. Only allowed during diagnosis.
func (o *ServiceOrder) UpdateSupplies(supplies []SupplyLine) error {
	if err := o.requireStatus(ServiceOrderStatusInDiagnosis, "update supplies"); err != nil {
		return err
	}
	o.Supplies = supplies
	return nil
}

func (o *ServiceOrder) SubmitForApproval() error {
	if err := o.requireStatus(ServiceOrderStatusInDiagnosis, "submit for approval"); err != nil {
		return err
	}
	o.Status = ServiceOrderStatusWaitingForApproval
	return nil
}

func (o *ServiceOrder) ApproveOrder() error {
	if err := o.requireStatus(ServiceOrderStatusWaitingForApproval, "approve order"); err != nil {
		return err
	}
	o.Status = ServiceOrderStatusApproved
	return nil
}

func (o *ServiceOrder) StartExecution() error {
	if err := o.requireStatus(ServiceOrderStatusApproved, "start execution"); err != nil {
		return err
	}
	o.Status = ServiceOrderStatusInProgress
	return nil
}

// FinalizeOrder moves the order to FINISHED and stamps FinalizedAt with now.
func (o *ServiceOrder) FinalizeOrder() error {
	return o.FinalizeOrderAt(time.Now().UTC())
}

// FinalizeOrderAt is FinalizeOrder with a caller supplied completion time.
func (o *ServiceOrder) FinalizeOrderAt(at time.Time) error {
	if err := o.requireStatus(ServiceOrderStatusInProgress, "finalize order"); err != nil {
		return err
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	o.Status = ServiceOrderStatusFinished
	o.FinalizedAt = &at
	return nil
}

func (o *ServiceOrder) DeliverOrder() error {
	if err := o.requireStatus(ServiceOrderStatusFinished, "deliver order"); err != nil {
		return err
	}
	o.Status = ServiceOrderStatusDelivered
	return nil
}

// CancelOrder is legal from every state.
func (o *ServiceOrder) CancelOrder() error {
	o.Status = ServiceOrderStatusCancelled
	return nil
}

// ApplyTransition dispatches a requested target status to the named
// transition that produces it. at is used as the completion time when the
// target is FINISHED, and recorded as FinalizedAt when the target is
// CANCELLED; it is ignored for every other target.
func (o *ServiceOrder) ApplyTransition(target ServiceOrderStatus, at *time.Time) error {
	switch target {
	case ServiceOrderStatusInDiagnosis:
		return o.StartDiagnosis()
	case ServiceOrderStatusWaitingForApproval:
		return o.SubmitForApproval()
	case ServiceOrderStatusApproved:
		return o.ApproveOrder()
	case ServiceOrderStatusInProgress:
		return o.StartExecution()
	case ServiceOrderStatusFinished:
		if at != nil {
			return o.FinalizeOrderAt(*at)
		}
		return o.FinalizeOrder()
	case ServiceOrderStatusDelivered:
		return o.DeliverOrder()
	case ServiceOrderStatusCancelled:
		if err := o.CancelOrder(); err != nil {
			return err
		}
		if at != nil && !at.IsZero() {
			ts := *at
			o.FinalizedAt = &ts
		}
		return nil
	case ServiceOrderStatusReceived:
		return NewValidationError("status %s is not a transition target", target)
	default:
		return NewValidationError("unknown service order status %q", target)
	}
}

func (o *ServiceOrder) requireStatus(expected ServiceOrderStatus, action string) error {
	if o.Status != expected {
		return NewValidationError("order must be in state %s to perform %s", expected, action)
	}
	return nil
}
