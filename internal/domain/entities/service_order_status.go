package entities

import "strings"

// ServiceOrderStatus represents the repair lifecycle of a service order (OS).
//
//	RECEIVED -> IN_DIAGNOSIS -> WAITING_FOR_APPROVAL -> APPROVED -> IN_PROGRESS -> FINISHED -> DELIVERED
//
// CANCELLED is reachable from any state. DELIVERED and CANCELLED are terminal.
type ServiceOrderStatus string

const (
	ServiceOrderStatusReceived           ServiceOrderStatus = "RECEIVED"
	ServiceOrderStatusInDiagnosis        ServiceOrderStatus = "IN_DIAGNOSIS"
	ServiceOrderStatusWaitingForApproval ServiceOrderStatus = "WAITING_FOR_APPROVAL"
	ServiceOrderStatusApproved           ServiceOrderStatus = "APPROVED"
	ServiceOrderStatusInProgress         ServiceOrderStatus = "IN_PROGRESS"
	ServiceOrderStatusFinished           ServiceOrderStatus = "FINISHED"
	ServiceOrderStatusDelivered          ServiceOrderStatus = "DELIVERED"
	ServiceOrderStatusCancelled          ServiceOrderStatus = "CANCELLED"
)

// AllServiceOrderStatuses lists every status in lifecycle order.
var AllServiceOrderStatuses = []ServiceOrderStatus{
	ServiceOrderStatusReceived,
	ServiceOrderStatusInDiagnosis,
	ServiceOrderStatusWaitingForApproval,
	ServiceOrderStatusApproved,
	ServiceOrderStatusInProgress,
	ServiceOrderStatusFinished,
	ServiceOrderStatusDelivered,
	ServiceOrderStatusCancelled,
}

// ClosedServiceOrderStatuses are the statuses that do not count as an open
// order when checking for conflicts on a vehicle/client pair.
var ClosedServiceOrderStatuses = []ServiceOrderStatus{
	ServiceOrderStatusCancelled,
	ServiceOrderStatusFinished,
	ServiceOrderStatusDelivered,
}

// ParseServiceOrderStatus accepts the canonical name in any case.
func ParseServiceOrderStatus(raw string) (ServiceOrderStatus, bool) {
	candidate := ServiceOrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	for _, s := range AllServiceOrderStatuses {
		if s == candidate {
			return s, true
		}
	}
	return "", false
}

// IsOpen reports whether an order in this status blocks a new order for the
// same vehicle and client.
func (s ServiceOrderStatus) IsOpen() bool {
	for _, closed := range ClosedServiceOrderStatuses {
		if s == closed {
			return false
		}
	}
	return true
}

func (s ServiceOrderStatus) IsTerminal() bool {
	return s == ServiceOrderStatusDelivered || s == ServiceOrderStatusCancelled
}

func (s ServiceOrderStatus) String() string { return string(s) }
