package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=service_order_repository_interface.go -destination=mocks/mock_service_order_repository_interface.go -package=mock_interfaces

// IServiceOrderRepository abstracts persistence for ServiceOrder.
//
// Lookups return the zero ServiceOrder (ID == 0) and a nil error when nothing
// matches. Readers (FindAll, FindByID) return line items resolved against the
// catalogs; Create and Update return bare id references.
//
// Create must reject a second open order for the same vehicle and client with
// an entities.ConflictError, and Update must reject a stale Version with an
// entities.ConflictError.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, id int64, o entities.ServiceOrder) (entities.ServiceOrder, error)
	FindAll(ctx context.Context) ([]entities.ServiceOrder, error)
	FindByID(ctx context.Context, id int64) (entities.ServiceOrder, error)
	FindOpenOrder(ctx context.Context, vehicleID int64, clientIdentifier string) (entities.ServiceOrder, error)
}
