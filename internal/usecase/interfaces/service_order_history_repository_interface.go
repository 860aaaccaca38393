package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=service_order_history_repository_interface.go -destination=mocks/mock_service_order_history_repository_interface.go -package=mock_interfaces

// IServiceOrderHistoryRepository stores the status trail of service orders.
// ListByOrderID returns changes oldest first.
type IServiceOrderHistoryRepository interface {
	Append(ctx context.Context, change entities.StatusChange) error
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.StatusChange, error)
}
