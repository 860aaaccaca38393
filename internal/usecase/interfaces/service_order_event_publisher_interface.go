package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=service_order_event_publisher_interface.go -destination=mocks/mock_service_order_event_publisher_interface.go -package=mock_interfaces

// IServiceOrderEventPublisher notifies other services (billing) about service
// order changes.
type IServiceOrderEventPublisher interface {
	Publish(ctx context.Context, event entities.ServiceOrderEvent) error
}
