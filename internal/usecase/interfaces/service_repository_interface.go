package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=service_repository_interface.go -destination=mocks/mock_service_repository_interface.go -package=mock_interfaces

// IServiceRepository is the service catalog. FindByID returns the zero
// Service when the id does not exist.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	FindAll(ctx context.Context) ([]entities.Service, error)
	FindByID(ctx context.Context, id int64) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
