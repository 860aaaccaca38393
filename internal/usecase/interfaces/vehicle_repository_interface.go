package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=vehicle_repository_interface.go -destination=mocks/mock_vehicle_repository_interface.go -package=mock_interfaces

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	FindAll(ctx context.Context) ([]entities.Vehicle, error)
	FindByID(ctx context.Context, id int64) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
