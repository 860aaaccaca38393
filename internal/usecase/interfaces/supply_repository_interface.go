package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=supply_repository_interface.go -destination=mocks/mock_supply_repository_interface.go -package=mock_interfaces

// ISupplyRepository is the supply (parts) catalog.
type ISupplyRepository interface {
	Create(ctx context.Context, s entities.Supply) (entities.Supply, error)
	FindAll(ctx context.Context) ([]entities.Supply, error)
	FindByID(ctx context.Context, id int64) (entities.Supply, error)
	Update(ctx context.Context, s entities.Supply) (entities.Supply, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
