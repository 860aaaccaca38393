package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/mock_user_repository_interface.go -package=mock_interfaces

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	FindByName(ctx context.Context, name string) (entities.User, error)
}
