package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/mock_client_repository_interface.go -package=mock_interfaces

// IClientRepository is the client directory. FindByIdentifier resolves the
// client-facing document (CPF) to the stored client.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	FindAll(ctx context.Context) ([]entities.Client, error)
	FindByID(ctx context.Context, id int64) (entities.Client, error)
	FindByIdentifier(ctx context.Context, identifier string) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
