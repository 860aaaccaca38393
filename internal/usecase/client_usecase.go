package usecase

import (
	"context"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=client_usecase.go -destination=../adapter/http/handlers/mocks/mock_client_usecase.go -package=mocks

var (
	ErrInvalidClientID       = entities.NewValidationError("invalid client id")
	ErrClientIdentifierInUse = entities.NewConflictError("client identifier already registered")
)

type ClientInput struct {
	Name       string
	Identifier string
}

type IClientUseCase interface {
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id int64) (entities.Client, error)
	Update(ctx context.Context, id int64, in ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id int64) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	client, err := entities.NewClient(in.Name, in.Identifier)
	if err != nil {
		return entities.Client{}, err
	}
	if err := u.ensureIdentifierFree(ctx, client.Identifier, 0); err != nil {
		return entities.Client{}, err
	}

	created, err := u.repo.Create(ctx, client)
	if err != nil {
		zap.L().Error("[client][usecase] repository create failed", zap.Error(err))
		return entities.Client{}, err
	}
	zap.L().Info("[client][usecase] create success", zap.Int64("client_id", created.ID))
	return created, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.FindAll(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id int64) (entities.Client, error) {
	if id <= 0 {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == 0 {
		return entities.Client{}, entities.NewNotFoundError("client", id)
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id int64, in ClientInput) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	next, err := entities.NewClient(in.Name, in.Identifier)
	if err != nil {
		return entities.Client{}, err
	}
	if next.Identifier != current.Identifier {
		if err := u.ensureIdentifierFree(ctx, next.Identifier, id); err != nil {
			return entities.Client{}, err
		}
	}
	current.Name = next.Name
	current.Identifier = next.Identifier

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		zap.L().Error("[client][usecase] repository update failed", zap.Int64("client_id", id), zap.Error(err))
		return entities.Client{}, err
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidClientID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("[client][usecase] repository delete failed", zap.Int64("client_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return entities.NewNotFoundError("client", id)
	}
	return nil
}

func (u *ClientUseCase) ensureIdentifierFree(ctx context.Context, identifier string, selfID int64) error {
	existing, err := u.repo.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return err
	}
	if existing.ID != 0 && existing.ID != selfID {
		return ErrClientIdentifierInUse
	}
	return nil
}
