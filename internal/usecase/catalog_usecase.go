package usecase

import (
	"context"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

var (
	ErrInvalidServiceID = entities.NewValidationError("invalid service id")
	ErrInvalidSupplyID  = entities.NewValidationError("invalid supply id")
)

type ServiceInput struct {
	Name        string
	Description string
	Price       float64
}

type SupplyInput struct {
	Name     string
	Quantity int
	Price    float64
}

// IServiceUseCase manages the labor catalog referenced by service orders.
type IServiceUseCase interface {
	Create(ctx context.Context, in ServiceInput) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id int64) (entities.Service, error)
	Update(ctx context.Context, id int64, in ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id int64) error
}

// ISupplyUseCase manages the parts catalog referenced by service orders.
type ISupplyUseCase interface {
	Create(ctx context.Context, in SupplyInput) (entities.Supply, error)
	List(ctx context.Context) ([]entities.Supply, error)
	GetByID(ctx context.Context, id int64) (entities.Supply, error)
	Update(ctx context.Context, id int64, in SupplyInput) (entities.Supply, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, in ServiceInput) (entities.Service, error) {
	s := entities.Service{Name: strings.TrimSpace(in.Name), Description: strings.TrimSpace(in.Description), Price: in.Price}
	if err := s.Validate(); err != nil {
		return entities.Service{}, err
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		zap.L().Error("[service][usecase] repository create failed", zap.Error(err))
		return entities.Service{}, err
	}
	return created, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.FindAll(ctx)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id int64) (entities.Service, error) {
	if id <= 0 {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == 0 {
		return entities.Service{}, entities.NewNotFoundError("service", id)
	}
	return s, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id int64, in ServiceInput) (entities.Service, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	current.Name = strings.TrimSpace(in.Name)
	current.Description = strings.TrimSpace(in.Description)
	current.Price = in.Price
	if err := current.Validate(); err != nil {
		return entities.Service{}, err
	}
	return u.repo.Update(ctx, current)
}

// Delete fails with a conflict while an order still references the service.
func (u *ServiceUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidServiceID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("[service][usecase] repository delete failed", zap.Int64("service_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return entities.NewNotFoundError("service", id)
	}
	return nil
}

type SupplyUseCase struct {
	repo interfaces.ISupplyRepository
}

var _ ISupplyUseCase = (*SupplyUseCase)(nil)

func NewSupplyUseCase(repo interfaces.ISupplyRepository) *SupplyUseCase {
	return &SupplyUseCase{repo: repo}
}

func (u *SupplyUseCase) Create(ctx context.Context, in SupplyInput) (entities.Supply, error) {
	s := entities.Supply{Name: strings.TrimSpace(in.Name), Quantity: in.Quantity, Price: in.Price}
	if err := s.Validate(); err != nil {
		return entities.Supply{}, err
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		zap.L().Error("[supply][usecase] repository create failed", zap.Error(err))
		return entities.Supply{}, err
	}
	return created, nil
}

func (u *SupplyUseCase) List(ctx context.Context) ([]entities.Supply, error) {
	return u.repo.FindAll(ctx)
}

func (u *SupplyUseCase) GetByID(ctx context.Context, id int64) (entities.Supply, error) {
	if id <= 0 {
		return entities.Supply{}, ErrInvalidSupplyID
	}
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Supply{}, err
	}
	if s.ID == 0 {
		return entities.Supply{}, entities.NewNotFoundError("supply", id)
	}
	return s, nil
}

func (u *SupplyUseCase) Update(ctx context.Context, id int64, in SupplyInput) (entities.Supply, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Supply{}, err
	}
	current.Name = strings.TrimSpace(in.Name)
	current.Quantity = in.Quantity
	current.Price = in.Price
	if err := current.Validate(); err != nil {
		return entities.Supply{}, err
	}
	return u.repo.Update(ctx, current)
}

func (u *SupplyUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidSupplyID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("[supply][usecase] repository delete failed", zap.Int64("supply_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return entities.NewNotFoundError("supply", id)
	}
	return nil
}
