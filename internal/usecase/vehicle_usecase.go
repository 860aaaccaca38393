package usecase

import (
	"context"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=vehicle_usecase.go -destination=../adapter/http/handlers/mocks/mock_vehicle_usecase.go -package=mocks

var ErrInvalidVehicleRecordID = entities.NewValidationError("invalid vehicle id")

type VehicleInput struct {
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	ClientID     int64
}

type IVehicleUseCase interface {
	Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id int64) (entities.Vehicle, error)
	Update(ctx context.Context, id int64, in VehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type VehicleUseCase struct {
	repo    interfaces.IVehicleRepository
	clients interfaces.IClientRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, clients interfaces.IClientRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, clients: clients}
}

func (u *VehicleUseCase) Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error) {
	v := in.toEntity()
	if err := v.Validate(); err != nil {
		return entities.Vehicle{}, err
	}
	if err := u.ensureClient(ctx, v.ClientID); err != nil {
		return entities.Vehicle{}, err
	}

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		zap.L().Error("[vehicle][usecase] repository create failed", zap.Error(err))
		return entities.Vehicle{}, err
	}
	zap.L().Info("[vehicle][usecase] create success", zap.Int64("vehicle_id", created.ID), zap.String("plate", created.LicensePlate))
	return created, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.FindAll(ctx)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id int64) (entities.Vehicle, error) {
	if id <= 0 {
		return entities.Vehicle{}, ErrInvalidVehicleRecordID
	}
	v, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == 0 {
		return entities.Vehicle{}, entities.NewNotFoundError("vehicle", id)
	}
	return v, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id int64, in VehicleInput) (entities.Vehicle, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	next := in.toEntity()
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	if err := next.Validate(); err != nil {
		return entities.Vehicle{}, err
	}
	if next.ClientID != current.ClientID {
		if err := u.ensureClient(ctx, next.ClientID); err != nil {
			return entities.Vehicle{}, err
		}
	}
	return u.repo.Update(ctx, next)
}

func (u *VehicleUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidVehicleRecordID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("[vehicle][usecase] repository delete failed", zap.Int64("vehicle_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return entities.NewNotFoundError("vehicle", id)
	}
	return nil
}

func (u *VehicleUseCase) ensureClient(ctx context.Context, clientID int64) error {
	c, err := u.clients.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return entities.NewNotFoundError("client", clientID)
	}
	return nil
}

func (in VehicleInput) toEntity() entities.Vehicle {
	return entities.Vehicle{
		Brand:        strings.TrimSpace(in.Brand),
		Model:        strings.TrimSpace(in.Model),
		Year:         in.Year,
		LicensePlate: strings.ToUpper(strings.TrimSpace(in.LicensePlate)),
		ClientID:     in.ClientID,
	}
}
