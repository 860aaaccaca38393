package repository

import (
	"context"
	"fmt"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehiclePostgresRepository struct {
	db querier
}

var _ interfaces.IVehicleRepository = (*VehiclePostgresRepository)(nil)

func NewVehiclePostgresRepository(pool *pgxpool.Pool) *VehiclePostgresRepository {
	return &VehiclePostgresRepository{db: pool}
}

func (r *VehiclePostgresRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO vehicles (brand, model, year, license_plate, client_id) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		v.Brand, v.Model, v.Year, v.LicensePlate, v.ClientID,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return entities.Vehicle{}, mapVehicleWriteError(err, v)
	}
	return v, nil
}

func (r *VehiclePostgresRepository) FindAll(ctx context.Context) ([]entities.Vehicle, error) {
	return r.query(ctx, `ORDER BY id`)
}

func (r *VehiclePostgresRepository) FindByID(ctx context.Context, id int64) (entities.Vehicle, error) {
	list, err := r.query(ctx, `WHERE id = $1`, id)
	if err != nil || len(list) == 0 {
		return entities.Vehicle{}, err
	}
	return list[0], nil
}

func (r *VehiclePostgresRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE vehicles SET brand = $1, model = $2, year = $3, license_plate = $4, client_id = $5 WHERE id = $6
		RETURNING created_at`,
		v.Brand, v.Model, v.Year, v.LicensePlate, v.ClientID, v.ID,
	).Scan(&v.CreatedAt)
	if isNoRows(err) {
		return entities.Vehicle{}, entities.NewNotFoundError("vehicle", v.ID)
	}
	if err != nil {
		return entities.Vehicle{}, mapVehicleWriteError(err, v)
	}
	return v, nil
}

func (r *VehiclePostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if _, ok := foreignKeyViolation(err); ok {
		return false, entities.NewConflictError("vehicle is referenced by service orders")
	}
	if err != nil {
		return false, fmt.Errorf("delete vehicle: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *VehiclePostgresRepository) query(ctx context.Context, where string, args ...any) ([]entities.Vehicle, error) {
	rows, err := r.db.Query(ctx, `SELECT id, brand, model, year, license_plate, client_id, created_at FROM vehicles `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Vehicle, error) {
		var v entities.Vehicle
		err := row.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.LicensePlate, &v.ClientID, &v.CreatedAt)
		v.CreatedAt = v.CreatedAt.UTC()
		return v, err
	})
}

func mapVehicleWriteError(err error, v entities.Vehicle) error {
	if isUniqueViolation(err) {
		return entities.NewConflictError("license plate already registered")
	}
	if _, ok := foreignKeyViolation(err); ok {
		return entities.NewNotFoundError("client", v.ClientID)
	}
	return fmt.Errorf("write vehicle: %w", err)
}
