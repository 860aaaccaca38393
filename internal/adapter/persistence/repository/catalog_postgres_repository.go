package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServicePostgresRepository persists the labor catalog.
type ServicePostgresRepository struct {
	db querier
}

var _ interfaces.IServiceRepository = (*ServicePostgresRepository)(nil)

func NewServicePostgresRepository(pool *pgxpool.Pool) *ServicePostgresRepository {
	return &ServicePostgresRepository{db: pool}
}

func (r *ServicePostgresRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO services (name, description, price) VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		s.Name, s.Description, s.Price,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return entities.Service{}, fmt.Errorf("insert service: %w", err)
	}
	return s, nil
}

func (r *ServicePostgresRepository) FindAll(ctx context.Context) ([]entities.Service, error) {
	return queryServices(ctx, r.db, `ORDER BY id`)
}

func (r *ServicePostgresRepository) FindByID(ctx context.Context, id int64) (entities.Service, error) {
	list, err := queryServices(ctx, r.db, `WHERE id = $1`, id)
	if err != nil || len(list) == 0 {
		return entities.Service{}, err
	}
	return list[0], nil
}

func (r *ServicePostgresRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE services SET name = $1, description = $2, price = $3 WHERE id = $4
		RETURNING created_at`,
		s.Name, s.Description, s.Price, s.ID,
	).Scan(&s.CreatedAt)
	if isNoRows(err) {
		return entities.Service{}, entities.NewNotFoundError("service", s.ID)
	}
	if err != nil {
		return entities.Service{}, fmt.Errorf("update service: %w", err)
	}
	return s, nil
}

// Delete refuses to remove a service still referenced by an order line.
func (r *ServicePostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteCatalogItem(ctx, r.db, "services", "services", "service", id)
}

// SupplyPostgresRepository persists the parts catalog.
type SupplyPostgresRepository struct {
	db querier
}

var _ interfaces.ISupplyRepository = (*SupplyPostgresRepository)(nil)

func NewSupplyPostgresRepository(pool *pgxpool.Pool) *SupplyPostgresRepository {
	return &SupplyPostgresRepository{db: pool}
}

func (r *SupplyPostgresRepository) Create(ctx context.Context, s entities.Supply) (entities.Supply, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO supplies (name, quantity, price) VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		s.Name, s.Quantity, s.Price,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return entities.Supply{}, fmt.Errorf("insert supply: %w", err)
	}
	return s, nil
}

func (r *SupplyPostgresRepository) FindAll(ctx context.Context) ([]entities.Supply, error) {
	return querySupplies(ctx, r.db, `ORDER BY id`)
}

func (r *SupplyPostgresRepository) FindByID(ctx context.Context, id int64) (entities.Supply, error) {
	list, err := querySupplies(ctx, r.db, `WHERE id = $1`, id)
	if err != nil || len(list) == 0 {
		return entities.Supply{}, err
	}
	return list[0], nil
}

func (r *SupplyPostgresRepository) Update(ctx context.Context, s entities.Supply) (entities.Supply, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE supplies SET name = $1, quantity = $2, price = $3 WHERE id = $4
		RETURNING created_at`,
		s.Name, s.Quantity, s.Price, s.ID,
	).Scan(&s.CreatedAt)
	if isNoRows(err) {
		return entities.Supply{}, entities.NewNotFoundError("supply", s.ID)
	}
	if err != nil {
		return entities.Supply{}, fmt.Errorf("update supply: %w", err)
	}
	return s, nil
}

func (r *SupplyPostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteCatalogItem(ctx, r.db, "supplies", "supplies", "supply", id)
}

func queryServices(ctx context.Context, db querier, where string, args ...any) ([]entities.Service, error) {
	rows, err := db.Query(ctx, `SELECT id, name, description, price, created_at FROM services `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Service, error) {
		var s entities.Service
		err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.CreatedAt)
		s.CreatedAt = s.CreatedAt.UTC()
		return s, err
	})
}

func querySupplies(ctx context.Context, db querier, where string, args ...any) ([]entities.Supply, error) {
	rows, err := db.Query(ctx, `SELECT id, name, quantity, price, created_at FROM supplies `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("query supplies: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Supply, error) {
		var s entities.Supply
		err := row.Scan(&s.ID, &s.Name, &s.Quantity, &s.Price, &s.CreatedAt)
		s.CreatedAt = s.CreatedAt.UTC()
		return s, err
	})
}

// deleteCatalogItem removes table.id unless some service order line in
// column references it. Both checks run in one statement.
func deleteCatalogItem(ctx context.Context, db querier, table, column, entity string, id int64) (bool, error) {
	ref, err := json.Marshal([]lineRef{{ID: id}})
	if err != nil {
		return false, err
	}

	var referenced, deleted bool
	err = db.QueryRow(ctx, fmt.Sprintf(`
		WITH ref AS (
			SELECT EXISTS (SELECT 1 FROM service_orders WHERE %[2]s @> $2::jsonb) AS used
		), del AS (
			DELETE FROM %[1]s WHERE id = $1 AND NOT (SELECT used FROM ref) RETURNING id
		)
		SELECT (SELECT used FROM ref), EXISTS (SELECT 1 FROM del)`, table, column),
		id, string(ref),
	).Scan(&referenced, &deleted)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", entity, err)
	}
	if referenced {
		return false, entities.NewConflictError(entity + " is referenced by service orders")
	}
	return deleted, nil
}
