package repository

import (
	"context"
	"fmt"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientPostgresRepository struct {
	db querier
}

var _ interfaces.IClientRepository = (*ClientPostgresRepository)(nil)

func NewClientPostgresRepository(pool *pgxpool.Pool) *ClientPostgresRepository {
	return &ClientPostgresRepository{db: pool}
}

func (r *ClientPostgresRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO clients (name, identifier) VALUES ($1, $2)
		RETURNING id, created_at`,
		c.Name, c.Identifier,
	).Scan(&c.ID, &c.CreatedAt)
	if isUniqueViolation(err) {
		return entities.Client{}, entities.NewConflictError("client identifier already registered")
	}
	if err != nil {
		return entities.Client{}, fmt.Errorf("insert client: %w", err)
	}
	return c, nil
}

func (r *ClientPostgresRepository) FindAll(ctx context.Context) ([]entities.Client, error) {
	return r.query(ctx, `ORDER BY id`)
}

func (r *ClientPostgresRepository) FindByID(ctx context.Context, id int64) (entities.Client, error) {
	return r.one(ctx, `WHERE id = $1`, id)
}

func (r *ClientPostgresRepository) FindByIdentifier(ctx context.Context, identifier string) (entities.Client, error) {
	return r.one(ctx, `WHERE identifier = $1`, identifier)
}

func (r *ClientPostgresRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE clients SET name = $1, identifier = $2 WHERE id = $3
		RETURNING created_at`,
		c.Name, c.Identifier, c.ID,
	).Scan(&c.CreatedAt)
	if isNoRows(err) {
		return entities.Client{}, entities.NewNotFoundError("client", c.ID)
	}
	if isUniqueViolation(err) {
		return entities.Client{}, entities.NewConflictError("client identifier already registered")
	}
	if err != nil {
		return entities.Client{}, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

func (r *ClientPostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if _, ok := foreignKeyViolation(err); ok {
		return false, entities.NewConflictError("client is referenced by vehicles or service orders")
	}
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ClientPostgresRepository) one(ctx context.Context, where string, args ...any) (entities.Client, error) {
	list, err := r.query(ctx, where, args...)
	if err != nil || len(list) == 0 {
		return entities.Client{}, err
	}
	return list[0], nil
}

func (r *ClientPostgresRepository) query(ctx context.Context, where string, args ...any) ([]entities.Client, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, identifier, created_at FROM clients `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Client, error) {
		var c entities.Client
		err := row.Scan(&c.ID, &c.Name, &c.Identifier, &c.CreatedAt)
		c.CreatedAt = c.CreatedAt.UTC()
		return c, err
	})
}
