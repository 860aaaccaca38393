package repository

import (
	"context"
	"fmt"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPostgresRepository struct {
	db querier
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(pool *pgxpool.Pool) *UserPostgresRepository {
	return &UserPostgresRepository{db: pool}
}

func (r *UserPostgresRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, password_hash, role) VALUES ($1, $2, $3)
		RETURNING id`,
		u.Name, u.PasswordHash, string(u.Role),
	).Scan(&u.ID)
	if isUniqueViolation(err) {
		return entities.User{}, entities.NewConflictError("user already exists")
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserPostgresRepository) FindByName(ctx context.Context, name string) (entities.User, error) {
	var (
		u    entities.User
		role string
	)
	err := r.db.QueryRow(ctx, `SELECT id, name, password_hash, role FROM users WHERE name = $1`, name).
		Scan(&u.ID, &u.Name, &u.PasswordHash, &role)
	if isNoRows(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("find user: %w", err)
	}
	u.Role = entities.UserRole(role)
	return u, nil
}
