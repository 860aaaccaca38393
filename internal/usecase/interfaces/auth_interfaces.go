package interfaces

import (
	"context"
	"os-service-api/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=auth_interfaces.go -destination=mocks/mock_auth_interfaces.go -package=mock_interfaces

// TokenClaims is the subset of JWT claims the API relies on.
type TokenClaims struct {
	TokenID   string
	UserID    int64
	Role      entities.UserRole
	ExpiresAt time.Time
}

// ITokenService issues and verifies access tokens.
type ITokenService interface {
	Issue(user entities.User) (string, TokenClaims, error)
	Parse(token string) (TokenClaims, error)
}

// ITokenBlacklist keeps revoked token ids until the token would have expired
// anyway.
type ITokenBlacklist interface {
	Add(ctx context.Context, tokenID string, expiresAt time.Time) error
	Contains(ctx context.Context, tokenID string) (bool, error)
}

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
