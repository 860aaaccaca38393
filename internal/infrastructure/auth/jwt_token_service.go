package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const issuer = "os-service-api"

type tokenClaims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs HS256 access tokens carrying the user id and role.
type TokenService struct {
	secret  []byte
	expires time.Duration
	now     func() time.Time
}

var _ interfaces.ITokenService = (*TokenService)(nil)

type TokenServiceOption func(*TokenService)

// WithTokenClock overrides the time source used for iat/exp and validation.
func WithTokenClock(now func() time.Time) TokenServiceOption {
	return func(s *TokenService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTokenService(secret string, expires time.Duration, opts ...TokenServiceOption) *TokenService {
	s := &TokenService{secret: []byte(secret), expires: expires, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TokenService) Issue(user entities.User) (string, interfaces.TokenClaims, error) {
	now := s.now()
	claims := tokenClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expires)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", interfaces.TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, toTokenClaims(claims), nil
}

func (s *TokenService) Parse(token string) (interfaces.TokenClaims, error) {
	// Expiry is checked below against the service clock.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	var claims tokenClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return interfaces.TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.VerifyExpiresAt(s.now(), true) {
		return interfaces.TokenClaims{}, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}
	if claims.ID == "" || !entities.UserRole(claims.Role).Valid() {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	return toTokenClaims(claims), nil
}

func toTokenClaims(c tokenClaims) interfaces.TokenClaims {
	out := interfaces.TokenClaims{
		TokenID: c.ID,
		UserID:  c.UserID,
		Role:    entities.UserRole(c.Role),
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
