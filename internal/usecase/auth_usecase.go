package usecase

import (
	"context"
	"errors"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/mock_auth_usecase.go -package=mocks

const minPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrWeakPassword       = entities.NewValidationError("password must have at least %d characters", minPasswordLength)
	ErrUserAlreadyExists  = entities.NewConflictError("user already exists")
)

type RegisterInput struct {
	Name     string
	Password string
	Role     entities.UserRole
}

type LoginResult struct {
	Token  string
	Claims interfaces.TokenClaims
	User   entities.User
}

// IAuthUseCase issues and revokes API access tokens.
//
// Flow:
//  1. POST /register => Register()
//  2. POST /login    => Login() returns a signed JWT
//  3. every guarded route => Authenticate()
//  4. POST /logout   => Logout() blacklists the token id until it expires
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	Login(ctx context.Context, name, password string) (LoginResult, error)
	Authenticate(ctx context.Context, token string) (entities.Principal, error)
	Logout(ctx context.Context, token string) error
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	tokens    interfaces.ITokenService
	blacklist interfaces.ITokenBlacklist
	hasher    interfaces.IPasswordHasher
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	tokens interfaces.ITokenService,
	blacklist interfaces.ITokenBlacklist,
	hasher interfaces.IPasswordHasher,
) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, blacklist: blacklist, hasher: hasher}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	user := entities.User{Name: strings.TrimSpace(in.Name), Role: in.Role}
	if user.Role == "" {
		user.Role = entities.UserRoleAttendant
	}
	if err := user.Validate(); err != nil {
		return entities.User{}, err
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrWeakPassword
	}

	existing, err := u.users.FindByName(ctx, user.Name)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		zap.L().Error("[auth][usecase] password hash failed", zap.Error(err))
		return entities.User{}, err
	}
	user.PasswordHash = hash

	created, err := u.users.Create(ctx, user)
	if err != nil {
		zap.L().Error("[auth][usecase] repository create failed", zap.Error(err))
		return entities.User{}, err
	}
	zap.L().Info("[auth][usecase] register success", zap.Int64("user_id", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, name, password string) (LoginResult, error) {
	user, err := u.users.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == 0 {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		zap.L().Info("[auth][usecase] login rejected", zap.Int64("user_id", user.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, claims, err := u.tokens.Issue(user)
	if err != nil {
		zap.L().Error("[auth][usecase] token issue failed", zap.Error(err))
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Claims: claims, User: user}, nil
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Principal, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return entities.Principal{}, ErrInvalidCredentials
	}
	revoked, err := u.blacklist.Contains(ctx, claims.TokenID)
	if err != nil {
		zap.L().Error("[auth][usecase] blacklist lookup failed", zap.Error(err))
		return entities.Principal{}, err
	}
	if revoked {
		return entities.Principal{}, ErrTokenRevoked
	}
	return entities.Principal{UserID: claims.UserID, Role: claims.Role}, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return ErrInvalidCredentials
	}
	if err := u.blacklist.Add(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		zap.L().Error("[auth][usecase] blacklist add failed", zap.Error(err))
		return err
	}
	zap.L().Info("[auth][usecase] logout success", zap.Int64("user_id", claims.UserID))
	return nil
}
