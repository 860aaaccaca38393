package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"
	mock_interfaces "os-service-api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type authFixture struct {
	users     *mock_interfaces.MockIUserRepository
	tokens    *mock_interfaces.MockITokenService
	blacklist *mock_interfaces.MockITokenBlacklist
	hasher    *mock_interfaces.MockIPasswordHasher
	uc        *AuthUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &authFixture{
		users:     mock_interfaces.NewMockIUserRepository(ctrl),
		tokens:    mock_interfaces.NewMockITokenService(ctrl),
		blacklist: mock_interfaces.NewMockITokenBlacklist(ctrl),
		hasher:    mock_interfaces.NewMockIPasswordHasher(ctrl),
	}
	f.uc = NewAuthUseCase(f.users, f.tokens, f.blacklist, f.hasher)
	return f
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("weak password", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.uc.Register(context.Background(), RegisterInput{Name: "joao", Password: "123"})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.uc.Register(context.Background(), RegisterInput{Name: "joao", Password: "secret1", Role: "root"})
		if !entities.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("duplicate user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindByName(gomock.Any(), "joao").Return(entities.User{ID: 1}, nil)

		_, err := f.uc.Register(context.Background(), RegisterInput{Name: "joao", Password: "secret1"})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("success defaults to attendant", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindByName(gomock.Any(), "joao").Return(entities.User{}, nil)
		f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		f.users.EXPECT().Create(gomock.Any(), entities.User{Name: "joao", Role: entities.UserRoleAttendant, PasswordHash: "hashed"}).
			Return(entities.User{ID: 2, Name: "joao", Role: entities.UserRoleAttendant, PasswordHash: "hashed"}, nil)

		res, err := f.uc.Register(context.Background(), RegisterInput{Name: " joao ", Password: "secret1"})
		if err != nil || res.ID != 2 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindByName(gomock.Any(), "joao").Return(entities.User{}, nil)

		_, err := f.uc.Login(context.Background(), "joao", "secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindByName(gomock.Any(), "joao").Return(entities.User{ID: 2, PasswordHash: "hashed"}, nil)
		f.hasher.EXPECT().Compare("hashed", "nope").Return(errors.New("mismatch"))

		_, err := f.uc.Login(context.Background(), "joao", "nope")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t)
		user := entities.User{ID: 2, Name: "joao", Role: entities.UserRoleAdmin, PasswordHash: "hashed"}
		f.users.EXPECT().FindByName(gomock.Any(), "joao").Return(user, nil)
		f.hasher.EXPECT().Compare("hashed", "secret1").Return(nil)
		f.tokens.EXPECT().Issue(user).Return("jwt", interfaces.TokenClaims{TokenID: "jti", UserID: 2}, nil)

		res, err := f.uc.Login(context.Background(), "joao", "secret1")
		if err != nil || res.Token != "jwt" || res.Claims.TokenID != "jti" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestAuthUseCase_AuthenticateAndLogout(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	claims := interfaces.TokenClaims{TokenID: "jti", UserID: 2, Role: entities.UserRoleAdmin, ExpiresAt: exp}

	t.Run("bad token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("garbage").Return(interfaces.TokenClaims{}, errors.New("malformed"))

		if _, err := f.uc.Authenticate(context.Background(), "garbage"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("jwt").Return(claims, nil)
		f.blacklist.EXPECT().Contains(gomock.Any(), "jti").Return(true, nil)

		if _, err := f.uc.Authenticate(context.Background(), "jwt"); !errors.Is(err, ErrTokenRevoked) {
			t.Fatalf("expected ErrTokenRevoked, got %v", err)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("jwt").Return(claims, nil)
		f.blacklist.EXPECT().Contains(gomock.Any(), "jti").Return(false, nil)

		p, err := f.uc.Authenticate(context.Background(), "jwt")
		if err != nil || p.UserID != 2 || p.Role != entities.UserRoleAdmin {
			t.Fatalf("unexpected principal: %+v %v", p, err)
		}
	})

	t.Run("logout blacklists until expiry", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("jwt").Return(claims, nil)
		f.blacklist.EXPECT().Add(gomock.Any(), "jti", exp).Return(nil)

		if err := f.uc.Logout(context.Background(), "jwt"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
