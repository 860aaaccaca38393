package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"os-service-api/internal/adapter/http/handlers/mocks"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"
	"os-service-api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/register", h.Register)
	r.POST("/v1/login", h.Login)
	r.POST("/v1/logout", h.Logout)

	guarded := r.Group("/v1/guarded", RequireAuth(uc))
	guarded.GET("/whoami", func(c *gin.Context) {
		p, ok := entities.PrincipalFromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.UserID, "role": p.Role})
	})
	guarded.DELETE("/admin-only", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r, uc
}

func withToken(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	t.Run("register defaults", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().
			Register(gomock.Any(), usecase.RegisterInput{Name: "ana", Password: "secret1"}).
			Return(entities.User{ID: 1, Name: "ana", Role: entities.UserRoleAttendant, PasswordHash: "h"}, nil)

		w := serve(r, http.MethodPost, "/v1/register", `{"name":"ana","password":"secret1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, leaked := body["passwordHash"]; leaked {
			t.Fatalf("password hash leaked: %v", body)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrUserAlreadyExists)

		w := serve(r, http.MethodPost, "/v1/register", `{"name":"ana","password":"secret1","role":"admin"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("login invalid credentials", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "ana", "wrong").Return(usecase.LoginResult{}, usecase.ErrInvalidCredentials)

		w := serve(r, http.MethodPost, "/v1/login", `{"name":"ana","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login success", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		exp := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
		uc.EXPECT().Login(gomock.Any(), "ana", "secret1").Return(usecase.LoginResult{
			Token:  "signed",
			Claims: interfaces.TokenClaims{TokenID: "jti", UserID: 1, Role: entities.UserRoleAdmin, ExpiresAt: exp},
			User:   entities.User{ID: 1, Name: "ana", Role: entities.UserRoleAdmin},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/login", `{"name":"ana","password":"secret1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["token"] != "signed" || body["tokenType"] != "Bearer" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodPost, "/v1/logout", ""))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodPost, "/v1/logout", "tok"))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("no header", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodGet, "/v1/guarded/whoami", ""))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/v1/guarded/whoami", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("revoked token", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Authenticate(gomock.Any(), "old").Return(entities.Principal{}, usecase.ErrTokenRevoked)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodGet, "/v1/guarded/whoami", "old"))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "TOKEN_REVOKED" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
	})

	t.Run("blacklist unavailable", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Principal{}, errors.New("redis down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodGet, "/v1/guarded/whoami", "tok"))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("principal reaches the handler", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Principal{UserID: 7, Role: entities.UserRoleAttendant}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodGet, "/v1/guarded/whoami", "tok"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != float64(7) || body["role"] != "attendant" {
			t.Fatalf("unexpected principal: %v", body)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("attendant is forbidden", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Principal{UserID: 7, Role: entities.UserRoleAttendant}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodDelete, "/v1/guarded/admin-only", "tok"))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin passes", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Principal{UserID: 1, Role: entities.UserRoleAdmin}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, withToken(http.MethodDelete, "/v1/guarded/admin-only", "tok"))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
