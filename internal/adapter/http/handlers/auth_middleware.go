package handlers

import (
	"errors"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalContextKey = "principal"

// RequireAuth rejects requests without a valid, non-revoked Bearer token and
// stores the caller in the request context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortWith(c, errUnauthorized)
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrInvalidCredentials):
				abortWith(c, errUnauthorized)
			case errors.Is(err, usecase.ErrTokenRevoked):
				abortWith(c, mapDomainError(err))
			default:
				zap.L().Error("[auth][middleware] authenticate failed", zap.Error(err))
				abortWith(c, mapDomainError(err))
			}
			return
		}

		c.Request = c.Request.WithContext(entities.ContextWithPrincipal(c.Request.Context(), principal))
		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := entities.PrincipalFromContext(c.Request.Context())
		if !ok {
			abortWith(c, errUnauthorized)
			return
		}
		if principal.Role != entities.UserRoleAdmin {
			abortWith(c, errForbidden)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
