package handlers

import (
	"errors"
	"net/http"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"
	"os-service-api/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid access token", http.StatusUnauthorized)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
)

// mapDomainError translates use case errors into the API error envelope.
func mapDomainError(err error) *pkg.AppError {
	var (
		validation *entities.ValidationError
		notFound   *entities.NotFoundError
		conflict   *entities.ConflictError
	)

	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrTokenRevoked):
		return pkg.NewDomainErrorSimple("TOKEN_REVOKED", "Token has been revoked", http.StatusUnauthorized)
	case errors.As(err, &validation):
		return pkg.NewDomainError("VALIDATION_ERROR", validation.Error(), err, http.StatusBadRequest)
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", notFound.Error(), err, http.StatusNotFound)
	case errors.As(err, &conflict):
		return pkg.NewDomainError("CONFLICT", conflict.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapDomainError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[http][handler] request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID parses the :id route parameter. Non-numeric or non-positive ids are
// answered with 400 and ok=false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return 0, false
	}
	return id, true
}
