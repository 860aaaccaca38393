package routes

import (
	"os-service-api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRegister = "/register"
	PathLogin    = "/login"
	PathLogout   = "/logout"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST(PathRegister, h.Register)
	rg.POST(PathLogin, h.Login)
	rg.POST(PathLogout, h.Logout)
}
