package request

import (
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{Name: r.Name, Password: r.Password, Role: entities.UserRole(r.Role)}
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}
