package response

import (
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"
	"time"
)

type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Role: string(u.Role)}
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     r.Token,
		TokenType: "Bearer",
		ExpiresAt: r.Claims.ExpiresAt,
		User:      FromUser(r.User),
	}
}
