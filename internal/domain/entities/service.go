package entities

import (
	"strings"
	"time"
)

// Service is a billable labor item from the catalog.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("service name is required")
	}
	if strings.TrimSpace(s.Description) == "" {
		return NewValidationError("service description is required")
	}
	if s.Price <= 0 {
		return NewValidationError("service price must be greater than zero")
	}
	return nil
}
