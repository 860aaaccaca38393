package entities

import (
	"strings"
	"time"
)

// Supply is a part or consumable from the catalog (insumo).
type Supply struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Supply) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("supply name is required")
	}
	if s.Quantity < 0 {
		return NewValidationError("supply quantity cannot be negative")
	}
	if s.Price < 0 {
		return NewValidationError("supply price cannot be negative")
	}
	return nil
}
