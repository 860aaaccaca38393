package entities

import (
	"regexp"
	"strings"
	"time"
)

var licensePlatePattern = regexp.MustCompile(`^[A-Z]{3}[- ]?\d{4}$`)

type Vehicle struct {
	ID           int64     `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate"`
	ClientID     int64     `json:"client_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (v Vehicle) Validate() error {
	if strings.TrimSpace(v.Brand) == "" {
		return NewValidationError("vehicle brand is required")
	}
	if strings.TrimSpace(v.Model) == "" {
		return NewValidationError("vehicle model is required")
	}
	if v.Year < 1900 || v.Year > time.Now().Year()+1 {
		return NewValidationError("invalid vehicle year")
	}
	if strings.TrimSpace(v.LicensePlate) == "" {
		return NewValidationError("vehicle license plate is required")
	}
	if !licensePlatePattern.MatchString(v.LicensePlate) {
		return NewValidationError("invalid vehicle license plate")
	}
	if v.ClientID <= 0 {
		return NewValidationError("client id is required")
	}
	return nil
}
