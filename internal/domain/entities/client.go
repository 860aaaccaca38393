package entities

import (
	"strings"
	"time"
)

// Client is a shop customer, addressed externally by its CPF (identifier).
type Client struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Identifier string    `json:"identifier"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewClient(name, identifier string) (Client, error) {
	c := Client{Name: strings.TrimSpace(name), Identifier: NormalizeCPF(identifier)}
	if err := c.Validate(); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("client name is required")
	}
	if strings.TrimSpace(c.Identifier) == "" {
		return NewValidationError("client identifier is required")
	}
	if !IsValidCPF(c.Identifier) {
		return NewValidationError("invalid client identifier format")
	}
	return nil
}

// NormalizeCPF strips everything but digits ("111.444.777-35" -> "11144477735").
func NormalizeCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF checks length and both check digits. Sequences of a single
// repeated digit are rejected.
func IsValidCPF(raw string) bool {
	cpf := NormalizeCPF(raw)
	if len(cpf) != 11 {
		return false
	}
	if strings.Count(cpf, cpf[:1]) == 11 {
		return false
	}

	digit := func(n int) int { return int(cpf[n] - '0') }
	check := func(length int) int {
		sum := 0
		for i := 0; i < length; i++ {
			sum += digit(i) * (length + 1 - i)
		}
		d := 11 - sum%11
		if d >= 10 {
			return 0
		}
		return d
	}

	return check(9) == digit(9) && check(10) == digit(10)
}
