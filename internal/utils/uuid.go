package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for resident and household
// records. V7 UUIDs keep insertion order roughly sequential, which keeps the
// primary key index compact.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random V4 if the
// system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
