package utils

import "github.com/google/uuid"

// UUIDGenerator mints time-ordered UUIDv7 strings, so food ids sort roughly
// by creation time and trace ids are unique across instances.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random UUIDv4 if the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
