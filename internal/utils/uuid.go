package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for trace ids and session ids.
// Prefers time-ordered UUIDv7 values and falls back to random v4 when v7
// generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
