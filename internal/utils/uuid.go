package utils

import "github.com/google/uuid"

// VaultIDGenerator produces identifiers for a local vault installation.
type VaultIDGenerator struct {
}

func NewVaultIDGenerator() *VaultIDGenerator {
	return &VaultIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 when the clock
// source fails.
func (g *VaultIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
