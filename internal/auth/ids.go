package auth

import "github.com/google/uuid"

// IDGenerator mints identifiers for users and messages.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator produces random UUIDv4 strings.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
