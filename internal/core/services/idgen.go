package services

import (
	"github.com/google/uuid"

	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
)

// uuidGenerator is the default IDGenerator: random UUIDs. The original
// timestamp-concatenation scheme had a theoretical same-tick collision;
// UUIDs close that gap.
type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// NewUUIDGenerator returns the default UUID-backed IDGenerator.
func NewUUIDGenerator() portssvc.IDGenerator {
	return uuidGenerator{}
}
