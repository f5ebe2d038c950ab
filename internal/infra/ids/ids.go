// Package ids generates random identifiers for task sub-items.
package ids

import (
	"github.com/google/uuid"

	"github.com/runoshun/git-board/internal/domain"
)

// Generator produces random UUIDv4 strings.
type Generator struct{}

// New returns a Generator.
func New() Generator {
	return Generator{}
}

// NewID returns a new random id.
func (Generator) NewID() string {
	return uuid.NewString()
}

// Ensure Generator implements domain.IDGenerator interface.
var _ domain.IDGenerator = Generator{}
