package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator hands out identifiers for new entities (sessions, checklist
// items). Injected rather than called ambiently so tests can run with a
// deterministic sequence.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.New().String()
}

// NewUUID returns the production generator backed by random UUIDs.
func NewUUID() Generator {
	return uuidGenerator{}
}

// Sequence is a deterministic generator for tests: prefix-1, prefix-2, ...
type Sequence struct {
	Prefix string
	n      int
}

func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
