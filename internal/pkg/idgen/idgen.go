package idgen

import (
	"fmt"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generator produces process-unique opaque ids for cost line items.
// Pricing treats ids as labels only; they never participate in totals.
type Generator interface {
	NewID() string
}

type NanoID struct{}

func NewNanoID() Generator {
	return NanoID{}
}

func (NanoID) NewID() string {
	return gonanoid.Must()
}

// Sequence is a deterministic generator for tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}
