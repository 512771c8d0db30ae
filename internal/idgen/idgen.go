// Package idgen produces unique message ids. The generator is an
// interface so tests can swap in a deterministic one.
package idgen

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator yields a fresh id on every call. Ids must never collide
// within the process, including calls made in the same instant.
type Generator interface {
	Next() string
}

// Sequence combines a millisecond timestamp prefix with an atomic
// counter. The counter alone guarantees uniqueness; the prefix makes ids
// trend increasing with creation order.
type Sequence struct {
	counter atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() string {
	n := s.counter.Add(1)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatInt(n, 10)
}

// UUID generates random v4 ids. No ordering, unique without coordination.
type UUID struct{}

func (UUID) Next() string {
	return uuid.NewString()
}

// FromScheme maps the ID_SCHEME config value to a generator. Unknown
// schemes fall back to sequence.
func FromScheme(scheme string) Generator {
	switch scheme {
	case "uuid":
		return UUID{}
	default:
		return NewSequence()
	}
}
