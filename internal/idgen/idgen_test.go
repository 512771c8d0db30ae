package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceUniqueness(t *testing.T) {
	gen := NewSequence()

	// Hammer the generator from many goroutines; every id must be
	// distinct even when produced in the same millisecond.
	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				id := gen.Next()

				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id generated: %s", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 2000)
}

func TestUUIDUniqueness(t *testing.T) {
	gen := UUID{}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestFromScheme(t *testing.T) {
	tests := []struct {
		name   string
		scheme string
		want   any
	}{
		{name: "sequence", scheme: "sequence", want: &Sequence{}},
		{name: "uuid", scheme: "uuid", want: UUID{}},
		{name: "unknown falls back to sequence", scheme: "bogus", want: &Sequence{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := FromScheme(tt.scheme)
			assert.IsType(t, tt.want, gen)
			assert.NotEmpty(t, gen.Next())
		})
	}
}
