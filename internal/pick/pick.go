// Package pick provides uniform random selection over an injectable source
// so callers can pin deterministic output in tests.
package pick

import (
	"math/rand/v2"
	"time"
)

// Source yields a uniformly distributed int in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a Source seeded from the wall clock.
func New() Source {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Seeded returns a deterministic Source for the given seed.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// One returns a uniformly chosen element of items. It returns the zero value
// when items is empty.
func One[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.IntN(len(items))]
}

// Shuffle returns a shuffled copy of items (Fisher-Yates).
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Fixed is a Source that replays a scripted sequence of indexes, clamped to
// the requested range. It cycles when exhausted.
type Fixed struct {
	Seq []int
	pos int
}

func (f *Fixed) IntN(n int) int {
	if len(f.Seq) == 0 || n <= 0 {
		return 0
	}
	v := f.Seq[f.pos%len(f.Seq)]
	f.pos++
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
