// Package random provides the randomness used for prize sampling and
// schedule jitter behind a small interface so tests can seed it.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntBetween returns a value in [lo, hi].
	IntBetween(lo, hi int) int
	// DurationBetween returns a whole-second duration in [lo, hi].
	DurationBetween(lo, hi time.Duration) time.Duration
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSource() Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func NewSeededSource(seed uint64) Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rnd.IntN(hi-lo+1)
}

func (s *lockedSource) DurationBetween(lo, hi time.Duration) time.Duration {
	loSec := int64(lo / time.Second)
	hiSec := int64(hi / time.Second)
	if hiSec <= loSec {
		return time.Duration(loSec) * time.Second
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(loSec+s.rnd.Int64N(hiSec-loSec+1)) * time.Second
}
