package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type waiter struct {
	at time.Time
	ch chan time.Time
}

// MockClock only moves when Set or Add is called. After channels fire once the
// mock time reaches their deadline.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	waiters     []waiter
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	at := c.currentTime.Add(d)
	if d <= 0 {
		ch <- c.currentTime
		return ch
	}
	c.waiters = append(c.waiters, waiter{at: at, ch: ch})
	return ch
}

// Waiters reports how many After channels are still pending.
func (c *MockClock) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
	c.fire()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
	c.fire()
}

func (c *MockClock) fire() {
	pending := c.waiters[:0]
	for _, w := range c.waiters {
		if !c.currentTime.Before(w.at) {
			w.ch <- c.currentTime
			continue
		}
		pending = append(pending, w)
	}
	c.waiters = pending
}
