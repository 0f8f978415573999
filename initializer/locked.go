package initializer

import "math/rand"
import "sync"

// Locked draws uniform values from one math/rand generator. Access to the
// generator is serialized, so a single Locked can feed several training runs
// building networks on different goroutines.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocked creates a Locked source with a fixed seed.
func NewLocked(seed int64) *Locked {
	return &Locked{rng: rand.New(rand.NewSource(seed))}
}

// NextSignedUnit returns a uniform value in [-1, 1).
func (l *Locked) NextSignedUnit() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()*2 - 1
}
