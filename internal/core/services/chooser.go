package services

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Chooser makes the uniform random picks for planning and selection. It is
// safe for concurrent use; a fixed seed makes every pick reproducible.
type Chooser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewChooser seeds a Chooser. A zero seed uses the current time.
func NewChooser(seed uint64) *Chooser {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Chooser{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// IntN returns a uniform index in [0, n). n must be positive.
func (c *Chooser) IntN(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(n)
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](c *Chooser, items []T) T {
	return items[c.IntN(len(items))]
}
