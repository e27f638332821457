package usecase

import (
	"math/rand/v2"
	"sync"
)

// Picker chooses an index in [0, n). Implementations must be safe for
// concurrent use.
type Picker interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewPicker returns a uniform Picker. A zero seed draws a random one.
func NewPicker(seed uint64) Picker {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *lockedRand) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}
