package allocator

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"team-draft/contract"
)

// lockedSource serialises access so one Allocator can serve concurrent callers.
type lockedSource struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewRandomSource returns a ChaCha8 generator seeded from the runtime's
// global source, which the runtime seeds randomly at startup.
func NewRandomSource() contract.IRandomSource {
	var seed [32]byte
	for i := 0; i < len(seed); i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], rand.Uint64())
	}
	return &lockedSource{rand: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededSource returns a reproducible generator, used to replay a draw.
func NewSeededSource(seed uint64) contract.IRandomSource {
	return &lockedSource{rand: rand.New(rand.NewPCG(seed, seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64()
}

// pick maps a uniform sample onto [0,n).
// Out-of-range samples from a misbehaving source are clamped rather than allowed to panic.
func pick(random contract.IRandomSource, n int) int {
	index := int(random.Float64() * float64(n))
	switch {
	case index < 0:
		return 0
	case index >= n:
		return n - 1
	default:
		return index
	}
}
