package randomplay

import (
	"math/rand"
	"sync"
)

// Shuffler permutes quiz ids in place.
type Shuffler interface {
	Shuffle(ids []int64)
}

// RandShuffler is a Fisher-Yates shuffler over a seedable source. It is safe
// for concurrent use.
type RandShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandShuffler(seed int64) *RandShuffler {
	return &RandShuffler{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandShuffler) Shuffle(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(ids) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// ShufflerFunc adapts a function to Shuffler.
type ShufflerFunc func(ids []int64)

func (f ShufflerFunc) Shuffle(ids []int64) {
	f(ids)
}
