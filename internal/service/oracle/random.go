package oracle

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"
)

// RandomSource источник случайности для розыгрыша и броска джекпота.
// *rand.Rand из math/rand/v2 удовлетворяет интерфейсу,
// в тестах подставляется фиксированная последовательность.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// LockedSource *rand.Rand под мьютексом, можно делить между горутинами
type LockedSource struct {
	mtx sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource ChaCha8 генератор с сидом из crypto/rand
func NewRandomSource() (*LockedSource, error) {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to seed random source: %w", err)
	}
	return &LockedSource{rnd: rand.New(rand.NewChaCha8(seed))}, nil
}

func (s *LockedSource) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.rnd.IntN(n)
}

func (s *LockedSource) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.rnd.Float64()
}
