package dice

import (
	"fmt"
	"math/rand/v2"
)

// SeededRoller implements Roller over math/rand/v2's PCG source. Turn
// outcomes need to be deterministic given the RNG seed, which
// CryptoRoller can't offer, so this is the roller a host wires in for
// replayable turns (tests, demo seeds, netcode resync).
type SeededRoller struct {
	r *rand.Rand
}

// NewSeededRoller builds a SeededRoller whose entire future output is a
// pure function of seed1/seed2.
func NewSeededRoller(seed1, seed2 uint64) *SeededRoller {
	return &SeededRoller{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Roll returns a value from 1 to size (inclusive).
func (s *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("dice: invalid die size %d", size)
	}
	return s.r.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (s *SeededRoller) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dice: invalid die size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("dice: invalid die count %d", count)
	}
	results := make([]int, count)
	for i := 0; i < count; i++ {
		results[i] = s.r.IntN(size) + 1
	}
	return results, nil
}

// Randint0 returns a uniform value in [0, n).
func (s *SeededRoller) Randint0(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("dice: invalid bound %d", n)
	}
	return s.r.IntN(n), nil
}

// OneIn reports true with probability 1/n.
func (s *SeededRoller) OneIn(n int) (bool, error) {
	if n <= 1 {
		return true, nil
	}
	v, err := s.Randint0(n)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}
