package dice

import "fmt"

// MockRoller implements Roller with predetermined, cycling results for
// testing, extended with Randint0 support.
type MockRoller struct {
	results []int
	index   int
	zeros   []int // backing sequence for Randint0 calls
	zeroIdx int
}

// NewMockRoller creates a MockRoller with the given predetermined Roll/RollN
// results. Results are used in order, cycling back to the start when
// exhausted.
func NewMockRoller(results ...int) *MockRoller {
	if len(results) == 0 {
		panic("dice: MockRoller requires at least one result")
	}
	return &MockRoller{results: results}
}

// WithRandint0 attaches a cycling sequence of Randint0 results, returned in
// order by subsequent Randint0 calls.
func (m *MockRoller) WithRandint0(values ...int) *MockRoller {
	m.zeros = values
	m.zeroIdx = 0
	return m
}

// Roll returns the next predetermined result.
func (m *MockRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("dice: invalid die size %d", size)
	}
	result := m.results[m.index]
	m.index = (m.index + 1) % len(m.results)
	if result < 1 || result > size {
		return 0, fmt.Errorf("dice: mock result %d is invalid for d%d", result, size)
	}
	return result, nil
}

// RollN returns multiple predetermined results.
func (m *MockRoller) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dice: invalid die size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("dice: invalid die count %d", count)
	}
	results := make([]int, count)
	for i := 0; i < count; i++ {
		v, err := m.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Randint0 returns the next predetermined value from the Randint0
// sequence, or 0 if none was configured.
func (m *MockRoller) Randint0(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("dice: invalid bound %d", n)
	}
	if len(m.zeros) == 0 {
		return 0, nil
	}
	v := m.zeros[m.zeroIdx]
	m.zeroIdx = (m.zeroIdx + 1) % len(m.zeros)
	if v < 0 || v >= n {
		return 0, fmt.Errorf("dice: mock randint0 result %d out of range [0,%d)", v, n)
	}
	return v, nil
}

// OneIn reports true with probability 1/n, drawing from the same
// Randint0 sequence (0 is treated as a hit).
func (m *MockRoller) OneIn(n int) (bool, error) {
	if n <= 1 {
		return true, nil
	}
	v, err := m.Randint0(n)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

// Reset resets the mock roller to start from the beginning of its
// sequences.
func (m *MockRoller) Reset() {
	m.index = 0
	m.zeroIdx = 0
}
