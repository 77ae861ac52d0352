package geometry_test

import (
	"testing"

	"github.com/duskvault/monsterai/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChebyshev(t *testing.T) {
	assert.Equal(t, 0, geometry.Chebyshev(5, 5, 5, 5))
	assert.Equal(t, 3, geometry.Chebyshev(0, 0, 3, 1))
	assert.Equal(t, 4, geometry.Chebyshev(0, 0, 1, 4))
}

func TestRingsCardinality(t *testing.T) {
	// Sizes of the transcribed rings for radius 0..9.
	want := [10]int{0, 8, 12, 16, 24, 28, 32, 40, 44, 48}
	for r := 1; r <= 9; r++ {
		require.Len(t, geometry.Rings[r], want[r], "radius %d", r)
	}
	require.Empty(t, geometry.Rings[0])
}

func TestRingsDistance(t *testing.T) {
	// Ring r holds the offsets at distance r under the original's metric:
	// the larger axis offset plus half the smaller one.
	dist := func(dy, dx int) int {
		if dy < 0 {
			dy = -dy
		}
		if dx < 0 {
			dx = -dx
		}
		if dy > dx {
			return dy + dx/2
		}
		return dx + dy/2
	}
	for r := 1; r <= 9; r++ {
		for _, p := range geometry.Rings[r] {
			assert.Equal(t, r, dist(p.Y, p.X), "radius %d offset %+v", r, p)
		}
	}
}

func TestNeighbors8DiagonalsFirst(t *testing.T) {
	// First four entries must be diagonal (|dy|==|dx|==1), last four
	// cardinal (exactly one of dy,dx zero), the order the tie-break
	// in moveplan/flow.go relies on.
	for i, n := range geometry.Neighbors8[:4] {
		assert.NotZero(t, n.Y, "diagonal %d", i)
		assert.NotZero(t, n.X, "diagonal %d", i)
	}
	for i, n := range geometry.Neighbors8[4:] {
		isCardinal := (n.Y == 0) != (n.X == 0)
		assert.True(t, isCardinal, "cardinal %d: %+v", i, n)
	}
}

func TestLOSStraightLine(t *testing.T) {
	noBlocks := func(y, x int) bool { return false }
	assert.True(t, geometry.LOS(0, 0, 0, 5, noBlocks))
	assert.True(t, geometry.Projectable(0, 0, 5, 5, noBlocks))
}

func TestLOSBlockedByOccupant(t *testing.T) {
	blocked := func(y, x int) bool { return y == 0 && x == 2 }
	assert.False(t, geometry.LOS(0, 0, 0, 4, blocked))
}

func TestInBounds(t *testing.T) {
	assert.True(t, geometry.InBounds(0, 0, 10, 10))
	assert.False(t, geometry.InBounds(-1, 0, 10, 10))
	assert.False(t, geometry.InBounds(0, 10, 10, 10))
}
