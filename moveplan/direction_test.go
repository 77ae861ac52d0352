package moveplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMovesPureCardinalWhenAxisDominates(t *testing.T) {
	mm := BuildMoves(-10, 1) // ay(10) > 2*ax(1) -> pure north
	assert.Equal(t, DirN, mm[0])
}

func TestBuildMovesDiagonalWhenBalanced(t *testing.T) {
	mm := BuildMoves(-3, 3) // NE
	assert.Equal(t, DirNE, mm[0])
}

func TestBuildMovesFlanksAdjacentToPrimary(t *testing.T) {
	mm := BuildMoves(-5, 5) // NE
	// the two flanks of NE on the compass are N and E
	flanks := map[Direction]bool{mm[1]: true, mm[2]: true}
	assert.True(t, flanks[DirN])
	assert.True(t, flanks[DirE])
}

func TestBuildMovesAllFiveSlotsDistinct(t *testing.T) {
	mm := BuildMoves(4, -9)
	seen := map[Direction]bool{}
	for _, d := range mm {
		assert.False(t, seen[d], "direction %d repeated", d)
		seen[d] = true
	}
}
