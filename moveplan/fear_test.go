package moveplan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/race"
)

func TestWillRunTooFarIsFalse(t *testing.T) {
	m := &monster.Monster{CDis: 100, Race: &race.Race{Level: 1}, HP: 10, MaxHP: 10}
	assert.False(t, WillRun(m, 10, 10, 10))
}

func TestWillRunFearAlwaysTrue(t *testing.T) {
	m := &monster.Monster{CDis: 10, Race: &race.Race{Level: 1}, HP: 10, MaxHP: 10}
	m.SetTimed(monster.StatusFear, 5)
	assert.True(t, WillRun(m, 10, 10, 10))
}

func TestWillRunTooCloseIsFalse(t *testing.T) {
	m := &monster.Monster{CDis: 3, Race: &race.Race{Level: 1}, HP: 10, MaxHP: 10}
	assert.False(t, WillRun(m, 50, 50, 50))
}

func TestWillRunComparesRelativePower(t *testing.T) {
	weak := &monster.Monster{CDis: 10, Race: &race.Race{Level: 1}, HP: 1, MaxHP: 1}
	assert.True(t, WillRun(weak, 50, 100, 100))

	strong := &monster.Monster{CDis: 10, Race: &race.Race{Level: 50}, HP: 100, MaxHP: 100}
	assert.False(t, WillRun(strong, 1, 1, 1))
}

func TestReverseHeadingWithNoHistory(t *testing.T) {
	m := &monster.Monster{FY: 5, FX: 5}
	_, _, ok := ReverseHeading(m)
	assert.False(t, ok)
}

func TestReverseHeadingReversesLastStep(t *testing.T) {
	m := &monster.Monster{FY: 5, FX: 5, LastDir: int(DirNE)}
	ty, tx, ok := ReverseHeading(m)
	assert.True(t, ok)
	assert.Equal(t, 6, ty) // opposite of NE's (-1,+1) is (+1,-1)
	assert.Equal(t, 4, tx)
}
