package monster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duskvault/monsterai/race"
)

func TestNewStampsUniqueID(t *testing.T) {
	r := &race.Race{Name: "jelly"}
	a := New(r, 1, 2)
	b := New(r, 1, 2)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "monster", a.GetType())
	assert.Equal(t, a.ID, a.GetID())
}

func TestTimedClampsAtZero(t *testing.T) {
	m := &Monster{Race: &race.Race{}}
	m.SetTimed(StatusFear, 3)
	assert.Equal(t, 1, m.DecTimed(StatusFear, 2))
	assert.Equal(t, 0, m.DecTimed(StatusFear, 5))
}
