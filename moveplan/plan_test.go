package moveplan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab/collabtest"
	"github.com/duskvault/monsterai/dice"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/race"
)

func TestPlanHeadsStraightAtVisiblePlayer(t *testing.T) {
	r := &race.Race{Level: 1}
	m := &monster.Monster{FY: 5, FX: 5, HP: 10, MaxHP: 10, Race: r}
	c := cave.New(20, 20)
	c.SetPlayerPos(5, 8) // clear LOS, east of monster

	svc := &collabtest.Fake{
		Roller: dice.NewMockRoller(1).WithRandint0(0),
		PLevel: 1, PHP: 10, PMaxHP: 10,
	}

	mm, ok, err := Plan(context.Background(), m, c, svc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, DirE, mm[0])
}

func TestPlanNoMoveWhenNothingApplies(t *testing.T) {
	r := &race.Race{Level: 1}
	m := &monster.Monster{FY: 0, FX: 0, HP: 10, MaxHP: 10, Race: r}
	c := cave.New(3, 3)
	c.SetPlayerPos(2, 2)
	// block LOS and stamp when=5 on the player's cell only, so the
	// flow-window check fails (monster's own "when" is not >= player's).
	c.SetFeature(1, 1, cave.FeatureWall)
	c.SetFlow(2, 2, 5, 0)

	svc := &collabtest.Fake{
		Roller: dice.NewMockRoller(1).WithRandint0(99),
		PLevel: 1, PHP: 10, PMaxHP: 10,
	}

	_, ok, err := Plan(context.Background(), m, c, svc)
	require.NoError(t, err)
	assert.False(t, ok)
}
