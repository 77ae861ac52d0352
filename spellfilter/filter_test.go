package spellfilter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/dice"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/monsterflag"
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/spellflag"
)

func newMonster(r *race.Race) *monster.Monster {
	return &monster.Monster{
		ID:     "m1",
		FY:     5,
		FX:     5,
		HP:     10,
		MaxHP:  10,
		Race:   r,
		MFlags: monsterflag.NewSet(),
	}
}

func TestFilterStupidSkipsAllPruning(t *testing.T) {
	r := &race.Race{
		Flags:      raceflag.NewSet(raceflag.Stupid),
		SpellFlags: spellflag.NewSet(spellflag.Heal, spellflag.Haste),
	}
	m := newMonster(r)
	m.HP = m.MaxHP // would normally prune Heal

	c := cave.New(20, 20)
	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(1), nil, true)
	require.NoError(t, err)
	assert.True(t, got.Has(spellflag.Heal))
	assert.True(t, got.Has(spellflag.Haste))
}

func TestFilterRemovesHealAtFullHP(t *testing.T) {
	r := &race.Race{SpellFlags: spellflag.NewSet(spellflag.Heal, spellflag.Scare)}
	m := newMonster(r)
	m.HP, m.MaxHP = 10, 10

	c := cave.New(20, 20)
	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(50), nil, false)
	require.NoError(t, err)
	assert.False(t, got.Has(spellflag.Heal))
	assert.True(t, got.Has(spellflag.Scare))
}

func TestFilterRemovesHasteWhenAlreadyFast(t *testing.T) {
	r := &race.Race{SpellFlags: spellflag.NewSet(spellflag.Haste)}
	m := newMonster(r)
	m.SetTimed(monster.StatusFast, 20)

	c := cave.New(20, 20)
	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(50), nil, false)
	require.NoError(t, err)
	assert.False(t, got.Has(spellflag.Haste))
}

func TestFilterRemovesTeleToWhenAdjacent(t *testing.T) {
	r := &race.Race{SpellFlags: spellflag.NewSet(spellflag.TeleTo)}
	m := newMonster(r)
	m.CDis = 1

	c := cave.New(20, 20)
	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(50), nil, false)
	require.NoError(t, err)
	assert.False(t, got.Has(spellflag.TeleTo))
}

func TestFilterRemovesBoltClassWithoutCleanShot(t *testing.T) {
	r := &race.Race{SpellFlags: spellflag.NewSet(spellflag.BoltFire, spellflag.Heal)}
	m := newMonster(r)
	m.FY, m.FX = 5, 5

	c := cave.New(20, 20)
	c.SetPlayerPos(5, 8)
	// wall directly between monster and player blocks the bolt class.
	c.SetFeature(5, 6, cave.FeatureWall)

	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(50), nil, false)
	require.NoError(t, err)
	assert.False(t, got.Has(spellflag.BoltFire))
}

func TestFilterKeepsBoltClassWithCleanShot(t *testing.T) {
	r := &race.Race{SpellFlags: spellflag.NewSet(spellflag.BoltFire)}
	m := newMonster(r)
	m.FY, m.FX = 5, 5

	c := cave.New(20, 20)
	c.SetPlayerPos(5, 8)

	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(50), nil, false)
	require.NoError(t, err)
	assert.True(t, got.Has(spellflag.BoltFire))
}

func TestFilterRemovesSummonClassWhenNoSpace(t *testing.T) {
	r := &race.Race{SpellFlags: spellflag.NewSet(spellflag.SummonKin)}
	m := newMonster(r)
	m.FY, m.FX = 2, 2

	c := cave.New(5, 5)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			y, x := m.FY+dy, m.FX+dx
			if c.InBounds(y, x) && !(dy == 0 && dx == 0) {
				c.SetOccupant(y, x, 99)
			}
		}
	}

	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(50), nil, false)
	require.NoError(t, err)
	assert.False(t, got.Has(spellflag.SummonKin))
}

func TestFilterDesperationRestrictsClasses(t *testing.T) {
	r := &race.Race{
		Flags:      raceflag.NewSet(raceflag.Smart),
		SpellFlags: spellflag.NewSet(spellflag.Heal, spellflag.BoltFire),
	}
	m := newMonster(r)
	m.HP, m.MaxHP = 1, 100 // under 10%

	c := cave.New(20, 20)
	c.SetPlayerPos(5, 8)

	// First Randint0 call is the desperation roll (must succeed, <50).
	got, err := Filter(context.Background(), m, c, dice.NewMockRoller(10), nil, false)
	require.NoError(t, err)
	assert.True(t, got.Has(spellflag.Heal))  // HEAL class survives restriction
	assert.False(t, got.Has(spellflag.BoltFire)) // BOLT is not in the desperation class set
}
