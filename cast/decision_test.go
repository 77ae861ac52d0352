package cast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab/collabtest"
	"github.com/duskvault/monsterai/dice"
	"github.com/duskvault/monsterai/lore"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/monsterflag"
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/spellflag"
)

func baseRace() *race.Race {
	return &race.Race{
		Level:      10,
		Freq:       race.SpellFreq{Innate: 0, Spell: 100},
		SpellFlags: spellflag.NewSet(spellflag.Scare),
	}
}

func TestAttemptGateBlocksOnConfusion(t *testing.T) {
	r := baseRace()
	m := &monster.Monster{Race: r, MFlags: monsterflag.NewSet()}
	m.SetTimed(monster.StatusConf, 3)
	c := cave.New(10, 10)
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	attempted, err := Attempt(context.Background(), m, c, svc, lore.NewTable(), false)
	require.NoError(t, err)
	assert.False(t, attempted)
}

func TestAttemptGateBlocksOnNice(t *testing.T) {
	r := baseRace()
	m := &monster.Monster{Race: r, MFlags: monsterflag.NewSet(monsterflag.Nice)}
	c := cave.New(10, 10)
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	attempted, err := Attempt(context.Background(), m, c, svc, lore.NewTable(), false)
	require.NoError(t, err)
	assert.False(t, attempted)
}

func TestAttemptSucceedsAndLearnsSpell(t *testing.T) {
	r := baseRace()
	r.Level = 100 // fail rate clamps to 0, so the single-value mock roll
	// only has to serve the cast-chance check
	m := &monster.Monster{FY: 5, FX: 5, Race: r, MFlags: monsterflag.NewSet(monsterflag.View)}
	c := cave.New(10, 10)
	c.SetPlayerPos(5, 7)

	svc := &collabtest.Fake{
		Roller:     dice.NewMockRoller(1).WithRandint0(0), // every chance/fail roll hits
		CastResult: true,
	}

	lt := lore.NewTable()
	attempted, err := Attempt(context.Background(), m, c, svc, lt, false)
	require.NoError(t, err)
	assert.True(t, attempted)

	l := lt.For(r)
	assert.True(t, l.DiscoveredSpells.Has(spellflag.Scare))
	assert.Equal(t, 1, l.CastsNonInnate)
}

func TestAttemptOutOfRangeNeverAttempts(t *testing.T) {
	r := baseRace()
	m := &monster.Monster{FY: 0, FX: 0, Race: r, MFlags: monsterflag.NewSet()}
	c := cave.New(50, 50)
	c.SetPlayerPos(0, 40) // beyond MaxRange

	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	attempted, err := Attempt(context.Background(), m, c, svc, lore.NewTable(), false)
	require.NoError(t, err)
	assert.False(t, attempted)
}

func TestAttemptHasteIsInlineSpecialCase(t *testing.T) {
	r := &race.Race{
		Level:      5,
		Freq:       race.SpellFreq{Spell: 100},
		SpellFlags: spellflag.NewSet(spellflag.Haste),
	}
	m := &monster.Monster{FY: 1, FX: 1, Race: r, MFlags: monsterflag.NewSet()}
	c := cave.New(10, 10)
	c.SetPlayerPos(1, 3)

	// first roll clears the cast-chance gate, second must clear the
	// fail-rate check (rate = 25-(5+3)/4 = 23) without failing it.
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(10, 90)}

	attempted, err := Attempt(context.Background(), m, c, svc, lore.NewTable(), false)
	require.NoError(t, err)
	assert.True(t, attempted)
	assert.Equal(t, hasteFastBonus, m.Timed(monster.StatusFast))
	assert.Empty(t, svc.Messages) // no "tries to cast a spell, but fails" message
}

func TestFailsToCastStupidNeverFails(t *testing.T) {
	r := baseRace()
	r.Flags = raceflag.NewSet(raceflag.Stupid)
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(99)}
	m := &monster.Monster{Race: r}

	failed, err := failsToCast(svc, m, spellflag.Scare)
	require.NoError(t, err)
	assert.False(t, failed)
}

func TestFailsToCastInnateNeverFails(t *testing.T) {
	r := baseRace()
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(99)}
	m := &monster.Monster{Race: r}

	failed, err := failsToCast(svc, m, spellflag.Shriek)
	require.NoError(t, err)
	assert.False(t, failed)
}

func TestFailsToCastFearIncreasesFailRate(t *testing.T) {
	r := baseRace() // level 10 -> base rate 25-(13)/4 = 25-3 = 22
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(30)}
	m := &monster.Monster{Race: r}
	m.SetTimed(monster.StatusFear, 1)

	// rate becomes 22+20=42; roll 30 < 42 -> fails
	failed, err := failsToCast(svc, m, spellflag.Scare)
	require.NoError(t, err)
	assert.True(t, failed)
}
