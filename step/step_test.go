package step

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
	"github.com/duskvault/monsterai/moveplan"
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/raceflag"
)

func noopLookup(idx int) *monster.Monster { return nil }

func TestAttemptMovesIntoOpenFloor(t *testing.T) {
	c := cave.New(5, 5)
	r := &race.Race{}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	c.SetOccupant(2, 2, m.Index())
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.True(t, res.Moved)
	assert.Equal(t, 3, m.FY)
	assert.Equal(t, 0, c.Occupant(2, 2))
}

func TestAttemptBlockedByPermanentWall(t *testing.T) {
	c := cave.New(5, 5)
	c.SetFeature(3, 2, cave.FeaturePermWall)
	m := &monster.Monster{FY: 2, FX: 2, Race: &race.Race{}}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.False(t, res.Consumed)
	assert.Equal(t, 2, m.FY)
}

func TestAttemptPassWallRaceIgnoresWall(t *testing.T) {
	c := cave.New(5, 5)
	c.SetFeature(3, 2, cave.FeatureWall)
	r := &race.Race{Flags: raceflag.NewSet(raceflag.PassWall)}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.True(t, res.Moved)
	assert.Equal(t, cave.FeatureWall, c.Feature(3, 2)) // not destroyed
}

func TestAttemptKillWallDestroysAndMarksViewDirty(t *testing.T) {
	c := cave.New(5, 5)
	c.SetFeature(3, 2, cave.FeatureWall)
	r := &race.Race{Flags: raceflag.NewSet(raceflag.KillWall)}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Equal(t, cave.FeatureFloor, c.Feature(3, 2))
	assert.True(t, c.ViewDirty())
}

func TestAttemptBashDoorBurstsOpen(t *testing.T) {
	c := cave.New(5, 5)
	c.SetFeature(3, 2, cave.FeatureDoorClosed)
	c.SetDoor(3, 2, &cave.DoorState{Locked: false, Power: 1})
	r := &race.Race{Flags: raceflag.NewSet(raceflag.BashDoor)}
	m := &monster.Monster{FY: 2, FX: 2, HP: 20, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)} // OneIn(2) hits

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.True(t, res.Moved)
	assert.Equal(t, cave.FeatureFloor, c.Feature(3, 2))
	assert.Contains(t, svc.Sounds, "door_bash")
}

func TestAttemptOpenDoorOpensWithoutMoving(t *testing.T) {
	c := cave.New(5, 5)
	c.SetFeature(3, 2, cave.FeatureDoorClosed)
	c.SetDoor(3, 2, &cave.DoorState{Locked: false, Power: 1})
	r := &race.Race{Flags: raceflag.NewSet(raceflag.OpenDoor)}
	m := &monster.Monster{FY: 2, FX: 2, HP: 20, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.False(t, res.Moved)
	assert.Equal(t, cave.FeatureDoorOpen, c.Feature(3, 2))
}

func TestAttemptGlyphBlocksUntilBroken(t *testing.T) {
	c := cave.New(5, 5)
	c.SetGlyph(3, 2, true)
	r := &race.Race{Level: 600} // randint0(550) < 600 always true
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.True(t, res.Moved)
	assert.False(t, c.HasGlyph(3, 2))
}

func TestAttemptNeverBlowDoesNothingToPlayer(t *testing.T) {
	c := cave.New(5, 5)
	c.SetOccupant(3, 2, -1) // player
	r := &race.Race{Flags: raceflag.NewSet(raceflag.NeverBlow)}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.False(t, res.Consumed)
}

func TestAttemptStepsIntoPlayerDispatchesBlow(t *testing.T) {
	c := cave.New(5, 5)
	c.SetOccupant(3, 2, -1)
	r := &race.Race{
		Blows: [race.MaxBlows]race.Blow{
			{Method: race.MethodHit, Effect: race.EffectHurt, Dice: dice.Spec{Count: 1, Size: 4}, Power: 10},
		},
	}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(2).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Equal(t, 2, m.FY) // never steps onto the player's cell
}

func TestAttemptKillBodyDeletesWeakerMonster(t *testing.T) {
	c := cave.New(5, 5)
	weakRace := &race.Race{MExp: 1}
	weak := &monster.Monster{FY: 3, FX: 2, Race: weakRace}
	weak.SetIndex(7)
	c.SetOccupant(3, 2, 7)

	strongRace := &race.Race{MExp: 100, Flags: raceflag.NewSet(raceflag.KillBody)}
	m := &monster.Monster{FY: 2, FX: 2, Race: strongRace}

	lookup := func(idx int) *monster.Monster {
		if idx == 7 {
			return weak
		}
		return nil
	}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, lookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.True(t, res.Moved)
	assert.Equal(t, []*monster.Monster{weak}, svc.Deleted)
	assert.Equal(t, 3, m.FY)
}

func TestAttemptMoveBodySwapsWeakerMonster(t *testing.T) {
	c := cave.New(5, 5)
	weakRace := &race.Race{MExp: 1}
	weak := &monster.Monster{FY: 3, FX: 2, Race: weakRace}
	weak.SetIndex(7)
	c.SetOccupant(3, 2, 7)

	strongRace := &race.Race{MExp: 100, Flags: raceflag.NewSet(raceflag.MoveBody)}
	m := &monster.Monster{FY: 2, FX: 2, Race: strongRace}
	m.SetIndex(9)
	c.SetOccupant(2, 2, 9)

	lookup := func(idx int) *monster.Monster {
		if idx == 7 {
			return weak
		}
		return nil
	}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, lookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Equal(t, 3, m.FY)
	assert.Equal(t, 2, weak.FY)
	assert.Equal(t, 7, c.Occupant(2, 2))
	assert.Equal(t, 9, c.Occupant(3, 2))
}

func TestAttemptNeverMoveStaysPut(t *testing.T) {
	c := cave.New(5, 5)
	r := &race.Race{Flags: raceflag.NewSet(raceflag.NeverMove)}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.False(t, res.Consumed)
	assert.Equal(t, 2, m.FY)
}

func TestAttemptTakeItemCarriesEligibleObject(t *testing.T) {
	c := cave.New(5, 5)
	c.PlaceObject(3, 2, monster.Item{ID: "dagger"})
	r := &race.Race{Flags: raceflag.NewSet(raceflag.TakeItem)}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Equal(t, []monster.Item{{ID: "dagger"}}, svc.Carried)
	assert.Empty(t, c.Objects(3, 2))
}

func TestAttemptTakeItemSkipsVulnerableAndArtifact(t *testing.T) {
	c := cave.New(5, 5)
	c.PlaceObject(3, 2, monster.Item{ID: "holy avenger", SlayFlags: 0x1})
	c.PlaceObject(3, 2, monster.Item{ID: "relic", IsArtifact: true})
	r := &race.Race{Flags: raceflag.NewSet(raceflag.TakeItem), VulnFlags: 0x1}
	m := &monster.Monster{ID: "orc", FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Empty(t, svc.Carried)
	assert.Len(t, c.Objects(3, 2), 2) // left in place, just not carried
	assert.Len(t, svc.Messages, 2)
}

func TestAttemptKillItemDestroysWithoutCarrying(t *testing.T) {
	c := cave.New(5, 5)
	c.PlaceObject(3, 2, monster.Item{ID: "torch"})
	r := &race.Race{Flags: raceflag.NewSet(raceflag.KillItem)}
	m := &monster.Monster{FY: 2, FX: 2, Race: r}
	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}

	res, err := Attempt(context.Background(), m, c, moveplan.DirS, noopLookup, svc, lore.NewTable())
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Empty(t, svc.Carried)
	assert.Empty(t, c.Objects(3, 2))
}
