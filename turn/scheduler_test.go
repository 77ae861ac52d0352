package turn

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
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/raceflag"
)

func TestSchedulerSkipsLowEnergyMonsters(t *testing.T) {
	r := &race.Race{Level: 1, AAF: 2}
	m := &monster.Monster{FY: 1, FX: 1, HP: 10, MaxHP: 10, Energy: 50, Race: r}
	c := cave.New(5, 5)
	c.SetPlayerPos(1, 2)

	sched := &Scheduler{
		Monsters: []*monster.Monster{m},
		Cave:     c,
		Services: &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)},
		Lore:     lore.NewTable(),
	}

	err := sched.ProcessMonsters(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 50, m.Energy) // never touched: below minimum_energy
}

func TestSchedulerDeductsEnergyAndProcessesNearbyMonster(t *testing.T) {
	r := &race.Race{Level: 1, AAF: 10}
	m := &monster.Monster{FY: 1, FX: 1, HP: 10, MaxHP: 10, Energy: 100, Race: r}
	c := cave.New(5, 5)
	c.SetPlayerPos(1, 2) // cdis=1, within aaf=10

	sched := &Scheduler{
		Monsters: []*monster.Monster{m},
		Cave:     c,
		Services: &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)},
		Lore:     lore.NewTable(),
	}

	err := sched.ProcessMonsters(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Energy)
	assert.Equal(t, 1, m.CDis)
}

func TestSchedulerSkipsDeadMonsters(t *testing.T) {
	r := &race.Race{Level: 1, AAF: 10}
	dead := &monster.Monster{FY: 1, FX: 1, HP: 0, MaxHP: 10, Energy: 100, Race: r}
	c := cave.New(5, 5)

	sched := &Scheduler{
		Monsters: []*monster.Monster{dead},
		Cave:     c,
		Services: &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)},
		Lore:     lore.NewTable(),
	}

	err := sched.ProcessMonsters(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, dead.Energy) // untouched: nil handling / IsAlive guard skips it
}

func TestSchedulerFarMonsterNotEligibleSkipsAction(t *testing.T) {
	r := &race.Race{Level: 1, AAF: 1}
	m := &monster.Monster{FY: 0, FX: 0, HP: 10, MaxHP: 10, Energy: 100, Race: r}
	c := cave.New(20, 20)
	c.SetPlayerPos(15, 15)
	c.SetFeature(5, 5, cave.FeatureWall) // blocks LOS along the diagonal
	c.SetFlow(15, 15, 5, 5)              // player's cell when=5, monster's stays 0: flow mismatch

	svc := &collabtest.Fake{Roller: dice.NewMockRoller(1).WithRandint0(0)}
	sched := &Scheduler{
		Monsters: []*monster.Monster{m},
		Cave:     c,
		Services: svc,
		Lore:     lore.NewTable(),
	}

	err := sched.ProcessMonsters(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Energy) // energy still deducted
	assert.False(t, sched.eligible(m, 15, 15))
}

func TestCountBreedersCountsOnlyMultiplyFlagged(t *testing.T) {
	breeder := &monster.Monster{HP: 1, Race: &race.Race{Flags: raceflag.NewSet(raceflag.Multiply)}}
	nonBreeder := &monster.Monster{HP: 1, Race: &race.Race{}}
	dead := &monster.Monster{HP: 0, Race: &race.Race{Flags: raceflag.NewSet(raceflag.Multiply)}}

	sched := &Scheduler{Monsters: []*monster.Monster{breeder, nonBreeder, dead, nil}}
	assert.Equal(t, 1, sched.countBreeders())
}
