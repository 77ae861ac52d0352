package turn

import (
	"context"

	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/lore"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/rpgerr"
)

// Scheduler owns one level's live monster array and drives
// ProcessMonsters (§4.8) over it. The array is indexed exactly as the
// host's save format expects (invariant: iteration order is
// observable), so Scheduler never reorders or compacts it; a deleted
// monster's slot is simply left nil.
type Scheduler struct {
	Monsters []*monster.Monster
	Cave     *cave.Cave
	Services collab.Services
	Lore     *lore.Table
	// LearnOption mirrors cast.Attempt's learnOption: whether the spell
	// filter may prune spells the player is known to resist.
	LearnOption bool
}

// lookup resolves a monster by its occupancy index (array index + 1,
// since 0 marks an empty cell) for the stepper's KILL_BODY/MOVE_BODY
// comparisons.
func (s *Scheduler) lookup(idx int) *monster.Monster {
	if idx <= 0 || idx > len(s.Monsters) {
		return nil
	}
	return s.Monsters[idx-1]
}

// ProcessMonsters runs one pass of the scheduler (§4.8, "process_monsters(cave, minimum_energy)"):
// iterate indices high to low, and for each live monster with enough
// energy, deduct the fixed per-turn cost and process it if it is
// eligible to act this call.
func (s *Scheduler) ProcessMonsters(ctx context.Context, minimumEnergy int) error {
	breeders := s.countBreeders()

	for i := len(s.Monsters) - 1; i >= 0; i-- {
		m := s.Monsters[i]
		if m == nil || !m.IsAlive() {
			continue
		}
		if m.Energy < minimumEnergy {
			continue
		}

		m.Energy -= energyPerTurn

		py, px := s.Cave.PlayerPos()
		m.CDis = geometry.Chebyshev(m.FY, m.FX, py, px)

		if !s.eligible(m, py, px) {
			continue
		}

		if err := Process(ctx, m, s.Cave, s.lookup, s.Services, s.Lore, s.LearnOption, breeders); err != nil {
			return rpgerr.WrapCtx(ctx, "turn.Scheduler.ProcessMonsters", err)
		}
	}
	return nil
}

// eligible implements §4.8's four wake conditions: close enough to
// notice unprompted, already hurt, in the player's line of sight, or
// reachable by the flow field within its race's awareness range.
func (s *Scheduler) eligible(m *monster.Monster, py, px int) bool {
	if m.CDis <= m.Race.AAF {
		return true
	}
	if m.HP < m.MaxHP {
		return true
	}
	if geometry.LOS(m.FY, m.FX, py, px, s.Cave.Blocks) {
		return true
	}
	return s.flowReaches(m)
}

// flowReaches implements the fourth wake condition: the flow field has
// the monster's cell stamped with the same "when" as the player's own
// cell, and within both the global flow depth cap and the race's own
// awareness radius.
func (s *Scheduler) flowReaches(m *monster.Monster) bool {
	py, px := s.Cave.PlayerPos()
	playerWhen := s.Cave.When(py, px)
	if s.Cave.When(m.FY, m.FX) != playerWhen {
		return false
	}
	cost := s.Cave.Cost(m.FY, m.FX)
	if cost > core.MonsterFlowDepth {
		return false
	}
	return cost <= m.Race.AAF
}

// countBreeders counts currently-alive MULTIPLY-flagged monsters, the
// per-level cap tryReproduce enforces.
func (s *Scheduler) countBreeders() int {
	n := 0
	for _, m := range s.Monsters {
		if m != nil && m.IsAlive() && m.Race.HasFlag(raceflag.Multiply) {
			n++
		}
	}
	return n
}
