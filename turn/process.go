// Package turn implements the monster process pipeline (§4.6) and the
// turn scheduler (§4.8): sleep/wake, status decay, reproduction, spell
// attempt, move determination, and the step loop, then the high-to-low
// index sweep that decides which monsters get a turn at all. Grounded
// on original_source/src/monster/melee2.c's process_monster/
// process_monsters pair, expressed as a staged pipeline in the teacher's
// core/chain style rather than one long procedural function.
package turn

import (
	"context"

	"github.com/duskvault/monsterai/cast"
	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/lore"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/moveplan"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/rpgerr"
	"github.com/duskvault/monsterai/step"
)

// wrapProcessErr attaches the monster's identity to err as both ctx
// metadata (so nested rpgerr.WrapCtx calls already include it) and a
// core.EntityError (so a host can errors.As its way to the offending
// monster without string-parsing the message).
func wrapProcessErr(ctx context.Context, m *monster.Monster, op string, err error) error {
	if err == nil {
		return nil
	}
	return core.NewEntityError(op, m.GetType(), m.GetID(), rpgerr.WrapCtx(ctx, op, err))
}

// energyPerTurn is the fixed energy cost §4.8 deducts from an eligible
// monster before it acts.
const energyPerTurn = 100

// noticeCeiling is the exclusive upper bound of the sleep-check's
// notice³ roll (§4.6 step 1).
const noticeCeiling = 1024

// stunSaveDivisor is the randint0 bound in the STUN recovery save
// (randint0(5000) ≤ level²).
const stunSaveDivisor = 5000

// reproRollDivisor is MON_MULT_ADJ's role in the 1/(k*MON_MULT_ADJ)
// reproduction chance.
const reproRollDivisor = core.MonMultAdj

// Process runs one monster's full turn: sleep/wake, status decay,
// reproduction, mimic-hiding, spell attempt, and the move/step loop.
// The caller (Scheduler) is responsible for deciding this monster is
// eligible and for deducting its energy; Process only ever consumes at
// most one "action" of game time.
// breederCount is the number of MULTIPLY-flagged live monsters
// currently on the level, supplied by the caller (the Scheduler, which
// owns the monster array this package doesn't) so the MAX_REPRO cap in
// tryReproduce can be enforced without this package needing its own
// monster registry.
func Process(ctx context.Context, m *monster.Monster, c *cave.Cave, lookup step.Lookup, svc collab.Services, lt *lore.Table, learnOption bool, breederCount int) error {
	ctx = rpgerr.WithMetadata(ctx, rpgerr.Meta("monster", m.GetID()), rpgerr.Meta("race", m.Race.Name))

	woke, err := processSleep(ctx, m, svc, lt)
	if err != nil {
		return wrapProcessErr(ctx, m, "turn.Process.sleep", err)
	}
	if !woke {
		return nil
	}

	stillStunned, err := decayStatus(svc, m)
	if err != nil {
		return wrapProcessErr(ctx, m, "turn.Process.decay", err)
	}
	if stillStunned {
		return nil
	}

	reproduced, err := tryReproduce(svc, m, c, breederCount)
	if err != nil {
		return wrapProcessErr(ctx, m, "turn.Process.reproduce", err)
	}
	if reproduced {
		return nil
	}

	if m.Unaware {
		return nil
	}

	attempted, err := cast.Attempt(ctx, m, c, svc, lt, learnOption)
	if err != nil {
		return wrapProcessErr(ctx, m, "turn.Process.cast", err)
	}
	if attempted {
		return nil
	}

	if err := moveAndStep(ctx, m, c, lookup, svc, lt); err != nil {
		return wrapProcessErr(ctx, m, "turn.Process.move", err)
	}
	return nil
}

// processSleep implements §4.6 step 1: an awake monster always
// "wakes" (woke=true, fall through to the rest of the turn);
// an asleep one either stays asleep (woke=false, turn ends with no
// action) or wakes this call.
func processSleep(ctx context.Context, m *monster.Monster, svc collab.Services, lt *lore.Table) (bool, error) {
	if m.Timed(monster.StatusSleep) <= 0 {
		return true, nil
	}

	if svc.HasAggravate() {
		m.SetTimed(monster.StatusSleep, 0)
		return false, nil
	}

	notice, err := svc.Randint0(noticeCeiling)
	if err != nil {
		return false, err
	}

	cdis := m.CDis
	if cdis < 1 {
		cdis = 1
	}

	if notice*notice*notice > svc.Noise() {
		if lt != nil {
			lt.For(m.Race).IncIgnore()
		}
		return false, nil
	}

	shave := 100 / cdis
	if shave < 1 {
		shave = 1
	}
	m.DecTimed(monster.StatusSleep, shave)
	if m.Timed(monster.StatusSleep) > 0 {
		return false, nil
	}

	svc.Msg("%s wakes up.", m.ID)
	if lt != nil {
		lt.For(m.Race).IncWake()
	}
	return false, nil
}

// decayStatus implements §4.6 step 2: FAST/SLOW/STUN/CONF/FEAR decay
// in order, each consuming at most one "turn unit" of recovery. It
// reports whether the monster is still stunned (in which case the
// turn ends here with no further action).
func decayStatus(svc collab.Services, m *monster.Monster) (bool, error) {
	if m.Timed(monster.StatusFast) > 0 {
		m.DecTimed(monster.StatusFast, 1)
	}
	if m.Timed(monster.StatusSlow) > 0 {
		m.DecTimed(monster.StatusSlow, 1)
	}

	if m.Timed(monster.StatusStun) > 0 {
		saveRoll, err := svc.Randint0(stunSaveDivisor)
		if err != nil {
			return false, err
		}
		if saveRoll <= m.Race.Level*m.Race.Level {
			m.SetTimed(monster.StatusStun, 0)
		} else {
			m.DecTimed(monster.StatusStun, 1)
		}
		if m.Timed(monster.StatusStun) > 0 {
			return true, nil
		}
	}

	if m.Timed(monster.StatusConf) > 0 {
		dec, err := recoveryDecrement(svc, m.Race.Level)
		if err != nil {
			return false, err
		}
		m.DecTimed(monster.StatusConf, dec)
	}

	if m.Timed(monster.StatusFear) > 0 {
		dec, err := recoveryDecrement(svc, m.Race.Level)
		if err != nil {
			return false, err
		}
		m.DecTimed(monster.StatusFear, dec)
	}

	return false, nil
}

// recoveryDecrement is randint1(level/10+1): the shared CONF/FEAR
// decay roll.
func recoveryDecrement(rng collab.RNG, level int) (int, error) {
	bound := level/10 + 1
	v, err := rng.Roll(bound)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// tryReproduce implements §4.6 step 3: a MULTIPLY race below the
// per-level breeder cap attempts to spawn an adjacent copy with
// probability 1/(k*MON_MULT_ADJ), always if it has no occupied
// neighbours at all.
func tryReproduce(svc collab.Services, m *monster.Monster, c *cave.Cave, breederCount int) (bool, error) {
	if !m.Race.HasFlag(raceflag.Multiply) {
		return false, nil
	}
	if breederCount >= core.MaxRepro {
		return false, nil
	}

	k := countOccupiedNeighbors(c, m.FY, m.FX)
	if k > 0 {
		will, err := svc.OneIn(k * reproRollDivisor)
		if err != nil {
			return false, err
		}
		if !will {
			return false, nil
		}
	}

	return svc.MultiplyMonster(m), nil
}

// countOccupiedNeighbors counts the monster's 8 adjacent cells that
// hold another occupant (monster or player).
func countOccupiedNeighbors(c *cave.Cave, y, x int) int {
	n := 0
	for _, d := range moveplan.AllDirections {
		dy, dx := moveplan.Delta(d)
		if c.Occupant(y+dy, x+dx) != 0 {
			n++
		}
	}
	return n
}

// moveAndStep implements §4.6 steps 6-8: decide stagger vs planned
// movement, try each candidate direction via the stepper until a turn
// is consumed, then invalidate view/flow and clear fear on failure to
// act.
func moveAndStep(ctx context.Context, m *monster.Monster, c *cave.Cave, lookup step.Lookup, svc collab.Services, lt *lore.Table) error {
	stagger, err := staggerMode(svc, m)
	if err != nil {
		return err
	}

	var dirs [5]moveplan.Direction
	if !stagger {
		var ok bool
		dirs, ok, err = moveplan.Plan(ctx, m, c, svc)
		if err != nil {
			return err
		}
		if !ok {
			clearFearOnFailure(svc, m)
			return nil
		}
	}

	wasUnaware := m.Unaware
	acted := false
	for i := 0; i < 5; i++ {
		dir := dirs[i]
		if stagger {
			dir, err = moveplan.RandomDirection(svc)
			if err != nil {
				return err
			}
		}

		res, err := step.Attempt(ctx, m, c, dir, lookup, svc, lt)
		if err != nil {
			return err
		}
		if res.Consumed {
			acted = true
			if res.Moved {
				markDirtyIfNeeded(c, m)
			}
			break
		}
		if res.Break {
			break
		}
	}

	if !acted {
		clearFearOnFailure(svc, m)
	} else if wasUnaware {
		svc.BecomeAware(m)
	}

	return nil
}

// staggerMode implements §4.6 step 6's stagger determination: CONF
// always staggers; otherwise a uniform roll decides whether RAND_25/
// RAND_50 apply, and staggering requires whichever flag combination
// that roll selected.
func staggerMode(svc collab.Services, m *monster.Monster) (bool, error) {
	if m.Timed(monster.StatusConf) > 0 {
		return true, nil
	}

	roll, err := svc.Randint0(100)
	if err != nil {
		return false, err
	}

	rand25 := m.Race.HasFlag(raceflag.Rand25)
	rand50 := m.Race.HasFlag(raceflag.Rand50)

	switch {
	case roll < 25:
		return rand25, nil
	case roll < 50:
		return rand50, nil
	case roll < 75:
		return rand25 && rand50, nil
	default:
		return false, nil
	}
}

// clearFearOnFailure implements §4.6 step 8's "became un-afraid
// because it could not act" clause.
func clearFearOnFailure(svc collab.Services, m *monster.Monster) {
	if m.Timed(monster.StatusFear) > 0 {
		m.SetTimed(monster.StatusFear, 0)
	}
}

// markDirtyIfNeeded implements §4.6 step 8's "a wall was eaten or a
// light-carrying monster moved" view/flow invalidation. Wall-eating
// already marks the view dirty at the point of destruction (package
// step); this only covers the light-carrier half, since that depends
// on a racial flag the stepper itself doesn't need to know about.
func markDirtyIfNeeded(c *cave.Cave, m *monster.Monster) {
	if m.Race.HasFlag(raceflag.HasLight) {
		c.MarkViewDirty()
		c.MarkFlowDirty()
	}
}
