// Package step implements the terrain/occupant stepper: given one
// candidate direction, decide whether the monster can move there and
// what happens along the way (walls, doors, glyphs, swap, attack).
// Grounded on original_source/src/monster/melee2.c's make_move-
// equivalent dispatch, expressed as an ordered predicate chain rather
// than nested if/return, in the staged-pipeline style the teacher uses
// for core/chain and rulebooks/dnd5e/combat/attack.go's AttackStages.
package step

import (
	"context"

	"github.com/duskvault/monsterai/blow"
	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/lore"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/moveplan"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/rpgerr"
)

// Lookup resolves a live monster by its occupancy-map index, the
// narrow seam this package needs into the host's monster array to
// compare mexp and perform KILL_BODY/MOVE_BODY swaps.
type Lookup func(idx int) *monster.Monster

// doorBashChance is the 1-in-N coinflip a BASH_DOOR race rolls before
// attempting to smash a closed/secret door.
const doorBashChance = 2

// Result reports what happened when a direction was attempted.
type Result struct {
	Consumed bool // a turn was consumed (move, door fumble, attack, ...)
	Moved    bool // the monster's (fy,fx) actually changed
	Break    bool // a blow handler set do_break; stop trying further mm[] slots
}

// Attempt executes one candidate direction against the terrain/occupant
// at that cell, per spec §4.4. It returns once it has decided whether a
// turn was consumed; callers (turn.Process) loop mm[0..4] until
// Consumed is true or the slots are exhausted.
func Attempt(ctx context.Context, m *monster.Monster, c *cave.Cave, dir moveplan.Direction, lookup Lookup, svc collab.Services, lt *lore.Table) (Result, error) {
	dy, dx := moveplan.Delta(dir)
	ty, tx := m.FY+dy, m.FX+dx

	if !c.InBounds(ty, tx) {
		return Result{}, nil
	}

	if c.Feature(ty, tx) == cave.FeaturePermWall {
		return Result{}, nil
	}

	if !c.IsPassable(ty, tx) {
		res, err := stepIntoWallOrDoor(ctx, m, c, ty, tx, svc)
		if err != nil || res.Consumed {
			return res, err
		}
		// Not passable and neither phased, eaten, nor bashed/opened this
		// turn: nothing else to try at this cell.
		return Result{}, nil
	}

	if c.HasGlyph(ty, tx) {
		return stepIntoGlyph(ctx, m, c, ty, tx, svc)
	}

	occ := c.Occupant(ty, tx)
	switch {
	case occ < 0: // the player
		return stepIntoPlayer(ctx, m, c, ty, tx, svc, lt)
	case occ > 0: // another monster
		return stepIntoMonster(m, c, ty, tx, occ, lookup, svc)
	}

	if m.Race.HasFlag(raceflag.NeverMove) {
		return Result{}, nil
	}

	moveInto(m, c, ty, tx)
	pickUpObjects(m, c, ty, tx, svc)
	return Result{Consumed: true, Moved: true}, nil
}

// stepIntoWallOrDoor handles feature kinds that aren't plain floor:
// permanent walls are filtered out by the caller already; this covers
// diggable walls and doors.
func stepIntoWallOrDoor(ctx context.Context, m *monster.Monster, c *cave.Cave, ty, tx int, svc collab.Services) (Result, error) {
	if m.Race.HasFlag(raceflag.PassWall) {
		moveInto(m, c, ty, tx)
		return Result{Consumed: true, Moved: true}, nil
	}

	if m.Race.HasFlag(raceflag.KillWall) {
		if c.Feature(ty, tx) == cave.FeatureWall {
			c.SetFeature(ty, tx, cave.FeatureFloor)
			py, px := c.PlayerPos()
			if geometry.LOS(py, px, ty, tx, c.Blocks) {
				c.MarkViewDirty()
			}
		}
		moveInto(m, c, ty, tx)
		return Result{Consumed: true, Moved: true}, nil
	}

	feat := c.Feature(ty, tx)
	if feat != cave.FeatureDoorClosed && feat != cave.FeatureDoorSecret {
		return Result{}, nil
	}

	door := c.Door(ty, tx)
	if m.Race.HasFlag(raceflag.BashDoor) {
		bash, err := svc.OneIn(doorBashChance)
		if err != nil {
			return Result{}, rpgerr.WrapCtx(ctx, "step.bash_door", err)
		}
		if bash {
			c.RemoveDoor(ty, tx)
			c.SetFeature(ty, tx, cave.FeatureFloor)
			svc.Sound("door_bash")
			svc.Msg("The door bursts open!")
			moveInto(m, c, ty, tx)
			return Result{Consumed: true, Moved: true}, nil
		}
	}

	if m.Race.HasFlag(raceflag.OpenDoor) || m.Race.HasFlag(raceflag.BashDoor) {
		if door != nil && door.Locked {
			bound := m.HP / 10
			if bound < 1 {
				bound = 1
			}
			roll, err := svc.Randint0(bound)
			if err != nil {
				return Result{}, rpgerr.WrapCtx(ctx, "step.door_lock_roll", err)
			}
			if roll > door.Power {
				door.Power--
				if door.Power < 1 {
					door.Power = 1
				}
			}
			return Result{Consumed: true}, nil
		}
		c.SetFeature(ty, tx, cave.FeatureDoorOpen)
		if door != nil {
			door.Locked = false
		}
		return Result{Consumed: true}, nil
	}

	return Result{}, nil
}

// stepIntoGlyph handles a glyph of warding on the target cell: it
// blocks the move unless the monster's level rolls a break.
func stepIntoGlyph(ctx context.Context, m *monster.Monster, c *cave.Cave, ty, tx int, svc collab.Services) (Result, error) {
	broke, err := breakGlyphChance(svc, m.Race.Level)
	if err != nil {
		return Result{}, rpgerr.WrapCtx(ctx, "step.break_glyph", err)
	}
	if !broke {
		return Result{}, nil
	}
	c.SetGlyph(ty, tx, false)
	moveInto(m, c, ty, tx)
	return Result{Consumed: true, Moved: true}, nil
}

// breakGlyphChance rolls race.level/BreakGlyph, per §4.4 step 4.
func breakGlyphChance(rng collab.RNG, level int) (bool, error) {
	if level <= 0 {
		return false, nil
	}
	roll, err := rng.Randint0(core.BreakGlyph)
	if err != nil {
		return false, err
	}
	return roll < level, nil
}

// stepIntoPlayer handles the target cell being the player: never-blow
// races do nothing; everyone else dispatches the melee blow loop and
// never actually steps onto the player's cell.
func stepIntoPlayer(ctx context.Context, m *monster.Monster, c *cave.Cave, ty, tx int, svc collab.Services, lt *lore.Table) (Result, error) {
	if m.Race.HasFlag(raceflag.NeverBlow) {
		return Result{}, nil
	}
	res, err := blow.Dispatch(ctx, m, svc, lt)
	if err != nil {
		return Result{}, rpgerr.WrapCtx(ctx, "step.blow_dispatch", err)
	}
	return Result{Consumed: true, Break: res.DoBreak}, nil
}

// stepIntoMonster handles the target cell holding a weaker or stronger
// monster: KILL_BODY deletes and steps in, MOVE_BODY swaps (only if the
// mover's own cell is passable so it can be vacated), otherwise blocked.
func stepIntoMonster(m *monster.Monster, c *cave.Cave, ty, tx, occIdx int, lookup Lookup, svc collab.Services) (Result, error) {
	other := lookup(occIdx)
	if other == nil || other.Race == nil || m.Race.MExp <= other.Race.MExp {
		return Result{}, nil
	}

	if m.Race.HasFlag(raceflag.KillBody) {
		svc.DeleteMonster(other)
		c.SetOccupant(ty, tx, 0)
		moveInto(m, c, ty, tx)
		return Result{Consumed: true, Moved: true}, nil
	}

	if m.Race.HasFlag(raceflag.MoveBody) && c.IsPassable(m.FY, m.FX) {
		oldY, oldX := m.FY, m.FX
		other.FY, other.FX = oldY, oldX
		c.SetOccupant(oldY, oldX, occIdx)
		m.FY, m.FX = ty, tx
		c.SetOccupant(ty, tx, m.Index())
		return Result{Consumed: true, Moved: true}, nil
	}

	// Both the weaker-monster condition and the swap-enabling condition
	// can hold independently; when MOVE_BODY can't swap (own cell
	// impassable), this silently fails with no message, preserved per
	// spec §9.
	return Result{}, nil
}

// moveInto performs the atomic occupant/position update spec invariant
// 7 requires.
func moveInto(m *monster.Monster, c *cave.Cave, ty, tx int) {
	c.SetOccupant(m.FY, m.FX, 0)
	m.FY, m.FX = ty, tx
	c.SetOccupant(ty, tx, m.Index())
}

// pickUpObjects processes every object on the cell the monster just
// stepped onto: gold is ignored, slay-vulnerable or artifact items are
// left alone (message only for TAKE_ITEM races), otherwise TAKE_ITEM
// carries it and KILL_ITEM destroys it.
func pickUpObjects(m *monster.Monster, c *cave.Cave, ty, tx int, svc collab.Services) {
	canTake := m.Race.HasFlag(raceflag.TakeItem)
	canKill := m.Race.HasFlag(raceflag.KillItem)
	if !canTake && !canKill {
		return
	}

	// Walk the chain back-to-front so RemoveObject's index shift never
	// skips an item.
	chain := c.Objects(ty, tx)
	for i := len(chain) - 1; i >= 0; i-- {
		item := chain[i]
		if item.IsGold {
			continue
		}
		vulnerable := item.SlayFlags&m.Race.VulnFlags != 0
		if vulnerable || item.IsArtifact {
			if canTake {
				svc.Msg("%s is unable to pick up the item.", m.ID)
			}
			continue
		}
		if canTake {
			svc.MonsterCarry(m, item)
		}
		// KILL_ITEM without TAKE_ITEM: destroyed, not carried.
		c.RemoveObject(ty, tx, i)
	}
}
