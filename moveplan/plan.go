package moveplan

import (
	"context"

	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/rpgerr"
)

// adjacentDist is the cdis at which a monster is already next to the
// player, too close for the surround tactic to make sense.
const adjacentDist = 1

// Plan produces the 5-slot ordered direction list for one monster's
// move this turn, trying each strategy in priority order: flee, then
// group-AI hide/ambush, then group-AI surround, falling back to plain
// flow-following (or a direct line when the player is in sight). ok is
// false when no strategy found anywhere to go (§4.3 "no move").
//
// The spec states fear, hide, and surround as independent behaviors
// without fixing their relative precedence; fleeing is checked first
// since it overrides all other tactics, group ambush next since it is
// itself a deliberate refusal to approach directly, and surround last
// since it only applies once other tactics decline to fire.
func Plan(ctx context.Context, m *monster.Monster, c *cave.Cave, svc collab.Services) (mm [5]Direction, ok bool, err error) {
	if WillRun(m, svc.Level(), svc.MaxHP(), svc.HP()) {
		return planFlee(m, c)
	}

	if ShouldHide(m, c, svc.HP(), svc.MaxHP()) {
		if ty, tx, hideOk := FindHiding(m, c); hideOk {
			return BuildMoves(ty-m.FY, tx-m.FX), true, nil
		}
	}

	if m.Race.HasFlag(raceflag.GroupAI) && m.CDis > adjacentDist {
		ty, tx, surroundOk, serr := Surround(c, svc)
		if serr != nil {
			return mm, false, rpgerr.WrapCtx(ctx, "moveplan.Plan.surround", serr)
		}
		if surroundOk {
			return BuildMoves(ty-m.FY, tx-m.FX), true, nil
		}
	}

	ty, tx, flowOk, ferr := FlowTarget(m, c, svc)
	if ferr != nil {
		return mm, false, rpgerr.WrapCtx(ctx, "moveplan.Plan.flow", ferr)
	}
	if !flowOk {
		return mm, false, nil
	}
	return BuildMoves(ty-m.FY, tx-m.FX), true, nil
}

// planFlee resolves the fear-flight branch: find_safety, optionally
// refined by get_fear_moves_aux, falling back to the reversed heading.
func planFlee(m *monster.Monster, c *cave.Cave) (mm [5]Direction, ok bool, err error) {
	ty, tx, safeOk := FindSafety(m, c)
	if !safeOk {
		var revOk bool
		ty, tx, revOk = ReverseHeading(m)
		if !revOk {
			return mm, false, nil
		}
		return BuildMoves(ty-m.FY, tx-m.FX), true, nil
	}

	if ry, rx, refOk := RefineFearMove(m, c, ty, tx); refOk {
		ty, tx = ry, rx
	}
	return BuildMoves(ty-m.FY, tx-m.FX), true, nil
}
