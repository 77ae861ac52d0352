package moveplan

import (
	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/raceflag"
)

// flowOverrideChance is the probability a pass/kill-wall race follows the
// flow anyway even when not near a permanent wall.
const flowOverrideChance = 5

// wallCheckRadius is the Chebyshev radius of the "near a permanent wall"
// box (a 5x5 box is exactly radius 2 under Chebyshev distance).
const wallCheckRadius = 2

// flowTwiddle is the offset multiplier get_moves_aux applies to bias the
// final target diagonally toward the best-scoring flow neighbour.
const flowTwiddle = 16

// FlowTarget computes get_moves_aux's target cell: a straight line at the
// player when in line of sight, otherwise the best flow-field neighbour,
// twiddled toward the player. ok is false when no flow target applies
// (the monster should fall through to another move strategy).
func FlowTarget(m *monster.Monster, c *cave.Cave, rng collab.RNG) (ty, tx int, ok bool, err error) {
	py, px := c.PlayerPos()

	if geometry.LOS(m.FY, m.FX, py, px, c.Blocks) {
		return py, px, true, nil
	}

	passOrKill := m.Race.HasFlag(raceflag.PassWall) || m.Race.HasFlag(raceflag.KillWall)
	if passOrKill {
		useFlow := nearPermWall(c, m.FY, m.FX)
		if !useFlow {
			roll, err := rng.Randint0(100)
			if err != nil {
				return 0, 0, false, err
			}
			useFlow = roll < flowOverrideChance
		}
		if !useFlow {
			return 0, 0, false, nil
		}
	} else {
		when := c.When(m.FY, m.FX)
		pWhen := c.When(py, px)
		cost := c.Cost(m.FY, m.FX)
		if when < pWhen {
			return 0, 0, false, nil
		}
		if cost > core.MonsterFlowDepth {
			return 0, 0, false, nil
		}
		if cost > m.Race.AAF {
			return 0, 0, false, nil
		}
	}

	foundAny := false
	var bestY, bestX, bestWhen, bestCost int
	for _, off := range geometry.Neighbors8 {
		ny, nx := m.FY+off.Y, m.FX+off.X
		if !c.InBounds(ny, nx) {
			continue
		}
		w := c.When(ny, nx)
		cst := c.Cost(ny, nx)
		switch {
		case !foundAny:
			foundAny, bestY, bestX, bestWhen, bestCost = true, ny, nx, w, cst
		case w > bestWhen:
			bestY, bestX, bestWhen, bestCost = ny, nx, w, cst
		case w == bestWhen && cst <= bestCost:
			bestY, bestX, bestWhen, bestCost = ny, nx, w, cst
		}
	}
	if !foundAny {
		return 0, 0, false, nil
	}

	offY, offX := bestY-m.FY, bestX-m.FX
	return py + offY*flowTwiddle, px + offX*flowTwiddle, true, nil
}

// nearPermWall reports whether any cell within wallCheckRadius of (y,x)
// is a permanent wall.
func nearPermWall(c *cave.Cave, y, x int) bool {
	for dy := -wallCheckRadius; dy <= wallCheckRadius; dy++ {
		for dx := -wallCheckRadius; dx <= wallCheckRadius; dx++ {
			if c.Feature(y+dy, x+dx) == cave.FeaturePermWall {
				return true
			}
		}
	}
	return false
}
