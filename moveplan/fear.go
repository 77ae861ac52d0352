package moveplan

import (
	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/monster"
)

// fleeThreshold is the cdis at or below which a monster never bothers
// fleeing (close combat is already joined).
const fleeThreshold = 5

// costRingSlack is the per-ring slack added to the fleeing monster's own
// cost when judging whether a candidate safety cell is still "downhill"
// enough from the player to be worth the trip.
const costRingSlack = 2

// WillRun implements mon_will_run: whether a monster should flee the
// player this turn.
func WillRun(m *monster.Monster, playerLevel, playerMaxHP, playerHP int) bool {
	if m.CDis > core.MaxSight+5 {
		return false
	}
	if m.Timed(monster.StatusFear) > 0 {
		return true
	}
	if m.CDis <= fleeThreshold {
		return false
	}
	mLev := m.MoraleLevel()
	pVal := playerLevel*playerMaxHP + 4*playerHP
	mVal := mLev*m.MaxHP + 4*m.HP
	return pVal*m.MaxHP > mVal*playerMaxHP
}

// FindSafety implements find_safety: expanding rings out to radius 9,
// picking the farthest-from-player passable, flow-reachable, unwatched
// cell. ok is false if nothing qualifies.
func FindSafety(m *monster.Monster, c *cave.Cave) (ty, tx int, ok bool) {
	py, px := c.PlayerPos()
	playerWhen := c.When(py, px)

	bestDist := -1
	for radius := 1; radius < len(geometry.Rings); radius++ {
		for _, off := range geometry.Rings[radius] {
			ny, nx := m.FY+off.Y, m.FX+off.X
			if !c.InBounds(ny, nx) || !c.IsPassable(ny, nx) {
				continue
			}
			if c.Occupant(ny, nx) != 0 {
				continue
			}
			if c.When(ny, nx) < playerWhen {
				continue
			}
			if c.Cost(ny, nx) > c.Cost(m.FY, m.FX)+costRingSlack*radius {
				continue
			}
			if geometry.LOS(py, px, ny, nx, c.Blocks) {
				continue // must be out of player LOS
			}
			dist := geometry.Chebyshev(py, px, ny, nx)
			if dist > bestDist {
				bestDist = dist
				ty, tx, ok = ny, nx, true
			}
		}
	}
	return ty, tx, ok
}

// fearScore is get_fear_moves_aux's per-neighbour desirability function,
// clamped at zero.
func fearScore(distToDest, cost int) int {
	score := 5000/(distToDest+3) - 500/(cost+1)
	if score < 0 {
		return 0
	}
	return score
}

// RefineFearMove implements get_fear_moves_aux: among the monster's 8
// neighbours, pick the one maximizing fearScore against the destination
// cell chosen by FindSafety (or the reversed-heading fallback target).
func RefineFearMove(m *monster.Monster, c *cave.Cave, destY, destX int) (ty, tx int, ok bool) {
	best := -1
	for _, off := range geometry.Neighbors8 {
		ny, nx := m.FY+off.Y, m.FX+off.X
		if !c.InBounds(ny, nx) {
			continue
		}
		score := fearScore(geometry.Chebyshev(ny, nx, destY, destX), c.Cost(ny, nx))
		if score > best {
			best = score
			ty, tx, ok = ny, nx, true
		}
	}
	return ty, tx, ok
}

// ReverseHeading returns the target cell opposite the monster's last
// successful step, the fallback used when FindSafety finds nothing.
func ReverseHeading(m *monster.Monster) (ty, tx int, ok bool) {
	if m.LastDir == 0 {
		return 0, 0, false
	}
	dy, dx := delta(Direction(m.LastDir))
	return m.FY - dy, m.FX - dx, true
}
