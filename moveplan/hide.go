package moveplan

import (
	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/raceflag"
)

// roomThreshold is the passable-or-room neighbour count below which the
// player is considered "cornered enough" to be worth ambushing.
const roomThreshold = 7

// ShouldHide reports whether the hide/ambush branch (find_hiding) should
// be attempted this turn: GROUP_AI, no wall-phasing, the player boxed
// into a tight spot, and the player not critically wounded (an easy
// kill is worth rushing, not ambushing).
func ShouldHide(m *monster.Monster, c *cave.Cave, playerHP, playerMaxHP int) bool {
	if !m.Race.HasFlag(raceflag.GroupAI) {
		return false
	}
	if m.Race.HasFlag(raceflag.PassWall) {
		return false
	}
	if playerHP*2 <= playerMaxHP {
		return false
	}
	py, px := c.PlayerPos()
	open := 0
	for _, off := range geometry.Neighbors8 {
		if c.IsPassable(py+off.Y, px+off.X) {
			open++
		}
	}
	return open < roomThreshold
}

// FindHiding implements find_hiding: the nearest cell, no closer than
// 3*cdis/4+2, that is out of the player's line of sight yet has a clean
// shot back at the player.
func FindHiding(m *monster.Monster, c *cave.Cave) (ty, tx int, ok bool) {
	py, px := c.PlayerPos()
	minDist := 3*m.CDis/4 + 2

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
			dist := geometry.Chebyshev(py, px, ny, nx)
			if dist < minDist {
				continue
			}
			if geometry.LOS(py, px, ny, nx, c.Blocks) {
				continue
			}
			if !geometry.Projectable(ny, nx, py, px, c.BlocksShot) {
				continue
			}
			if bestDist == -1 || dist < bestDist {
				bestDist = dist
				ty, tx, ok = ny, nx, true
			}
		}
	}
	return ty, tx, ok
}
