package moveplan

import (
	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/geometry"
)

// Surround picks a pseudo-random empty 8-neighbour of the player for a
// GROUP_AI monster to aim at when not yet adjacent (the group-surround
// tactic).
func Surround(c *cave.Cave, rng collab.RNG) (ty, tx int, ok bool, err error) {
	py, px := c.PlayerPos()

	var candidates []geometry.Point
	for _, off := range geometry.Neighbors8 {
		ny, nx := py+off.Y, px+off.X
		if c.IsPassable(ny, nx) && c.Occupant(ny, nx) == 0 {
			candidates = append(candidates, geometry.Point{Y: ny, X: nx})
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false, nil
	}
	i, err := rng.Randint0(len(candidates))
	if err != nil {
		return 0, 0, false, err
	}
	p := candidates[i]
	return p.Y, p.X, true, nil
}
