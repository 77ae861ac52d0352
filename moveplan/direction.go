// Package moveplan computes the ordered 5-slot preferred-direction list a
// monster uses for its move this turn: flow-following, fear/flight,
// group-AI hide/ambush, and surround, falling through to whichever
// produces a target first. Grounded on
// original_source/src/monster/melee2.c's get_moves/get_moves_aux family.
package moveplan

import "github.com/duskvault/monsterai/collab"

// Direction is a keypad digit 1-9, excluding 5 (no move). This mirrors
// the original's roguelike-keyset direction encoding rather than
// reinventing an (dy,dx) pair type for the move list itself.
type Direction int

const (
	DirSW Direction = 1
	DirS  Direction = 2
	DirSE Direction = 3
	DirW  Direction = 4
	DirE  Direction = 6
	DirNW Direction = 7
	DirN  Direction = 8
	DirNE Direction = 9
)

// Delta returns the (dy,dx) unit offset for a keypad direction, exported
// for callers outside this package (the stepper) that walk mm[] slots.
func Delta(d Direction) (dy, dx int) {
	return delta(d)
}

// delta returns the (dy,dx) unit offset for a keypad direction.
func delta(d Direction) (dy, dx int) {
	switch d {
	case DirSW:
		return 1, -1
	case DirS:
		return 1, 0
	case DirSE:
		return 1, 1
	case DirW:
		return 0, -1
	case DirE:
		return 0, 1
	case DirNW:
		return -1, -1
	case DirN:
		return -1, 0
	case DirNE:
		return -1, 1
	}
	return 0, 0
}

// compassClockwise lists the 8 directions in clockwise order starting at
// north, the ring BuildMoves walks to find a primary direction's
// neighbours. This table is a reconstruction from the prose description
// of move selection (the original's ddx_ddd/ddy_ddd offset tables
// referenced by melee2.c were not present in the retrieved source), not
// a transcription.
var compassClockwise = [8]Direction{DirN, DirNE, DirE, DirSE, DirS, DirSW, DirW, DirNW}

func indexOf(d Direction) int {
	for i, c := range compassClockwise {
		if c == d {
			return i
		}
	}
	return 0
}

// primaryDirection picks the single best-matching compass direction for
// a desired (dy,dx) delta: a pure cardinal when one axis dominates the
// other by more than 2x ("ay>2ax or ax>2ay"), otherwise the diagonal
// matching both signs.
func primaryDirection(dy, dx int) Direction {
	ay, ax := abs(dy), abs(dx)

	switch {
	case ay > 2*ax:
		if dy < 0 {
			return DirN
		}
		return DirS
	case ax > 2*ay:
		if dx < 0 {
			return DirW
		}
		return DirE
	case dy < 0 && dx < 0:
		return DirNW
	case dy < 0 && dx > 0:
		return DirNE
	case dy > 0 && dx < 0:
		return DirSW
	case dy > 0 && dx > 0:
		return DirSE
	case dy < 0:
		return DirN
	case dy > 0:
		return DirS
	case dx < 0:
		return DirW
	default:
		return DirE
	}
}

// BuildMoves fills a 5-slot ordered direction list for a desired
// (dy,dx) delta: the primary direction, its two flanking neighbours
// (ordered by which axis dominates, ay>ax preferring the clockwise
// neighbour first), then the next two directions further round the
// compass. Keeping the flanking diagonal/cardinal pair adjacent to the
// primary prevents a "diamond" zig-zag when one axis strongly dominates.
func BuildMoves(dy, dx int) [5]Direction {
	primary := primaryDirection(dy, dx)
	idx := indexOf(primary)

	var mm [5]Direction
	mm[0] = primary

	if abs(dy) > abs(dx) {
		mm[1] = compassClockwise[(idx+1)%8]
		mm[2] = compassClockwise[(idx+7)%8]
		mm[3] = compassClockwise[(idx+2)%8]
		mm[4] = compassClockwise[(idx+6)%8]
	} else {
		mm[1] = compassClockwise[(idx+7)%8]
		mm[2] = compassClockwise[(idx+1)%8]
		mm[3] = compassClockwise[(idx+6)%8]
		mm[4] = compassClockwise[(idx+2)%8]
	}
	return mm
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// AllDirections lists the 8 keypad directions in the same order as
// geometry.Neighbors8, for the stagger (confused/RAND_25/RAND_50) move
// mode that picks among them uniformly rather than via BuildMoves.
var AllDirections = [8]Direction{DirNW, DirNE, DirSW, DirSE, DirN, DirS, DirW, DirE}

// RandomDirection picks one of the 8 keypad directions uniformly,
// implementing the "uniform random 8-neighbour" stagger mode of spec
// §4.4 step 8 / §4.6 step 7.
func RandomDirection(rng collab.RNG) (Direction, error) {
	i, err := rng.Randint0(len(AllDirections))
	if err != nil {
		return 0, err
	}
	return AllDirections[i], nil
}
