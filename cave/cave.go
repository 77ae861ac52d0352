// Package cave provides the dungeon-level grid: terrain features, the
// when/cost flow fields the external flow producer stamps, and the
// monster/player occupancy map.
package cave

import (
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/monster"
)

// Feature enumerates the terrain kinds the stepper and spell filter care
// about. The full tile catalogue (decorative floors, rubble variants,
// ...) belongs to the out-of-scope map generator; this is only the
// subset the stepper and filter branch on.
type Feature int

const (
	FeatureFloor Feature = iota
	FeaturePermWall
	FeatureWall     // diggable/destructible wall
	FeatureDoorOpen
	FeatureDoorClosed
	FeatureDoorSecret
	FeatureRubble
)

// DoorState tracks a closed door's lock power and whether it is known
// secret. Power is a saturating counter with a minimum of 1.
type DoorState struct {
	Locked   bool
	Power    int
	IsSecret bool
}

// Cave is the mutable grid for one dungeon level.
type Cave struct {
	H, W int

	features [][]Feature
	doors    map[geometry.Point]*DoorState
	glyph    map[geometry.Point]bool // glyph of warding present

	// when/cost are stamped by the external flow-field producer (spec
	// §1: "out of scope... the flow-field producer that stamps
	// when[y][x] and cost[y][x]"). This package only reads them.
	when [][]int
	cost [][]int

	// mIdx is the occupancy map: 0 empty, >0 monster index, <0 player.
	mIdx [][]int

	// objects is the per-cell object chain (spec §3: "object chains per
	// cell"). Item generation is out of scope (spec §1); this only
	// stores/iterates whatever the host has already placed.
	objects map[geometry.Point][]monster.Item

	playerY, playerX int
	playerWhen       int // when-field value at the player's own cell this turn
	turnStamp        int // monotone "current turn" value, compared against when[][]

	viewDirty bool
	flowDirty bool
}

// New builds an empty H x W cave, all floor, no occupants.
func New(h, w int) *Cave {
	c := &Cave{
		H:       h,
		W:       w,
		doors:   map[geometry.Point]*DoorState{},
		glyph:   map[geometry.Point]bool{},
		objects: map[geometry.Point][]monster.Item{},
	}
	c.features = make([][]Feature, h)
	c.when = make([][]int, h)
	c.cost = make([][]int, h)
	c.mIdx = make([][]int, h)
	for y := 0; y < h; y++ {
		c.features[y] = make([]Feature, w)
		c.when[y] = make([]int, w)
		c.cost[y] = make([]int, w)
		c.mIdx[y] = make([]int, w)
	}
	return c
}

// InBounds reports whether (y,x) is within the grid.
func (c *Cave) InBounds(y, x int) bool {
	return geometry.InBounds(y, x, c.H, c.W)
}

// Feature returns the terrain at (y,x).
func (c *Cave) Feature(y, x int) Feature {
	if !c.InBounds(y, x) {
		return FeaturePermWall
	}
	return c.features[y][x]
}

// SetFeature sets the terrain at (y,x).
func (c *Cave) SetFeature(y, x int, f Feature) {
	if c.InBounds(y, x) {
		c.features[y][x] = f
	}
}

// Door returns the door state at (y,x), or nil if there is none.
func (c *Cave) Door(y, x int) *DoorState {
	return c.doors[geometry.Point{Y: y, X: x}]
}

// SetDoor attaches door state to (y,x).
func (c *Cave) SetDoor(y, x int, d *DoorState) {
	c.doors[geometry.Point{Y: y, X: x}] = d
}

// RemoveDoor clears door state (e.g. after it is bashed/opened into floor).
func (c *Cave) RemoveDoor(y, x int) {
	delete(c.doors, geometry.Point{Y: y, X: x})
}

// HasGlyph reports whether a glyph of warding occupies (y,x).
func (c *Cave) HasGlyph(y, x int) bool {
	return c.glyph[geometry.Point{Y: y, X: x}]
}

// SetGlyph sets or clears the glyph of warding at (y,x).
func (c *Cave) SetGlyph(y, x int, present bool) {
	if present {
		c.glyph[geometry.Point{Y: y, X: x}] = true
	} else {
		delete(c.glyph, geometry.Point{Y: y, X: x})
	}
}

// When returns the flow-field timestamp at (y,x).
func (c *Cave) When(y, x int) int {
	if !c.InBounds(y, x) {
		return -1
	}
	return c.when[y][x]
}

// Cost returns the flow-field BFS distance at (y,x).
func (c *Cave) Cost(y, x int) int {
	if !c.InBounds(y, x) {
		return 1 << 30
	}
	return c.cost[y][x]
}

// SetFlow stamps the when/cost pair the external flow producer computed
// for (y,x). Exposed so the host's flow-field producer can write results
// this package then only reads.
func (c *Cave) SetFlow(y, x, when, cost int) {
	if c.InBounds(y, x) {
		c.when[y][x] = when
		c.cost[y][x] = cost
	}
}

// TurnStamp returns the cave's current monotone turn counter, compared
// against When() to detect stale flow regions (spec glossary: "when
// recording the turn it was stamped so stale regions are ignored").
func (c *Cave) TurnStamp() int { return c.turnStamp }

// SetTurnStamp advances the cave's turn counter.
func (c *Cave) SetTurnStamp(v int) { c.turnStamp = v }

// PlayerPos returns the player's current cell.
func (c *Cave) PlayerPos() (int, int) { return c.playerY, c.playerX }

// SetPlayerPos records the player's current cell (invariant 4: cdis must
// be re-derived from this at the start of each monster's turn).
func (c *Cave) SetPlayerPos(y, x int) { c.playerY, c.playerX = y, x }

// Occupant returns the occupancy value at (y,x): 0 empty, >0 monster
// index, <0 player.
func (c *Cave) Occupant(y, x int) int {
	if !c.InBounds(y, x) {
		return 0
	}
	return c.mIdx[y][x]
}

// SetOccupant writes the occupancy map. Spec invariant 7 requires the
// monster's (fy,fx) and mIdx to move together atomically; callers (the
// stepper) are responsible for updating both within one step.
func (c *Cave) SetOccupant(y, x, v int) {
	if c.InBounds(y, x) {
		c.mIdx[y][x] = v
	}
}

// Objects returns the object chain stamped on (y,x), nil if empty.
func (c *Cave) Objects(y, x int) []monster.Item {
	return c.objects[geometry.Point{Y: y, X: x}]
}

// PlaceObject appends an item to (y,x)'s object chain.
func (c *Cave) PlaceObject(y, x int, item monster.Item) {
	pt := geometry.Point{Y: y, X: x}
	c.objects[pt] = append(c.objects[pt], item)
}

// RemoveObject deletes the item at chain index i on (y,x) (e.g. once
// carried or destroyed by the stepper).
func (c *Cave) RemoveObject(y, x, i int) {
	pt := geometry.Point{Y: y, X: x}
	chain := c.objects[pt]
	if i < 0 || i >= len(chain) {
		return
	}
	chain = append(chain[:i], chain[i+1:]...)
	if len(chain) == 0 {
		delete(c.objects, pt)
	} else {
		c.objects[pt] = chain
	}
}

// IsPassable reports whether a cell's terrain alone (ignoring occupants)
// allows standing on it.
func (c *Cave) IsPassable(y, x int) bool {
	if !c.InBounds(y, x) {
		return false
	}
	switch c.features[y][x] {
	case FeatureFloor, FeatureDoorOpen:
		return true
	default:
		return false
	}
}

// MarkViewDirty flags that the player's field of view needs recomputation
// (step 8).
func (c *Cave) MarkViewDirty() { c.viewDirty = true }

// MarkFlowDirty flags that the when/cost flow fields need recomputation.
func (c *Cave) MarkFlowDirty() { c.flowDirty = true }

// ViewDirty reports and clears the view-dirty flag.
func (c *Cave) ViewDirty() bool {
	v := c.viewDirty
	c.viewDirty = false
	return v
}

// FlowDirty reports and clears the flow-dirty flag.
func (c *Cave) FlowDirty() bool {
	v := c.flowDirty
	c.flowDirty = false
	return v
}

// Blocks implements geometry.Blocks for this cave: a cell blocks line of
// sight if it is a wall/door (not floor/open door); occupants are not
// considered. Monsters don't block LOS through them for spell targeting
// purposes in the original, so only terrain is checked here; occupant
// blocking (for "clean shot" bolt gating) is handled by the caller via
// BlocksShot, which also checks occupants.
func (c *Cave) Blocks(y, x int) bool {
	switch c.Feature(y, x) {
	case FeatureFloor, FeatureDoorOpen:
		return false
	default:
		return true
	}
}

// BlocksShot reports whether (y,x) blocks a bolt: terrain blocks it, and
// so does any occupant ('s "clean straight-line projection...
// without intervening occupant").
func (c *Cave) BlocksShot(y, x int) bool {
	return c.Blocks(y, x) || c.Occupant(y, x) != 0
}
