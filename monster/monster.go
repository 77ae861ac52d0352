// Package monster provides the live monster instance on the cave grid:
// identity, hp/maxhp, a timed-status map, flags, and held items, using
// the fixed roguelike status enumeration this engine needs instead of
// open-ended condition names.
package monster

import (
	"github.com/google/uuid"

	"github.com/duskvault/monsterai/monsterflag"
	"github.com/duskvault/monsterai/race"
)

// Status is one of the fixed timed-status keys a monster tracks.
type Status int

const (
	StatusSleep Status = iota
	StatusFast
	StatusSlow
	StatusStun
	StatusConf
	StatusFear
	numStatuses
)

// Item is a minimal stand-in for a held object. Full object semantics
// (inventory stacking, identification) are out of scope; the blow
// dispatcher and stepper only need enough to decide pickup/steal
// eligibility and to stamp stolen-gold provenance.
type Item struct {
	ID         string
	IsGold     bool
	GoldAmount int
	IsArtifact bool
	SlayFlags  uint64 // bitset of flags a monster is vulnerable to
	Origin     string // e.g. "stolen" once stamped by a steal effect
}

// Monster is a live instance of a Race on the cave grid.
type Monster struct {
	ID string

	FY, FX int // position

	HP, MaxHP int

	timed [numStatuses]int

	// CDis is the cached Chebyshev distance to the player, re-derived at
	// the start of each monster's turn (invariant 4).
	CDis int

	Energy int

	Race *race.Race

	MFlags monsterflag.Set

	Unaware bool // mimicking a floor object

	Smart       uint64 // learned player immunities/resistances (SM_* bits)
	KnownPFlags uint64 // learned player object flags

	Held []Item

	// LastDir is the keypad direction (1-9, excluding 5) of the last
	// successful step this monster took, 0 if it has never moved. The
	// fear-flight fallback ("reverse current heading") reads this when
	// find_safety turns up nothing.
	LastDir int

	// instanceIndex is the monster's position in the host's monster
	// array, needed only for the m_lev "morale" term (Open
	// Question: monster_index & 8). Set via SetIndex by the scheduler.
	instanceIndex int
}

// New creates a monster instance of the given race at (fy,fx), stamping
// a fresh uuid as its ID. Satisfies core.Entity via GetID/GetType so
// collaborator interfaces can refer to a spawned monster without
// importing this package.
func New(r *race.Race, fy, fx int) *Monster {
	return &Monster{
		ID:   uuid.New().String(),
		FY:   fy,
		FX:   fx,
		Race: r,
	}
}

// GetID implements core.Entity.
func (m *Monster) GetID() string { return m.ID }

// GetType implements core.Entity.
func (m *Monster) GetType() string { return "monster" }

// Timed returns the remaining turns of status s.
func (m *Monster) Timed(s Status) int {
	return m.timed[s]
}

// SetTimed sets the remaining turns of status s to v, clamped to >= 0
// (invariant 5: "they never go negative").
func (m *Monster) SetTimed(s Status, v int) {
	if v < 0 {
		v = 0
	}
	m.timed[s] = v
}

// DecTimed decrements status s by n, floored at 0, and returns the new
// value.
func (m *Monster) DecTimed(s Status, n int) int {
	v := m.timed[s] - n
	if v < 0 {
		v = 0
	}
	m.timed[s] = v
	return v
}

// IncTimed increments status s by n (invariant 5: only spell/blow
// handlers may increment).
func (m *Monster) IncTimed(s Status, n int) {
	m.timed[s] += n
}

// IsAlive reports whether the monster still has hit points.
func (m *Monster) IsAlive() bool {
	return m.HP > 0
}

// SetIndex records the monster's position in the host's monster array.
func (m *Monster) SetIndex(i int) { m.instanceIndex = i }

// Index returns the monster's position in the host's monster array.
func (m *Monster) Index() int { return m.instanceIndex }

// MoraleLevel returns the "effective level" used by mon_will_run,
// m_lev = race.level + (monster_index & 8) + 25. Spec §9 flags the
// `& 8` term as a suspected-quirk-but-preserved constant; it is kept
// verbatim rather than "fixed".
func (m *Monster) MoraleLevel() int {
	return m.Race.Level + (m.instanceIndex & 8) + 25
}
