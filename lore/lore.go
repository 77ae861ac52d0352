// Package lore provides the per-race mutable lore table: saturating
// counters and discovered-flag bookkeeping. Lore is written only by the
// process pass of a monster of that race.
package lore

import (
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/spellflag"
)

// MaxUChar and MaxShort mirror the original's saturation ceilings for
// the engine's two counter widths.
const (
	MaxUChar = 255
	MaxShort = 32767
)

// Lore is the mutable, saturating record of what's been observed about
// one Race.
type Lore struct {
	BlowCounts     [race.MaxBlows]int // saturates at MaxUChar
	CastsInnate    int                // saturates at MaxUChar
	CastsNonInnate int                // saturates at MaxUChar
	Deaths         int                // saturates at MaxShort
	Wakes          int                // saturates at MaxUChar
	Ignores        int                // saturates at MaxUChar

	DiscoveredFlags  raceflag.Set
	DiscoveredSpells spellflag.Set
}

func sat(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// IncBlow saturate-increments the counter for blow slot i.
func (l *Lore) IncBlow(i int) {
	if i < 0 || i >= race.MaxBlows {
		return
	}
	l.BlowCounts[i] = sat(l.BlowCounts[i]+1, MaxUChar)
}

// IncCast saturate-increments the innate or non-innate cast counter.
func (l *Lore) IncCast(innate bool) {
	if innate {
		l.CastsInnate = sat(l.CastsInnate+1, MaxUChar)
	} else {
		l.CastsNonInnate = sat(l.CastsNonInnate+1, MaxUChar)
	}
}

// IncDeath saturate-increments the death counter.
func (l *Lore) IncDeath() {
	l.Deaths = sat(l.Deaths+1, MaxShort)
}

// IncWake saturate-increments the wake-event counter.
func (l *Lore) IncWake() {
	l.Wakes = sat(l.Wakes+1, MaxUChar)
}

// IncIgnore saturate-increments the ignore-event counter (the monster
// noticed the player but failed its wake roll).
func (l *Lore) IncIgnore() {
	l.Ignores = sat(l.Ignores+1, MaxUChar)
}

// LearnFlag records that a racial flag has been observed by the player.
func (l *Lore) LearnFlag(f raceflag.Flag) {
	l.DiscoveredFlags = l.DiscoveredFlags.With(f)
}

// LearnSpell records that a spell has been observed cast (// "the lore's spell-flag set learns that spell").
func (l *Lore) LearnSpell(s spellflag.Spell) {
	l.DiscoveredSpells = l.DiscoveredSpells.With(s)
}

// Table indexes Lore by race identity (: "Lore is keyed by race
// identity").
type Table struct {
	byRace map[*race.Race]*Lore
}

// NewTable creates an empty lore table.
func NewTable() *Table {
	return &Table{byRace: map[*race.Race]*Lore{}}
}

// For returns the Lore for r, creating an empty entry on first use.
func (t *Table) For(r *race.Race) *Lore {
	l, ok := t.byRace[r]
	if !ok {
		l = &Lore{}
		t.byRace[r] = l
	}
	return l
}
