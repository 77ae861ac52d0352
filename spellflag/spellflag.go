// Package spellflag enumerates the spell-flag bitset a Race carries and
// the spell classes the filter (spellfilter) and cast decision (cast)
// reason about. Spell *effects* are out of scope here; this package
// only names which spell is which, and which classes it belongs to.
package spellflag

import "github.com/duskvault/monsterai/core"

// Spell is a single spell-flag bit. Innate spells (breaths, shrieks,
// racial abilities every member of the race always has) are enumerated
// before MinNonInnateSpell; everything from MinNonInnateSpell onward is
// a learned/prepared spell that can fail to cast.
type Spell int

const (
	// --- innate spells (never fail) ---
	Shriek Spell = iota
	ArrowLight
	BreathFire
	BreathCold
	BreathAcid

	// MinNonInnateSpell marks the boundary the original calls
	// MIN_NONINNATE_SPELL: spells at or above this id can fail and are
	// chosen by the non-stupid branch of spell selection.
	minNonInnateMarker

	// --- non-innate spells ---
	BoltFire
	BoltCold
	BoltAcid
	BoltElec
	Confuse
	Slow
	Hold
	Haste
	Heal
	Blink
	Teleport
	TeleTo
	TeleSelfTo
	DrainMana
	Scare
	SummonMonster
	SummonKin
	SummonUndead
	Hallucinate
	Hero
	Invisibility
	numSpells
)

// MinNonInnateSpell is the first spell id that can fail and is not
// always available, matching 's MIN_NONINNATE_SPELL constant.
const MinNonInnateSpell = minNonInnateMarker + 1

// NumSpells is the total number of enumerated spells.
const NumSpells = int(numSpells)

// IsInnate reports whether s is below MIN_NONINNATE_SPELL.
func (s Spell) IsInnate() bool {
	return s < MinNonInnateSpell
}

// Class is a spell-category bit, used by the filter's class-wide removals
// (step 7: "remove the entire BOLT class"/"SUMMON class") and
// the desperation override (step 8: "restrict... to HASTE|ANNOY|ESCAPE|
// HEAL|TACTIC|SUMMON").
type Class int

const (
	ClassBolt Class = iota
	ClassSummon
	ClassHaste
	ClassHeal
	ClassAnnoy
	ClassEscape
	ClassTactic
	ClassDrainMana
	ClassTeleTo
)

// ClassSet is a bitset of spell classes.
type ClassSet = core.FlagSet[Class]

var classTable = map[Spell]ClassSet{
	BoltFire:   core.NewFlagSet(ClassBolt),
	BoltCold:   core.NewFlagSet(ClassBolt),
	BoltAcid:   core.NewFlagSet(ClassBolt),
	BoltElec:   core.NewFlagSet(ClassBolt),
	Confuse:    core.NewFlagSet(ClassAnnoy),
	Slow:       core.NewFlagSet(ClassAnnoy),
	Hold:       core.NewFlagSet(ClassAnnoy),
	Haste:      core.NewFlagSet(ClassHaste, ClassTactic),
	Heal:       core.NewFlagSet(ClassHeal),
	Blink:      core.NewFlagSet(ClassEscape),
	Teleport:   core.NewFlagSet(ClassEscape),
	TeleTo:     core.NewFlagSet(ClassTeleTo, ClassTactic),
	TeleSelfTo: core.NewFlagSet(ClassTactic),
	DrainMana:  core.NewFlagSet(ClassDrainMana),
	Scare:      core.NewFlagSet(ClassAnnoy),
	SummonMonster: core.NewFlagSet(ClassSummon),
	SummonKin:     core.NewFlagSet(ClassSummon),
	SummonUndead:  core.NewFlagSet(ClassSummon),
	Hallucinate:   core.NewFlagSet(ClassAnnoy),
	Hero:          core.NewFlagSet(ClassTactic),
	Invisibility:  core.NewFlagSet(ClassEscape),
}

// Classes returns the class membership bitset for a spell. Innate spells
// and any spell not listed above have no class membership.
func Classes(s Spell) ClassSet {
	return classTable[s]
}

// DesperationClasses is the union of classes a SMART, badly-hurt monster
// restricts itself to per step 8.
var DesperationClasses = core.NewFlagSet(
	ClassHaste, ClassAnnoy, ClassEscape, ClassHeal, ClassTactic, ClassSummon,
)

// Set is a bitset of spells, the engine's representation of a Race's
// spell-flag set and of a monster's filtered castable set (,
// §4.1).
type Set = core.FlagSet[Spell]

// NewSet builds a Set from the given spells.
func NewSet(spells ...Spell) Set {
	return core.NewFlagSet(spells...)
}

// InClass returns the subset of s whose spells have class membership c.
func InClass(s Set, c Class) Set {
	var out Set
	for sp := Spell(0); sp < Spell(NumSpells); sp++ {
		if sp == minNonInnateMarker {
			continue
		}
		if s.Has(sp) && Classes(sp).Has(c) {
			out = out.With(sp)
		}
	}
	return out
}

// AnyInClass reports whether s has any spell belonging to class c.
func AnyInClass(s Set, c Class) bool {
	return !InClass(s, c).Empty()
}

// RemoveClass returns s with every spell belonging to class c removed.
func RemoveClass(s Set, c Class) Set {
	out := s
	for sp := Spell(0); sp < Spell(NumSpells); sp++ {
		if sp == minNonInnateMarker {
			continue
		}
		if s.Has(sp) && Classes(sp).Has(c) {
			out = out.Without(sp)
		}
	}
	return out
}

// RestrictToClasses returns the subset of s whose spells belong to any
// class in classes (step 8's desperation restriction).
func RestrictToClasses(s Set, classes ClassSet) Set {
	var out Set
	for sp := Spell(0); sp < Spell(NumSpells); sp++ {
		if sp == minNonInnateMarker {
			continue
		}
		if s.Has(sp) && !Classes(sp).Intersect(classes).Empty() {
			out = out.With(sp)
		}
	}
	return out
}
