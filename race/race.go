// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package race provides the immutable Race template shared by every
// monster instance of that kind. A Race is written as a plain struct
// literal; the package has no config type and no per-race constructors.
package race

import (
	"github.com/duskvault/monsterai/dice"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/spellflag"
)

// Method is the physical attack verb a blow uses (claw, bite, punch, ...).
// The attribute table (cuts? stuns? has a miss message?) lives in
// package blow, keyed by Method, mirroring the original's parallel
// static table keyed by method enum.
type Method int

const (
	MethodHit Method = iota
	MethodTouch
	MethodClaw
	MethodBite
	MethodSting
	MethodButt
	MethodCrush
	MethodEngulf
	MethodCrawl
	MethodGaze
	MethodKick
	MethodPunch
)

// Effect is the blow's side-effect id, dispatched by package blow's
// effect table: a tagged enumeration with per-variant handler data.
type Effect int

const (
	EffectNone Effect = iota
	EffectHurt
	EffectPoison
	EffectDisenchant
	EffectDrainCharges
	EffectStealGold
	EffectStealItem
	EffectEatFood
	EffectDrainLight
	EffectAcid
	EffectElecDamage
	EffectFireDamage
	EffectColdDamage
	EffectBlind
	EffectConfuse
	EffectTerrify
	EffectParalyze
	EffectDrainStr
	EffectDrainDex
	EffectDrainCon
	EffectDrainInt
	EffectDrainWis
	EffectLoseAll
	EffectShatter
	EffectExpDrain10
	EffectExpDrain20
	EffectExpDrain40
	EffectExpDrain80
	EffectHallucinate
)

// Blow is one of a race's up to four physical attacks.
type Blow struct {
	Method Method
	Effect Effect
	Dice   dice.Spec // zero value (Count==0 || Size==0) means no damage roll
	Power  int       // hit-check "power" term; 0 means the blow never misses
}

// SpellFreq is the (innate, spell) cast-chance-per-100 pair, named after
// the original's freq_innate/freq_spell fields.
type SpellFreq struct {
	Innate int
	Spell  int
}

// MaxBlows is the fixed slot count, named after the original's
// MONSTER_BLOW_MAX.
const MaxBlows = 4

// Race is the immutable per-kind template. All fields are set once at
// load and never mutated afterward.
type Race struct {
	Name  string
	Level int
	AAF   int // area-of-awareness radius
	MaxHP dice.Spec
	MExp  int // strength proxy for comparisons (mon_will_run, KILL_BODY)

	// VulnFlags is the race's own damage-vulnerability bitset (what it is
	// a slay-weapon *target* of: animal/evil/undead/dragon/... kind
	// bits), distinct from Flags' behavioral bits. Checked against an
	// object's SlayFlags by the stepper's pickup-eligibility test.
	VulnFlags uint64

	Blows [MaxBlows]Blow

	Freq       SpellFreq
	SpellFlags spellflag.Set
	Flags      raceflag.Set
}

// HasFlag reports whether the race carries racial flag f.
func (r *Race) HasFlag(f raceflag.Flag) bool {
	return r.Flags.Has(f)
}
