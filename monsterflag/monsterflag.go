// Package monsterflag enumerates the per-instance mflag bits this engine
// needs: NICE (skip spells for one player turn) and VIEW (visible to
// player this turn). The original's extra save-compatibility/debug bits
// are trimmed since this engine has no save/load layer to stay
// byte-compatible with.
package monsterflag

import "github.com/duskvault/monsterai/core"

// Flag is a single mflag bit.
type Flag int

const (
	// Nice suppresses spellcasting for one player turn after the monster
	// first becomes visible (politeness toward a just-woken player).
	Nice Flag = iota
	// View marks the monster as visible to the player this turn.
	View
)

// Set is a bitset of mflag bits.
type Set = core.FlagSet[Flag]

// NewSet builds a Set from the given flags.
func NewSet(flags ...Flag) Set {
	return core.NewFlagSet(flags...)
}
