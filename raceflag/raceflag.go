// Package raceflag enumerates the racial flags a Race template carries.
package raceflag

import "github.com/duskvault/monsterai/core"

// Flag is a single racial flag bit.
type Flag int

// The exhaustive set of racial flags this engine reasons about.
const (
	Stupid Flag = iota
	Smart
	GroupAI
	PassWall
	KillWall
	NeverBlow
	NeverMove
	Multiply
	Rand25
	Rand50
	OpenDoor
	BashDoor
	TakeItem
	KillItem
	KillBody
	MoveBody
	HasLight
	Evil
)

// Set is a bitset of racial flags.
type Set = core.FlagSet[Flag]

// NewSet builds a Set from the given flags.
func NewSet(flags ...Flag) Set {
	return core.NewFlagSet(flags...)
}
