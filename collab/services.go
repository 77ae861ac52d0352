// Package collab defines the narrow interfaces the engine consumes for
// everything left to the host: the player model, spell effects,
// geometry/mutation primitives, smart-learn hooks, messaging, and RNG
// (per-race lore lives in package lore, not here), following a consistent
// "consume via interface, implement in host/rulebook" split.
package collab

import (
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/spellflag"
)

// Player is the minimal read/write surface the engine needs from the
// host's player model.
type Player interface {
	Position() (y, x int)
	Level() int
	HP() int
	MaxHP() int
	AC() int
	ToHitAC() int // to_a: bonus-to-AC term added on top of AC()
	Gold() int

	HasAggravate() bool
	HasProtectionFromEvil() bool
	IsTransitioning() bool // mid-level-transition; casting is gated off

	SaveSkill() int // p.skills[SAVE]
	DexSaveBonus() int

	Noise() int // ambient noise level used by the sleep/wake roll
}

// PlayerOps is every host-side player mutation the blow dispatcher and
// spell/effect plumbing may need to invoke, mirroring the original's
// take_hit/player_inc_timed/do_dec_stat/apply_disenchant/... list.
type PlayerOps interface {
	TakeHit(damage int, source string) (died bool)
	IncTimed(effect string, turns int, obvious bool)
	DecStat(stat string, permanent bool) (obvious bool)
	ExpLose(amount int, permanent bool)
	ApplyDisenchant(obvious bool) bool
	InvenItemIncrease(slot string, delta int)
	InvenItemOptimize(slot string)
	// HasStealableArtifact reports whether the item a steal-item blow
	// would otherwise take is an artifact; STEAL_ITEM skips artifacts
	// rather than carrying them off.
	HasStealableArtifact() bool
	RemoveGold(amount int)
	DistributeCharges(itemSlot string, wielderGets int)
}

// SpellEffects invokes a monster spell's actual game effect; everything
// except the HASTE special case (handled inline by the cast decision) is
// delegated here (do_mon_spell).
type SpellEffects interface {
	CastMonsterSpell(spell spellflag.Spell, m *monster.Monster, seenByPlayer bool) (obvious bool)
}

// Geometry bundles the host-side geometry/mutation primitives the
// engine calls out to: square predicates, monster_swap,
// multiply_monster, teleport_away, delete_monster, monster_carry,
// earthquake. There is no object-deletion (delete_object_idx) method.
type Geometry interface {
	SquareMonster(y, x int) bool // true if a monster occupies (y,x)
	MonsterSwap(m1, m2 *monster.Monster)
	MultiplyMonster(parent *monster.Monster) (spawned bool)
	TeleportAway(m *monster.Monster, rangeDist int)
	DeleteMonster(m *monster.Monster)
	MonsterCarry(m *monster.Monster, item monster.Item)
	Earthquake(centerY, centerX, radius int) (playerDisplaced bool)
}

// Learning covers two pieces of the original's smart-learn bookkeeping:
// unset_spells and become_aware. monster_learn_resists,
// update_smart_learn, get_lore and react_to_slay have no method here.
type Learning interface {
	// UnsetSpells removes spells blocked by the given known player
	// flags, keyed by race, mirroring the original's unset_spells table.
	UnsetSpells(spells spellflag.Set, knownFlags uint64, r *race.Race) spellflag.Set

	BecomeAware(m *monster.Monster)
}

// Narrator is the messaging/UI seam: msg/msgt/bell/disturb/sound. Every
// engine-side "observable event" call goes through here instead of a
// concrete UI dependency.
type Narrator interface {
	Msg(format string, args ...any)
	MsgT(soundType string, format string, args ...any)
	Bell(reason string)
	Disturb(m *monster.Monster)
	Sound(soundType string)
}

// RNG is re-exported here (rather than importing package dice directly
// into every consumer) so collab.Services can be mocked as one unit; see
// package dice for the concrete Roller implementations.
type RNG interface {
	Roll(size int) (int, error)
	RollN(count, size int) ([]int, error)
	Randint0(n int) (int, error)
	OneIn(n int) (bool, error) // one_in_(n): true with probability 1/n
}

// Services bundles every external collaborator the turn engine needs.
// Hosts implement this once (typically backed by their own game state)
// and pass it into turn.Process/turn.Scheduler.
//
//go:generate mockgen -destination=mock/mock_services.go -package=mock_collab github.com/duskvault/monsterai/collab Services
type Services interface {
	Player
	PlayerOps
	SpellEffects
	Geometry
	Learning
	Narrator
	RNG
}
