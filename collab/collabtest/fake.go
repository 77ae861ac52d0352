// Package collabtest provides a lightweight, hand-configured fake
// implementation of collab.Services for use by other packages' tests.
// The hand-maintained MockServices in collab/mock exercises the
// go.uber.org/mock-generated shape for callers that want per-call
// expectations; this fake favors inline field configuration for the
// common case where tests just need fixed return values and a log of
// what was called.
package collabtest

import (
	"github.com/duskvault/monsterai/dice"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/spellflag"
)

// Fake is a configurable stand-in for collab.Services.
type Fake struct {
	Roller dice.Roller

	PosY, PosX int
	PLevel     int
	PHP        int
	PMaxHP     int
	PAC        int
	PToHitAC   int
	PGold      int

	Aggravate            bool
	ProtectionFromEvil   bool
	Transitioning        bool
	Save                 int
	DexBonus             int
	Noise_               int

	TakeHitDied bool
	Disenchanted bool
	StealableArtifact bool

	CastResult bool
	SquareHasMonster bool
	MultiplyResult bool
	EarthquakeDisplaced bool

	UnsetSpellsFn func(spells spellflag.Set, known uint64, r *race.Race) spellflag.Set

	Messages []string
	Bells    []string
	Disturbed []*monster.Monster
	Sounds   []string
	Swaps    [][2]*monster.Monster
	Deleted  []*monster.Monster
	Teleported []*monster.Monster
	Carried  []monster.Item
	AwareOf  []*monster.Monster
}

func (f *Fake) Position() (int, int)            { return f.PosY, f.PosX }
func (f *Fake) Level() int                      { return f.PLevel }
func (f *Fake) HP() int                         { return f.PHP }
func (f *Fake) MaxHP() int                      { return f.PMaxHP }
func (f *Fake) AC() int                         { return f.PAC }
func (f *Fake) ToHitAC() int                    { return f.PToHitAC }
func (f *Fake) Gold() int                       { return f.PGold }
func (f *Fake) HasAggravate() bool              { return f.Aggravate }
func (f *Fake) HasProtectionFromEvil() bool     { return f.ProtectionFromEvil }
func (f *Fake) IsTransitioning() bool           { return f.Transitioning }
func (f *Fake) SaveSkill() int                  { return f.Save }
func (f *Fake) DexSaveBonus() int               { return f.DexBonus }
func (f *Fake) Noise() int                      { return f.Noise_ }

func (f *Fake) TakeHit(damage int, source string) bool {
	return f.TakeHitDied
}
func (f *Fake) IncTimed(effect string, turns int, obvious bool) {}
func (f *Fake) DecStat(stat string, permanent bool) bool        { return false }
func (f *Fake) ExpLose(amount int, permanent bool)              {}
func (f *Fake) ApplyDisenchant(obvious bool) bool                { return f.Disenchanted }
func (f *Fake) InvenItemIncrease(slot string, delta int)         {}
func (f *Fake) InvenItemOptimize(slot string)                    {}
func (f *Fake) HasStealableArtifact() bool                       { return f.StealableArtifact }
func (f *Fake) RemoveGold(amount int)                            {}
func (f *Fake) DistributeCharges(itemSlot string, wielderGets int) {}

func (f *Fake) CastMonsterSpell(spell spellflag.Spell, m *monster.Monster, seen bool) bool {
	return f.CastResult
}

func (f *Fake) SquareMonster(y, x int) bool { return f.SquareHasMonster }
func (f *Fake) MonsterSwap(m1, m2 *monster.Monster) {
	f.Swaps = append(f.Swaps, [2]*monster.Monster{m1, m2})
}
func (f *Fake) MultiplyMonster(parent *monster.Monster) bool { return f.MultiplyResult }
func (f *Fake) TeleportAway(m *monster.Monster, rangeDist int) {
	f.Teleported = append(f.Teleported, m)
}
func (f *Fake) DeleteMonster(m *monster.Monster) {
	f.Deleted = append(f.Deleted, m)
}
func (f *Fake) MonsterCarry(m *monster.Monster, item monster.Item) {
	f.Carried = append(f.Carried, item)
}
func (f *Fake) Earthquake(centerY, centerX, radius int) bool { return f.EarthquakeDisplaced }

func (f *Fake) UnsetSpells(spells spellflag.Set, known uint64, r *race.Race) spellflag.Set {
	if f.UnsetSpellsFn != nil {
		return f.UnsetSpellsFn(spells, known, r)
	}
	return spells
}
func (f *Fake) BecomeAware(m *monster.Monster) {
	f.AwareOf = append(f.AwareOf, m)
}

func (f *Fake) Msg(format string, args ...any) {
	f.Messages = append(f.Messages, format)
}
func (f *Fake) MsgT(soundType string, format string, args ...any) {
	f.Messages = append(f.Messages, format)
}
func (f *Fake) Bell(reason string) {
	f.Bells = append(f.Bells, reason)
}
func (f *Fake) Disturb(m *monster.Monster) {
	f.Disturbed = append(f.Disturbed, m)
}
func (f *Fake) Sound(soundType string) {
	f.Sounds = append(f.Sounds, soundType)
}

func (f *Fake) Roll(size int) (int, error)            { return f.Roller.Roll(size) }
func (f *Fake) RollN(count, size int) ([]int, error)  { return f.Roller.RollN(count, size) }
func (f *Fake) Randint0(n int) (int, error)            { return f.Roller.Randint0(n) }
func (f *Fake) OneIn(n int) (bool, error)               { return f.Roller.OneIn(n) }
