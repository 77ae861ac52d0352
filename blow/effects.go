// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package blow

import (
	"context"

	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/race"
)

// Context is the mutable per-blow state every effect handler shares, per
// spec §4.5's "mutable context {player, monster, level, method, ac,
// damage, obvious, blinked, do_break}".
type Context struct {
	Svc     collab.Services
	Monster *monster.Monster
	Level   int // the attacking race's level
	Method  race.Method
	AC      int
	Damage  int

	Obvious bool
	Blinked bool
	DoBreak bool
	Died    bool
}

// Handler applies one effect's side effects given the rolled damage.
type Handler func(ctx context.Context, ec *Context) error

// timed status names, passed through collab.PlayerOps.IncTimed's opaque
// "effect" string (the host owns the concrete timed-status table).
const (
	statusPoison      = "POISON"
	statusBlind       = "BLIND"
	statusConfuse     = "CONFUSE"
	statusAfraid      = "AFRAID"
	statusParalyze    = "PARALYZE"
	statusHallucinate = "HALLUCINATE"
	statusCut         = "CUT"
	statusStun        = "STUN"
)

const (
	statStr = "STR"
	statDex = "DEX"
	statCon = "CON"
	statInt = "INT"
	statWis = "WIS"
)

// effectTable maps each race.Effect to its handler. A tagged
// enumeration with per-variant handler data (spec §9 "Polymorphism"),
// not a class hierarchy.
var effectTable = map[race.Effect]Handler{
	race.EffectNone:          handleNone,
	race.EffectHurt:          handleHurt,
	race.EffectPoison:        handlePoison,
	race.EffectDisenchant:    handleDisenchant,
	race.EffectDrainCharges:  handleDrainCharges,
	race.EffectStealGold:     handleStealGold,
	race.EffectStealItem:     handleStealItem,
	race.EffectEatFood:       handleEatFood,
	race.EffectDrainLight:    handleDrainLight,
	race.EffectAcid:          handleElemental("ACID"),
	race.EffectElecDamage:    handleElemental("ELEC"),
	race.EffectFireDamage:    handleElemental("FIRE"),
	race.EffectColdDamage:    handleElemental("COLD"),
	race.EffectBlind:         handleTimedDamage(statusBlind, 10, 20),
	race.EffectConfuse:       handleTimedDamage(statusConfuse, 3, 4),
	race.EffectTerrify:       handleTimedDamage(statusAfraid, 3, 4),
	race.EffectParalyze:      handleTimedDamage(statusParalyze, 3, 4),
	race.EffectDrainStr:      handleDrainStat(statStr),
	race.EffectDrainDex:      handleDrainStat(statDex),
	race.EffectDrainCon:      handleDrainStat(statCon),
	race.EffectDrainInt:      handleDrainStat(statInt),
	race.EffectDrainWis:      handleDrainStat(statWis),
	race.EffectLoseAll:       handleLoseAll,
	race.EffectShatter:       handleShatter,
	race.EffectExpDrain10:    handleExpDrain(10),
	race.EffectExpDrain20:    handleExpDrain(20),
	race.EffectExpDrain40:    handleExpDrain(40),
	race.EffectExpDrain80:    handleExpDrain(80),
	race.EffectHallucinate:   handleTimedDamage(statusHallucinate, 10, 20),
}

func handleNone(_ context.Context, ec *Context) error {
	ec.Died = ec.Svc.TakeHit(ec.Damage, "none")
	return nil
}

func handleHurt(_ context.Context, ec *Context) error {
	ec.Died = ec.Svc.TakeHit(armorReduced(ec.Damage, ec.AC), "hurt")
	ec.Obvious = ec.Damage > 0
	return nil
}

// armorReduced is the "pure hurt" armour-adjustment the original's
// RBE_HURT applies on top of the hit roll already having beaten AC.
func armorReduced(damage, ac int) int {
	reduced := damage - ac/10
	if reduced < 1 && damage > 0 {
		reduced = 1
	}
	return reduced
}

func handlePoison(_ context.Context, ec *Context) error {
	ec.Died = ec.Svc.TakeHit(ec.Damage, "poison")
	saved, err := savingThrow(ec.Svc)
	if err != nil {
		return err
	}
	if !saved {
		ec.Svc.IncTimed(statusPoison, ec.Level+3, ec.Damage > 0)
	}
	ec.Obvious = ec.Damage > 0
	return nil
}

func handleDisenchant(_ context.Context, ec *Context) error {
	ec.Obvious = ec.Svc.ApplyDisenchant(ec.Damage > 0)
	return nil
}

func handleDrainCharges(_ context.Context, ec *Context) error {
	ec.Svc.DistributeCharges("wand_or_staff", ec.Damage)
	if ec.Damage > 0 {
		ec.Monster.HP += ec.Damage
		if ec.Monster.HP > ec.Monster.MaxHP {
			ec.Monster.HP = ec.Monster.MaxHP
		}
	}
	ec.Obvious = true
	return nil
}

func handleStealGold(_ context.Context, ec *Context) error {
	saved, err := stealSave(ec.Svc)
	if err != nil {
		return err
	}
	if saved {
		return nil
	}
	amount := ec.Svc.Gold()
	if amount <= 0 {
		return nil
	}
	ec.Svc.RemoveGold(amount)
	ec.Svc.MonsterCarry(ec.Monster, monster.Item{
		ID: "gold", IsGold: true, GoldAmount: amount, Origin: "stolen",
	})
	ec.Obvious = true
	ec.Blinked = true
	return nil
}

func handleStealItem(_ context.Context, ec *Context) error {
	saved, err := stealSave(ec.Svc)
	if err != nil {
		return err
	}
	if saved {
		return nil
	}
	if ec.Svc.HasStealableArtifact() {
		// STEAL_ITEM skips artifacts rather than carrying them off.
		return nil
	}
	ec.Svc.InvenItemOptimize("inventory")
	ec.Obvious = true
	ec.Blinked = true
	return nil
}

func handleEatFood(_ context.Context, ec *Context) error {
	ec.Svc.InvenItemIncrease("food", -1)
	ec.Svc.InvenItemOptimize("food")
	ec.Obvious = true
	return nil
}

func handleDrainLight(_ context.Context, ec *Context) error {
	amt := ec.Damage
	if amt <= 0 {
		amt = 1
	}
	ec.Svc.InvenItemIncrease("light_fuel", -amt)
	ec.Obvious = true
	return nil
}

// handleElemental builds an effect handler for a pure elemental damage
// type: the "larger of armour-adjusted physical and element-resisted
// magical damage" toolkit piece simplifies, for this engine, to armour-
// adjusted raw damage, since neither resistance lookup nor the elemental
// side-table lives in collab.Player (out of scope per spec §1's item/
// equipment boundary); documented as a deliberate simplification.
func handleElemental(tag string) Handler {
	return func(_ context.Context, ec *Context) error {
		ec.Died = ec.Svc.TakeHit(armorReduced(ec.Damage, ec.AC), tag)
		ec.Obvious = ec.Damage > 0
		return nil
	}
}

// handleTimedDamage builds a handler for "apply damage, optional saving
// throw, then increment a timer" effects (blind/confuse/terrify/
// paralyze/hallucinate), per spec §4.5's shared "timed status" toolkit
// piece.
func handleTimedDamage(status string, base, variance int) Handler {
	return func(_ context.Context, ec *Context) error {
		ec.Died = ec.Svc.TakeHit(ec.Damage, status)
		saved, err := savingThrow(ec.Svc)
		if err != nil {
			return err
		}
		if !saved {
			ec.Svc.IncTimed(status, base, ec.Damage > 0)
		}
		ec.Obvious = ec.Damage > 0
		return nil
	}
}

// handleDrainStat builds a stat-drain handler, per spec's "five stat
// drains plus LOSE_ALL" list.
func handleDrainStat(stat string) Handler {
	return func(_ context.Context, ec *Context) error {
		ec.Died = ec.Svc.TakeHit(ec.Damage, "drain_"+stat)
		ec.Obvious = ec.Svc.DecStat(stat, false)
		return nil
	}
}

func handleLoseAll(_ context.Context, ec *Context) error {
	ec.Died = ec.Svc.TakeHit(ec.Damage, "drain_all")
	for _, stat := range []string{statStr, statDex, statCon, statInt, statWis} {
		if ec.Svc.DecStat(stat, false) {
			ec.Obvious = true
		}
	}
	return nil
}

// shatterEarthquakeRadius is the fixed radius §4.5 names for the
// SHATTER effect.
const shatterEarthquakeRadius = 8

func handleShatter(_ context.Context, ec *Context) error {
	ec.Died = ec.Svc.TakeHit(armorReduced(ec.Damage, ec.AC), "shatter")
	displaced := ec.Svc.Earthquake(ec.Monster.FY, ec.Monster.FX, shatterEarthquakeRadius)
	ec.Obvious = true
	if displaced {
		ec.DoBreak = true
	}
	return nil
}

// handleExpDrain builds an experience-drain handler at one of the four
// fixed magnitudes (10/20/40/80), multiplied by core.MonDrainLife as the
// original's drain-life multiplier. HOLD_LIFE resist semantics are a
// player-equipment concern this engine has no accessor for (out of
// scope per spec §1); the host's PlayerOps.ExpLose implementation is
// where that resist check actually lives.
func handleExpDrain(magnitude int) Handler {
	return func(_ context.Context, ec *Context) error {
		amount := magnitude * core.MonDrainLife
		ec.Svc.ExpLose(amount, false)
		ec.Obvious = true
		return nil
	}
}

// savingThrow rolls the player's SAVE skill against a flat percentile,
// per spec's "optional saving throw via p.skills[SAVE]".
func savingThrow(svc collab.Services) (bool, error) {
	roll, err := svc.Randint0(100)
	if err != nil {
		return false, err
	}
	return roll < svc.SaveSkill(), nil
}

// stealSave rolls the player's dex-save bonus plus level against a flat
// percentile, per the gold-steal/item-steal scenario seeds' "dex save
// failing" framing.
func stealSave(svc collab.Services) (bool, error) {
	roll, err := svc.Randint0(100)
	if err != nil {
		return false, err
	}
	return roll < svc.DexSaveBonus()+svc.Level(), nil
}
