// Package blow implements the melee-blow dispatcher (§4.5): hit check,
// protection-from-evil, damage roll, and a data-table effect dispatch,
// plus the §4.7 critical-severity mapping. Grounded on
// original_source/src/monster/melee2.c's make_attack_normal and
// rulebooks/dnd5e/combat/attack.go's AttackInput/AttackResult shape.
package blow

import (
	"context"

	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/dice"
	"github.com/duskvault/monsterai/lore"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/monsterflag"
	"github.com/duskvault/monsterai/race"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/rpgerr"
)

// blinkTeleportSlack is added to 2*MAX_SIGHT to get the teleport-away
// range used after a blink-flagged effect (steal gold/item).
const blinkTeleportSlack = 5

// methodAttrs is the parallel static table keyed by method enum that
// spec §9 calls for: does this method's miss produce a message, and
// does a landed hit from it cut/stun the target.
type methodAttrs struct {
	MissMessage bool
	Cut         bool
	Stun        bool
}

var methodTable = map[race.Method]methodAttrs{
	race.MethodHit:   {MissMessage: true},
	race.MethodTouch: {},
	race.MethodClaw:  {MissMessage: true, Cut: true, Stun: true},
	race.MethodBite:  {MissMessage: true, Cut: true},
	race.MethodSting: {MissMessage: true},
	race.MethodButt:  {MissMessage: true, Stun: true},
	race.MethodCrush: {MissMessage: true, Stun: true},
	race.MethodEngulf: {},
	race.MethodCrawl:  {},
	race.MethodGaze:   {},
	race.MethodKick:   {MissMessage: true, Stun: true},
	race.MethodPunch:  {MissMessage: true, Stun: true},
}

// Result is make_attack_normal's outcome.
type Result struct {
	Obvious bool // anything happened the player would notice
	Died    bool // the player died during this blow sequence
	DoBreak bool // a handler (SHATTER) displaced the player; stop the blow loop
}

// Dispatch runs a monster's full blow sequence against the player
// (make_attack_normal), applying each of the race's up to
// race.MaxBlows physical blows in order, stopping at the first empty
// slot or the first handler that sets DoBreak.
func Dispatch(ctx context.Context, m *monster.Monster, svc collab.Services, lt *lore.Table) (Result, error) {
	var result Result
	blinked := false

	for i := 0; i < race.MaxBlows; i++ {
		b := m.Race.Blows[i]
		if isEmptyBlow(b) {
			break
		}

		hit := true
		if b.Power > 0 {
			chance := b.Power + 3*m.Race.Level
			ac := svc.AC() + svc.ToHitAC()
			var err error
			hit, err = CheckHit(svc, chance, ac)
			if err != nil {
				return result, rpgerr.WrapCtx(ctx, "blow.Dispatch.hit_check", err)
			}
		}
		if !hit {
			if methodTable[b.Method].MissMessage {
				svc.Msg("%s misses you.", m.ID)
			}
			continue
		}

		repelled, err := protectionRepels(svc, m.Race)
		if err != nil {
			return result, rpgerr.WrapCtx(ctx, "blow.Dispatch.protection", err)
		}
		if repelled {
			svc.Msg("%s is repelled.", m.ID)
			continue
		}

		damage, err := dice.Damroll(rollerAdapter{svc}, b.Dice.Count, b.Dice.Size)
		if err != nil {
			return result, rpgerr.WrapCtx(ctx, "blow.Dispatch.damroll", err)
		}

		ec := &Context{
			Svc:     svc,
			Monster: m,
			Level:   m.Race.Level,
			Method:  b.Method,
			AC:      svc.AC() + svc.ToHitAC(),
			Damage:  damage,
		}
		handler, ok := effectTable[b.Effect]
		if !ok {
			core.ReportInvariantBreach("blow.Dispatch.effect_table", core.ErrEffectUnhandled)
		} else if err := handler(ctx, ec); err != nil {
			return result, rpgerr.WrapCtx(ctx, "blow.Dispatch.effect_handler", err)
		}

		if err := applyCutStun(svc, b.Method, b.Dice.Count, b.Dice.Size, damage); err != nil {
			return result, rpgerr.WrapCtx(ctx, "blow.Dispatch.cut_stun", err)
		}

		visible := m.MFlags.Has(monsterflag.View)
		if lt != nil && visible && (ec.Obvious || damage > 0) {
			lt.For(m.Race).IncBlow(i)
		}

		if ec.Blinked {
			blinked = true
		}
		if ec.Obvious {
			result.Obvious = true
		}
		if ec.Died {
			result.Died = true
		}
		if ec.DoBreak {
			result.DoBreak = true
			break
		}
	}

	if blinked {
		svc.TeleportAway(m, 2*core.MaxSight+blinkTeleportSlack)
		svc.Msg("There is a puff of smoke!")
	}

	if result.Died && lt != nil {
		lt.For(m.Race).IncDeath()
	}

	return result, nil
}

// isEmptyBlow reports whether a race.Blow slot is unset (the zero
// value), the signal spec §4.5 calls "stopping at the first empty
// method".
func isEmptyBlow(b race.Blow) bool {
	return b == race.Blow{}
}

// protectionRepels implements §4.5 step 2: the player's
// protection-from-evil repels an EVIL attacker of equal-or-lower level
// when randint0(100)+lev > 50, i.e. with probability (49+lev)/100 for a
// player level below 51.
func protectionRepels(svc collab.Services, r *race.Race) (bool, error) {
	if !svc.HasProtectionFromEvil() {
		return false, nil
	}
	if !r.HasFlag(raceflag.Evil) {
		return false, nil
	}
	if svc.Level() < r.Level {
		return false, nil
	}
	roll, err := svc.Randint0(100)
	if err != nil {
		return false, err
	}
	return roll+svc.Level() > 50, nil
}

// applyCutStun implements §4.5 step 5: if a method cuts and stuns, keep
// one at 50/50, then map the critical severity to a timed-status
// increment.
func applyCutStun(svc collab.Services, method race.Method, diceCount, diceSides, damage int) error {
	attrs := methodTable[method]
	cuts, stuns := attrs.Cut, attrs.Stun
	if cuts && stuns {
		keepCut, err := svc.OneIn(2)
		if err != nil {
			return err
		}
		cuts, stuns = keepCut, !keepCut
	}
	if !cuts && !stuns {
		return nil
	}

	sev, err := Severity(diceCount, diceSides, damage, svc)
	if err != nil {
		return err
	}
	if sev == 0 {
		return nil
	}

	if cuts {
		amt, err := cutAmount(sev, svc)
		if err != nil {
			return err
		}
		svc.IncTimed(statusCut, amt, true)
	}
	if stuns {
		amt, err := stunAmount(sev, svc)
		if err != nil {
			return err
		}
		svc.IncTimed(statusStun, amt, true)
	}
	return nil
}

// CheckHit implements check_hit/test_hit (spec §6's exposed entry
// point): 5% always-hit, 5% always-miss, otherwise the attacker's power
// competes against 3/4 of the defender's armour class.
func CheckHit(rng collab.RNG, chance, ac int) (bool, error) {
	roll, err := rng.Randint0(100)
	if err != nil {
		return false, err
	}
	if roll < 5 {
		return true, nil
	}
	if roll >= 95 {
		return false, nil
	}
	if chance <= 0 {
		return false, nil
	}
	against, err := rng.Randint0(chance)
	if err != nil {
		return false, err
	}
	return against >= (ac*3)/4, nil
}

// rollerAdapter satisfies dice.Roller using a collab.RNG's Roll/RollN,
// so Damroll (which wants the full Roller surface) can be driven by the
// same collab.Services a blow handler already has.
type rollerAdapter struct {
	rng collab.RNG
}

func (a rollerAdapter) Roll(size int) (int, error)           { return a.rng.Roll(size) }
func (a rollerAdapter) RollN(count, size int) ([]int, error) { return a.rng.RollN(count, size) }
func (a rollerAdapter) Randint0(n int) (int, error)          { return a.rng.Randint0(n) }
func (a rollerAdapter) OneIn(n int) (bool, error)             { return a.rng.OneIn(n) }
