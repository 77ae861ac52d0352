// Package cast implements the spell cast gate, spell choice, and fail-rate
// roll. Grounded on original_source/src/monster/melee2.c's
// mon_cast_spell/make_attack_spell fail-rate computation, with the
// non-haste spell effect itself delegated to collab.Services.
package cast

import (
	"context"

	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/core"
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/lore"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/monsterflag"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/rpgerr"
	"github.com/duskvault/monsterai/spellfilter"
	"github.com/duskvault/monsterai/spellflag"
)

// hasteFastBonus is the FAST turns the inline HASTE special case grants,
// bypassing collab.SpellEffects.CastMonsterSpell entirely.
const hasteFastBonus = 50

// Attempt runs the full cast decision for one monster's turn: the gate,
// the chance roll, spell selection, the fail-rate roll, and dispatch.
// It reports whether a spell was attempted at all (gate passed and the
// chance roll hit), which is what the caller needs to know whether this
// turn's action was consumed.
func Attempt(ctx context.Context, m *monster.Monster, c *cave.Cave, svc collab.Services, lt *lore.Table, learnOption bool) (attempted bool, err error) {
	if !gateOpen(m, svc) {
		return false, nil
	}

	will, err := chance(svc, (m.Race.Freq.Innate+m.Race.Freq.Spell)/2)
	if err != nil {
		return false, rpgerr.WrapCtx(ctx, "cast.Attempt.chance", err)
	}
	if !will {
		return false, nil
	}

	py, px := c.PlayerPos()
	if geometry.Chebyshev(m.FY, m.FX, py, px) > core.MaxRange {
		return false, nil
	}
	if !geometry.Projectable(m.FY, m.FX, py, px, c.BlocksShot) {
		return false, nil
	}

	candidates, err := spellfilter.Filter(ctx, m, c, svc, svc, learnOption)
	if err != nil {
		return false, rpgerr.WrapCtx(ctx, "cast.Attempt.filter", err)
	}
	if candidates.Empty() {
		return false, nil
	}

	spell, err := choose(svc, candidates)
	if err != nil {
		return false, rpgerr.WrapCtx(ctx, "cast.Attempt.choose", err)
	}

	failed, err := failsToCast(svc, m, spell)
	if err != nil {
		return false, rpgerr.WrapCtx(ctx, "cast.Attempt.fail_rate", err)
	}
	if failed {
		svc.Msg("%s tries to cast a spell, but fails.", m.ID)
		return true, nil
	}

	seen := m.MFlags.Has(monsterflag.View)
	commit(svc, m, spell, seen)

	if seen && lt != nil {
		l := lt.For(m.Race)
		l.LearnSpell(spell)
		l.IncCast(spell.IsInnate())
	}

	return true, nil
}

// gateOpen reports whether casting is even considered this turn: the
// monster must not be confused or NICE, and the player not mid-transition.
func gateOpen(m *monster.Monster, svc collab.Services) bool {
	if m.Timed(monster.StatusConf) > 0 {
		return false
	}
	if m.MFlags.Has(monsterflag.Nice) {
		return false
	}
	if svc.IsTransitioning() {
		return false
	}
	return true
}

// choose picks a spell from the filtered set. STUPID races already have
// the full unfiltered set (spellfilter.Filter skips pruning for them) and
// choose uniformly over it just the same as any other race; the smarter
// prioritisation mentioned in the source is explicitly out of scope.
func choose(rng collab.RNG, set spellflag.Set) (spellflag.Spell, error) {
	var members []spellflag.Spell
	for s := spellflag.Spell(0); s < spellflag.Spell(spellflag.NumSpells); s++ {
		if set.Has(s) {
			members = append(members, s)
		}
	}
	if len(members) == 0 {
		return 0, nil
	}
	if len(members) == 1 {
		return members[0], nil
	}
	i, err := rng.Randint0(len(members))
	if err != nil {
		return 0, err
	}
	return members[i], nil
}

// failsToCast computes and rolls the fail rate: 25-(level+3)/4, +20 if
// FEAR>0, clamped to 0 if STUPID. Innate spells never fail.
func failsToCast(rng collab.RNG, m *monster.Monster, spell spellflag.Spell) (bool, error) {
	if spell.IsInnate() {
		return false, nil
	}
	if m.Race.HasFlag(raceflag.Stupid) {
		return false, nil
	}
	rate := 25 - (m.Race.Level+3)/4
	if m.Timed(monster.StatusFear) > 0 {
		rate += 20
	}
	if rate <= 0 {
		return false, nil
	}
	if rate >= 100 {
		return true, nil
	}
	roll, err := rng.Randint0(100)
	if err != nil {
		return false, err
	}
	return roll < rate, nil
}

// commit performs the spell's actual effect: HASTE is the inline special
// case, everything else is delegated to collab.SpellEffects.
func commit(svc collab.Services, m *monster.Monster, spell spellflag.Spell, seen bool) bool {
	if spell == spellflag.Haste {
		m.IncTimed(monster.StatusFast, hasteFastBonus)
		return true
	}
	return svc.CastMonsterSpell(spell, m, seen)
}

// chance reports true with probability p in 100.
func chance(rng collab.RNG, p int) (bool, error) {
	if p <= 0 {
		return false, nil
	}
	if p >= 100 {
		return true, nil
	}
	v, err := rng.Randint0(100)
	if err != nil {
		return false, err
	}
	return v < p, nil
}
