// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package spellfilter builds the per-monster castable spell set from
// racial flags, current status, and learned player resists. Grounded on
// the original's remove_bad_spells, reimplemented as a fixed sequence of
// pruning steps in one function, applied to a working copy of the race's
// spellflag.Set.
package spellfilter

import (
	"context"

	"github.com/duskvault/monsterai/cave"
	"github.com/duskvault/monsterai/collab"
	"github.com/duskvault/monsterai/geometry"
	"github.com/duskvault/monsterai/monster"
	"github.com/duskvault/monsterai/raceflag"
	"github.com/duskvault/monsterai/rpgerr"
	"github.com/duskvault/monsterai/spellflag"
)

// summonFootprintRadius is the Chebyshev radius of the summon-space check;
// under Chebyshev distance a radius-2 box and a radius-2 "circle" coincide.
const summonFootprintRadius = 2

// imMana is the smart-learn bit for mana immunity. The full catalogue of
// learnable player immunities/resists lives with the host (collab.Learning
// owns unset_spells); the filter only needs this one bit directly since
// DRAIN_MANA removal is spelled out in full here rather than delegated.
const imMana = 1 << 0

// Filter produces the subset of m.Race.SpellFlags that is sensible to
// attempt this turn. learnOption mirrors the "learn" game option: when
// false, step 5 (known_pflags wipe and unset_spells pruning) is skipped
// entirely.
func Filter(ctx context.Context, m *monster.Monster, c *cave.Cave, rng collab.RNG, learner collab.Learning, learnOption bool) (spellflag.Set, error) {
	set := m.Race.SpellFlags

	if m.Race.HasFlag(raceflag.Stupid) {
		return set, nil
	}

	if m.HP == m.MaxHP {
		set = set.Without(spellflag.Heal)
	}
	if m.Timed(monster.StatusFast) > 10 {
		set = set.Without(spellflag.Haste)
	}
	if m.CDis == 1 {
		set = set.Without(spellflag.TeleTo)
	}

	if learnOption {
		wipe, err := rng.OneIn(100)
		if err != nil {
			return set, rpgerr.WrapCtx(ctx, "spellfilter.Filter.learn_wipe", err)
		}
		if wipe {
			m.KnownPFlags = 0
		}
		if learner != nil {
			set = learner.UnsetSpells(set, m.KnownPFlags, m.Race)
		}
	}

	// The desperation override is numbered last but is explicitly applied
	// before the imm_mana and bolt/summon removals that follow it here.
	if m.Race.HasFlag(raceflag.Smart) && m.HP < m.MaxHP/10 {
		restrict, err := chance(rng, 50)
		if err != nil {
			return set, rpgerr.WrapCtx(ctx, "spellfilter.Filter.desperation", err)
		}
		if restrict {
			set = spellflag.RestrictToClasses(set, spellflag.DesperationClasses)
		}
	}

	if m.Smart&imMana != 0 {
		threshold := 50
		if m.Race.HasFlag(raceflag.Smart) {
			threshold = 100
		}
		drop, err := chance(rng, threshold)
		if err != nil {
			return set, rpgerr.WrapCtx(ctx, "spellfilter.Filter.imm_mana", err)
		}
		if drop {
			set = set.Without(spellflag.DrainMana)
		}
	}

	py, px := c.PlayerPos()

	if spellflag.AnyInClass(set, spellflag.ClassBolt) {
		if !geometry.Projectable(m.FY, m.FX, py, px, c.BlocksShot) {
			set = spellflag.RemoveClass(set, spellflag.ClassBolt)
		}
	}
	if spellflag.AnyInClass(set, spellflag.ClassSummon) {
		if !summonSpacePossible(m, c) {
			set = spellflag.RemoveClass(set, spellflag.ClassSummon)
		}
	}

	return set, nil
}

// chance reports true with probability p/100, via Randint0(100).
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

// summonSpacePossible reports whether any cell other than the monster's
// own within Chebyshev distance summonFootprintRadius of the monster is
// in-bounds, unwarded, visible from the monster, and unoccupied.
func summonSpacePossible(m *monster.Monster, c *cave.Cave) bool {
	for dy := -summonFootprintRadius; dy <= summonFootprintRadius; dy++ {
		for dx := -summonFootprintRadius; dx <= summonFootprintRadius; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			ny, nx := m.FY+dy, m.FX+dx
			if !c.InBounds(ny, nx) {
				continue
			}
			if c.HasGlyph(ny, nx) {
				continue
			}
			if c.Occupant(ny, nx) != 0 {
				continue
			}
			if !geometry.LOS(m.FY, m.FX, ny, nx, c.Blocks) {
				continue
			}
			return true
		}
	}
	return false
}
