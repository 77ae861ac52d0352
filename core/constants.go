package core

// Tuning constants carried over from the original game for behavioral
// compatibility. The defining header was not present in the retrieved
// source excerpt (only melee2.c's usages were); these values are the
// well-known historical constants from the public Angband sources that
// melee2.c's call sites are consistent with.
const (
	// MaxRange is the maximum distance a monster will consider casting a
	// ranged spell at the player.
	MaxRange = 18

	// MaxSight is the maximum distance at which a monster notices the
	// player at all.
	MaxSight = 20

	// MonsterFlowDepth caps how many flow-field steps a monster will
	// trust when follow-the-scent pathfinding.
	MonsterFlowDepth = 32

	// MonMultAdj tunes how quickly MULTIPLY races breed as their local
	// population grows.
	MonMultAdj = 8

	// MaxRepro caps the number of breeding MULTIPLY monsters per level.
	MaxRepro = 100

	// BreakGlyph is the divisor in race.level/BreakGlyph, the chance a
	// monster breaks a glyph of warding on a given step attempt.
	BreakGlyph = 550

	// MonDrainLife is the experience-drain multiplier used by the
	// drain-life blow effects.
	MonDrainLife = 2
)
