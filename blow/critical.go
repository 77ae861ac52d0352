package blow

import "github.com/duskvault/monsterai/collab"

// MaxSeverity is the top index of the cut/stun bucket tables (§4.7);
// severity is clamped to this ceiling.
const MaxSeverity = 7

// Severity implements monster_critical(dice, sides, damage): maps a
// landed blow's damage roll to a 0..MaxSeverity bucket, transcribed
// verbatim from the original's threshold/bonus logic.
func Severity(diceCount, diceSides, damage int, rng collab.RNG) (int, error) {
	total := diceCount * diceSides
	if float64(damage) < 0.95*float64(total) {
		return 0, nil
	}

	if damage < 20 {
		roll, err := rng.Randint0(100)
		if err != nil {
			return 0, err
		}
		// "return 0 with probability 1-damage/100": damage acts as the
		// percent chance of surviving to the severity table below.
		if roll >= damage {
			return 0, nil
		}
	}

	var sev int
	switch {
	case damage > 45:
		sev = 6
	case damage > 33:
		sev = 5
	case damage > 25:
		sev = 4
	case damage > 18:
		sev = 3
	case damage > 11:
		sev = 2
	default:
		sev = 1
	}

	if damage == total {
		sev++
	}

	if damage >= 20 {
		for sev < MaxSeverity {
			roll, err := rng.Randint0(100)
			if err != nil {
				return sev, err
			}
			if roll >= 2 {
				break
			}
			sev++
		}
	}

	if sev > MaxSeverity {
		sev = MaxSeverity
	}
	return sev, nil
}

// cutAmount/stunAmount buckets: each entry is a function of a Roller so
// the dice.Roller-backed calls (randint1) can be exercised with a
// deterministic mock in tests.
func cutAmount(sev int, rng collab.RNG) (int, error) {
	switch sev {
	case 0:
		return 0, nil
	case 1:
		return rng.Roll(5)
	case 2:
		v, err := rng.Roll(5)
		return v + 5, err
	case 3:
		v, err := rng.Roll(20)
		return v + 20, err
	case 4:
		v, err := rng.Roll(50)
		return v + 50, err
	case 5:
		v, err := rng.Roll(100)
		return v + 100, err
	case 6:
		return 300, nil
	default:
		return 500, nil
	}
}

func stunAmount(sev int, rng collab.RNG) (int, error) {
	switch sev {
	case 0:
		return 0, nil
	case 1:
		return rng.Roll(5)
	case 2:
		v, err := rng.Roll(10)
		return v + 10, err
	case 3:
		v, err := rng.Roll(20)
		return v + 20, err
	case 4:
		v, err := rng.Roll(30)
		return v + 30, err
	case 5:
		v, err := rng.Roll(40)
		return v + 40, err
	case 6:
		return 100, nil
	default:
		return 200, nil
	}
}
