package dice

import "fmt"

// Spec is a single dice specification, e.g. 2d6.
type Spec struct {
	Count int
	Size  int
}

// Pool is an ordered collection of dice specs plus a flat modifier,
// sized for the engine's damroll(dice, sides) need.
type Pool struct {
	dice     []Spec
	modifier int
}

// NewPool builds a Pool from the given specs.
func NewPool(specs ...Spec) *Pool {
	return &Pool{dice: specs}
}

// WithModifier returns a copy of the pool with a flat modifier attached.
func (p *Pool) WithModifier(mod int) *Pool {
	return &Pool{dice: p.dice, modifier: mod}
}

// Roll rolls every spec in the pool using r and returns a Result.
func (p *Pool) Roll(r Roller) *Result {
	res := &Result{pool: p, modifier: p.modifier}
	total := p.modifier
	for _, spec := range p.dice {
		rolls, err := r.RollN(spec.Count, spec.Size)
		if err != nil {
			res.err = err
			return res
		}
		res.rolls = append(res.rolls, rolls)
		for _, v := range rolls {
			total += v
		}
	}
	res.total = total
	return res
}

// Damroll rolls `count`d`sides` and returns the summed result, matching
// the original's damroll(dice, sides) primitive. Zero dice or sides
// yields zero rather than rolling.
func Damroll(r Roller, count, sides int) (int, error) {
	if count <= 0 || sides <= 0 {
		return 0, nil
	}
	rolls, err := r.RollN(count, sides)
	if err != nil {
		return 0, fmt.Errorf("dice: damroll %dd%d: %w", count, sides, err)
	}
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total, nil
}
