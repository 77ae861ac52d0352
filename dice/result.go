package dice

import (
	"fmt"
	"strings"
)

// Result represents the outcome of rolling a dice pool.
type Result struct {
	pool     *Pool
	rolls    [][]int
	modifier int
	total    int
	err      error
}

// Total returns the total value of the roll.
func (r *Result) Total() int { return r.total }

// Rolls returns the individual dice rolls, grouped by spec.
func (r *Result) Rolls() [][]int { return r.rolls }

// Error returns any error that occurred during rolling.
func (r *Result) Error() error { return r.err }

// String implements fmt.Stringer with a "2d6:[4,2] + 3 = 9" style
// description.
func (r *Result) String() string {
	if r.err != nil {
		return fmt.Sprintf("ERROR: %v", r.err)
	}
	var parts []string
	for i, group := range r.rolls {
		if len(group) == 0 {
			continue
		}
		rollStrs := make([]string, len(group))
		for j, roll := range group {
			rollStrs[j] = fmt.Sprintf("%d", roll)
		}
		spec := r.pool.dice[i]
		if spec.Count == 1 {
			parts = append(parts, fmt.Sprintf("d%d:[%s]", spec.Size, strings.Join(rollStrs, ",")))
		} else {
			parts = append(parts, fmt.Sprintf("%dd%d:[%s]", spec.Count, spec.Size, strings.Join(rollStrs, ",")))
		}
	}
	result := strings.Join(parts, " + ")
	if r.modifier > 0 {
		result = fmt.Sprintf("%s + %d", result, r.modifier)
	} else if r.modifier < 0 {
		result = fmt.Sprintf("%s - %d", result, -r.modifier)
	}
	return fmt.Sprintf("%s = %d", result, r.total)
}
