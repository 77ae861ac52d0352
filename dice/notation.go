package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var notationRegex = regexp.MustCompile(`^(\d*)[dD](\d+)$`)

// ParseNotation parses simple dice notation ("2d6", "d20", "3d8") into a
// Spec. The race blow table only ever needs the bare "count d sides"
// form, so a "+N" modifier grammar is intentionally not supported.
func ParseNotation(notation string) (Spec, error) {
	notation = strings.TrimSpace(notation)
	matches := notationRegex.FindStringSubmatch(notation)
	if matches == nil {
		return Spec{}, fmt.Errorf("dice: invalid notation %q", notation)
	}
	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return Spec{}, fmt.Errorf("dice: invalid notation %q: %w", notation, err)
		}
		count = n
	}
	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return Spec{}, fmt.Errorf("dice: invalid notation %q: %w", notation, err)
	}
	return Spec{Count: count, Size: size}, nil
}
