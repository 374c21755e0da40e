package cart

import (
	"strings"
)

// Promos is the fixed allow-list of promo codes. Matching is a case-insensitive
// exact comparison.
type Promos []string

// Normalize returns the canonical form of code and whether it is on the list.
func (p Promos) Normalize(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, allowed := range p {
		if strings.ToUpper(allowed) == code {
			return code, true
		}
	}
	return "", false
}
