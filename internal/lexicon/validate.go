package lexicon

import (
	"fmt"
	"strings"

	"github.com/xelthorlang/xelthor/internal/common"
)

// phonologyClusters are the sound clusters at least one of which must
// appear somewhere in every non-connector word.
var phonologyClusters = []string{"x", "th", "k'", "zz", "ph", "r'"}

// DefaultPrefix returns the prefix prepended by lenient batch import when a
// word is missing its category's prefix. Connectors have none.
func DefaultPrefix(c Category) string {
	switch c {
	case CategoryVerb:
		return VerbPrefixes[0]
	case CategoryPhysical, CategoryEnergy, CategoryAbstract:
		p, _ := NounPrefix(c)
		return p
	default:
		return ""
	}
}

// ValidateWord checks a Xel'thor form against the phonology rules of the
// declared category. All failures wrap common.ErrValidation and carry a
// human-readable message.
func ValidateWord(xelthor string, c Category) error {
	if xelthor == "" {
		return fmt.Errorf("xel'thor word is empty: %w", common.ErrValidation)
	}

	switch c {
	case CategoryVerb:
		if !HasVerbPrefix(xelthor) {
			return fmt.Errorf("verbs must start with one of %s: %w",
				strings.Join(VerbPrefixes, ", "), common.ErrValidation)
		}
	case CategoryPhysical, CategoryEnergy, CategoryAbstract:
		p, _ := NounPrefix(c)
		if !strings.HasPrefix(xelthor, p) {
			return fmt.Errorf("%s words must start with %s: %w", c, p, common.ErrValidation)
		}
	case CategoryConnector:
		if len(xelthor) > connectorMaxLen {
			return fmt.Errorf("connectors must be at most %d characters: %w",
				connectorMaxLen, common.ErrValidation)
		}
		return nil
	default:
		return fmt.Errorf("unknown category: %w", common.ErrValidation)
	}

	for _, cl := range phonologyClusters {
		if strings.Contains(xelthor, cl) {
			return nil
		}
	}
	return fmt.Errorf("word must contain at least one sound cluster (%s): %w",
		strings.Join(phonologyClusters, ", "), common.ErrValidation)
}
