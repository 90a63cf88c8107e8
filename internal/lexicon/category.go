// Package lexicon owns the bilingual vocabulary, the special-phrase table,
// and the tense-suffix table, and exposes snapshots for the translation
// engine.
package lexicon

import "strings"

// Category is the semantic class of a Xel'thor form. It is never stored;
// it is derived from the word's prefix at read time.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryVerb
	CategoryPhysical
	CategoryEnergy
	CategoryAbstract
	CategoryConnector
)

func (c Category) String() string {
	switch c {
	case CategoryVerb:
		return "verb"
	case CategoryPhysical:
		return "physical noun"
	case CategoryEnergy:
		return "energy noun"
	case CategoryAbstract:
		return "abstract noun"
	case CategoryConnector:
		return "connector"
	default:
		return "unknown"
	}
}

// CategoryFromNumber maps the batch-import category column (1–5).
func CategoryFromNumber(n int) (Category, bool) {
	if n < int(CategoryVerb) || n > int(CategoryConnector) {
		return CategoryUnknown, false
	}
	return Category(n), true
}

// VerbPrefixes are the apostrophe-joined prefix strings that mark a form as
// a verb. Note the overlap with the vor'/mii' noun prefixes: a word starting
// with vor' or mii' satisfies both the verb and the noun predicate, and
// which one applies depends on which predicate runs first. Downstream
// behavior (word order, tense suffixes) relies on this exact overlap.
var VerbPrefixes = []string{"zz'", "ph'", "xa'", "vor'", "mii'"}

var nounPrefixes = map[Category]string{
	CategoryPhysical: "xel'",
	CategoryEnergy:   "vor'",
	CategoryAbstract: "mii'",
}

// connectorMaxLen bounds the length of connector words.
const connectorMaxLen = 4

// HasVerbPrefix reports whether the Xel'thor form starts with one of the
// verb prefixes.
func HasVerbPrefix(word string) bool {
	for _, p := range VerbPrefixes {
		if strings.HasPrefix(word, p) {
			return true
		}
	}
	return false
}

// NounPrefix returns the required prefix for a noun category.
func NounPrefix(c Category) (string, bool) {
	p, ok := nounPrefixes[c]
	return p, ok
}

// DeriveCategory infers the category of a Xel'thor form from its prefix.
// The verb predicate runs first, so vor'/mii' forms always derive as verbs.
func DeriveCategory(xelthor string) Category {
	if HasVerbPrefix(xelthor) {
		return CategoryVerb
	}
	for c, p := range nounPrefixes {
		if strings.HasPrefix(xelthor, p) {
			return c
		}
	}
	if len(xelthor) > 0 && len(xelthor) <= connectorMaxLen {
		return CategoryConnector
	}
	return CategoryUnknown
}
