package lexicon

import "strings"

// Tense pairs a tense name with its suffix string.
type Tense struct {
	Name   string
	Suffix string
}

// tenseOrder fixes suffix-stripping iteration. The present tense's empty
// suffix would match every word, so it sits first and is skipped during
// stripping.
var tenseOrder = []string{"present", "past", "future", "eternal"}

// Snapshot is an immutable view of the lexicon handed to the translation
// engine. Engines never observe mutations; callers take a fresh snapshot
// after any write.
type Snapshot struct {
	EngToXel       map[string]string
	XelToEng       map[string]string
	SpecialPhrases map[string]string
	Prefixes       map[string]string
	Tenses         []Tense
}

// SuffixFor returns the suffix of the named tense, or the present tense's
// empty suffix when the name is unrecognized.
func (s *Snapshot) SuffixFor(tense string) string {
	for _, t := range s.Tenses {
		if t.Name == tense {
			return t.Suffix
		}
	}
	return ""
}

// StripTenseSuffix removes the first matching non-empty tense suffix and
// returns the base form with the implied tense. Words carrying no known
// suffix are present tense.
func (s *Snapshot) StripTenseSuffix(word string) (string, string) {
	for _, t := range s.Tenses {
		if t.Suffix == "" {
			continue
		}
		if strings.HasSuffix(word, t.Suffix) {
			return strings.TrimSuffix(word, t.Suffix), t.Name
		}
	}
	return word, "present"
}
