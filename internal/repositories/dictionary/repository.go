// Package dictionary persists the Xel'thor dictionary document and manages
// its timestamped backups.
package dictionary

import "context"

// Document is the persisted dictionary layout: four named sections, all
// plain string maps.
type Document struct {
	Vocabulary     map[string]string `json:"vocabulary"`
	Prefixes       map[string]string `json:"prefixes"`
	Tones          map[string]string `json:"tones"`
	SpecialPhrases map[string]string `json:"special_phrases"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		Vocabulary:     make(map[string]string, len(d.Vocabulary)),
		Prefixes:       make(map[string]string, len(d.Prefixes)),
		Tones:          make(map[string]string, len(d.Tones)),
		SpecialPhrases: make(map[string]string, len(d.SpecialPhrases)),
	}
	for k, v := range d.Vocabulary {
		c.Vocabulary[k] = v
	}
	for k, v := range d.Prefixes {
		c.Prefixes[k] = v
	}
	for k, v := range d.Tones {
		c.Tones[k] = v
	}
	for k, v := range d.SpecialPhrases {
		c.SpecialPhrases[k] = v
	}
	return c
}

// DefaultDocument returns the seed dictionary used when no store exists yet
// or the existing one cannot be read.
func DefaultDocument() *Document {
	return &Document{
		Vocabulary: map[string]string{
			// Basic verbs.
			"travel":      "zz'rix",
			"communicate": "ph'sor",
			"see":         "xa'lor",
			"think":       "mii'sor",
			"share":       "ph'sor",
			"create":      "vor'tix",
			"learn":       "mii'zar",
			"speak":       "ph'lor",

			// Physical objects.
			"traveler": "xel'thor",
			"star":     "xel'ka",
			"ship":     "xel'vor",
			"world":    "xel'thal",
			"body":     "xel'phi",

			// Energy concepts.
			"light":  "vor'kaan",
			"energy": "vor'thi",
			"power":  "vor'zix",
			"space":  "vor'thal",
			"time":   "vor'phi",

			// Abstract concepts.
			"wisdom":    "mii'path",
			"knowledge": "mii'path",
			"truth":     "mii'kan",
			"thought":   "mii'lor",
			"unity":     "mii'zol",

			// Connectors and prepositions.
			"through": "vor",
			"between": "zz",
			"with":    "phi",
			"in":      "ka",
			"to":      "th",
			"from":    "rx",
		},
		Prefixes: map[string]string{
			"physical": "xel-",
			"energy":   "vor-",
			"abstract": "mii-",
		},
		Tones: map[string]string{
			"present": "",
			"past":    "-pa",
			"future":  "-zi",
			"eternal": "-th",
		},
		SpecialPhrases: map[string]string{},
	}
}

// Repository is the storage interface the lexicon service depends on.
type Repository interface {
	// Load reads the current document. A missing store is bootstrapped with
	// DefaultDocument; an unreadable store falls back to DefaultDocument
	// in memory without touching the file.
	Load(ctx context.Context) (*Document, error)

	// Save writes the document as the live store.
	Save(ctx context.Context, doc *Document) error

	// CreateBackup snapshots the current live store into a timestamped
	// backup file and returns the backup name.
	CreateBackup(ctx context.Context) (string, error)

	// ListBackups returns backup names sorted lexicographically, which is
	// chronological given the fixed-width timestamp format.
	ListBackups(ctx context.Context) ([]string, error)

	// RestoreBackup overwrites the live store with the named backup's bytes.
	RestoreBackup(ctx context.Context, name string) error
}
