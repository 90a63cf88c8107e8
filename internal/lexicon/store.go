package lexicon

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/xelthorlang/xelthor/internal/common"
	"github.com/xelthorlang/xelthor/internal/logging"
	"github.com/xelthorlang/xelthor/internal/repositories/dictionary"
)

// Entry is one vocabulary pair.
type Entry struct {
	English string
	Xelthor string
}

// Store is the single source of truth for the vocabulary, special phrases,
// prefix table, and tense table. Every successful mutation backs up the
// pre-mutation state, persists the new state, and re-derives the reverse
// map. The engine must take a fresh Snapshot after any mutation.
type Store struct {
	mu       sync.Mutex
	repo     dictionary.Repository
	doc      *dictionary.Document
	xelToEng map[string]string
	log      logging.Logger
}

func NewStore(ctx context.Context, repo dictionary.Repository, log logging.Logger) (*Store, error) {
	s := &Store{repo: repo, log: log}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the backing store, e.g. after a backup restore.
func (s *Store) Reload(ctx context.Context) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading lexicon: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.rebuildReverse()
	return nil
}

// rebuildReverse derives the Xel'thor→English map from the vocabulary.
// English keys are walked in sorted order so that reverse collisions
// resolve deterministically (last writer wins). Callers hold s.mu.
func (s *Store) rebuildReverse() {
	keys := make([]string, 0, len(s.doc.Vocabulary))
	for k := range s.doc.Vocabulary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.xelToEng = make(map[string]string, len(keys))
	for _, k := range keys {
		s.xelToEng[s.doc.Vocabulary[k]] = k
	}
}

// persist backs up the pre-mutation state, saves doc as the new live store,
// and installs it. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, doc *dictionary.Document) error {
	if _, err := s.repo.CreateBackup(ctx); err != nil {
		return fmt.Errorf("backing up dictionary: %w", err)
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("saving dictionary: %w", err)
	}
	s.doc = doc
	s.rebuildReverse()
	return nil
}

// Snapshot returns an immutable copy of the current lexicon.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		EngToXel:       make(map[string]string, len(s.doc.Vocabulary)),
		XelToEng:       make(map[string]string, len(s.xelToEng)),
		SpecialPhrases: make(map[string]string, len(s.doc.SpecialPhrases)),
		Prefixes:       make(map[string]string, len(s.doc.Prefixes)),
	}
	for k, v := range s.doc.Vocabulary {
		snap.EngToXel[k] = v
	}
	for k, v := range s.xelToEng {
		snap.XelToEng[k] = v
	}
	for k, v := range s.doc.SpecialPhrases {
		snap.SpecialPhrases[k] = v
	}
	for k, v := range s.doc.Prefixes {
		snap.Prefixes[k] = v
	}
	for _, name := range tenseOrder {
		suffix, ok := s.doc.Tones[name]
		if !ok {
			suffix = dictionary.DefaultDocument().Tones[name]
		}
		snap.Tenses = append(snap.Tenses, Tense{Name: name, Suffix: suffix})
	}
	return snap
}

// AddWord registers a new vocabulary pair after phonology validation.
func (s *Store) AddWord(ctx context.Context, english, xelthor string, c Category) error {
	english = normalizeEnglish(english)
	xelthor = strings.TrimSpace(xelthor)
	if english == "" {
		return fmt.Errorf("english word is empty: %w", common.ErrValidation)
	}
	if err := ValidateWord(xelthor, c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doc.Vocabulary[english]; ok {
		return fmt.Errorf("word %q: %w", english, common.ErrAlreadyExists)
	}
	doc := s.doc.Clone()
	doc.Vocabulary[english] = xelthor
	return s.persist(ctx, doc)
}

// EditWord replaces the Xel'thor form of an existing entry. The new form
// must still look like a Xel'thor word of some category.
func (s *Store) EditWord(ctx context.Context, english, newXelthor string) error {
	english = normalizeEnglish(english)
	newXelthor = strings.TrimSpace(newXelthor)

	c := DeriveCategory(newXelthor)
	if c == CategoryUnknown {
		return fmt.Errorf("%q does not match any word pattern: %w", newXelthor, common.ErrValidation)
	}
	if err := ValidateWord(newXelthor, c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doc.Vocabulary[english]; !ok {
		return fmt.Errorf("word %q: %w", english, common.ErrNotFound)
	}
	doc := s.doc.Clone()
	doc.Vocabulary[english] = newXelthor
	return s.persist(ctx, doc)
}

// RemoveWord deletes an entry by its English key.
func (s *Store) RemoveWord(ctx context.Context, english string) error {
	english = normalizeEnglish(english)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doc.Vocabulary[english]; !ok {
		return fmt.Errorf("word %q: %w", english, common.ErrNotFound)
	}
	doc := s.doc.Clone()
	delete(doc.Vocabulary, english)
	return s.persist(ctx, doc)
}

// AddSpecialPhrase registers a multi-word idiom. Phrases bypass phonology
// validation and tokenized translation.
func (s *Store) AddSpecialPhrase(ctx context.Context, english, xelthor string) error {
	english = normalizeEnglish(english)
	xelthor = strings.TrimSpace(xelthor)
	if english == "" || xelthor == "" {
		return fmt.Errorf("phrase and translation are both required: %w", common.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doc.SpecialPhrases[english]; ok {
		return fmt.Errorf("phrase %q: %w", english, common.ErrAlreadyExists)
	}
	doc := s.doc.Clone()
	doc.SpecialPhrases[english] = xelthor
	return s.persist(ctx, doc)
}

// RemoveSpecialPhrase deletes an idiom by its English key.
func (s *Store) RemoveSpecialPhrase(ctx context.Context, english string) error {
	english = normalizeEnglish(english)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doc.SpecialPhrases[english]; !ok {
		return fmt.Errorf("phrase %q: %w", english, common.ErrNotFound)
	}
	doc := s.doc.Clone()
	delete(doc.SpecialPhrases, english)
	return s.persist(ctx, doc)
}

// BatchAddWords imports rows of the form "english,xelthor,category" where
// category is 1–5. Rows are processed independently: a malformed row is
// recorded against its 1-based number and processing continues. The store
// is persisted once at the end, and only if at least one row succeeded.
// In lenient mode a word missing its category prefix gets the category's
// default prefix prepended instead of being rejected.
func (s *Store) BatchAddWords(ctx context.Context, rows []string, lenient bool) (int, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	added := 0
	var errs []string

	for i, row := range rows {
		num := i + 1
		if strings.TrimSpace(row) == "" {
			continue
		}
		fields := strings.Split(row, ",")
		if len(fields) != 3 {
			errs = append(errs, fmt.Sprintf("row %d: expected 3 fields, got %d", num, len(fields)))
			continue
		}
		english := normalizeEnglish(fields[0])
		xelthor := strings.TrimSpace(fields[1])
		n, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: invalid category %q", num, strings.TrimSpace(fields[2])))
			continue
		}
		c, ok := CategoryFromNumber(n)
		if !ok {
			errs = append(errs, fmt.Sprintf("row %d: unknown category %d", num, n))
			continue
		}
		if _, ok := doc.Vocabulary[english]; ok {
			errs = append(errs, fmt.Sprintf("row %d: word %q already exists", num, english))
			continue
		}
		if lenient {
			xelthor = applyDefaultPrefix(xelthor, c)
		}
		if err := ValidateWord(xelthor, c); err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %v", num, err))
			continue
		}
		doc.Vocabulary[english] = xelthor
		added++
	}

	if added > 0 {
		if err := s.persist(ctx, doc); err != nil {
			return 0, append(errs, fmt.Sprintf("saving dictionary: %v", err))
		}
	}
	return added, errs
}

// BatchAddSpecialPhrases imports rows of the form "english,xelthor" with
// the same per-row error reporting as BatchAddWords.
func (s *Store) BatchAddSpecialPhrases(ctx context.Context, rows []string) (int, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	added := 0
	var errs []string

	for i, row := range rows {
		num := i + 1
		if strings.TrimSpace(row) == "" {
			continue
		}
		fields := strings.Split(row, ",")
		if len(fields) != 2 {
			errs = append(errs, fmt.Sprintf("row %d: expected 2 fields, got %d", num, len(fields)))
			continue
		}
		english := normalizeEnglish(fields[0])
		xelthor := strings.TrimSpace(fields[1])
		if english == "" || xelthor == "" {
			errs = append(errs, fmt.Sprintf("row %d: phrase and translation are both required", num))
			continue
		}
		if _, ok := doc.SpecialPhrases[english]; ok {
			errs = append(errs, fmt.Sprintf("row %d: phrase %q already exists", num, english))
			continue
		}
		doc.SpecialPhrases[english] = xelthor
		added++
	}

	if added > 0 {
		if err := s.persist(ctx, doc); err != nil {
			return 0, append(errs, fmt.Sprintf("saving dictionary: %v", err))
		}
	}
	return added, errs
}

// Entries returns the vocabulary sorted by English word.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.doc.Vocabulary))
	for e, x := range s.doc.Vocabulary {
		out = append(out, Entry{English: e, Xelthor: x})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].English < out[j].English })
	return out
}

// EntriesByCategory returns the sorted vocabulary filtered by derived
// category.
func (s *Store) EntriesByCategory(c Category) []Entry {
	all := s.Entries()
	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if DeriveCategory(e.Xelthor) == c {
			out = append(out, e)
		}
	}
	return out
}

// SpecialPhrases returns the idiom table sorted by English phrase.
func (s *Store) SpecialPhrases() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.doc.SpecialPhrases))
	for e, x := range s.doc.SpecialPhrases {
		out = append(out, Entry{English: e, Xelthor: x})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].English < out[j].English })
	return out
}

// ExportWords renders the vocabulary as batch-import rows
// "english,xelthor,category", category derived from the prefix.
func (s *Store) ExportWords() []string {
	entries := s.Entries()
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		c := DeriveCategory(e.Xelthor)
		rows = append(rows, fmt.Sprintf("%s,%s,%d", e.English, e.Xelthor, int(c)))
	}
	return rows
}

func normalizeEnglish(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func applyDefaultPrefix(xelthor string, c Category) string {
	switch c {
	case CategoryVerb:
		if !HasVerbPrefix(xelthor) {
			return DefaultPrefix(c) + xelthor
		}
	case CategoryPhysical, CategoryEnergy, CategoryAbstract:
		p, _ := NounPrefix(c)
		if !strings.HasPrefix(xelthor, p) {
			return p + xelthor
		}
	}
	return xelthor
}
