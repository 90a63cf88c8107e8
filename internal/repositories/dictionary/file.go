package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xelthorlang/xelthor/internal/common"
	"github.com/xelthorlang/xelthor/internal/logging"
)

const (
	backupPrefix = "xelthor_dictionary_"
	backupExt    = ".json"
)

// timeNow is a test seam for backup timestamps.
var timeNow = time.Now

// FileRepository stores the dictionary as an indented JSON document and
// keeps backups in a sibling directory.
type FileRepository struct {
	path      string
	backupDir string
	log       logging.Logger
}

func NewFileRepository(path, backupDir string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, backupDir: backupDir, log: log}
}

func (r *FileRepository) Load(ctx context.Context) (*Document, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			doc := DefaultDocument()
			if err := r.Save(ctx, doc); err != nil {
				return nil, fmt.Errorf("bootstrapping dictionary: %w", err)
			}
			r.log.Info(ctx, "dictionary bootstrapped with seed vocabulary", "path", r.path)
			return doc, nil
		}
		r.log.Warn(ctx, "dictionary unreadable, using defaults", "path", r.path, "error", err)
		return DefaultDocument(), nil
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		// Keep the application usable with the seed vocabulary; the broken
		// file stays on disk for inspection.
		r.log.Warn(ctx, "dictionary corrupt, using defaults", "path", r.path, "error", err)
		return DefaultDocument(), nil
	}
	if doc.Vocabulary == nil {
		doc.Vocabulary = map[string]string{}
	}
	if doc.Prefixes == nil {
		doc.Prefixes = DefaultDocument().Prefixes
	}
	if doc.Tones == nil {
		doc.Tones = DefaultDocument().Tones
	}
	if doc.SpecialPhrases == nil {
		doc.SpecialPhrases = map[string]string{}
	}
	return doc, nil
}

func (r *FileRepository) Save(ctx context.Context, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating dictionary dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing dictionary: %w", err)
	}
	return nil
}

func (r *FileRepository) CreateBackup(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Nothing to back up yet.
			return "", nil
		}
		return "", fmt.Errorf("reading dictionary for backup: %w", err)
	}
	if err := os.MkdirAll(r.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}
	name := backupPrefix + timeNow().Format("20060102_150405") + backupExt
	if err := os.WriteFile(filepath.Join(r.backupDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	r.log.Info(ctx, "backup created", "name", name)
	return name, nil
}

func (r *FileRepository) ListBackups(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.backupDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasPrefix(n, backupPrefix) && strings.HasSuffix(n, backupExt) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r *FileRepository) RestoreBackup(ctx context.Context, name string) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("backup name %q: %w", name, common.ErrValidation)
	}
	data, err := os.ReadFile(filepath.Join(r.backupDir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("backup %q: %w", name, common.ErrNotFound)
		}
		return fmt.Errorf("reading backup: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("restoring dictionary: %w", err)
	}
	r.log.Info(ctx, "backup restored", "name", name)
	return nil
}
