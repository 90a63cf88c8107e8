package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xelthorlang/xelthor/internal/common"
)

// document is the on-disk wrapper: {"users": {...}}.
type document struct {
	Users map[string]*Account `json:"users"`
}

// FileRepository stores accounts in a single JSON file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load(ctx context.Context) (map[string]*Account, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("account store %q: %w", r.path, common.ErrNotFound)
		}
		return nil, fmt.Errorf("reading account store: %w", err)
	}
	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decoding account store: %w", err)
	}
	if doc.Users == nil {
		doc.Users = map[string]*Account{}
	}
	return doc.Users, nil
}

func (r *FileRepository) Save(ctx context.Context, users map[string]*Account) error {
	data, err := json.MarshalIndent(&document{Users: users}, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding account store: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating account store dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("writing account store: %w", err)
	}
	return nil
}
