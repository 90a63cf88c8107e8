// Package cli implements the interactive terminal menu of the Xel'thor
// translator.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xelthorlang/xelthor/internal/auth"
	"github.com/xelthorlang/xelthor/internal/config"
	"github.com/xelthorlang/xelthor/internal/lexicon"
	"github.com/xelthorlang/xelthor/internal/logging"
	"github.com/xelthorlang/xelthor/internal/repositories/accounts"
	"github.com/xelthorlang/xelthor/internal/repositories/dictionary"
	"github.com/xelthorlang/xelthor/internal/translator"
)

// App wires the services behind the menu. It holds the current session
// token; the engine is rebuilt from a fresh lexicon snapshot on every
// translation, so mutations are never served from a stale cache.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	auth     *auth.Service
	store    *lexicon.Store
	dictRepo dictionary.Repository

	reader *bufio.Reader
	out    io.Writer

	token string
	user  string
	role  string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	creds, err := auth.NewCredentialStore(ctx, accounts.NewFileRepository(cfg.AuthFile), log)
	if err != nil {
		return nil, fmt.Errorf("initializing credential store: %w", err)
	}
	sessions := auth.NewSessionRegistry(cfg.SessionTTL)

	dictRepo := dictionary.NewFileRepository(cfg.DictionaryFile, cfg.BackupDir, log)
	store, err := lexicon.NewStore(ctx, dictRepo, log)
	if err != nil {
		return nil, fmt.Errorf("initializing lexicon: %w", err)
	}

	return &App{
		cfg:      cfg,
		log:      log,
		auth:     auth.NewService(creds, sessions, log),
		store:    store,
		dictRepo: dictRepo,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// engine returns a translation engine over the current lexicon snapshot.
func (a *App) engine() *translator.Engine {
	return translator.New(a.store.Snapshot())
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// requireAdmin checks the current session for admin rights, clearing a
// stale token and telling the user what to do on denial.
func (a *App) requireAdmin() bool {
	d := a.auth.Guard(a.token, true)
	if d.Authorized() {
		return true
	}
	if a.isLoggedIn() {
		// Expired or demoted; drop the stale token.
		a.token, a.user, a.role = "", "", ""
	}
	fmt.Fprintln(a.out, d.Reason)
	return false
}

func (a *App) status() string {
	if a.user == "" {
		return "not logged in"
	}
	return fmt.Sprintf("%s (%s)", a.user, a.role)
}
