package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/xelthorlang/xelthor/internal/common"
	"github.com/xelthorlang/xelthor/internal/logging"
	"github.com/xelthorlang/xelthor/internal/repositories/accounts"
)

// Decision is the tagged result of an authorization check: either an
// authorized session or a denial reason.
type Decision struct {
	Session *Session
	Reason  string
}

// Authorized reports whether the check passed.
func (d Decision) Authorized() bool { return d.Session != nil }

// Service composes the credential store and the session registry. All
// mutations of the account set are role-checked through session tokens.
type Service struct {
	creds    *CredentialStore
	sessions *SessionRegistry
	log      logging.Logger
}

func NewService(creds *CredentialStore, sessions *SessionRegistry, log logging.Logger) *Service {
	return &Service{creds: creds, sessions: sessions, log: log}
}

// VerifyCredentials checks the username/password pair and, on success,
// mints and returns a new session token. A missing user and a wrong
// password are both reported as common.ErrUnauthorized.
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) (string, error) {
	a, err := s.creds.Get(username)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", common.ErrUnauthorized)
	}
	if !CheckPassword(a.PasswordHash, password, a.Salt) {
		return "", fmt.Errorf("login failed: %w", common.ErrUnauthorized)
	}
	sess := s.sessions.Create(a.UserName, a.Role)
	s.log.Info(ctx, "login", "user", a.UserName, "role", a.Role)
	return sess.Token, nil
}

// VerifySession resolves the token to a live session. Expired sessions are
// removed as a side effect.
func (s *Service) VerifySession(token string) (*Session, error) {
	return s.sessions.Get(token)
}

// InvalidateSession logs the session out. Idempotent; reports whether the
// token existed.
func (s *Service) InvalidateSession(token string) bool {
	return s.sessions.Delete(token)
}

// Guard checks the acting token and returns a tagged decision. With
// requireAdmin set, a valid non-admin session is denied. Call sites gate
// dictionary and backup mutation on this before dispatch.
func (s *Service) Guard(token string, requireAdmin bool) Decision {
	sess, err := s.sessions.Get(token)
	if err != nil {
		if errors.Is(err, common.ErrSessionExpired) {
			return Decision{Reason: "session expired, please log in again"}
		}
		return Decision{Reason: "not logged in"}
	}
	if requireAdmin && sess.Role != accounts.RoleAdmin {
		return Decision{Reason: "administrator access required"}
	}
	return Decision{Session: sess}
}

// AddUser creates an account. The acting session must be a valid admin
// session; the new password must satisfy the strength rule.
func (s *Service) AddUser(ctx context.Context, actingToken, username, password, role string) error {
	if d := s.Guard(actingToken, true); !d.Authorized() {
		return fmt.Errorf("%s: %w", d.Reason, common.ErrUnauthorized)
	}
	if username == "" {
		return fmt.Errorf("username is empty: %w", common.ErrValidation)
	}
	if role != accounts.RoleAdmin && role != accounts.RoleUser {
		return fmt.Errorf("unknown role %q: %w", role, common.ErrValidation)
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}
	salt, err := GenerateSalt()
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}
	a := &accounts.Account{
		UserName:     username,
		PasswordHash: HashPassword(password, salt),
		Salt:         salt,
		Role:         role,
		CreatedAt:    timeNow(),
	}
	if err := s.creds.Add(ctx, a); err != nil {
		return err
	}
	s.log.Info(ctx, "user added", "user", username, "role", role)
	return nil
}

// RemoveUser deletes an account and invalidates all of its sessions. The
// bootstrap admin cannot be removed.
func (s *Service) RemoveUser(ctx context.Context, actingToken, username string) error {
	if d := s.Guard(actingToken, true); !d.Authorized() {
		return fmt.Errorf("%s: %w", d.Reason, common.ErrUnauthorized)
	}
	if username == BootstrapAdminUser {
		return fmt.Errorf("the admin account cannot be removed: %w", common.ErrValidation)
	}
	if err := s.creds.Remove(ctx, username); err != nil {
		return err
	}
	n := s.sessions.DeleteForUser(username)
	s.log.Info(ctx, "user removed", "user", username, "sessions_invalidated", n)
	return nil
}

// ChangePassword replaces the caller's password after verifying the old
// one. A fresh salt is generated; existing sessions stay valid.
func (s *Service) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	sess, err := s.sessions.Get(token)
	if err != nil {
		return fmt.Errorf("not logged in: %w", common.ErrUnauthorized)
	}
	a, err := s.creds.Get(sess.UserName)
	if err != nil {
		return err
	}
	if !CheckPassword(a.PasswordHash, oldPassword, a.Salt) {
		return fmt.Errorf("current password is incorrect: %w", common.ErrUnauthorized)
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	salt, err := GenerateSalt()
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}
	if err := s.creds.SetPassword(ctx, sess.UserName, HashPassword(newPassword, salt), salt); err != nil {
		return err
	}
	s.log.Info(ctx, "password changed", "user", sess.UserName)
	return nil
}
