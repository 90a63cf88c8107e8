package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xelthorlang/xelthor/internal/common"
	"github.com/xelthorlang/xelthor/internal/logging"
	"github.com/xelthorlang/xelthor/internal/repositories/accounts"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xelthor_auth.json")
	log := logging.NewDefault("error")

	creds, err := NewCredentialStore(context.Background(), accounts.NewFileRepository(path), log)
	require.NoError(t, err)
	return NewService(creds, NewSessionRegistry(DefaultSessionTTL), log), path
}

func adminToken(t *testing.T, s *Service) string {
	t.Helper()
	token, err := s.VerifyCredentials(context.Background(), BootstrapAdminUser, BootstrapAdminPassword)
	require.NoError(t, err)
	return token
}

func TestBootstrapAdmin_Login(t *testing.T) {
	s, path := newTestService(t)
	ctx := context.Background()

	token, err := s.VerifyCredentials(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := s.VerifySession(token)
	require.NoError(t, err)
	require.Equal(t, "admin", sess.UserName)
	require.Equal(t, accounts.RoleAdmin, sess.Role)

	// The bootstrap must have been persisted.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestVerifyCredentials_WrongPassword(t *testing.T) {
	s, _ := newTestService(t)
	token, err := s.VerifyCredentials(context.Background(), "admin", "wrong")
	require.Empty(t, token)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyCredentials_UnknownUser(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.VerifyCredentials(context.Background(), "nobody", "admin123")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAddUser_AndLogin(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	token := adminToken(t, s)

	require.NoError(t, s.AddUser(ctx, token, "bob", "Valid123", accounts.RoleUser))

	bobToken, err := s.VerifyCredentials(ctx, "bob", "Valid123")
	require.NoError(t, err)
	sess, err := s.VerifySession(bobToken)
	require.NoError(t, err)
	require.Equal(t, accounts.RoleUser, sess.Role)
}

func TestAddUser_RequiresAdmin(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	admin := adminToken(t, s)
	require.NoError(t, s.AddUser(ctx, admin, "bob", "Valid123", accounts.RoleUser))

	bobToken, err := s.VerifyCredentials(ctx, "bob", "Valid123")
	require.NoError(t, err)

	err = s.AddUser(ctx, bobToken, "carol", "Valid123", accounts.RoleUser)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	// The credential store must be unchanged.
	_, err = s.VerifyCredentials(ctx, "carol", "Valid123")
	require.Error(t, err)
}

func TestAddUser_DuplicateAndWeakPassword(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	token := adminToken(t, s)

	err := s.AddUser(ctx, token, "admin", "Valid123", accounts.RoleUser)
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	err = s.AddUser(ctx, token, "dave", "weak", accounts.RoleUser)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRemoveUser_RefusesAdmin(t *testing.T) {
	s, _ := newTestService(t)
	token := adminToken(t, s)
	err := s.RemoveUser(context.Background(), token, "admin")
	require.Error(t, err)
}

func TestRemoveUser_CascadesSessions(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	admin := adminToken(t, s)
	require.NoError(t, s.AddUser(ctx, admin, "bob", "Valid123", accounts.RoleUser))

	bobToken, err := s.VerifyCredentials(ctx, "bob", "Valid123")
	require.NoError(t, err)

	require.NoError(t, s.RemoveUser(ctx, admin, "bob"))

	_, err = s.VerifySession(bobToken)
	require.Error(t, err, "removed user's sessions must be invalidated")
}

func TestInvalidateSession(t *testing.T) {
	s, _ := newTestService(t)
	token := adminToken(t, s)
	require.True(t, s.InvalidateSession(token))
	require.False(t, s.InvalidateSession(token))
	_, err := s.VerifySession(token)
	require.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	token := adminToken(t, s)

	// Wrong old password.
	err := s.ChangePassword(ctx, token, "nope", "NewValid123")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Weak new password.
	err = s.ChangePassword(ctx, token, "admin123", "weak")
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	require.NoError(t, s.ChangePassword(ctx, token, "admin123", "NewValid123"))

	// Existing session stays valid after the change.
	_, err = s.VerifySession(token)
	require.NoError(t, err)

	// Old password no longer works; the new one does.
	_, err = s.VerifyCredentials(ctx, "admin", "admin123")
	require.Error(t, err)
	_, err = s.VerifyCredentials(ctx, "admin", "NewValid123")
	require.NoError(t, err)
}

func TestGuard(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	admin := adminToken(t, s)

	d := s.Guard(admin, true)
	require.True(t, d.Authorized())
	require.Equal(t, "admin", d.Session.UserName)

	d = s.Guard("bogus", false)
	require.False(t, d.Authorized())
	require.Equal(t, "not logged in", d.Reason)

	require.NoError(t, s.AddUser(ctx, admin, "bob", "Valid123", accounts.RoleUser))
	bobToken, err := s.VerifyCredentials(ctx, "bob", "Valid123")
	require.NoError(t, err)

	d = s.Guard(bobToken, true)
	require.False(t, d.Authorized())
	require.Equal(t, "administrator access required", d.Reason)

	d = s.Guard(bobToken, false)
	require.True(t, d.Authorized())
}

func TestCredentialStore_CorruptFallsBackToBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xelthor_auth.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	log := logging.NewDefault("error")
	creds, err := NewCredentialStore(context.Background(), accounts.NewFileRepository(path), log)
	require.NoError(t, err)

	s := NewService(creds, NewSessionRegistry(DefaultSessionTTL), log)
	_, err = s.VerifyCredentials(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	// The corrupt file must not have been clobbered.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "garbage", string(data))
}
