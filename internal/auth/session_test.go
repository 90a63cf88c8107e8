package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xelthorlang/xelthor/internal/common"
)

func TestSessionRegistry_CreateAndGet(t *testing.T) {
	r := NewSessionRegistry(DefaultSessionTTL)
	s := r.Create("alice", "user")
	require.NotEmpty(t, s.Token)

	got, err := r.Get(s.Token)
	require.NoError(t, err)
	require.Equal(t, "alice", got.UserName)
	require.Equal(t, "user", got.Role)
}

func TestSessionRegistry_UnknownToken(t *testing.T) {
	r := NewSessionRegistry(DefaultSessionTTL)
	_, err := r.Get("no-such-token")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionRegistry_LazyExpiry(t *testing.T) {
	r := NewSessionRegistry(24 * time.Hour)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }

	s := r.Create("alice", "user")

	// Just before expiry the session is still valid.
	r.now = func() time.Time { return base.Add(24*time.Hour - time.Second) }
	_, err := r.Get(s.Token)
	require.NoError(t, err)

	// At expiry the session fails and is deleted.
	r.now = func() time.Time { return base.Add(24 * time.Hour) }
	_, err = r.Get(s.Token)
	if !errors.Is(err, common.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// A later lookup sees a missing token, not an expired one.
	_, err = r.Get(s.Token)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after lazy delete, got %v", err)
	}
}

func TestSessionRegistry_DeleteIdempotent(t *testing.T) {
	r := NewSessionRegistry(DefaultSessionTTL)
	s := r.Create("alice", "user")
	require.True(t, r.Delete(s.Token))
	require.False(t, r.Delete(s.Token))
}

func TestSessionRegistry_DeleteForUser(t *testing.T) {
	r := NewSessionRegistry(DefaultSessionTTL)
	a1 := r.Create("alice", "user")
	a2 := r.Create("alice", "user")
	b := r.Create("bob", "user")

	require.Equal(t, 2, r.DeleteForUser("alice"))

	_, err := r.Get(a1.Token)
	require.Error(t, err)
	_, err = r.Get(a2.Token)
	require.Error(t, err)
	_, err = r.Get(b.Token)
	require.NoError(t, err)
}
