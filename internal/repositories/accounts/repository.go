// Package accounts persists registered user accounts as a JSON document
// keyed by username.
package accounts

import (
	"context"
	"time"
)

// Roles recognized by the authorization layer.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account is a stored credential record. PasswordHash and Salt are
// hex-encoded; CreatedAt serializes as ISO-8601.
type Account struct {
	UserName     string    `json:"username"`
	PasswordHash string    `json:"password"`
	Salt         string    `json:"salt"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Repository is the credential storage interface.
type Repository interface {
	// Load reads all accounts. A missing store yields common.ErrNotFound so
	// the caller can bootstrap; an unreadable store yields a wrapped error.
	Load(ctx context.Context) (map[string]*Account, error)

	// Save writes the full account set, replacing the previous document.
	Save(ctx context.Context, users map[string]*Account) error
}
