package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/xelthorlang/xelthor/internal/common"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		wantMsg  string // empty means accepted
	}{
		{"short1", "at least 8 characters"},
		{"alllowercase1", "uppercase"},
		{"ALLUPPERCASE1", "lowercase"},
		{"NoDigitsHere", "digit"},
		{"Valid123", ""},
	}
	for _, tc := range tests {
		err := ValidatePasswordStrength(tc.password)
		if tc.wantMsg == "" {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", tc.password, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantMsg) {
			t.Fatalf("%q: expected error mentioning %q, got %v", tc.password, tc.wantMsg, err)
		}
		if !errors.Is(err, common.ErrValidation) {
			t.Fatalf("%q: error must wrap ErrValidation", tc.password)
		}
	}
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	h1 := HashPassword("Valid123", "aa")
	h2 := HashPassword("Valid123", "bb")
	if h1 == h2 {
		t.Fatal("different salts produced identical hashes")
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestCheckPassword(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatal(err)
	}
	hash := HashPassword("Valid123", salt)
	if !CheckPassword(hash, "Valid123", salt) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "Valid124", salt) {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword(hash, "Valid123", salt+"00") {
		t.Fatal("wrong salt accepted")
	}
}
