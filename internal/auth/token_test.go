package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func withTokenFile(t *testing.T) {
	t.Helper()
	t.Setenv("CANDEX_TOKEN_FILE", filepath.Join(t.TempDir(), "token"))
}

func TestSaveLoadDeleteToken(t *testing.T) {
	withTokenFile(t)

	if tok, err := LoadToken(); err != nil || tok != "" {
		t.Fatalf("LoadToken before save = %q, %v", tok, err)
	}

	if err := SaveToken("abc123"); err != nil {
		t.Fatal(err)
	}
	tok, err := LoadToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok != "abc123" {
		t.Errorf("LoadToken = %q, want abc123", tok)
	}

	if err := DeleteToken(); err != nil {
		t.Fatal(err)
	}
	if tok, _ := LoadToken(); tok != "" {
		t.Errorf("token survived delete: %q", tok)
	}
	// Deleting again is not an error.
	if err := DeleteToken(); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "candidate-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCheckExpiry(t *testing.T) {
	now := time.Now()

	if err := CheckExpiry(signedToken(t, now.Add(time.Hour)), now); err != nil {
		t.Errorf("valid token flagged: %v", err)
	}

	err := CheckExpiry(signedToken(t, now.Add(-time.Hour)), now)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expired token err = %v, want ErrExpiredToken", err)
	}

	// Opaque (non-JWT) tokens pass; the backend decides.
	if err := CheckExpiry("opaque-session-token", now); err != nil {
		t.Errorf("opaque token flagged: %v", err)
	}
}
