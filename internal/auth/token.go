package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpiredToken indicates the stored candidate token is past its exp
// claim. The backend is still the authority; this check only saves a
// round trip that is guaranteed to fail.
var ErrExpiredToken = errors.New("candidate token expired")

// TokenPath resolves the token file location in priority order:
// 1. CANDEX_TOKEN_FILE environment variable
// 2. $XDG_CONFIG_HOME/candex/token
// 3. ~/.config/candex/token
func TokenPath() (string, error) {
	if p := os.Getenv("CANDEX_TOKEN_FILE"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "candex", "token"), nil
}

// SaveToken persists the bearer token with user-only permissions.
func SaveToken(token string) error {
	path, err := TokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// LoadToken reads the persisted token. Returns "" with no error when no
// token has been saved yet.
func LoadToken() (string, error) {
	path, err := TokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// DeleteToken removes the persisted token. Missing file is not an error.
func DeleteToken() error {
	path, err := TokenPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// CheckExpiry inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Tokens without an exp
// claim, or that do not parse as JWTs, pass — the backend decides.
func CheckExpiry(token string, now time.Time) error {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if now.After(exp.Time) {
		return fmt.Errorf("%w at %s", ErrExpiredToken, exp.Time.Format(time.RFC3339))
	}
	return nil
}
