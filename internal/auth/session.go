package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Session reports who is signed in. ok is false when nobody is.
type Session interface {
	CurrentUser() (userID string, ok bool)
}

// TokenSession verifies a token on every call, so an expired token signs
// the user out without further action.
type TokenSession struct {
	token  string
	secret []byte
}

// NewTokenSession wraps a raw token. An empty token is an anonymous session.
func NewTokenSession(token string, secret []byte) *TokenSession {
	return &TokenSession{token: strings.TrimSpace(token), secret: secret}
}

// CurrentUser implements Session.
func (s *TokenSession) CurrentUser() (string, bool) {
	if s == nil || s.token == "" {
		return "", false
	}
	userID, err := UserIDFromToken(s.token, s.secret)
	if err != nil {
		slog.Warn("session token rejected", "error", err)
		return "", false
	}
	return userID, true
}

// StaticSession is a fixed identity. The zero value is anonymous.
type StaticSession string

// CurrentUser implements Session.
func (s StaticSession) CurrentUser() (string, bool) {
	return string(s), s != ""
}

// DefaultTokenPath returns ~/.applyboard/session.
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".applyboard", "session"), nil
}

// SaveToken writes the token readable only by the owner.
func SaveToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// LoadToken reads a saved token. A missing file yields "" and no error.
func LoadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ClearToken removes a saved token, if any.
func ClearToken(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
