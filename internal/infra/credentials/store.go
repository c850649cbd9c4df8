// Package credentials persists the session token between runs.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/workasana/workasana/internal/domain"
)

// Ensure Store implements domain.TokenStore.
var _ domain.TokenStore = (*Store)(nil)

// TokenFileName matches the storage key the browser client used.
const TokenFileName = "workasana_token"

// Store keeps the bearer token in a file under the user's config directory.
type Store struct {
	path string
}

// New creates a Store rooted at the default config directory.
func New() *Store {
	return NewWithDir(defaultConfigDir())
}

// NewWithDir creates a Store rooted at the given directory. Useful for
// testing.
func NewWithDir(dir string) *Store {
	return &Store{path: filepath.Join(dir, TokenFileName)}
}

// defaultConfigDir resolves the XDG config directory for workasana.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "workasana")
}

// Load returns the stored token, or "" if none is stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save stores the token, creating the config directory if needed.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
