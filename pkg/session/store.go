// Package session manages the bearer token on disk and the route guards
// built on top of it.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

const tokenFile = "token"

// Store persists a single bearer token in a file under the user's config
// directory, the CLI counterpart of origin-scoped browser storage. Token
// validity is never tracked locally; the server decides at use time.
type Store struct {
	dir string
}

// DefaultDir returns the standard token directory for this tool.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "boardwalk"), nil
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Get returns the stored token, or false when none is present.
func (s *Store) Get() (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Set writes the token, creating the directory if needed. The file is
// user-readable only.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token+"\n"), 0o600)
}

// Clear removes the stored token. A missing token is not an error.
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, tokenFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
