// Package session holds the current authentication token and persists
// it durably so a sign-in survives process restarts. It is the single
// shared mutable piece of client state: read by every authenticated
// call, written only by Login and Logout.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// ErrNotSignedIn is returned by guards when a protected operation is
// attempted without a token. No network call is made in that case.
var ErrNotSignedIn = errors.New("not signed in: run `mynotes signin` first")

// stateFile is the durable session state. The id_token key is the one
// fixed persisted artifact of the whole client.
type stateFile struct {
	IDToken string `toml:"id_token"`
}

// Store is the process-wide session. Safe for concurrent use; Login
// and Logout update memory and the durable file within the same call,
// so a later read never observes a token the file no longer has.
type Store struct {
	path string

	mu    sync.RWMutex
	token string
}

// DefaultPath returns the session file location under the user's
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "mynotes", "session.toml"), nil
}

// Open reads the session file once and returns a Store seeded from it.
// A missing file means an empty session, not an error. The token is
// not validated against the server; an expired token surfaces lazily
// on the first rejected call.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	var st stateFile
	if _, err := toml.DecodeFile(path, &st); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}
	s.token = st.IDToken
	return s, nil
}

// Token returns the current bearer token, or "" when signed out.
// Implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool { return s.Token() != "" }

// Login stores the token in memory and in the durable file. The file
// is written 0600; its directory is created on first use.
func (s *Store) Login(token string) error {
	if token == "" {
		return fmt.Errorf("login requires a token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeStateFile(s.path, stateFile{IDToken: token}); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Logout clears the durable file and the in-memory token. Clearing an
// already-empty session is not an error.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", s.path, err)
	}
	s.token = ""
	return nil
}

// Path returns the durable session file location.
func (s *Store) Path() string { return s.path }

func writeStateFile(path string, st stateFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(st); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}
