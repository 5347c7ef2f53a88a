package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mynotes", "session.toml")
}

func TestOpen_MissingFileIsEmptySession(t *testing.T) {
	s, err := Open(tempStorePath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("fresh store must not be authenticated")
	}
	if s.Token() != "" {
		t.Fatalf("unexpected token %q", s.Token())
	}
}

func TestLogin_PersistsAcrossReopen(t *testing.T) {
	path := tempStorePath(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Login("tok1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.Token() != "tok1" {
		t.Fatalf("token not stored in memory, got %q", s.Token())
	}

	// The durable file is the localStorage analogue: a fixed key.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("session file not written: %v", err)
	}
	if !strings.Contains(string(raw), `id_token = "tok1"`) {
		t.Fatalf("unexpected file contents: %s", raw)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Token() != "tok1" {
		t.Fatal("token did not survive reopen")
	}
}

func TestLogin_RejectsEmptyToken(t *testing.T) {
	s, _ := Open(tempStorePath(t))
	if err := s.Login(""); err == nil {
		t.Fatal("empty token accepted")
	}
}

func TestLogout_ClearsMemoryAndFile(t *testing.T) {
	path := tempStorePath(t)
	s, _ := Open(path)
	if err := s.Login("tok1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("still authenticated after logout")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("session file survived logout")
	}
	// Logging out twice is fine.
	if err := s.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestLogin_OverwritesPreviousToken(t *testing.T) {
	path := tempStorePath(t)
	s, _ := Open(path)
	if err := s.Login("tok1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Login("tok2"); err != nil {
		t.Fatalf("second Login: %v", err)
	}
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Token() != "tok2" {
		t.Fatalf("stale token persisted, got %q", reopened.Token())
	}
}

func TestFilePermissions(t *testing.T) {
	path := tempStorePath(t)
	s, _ := Open(path)
	if err := s.Login("tok1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("session file mode %o, want 600", perm)
	}
}
