package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestJournalModeWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "hanzi.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='preferences'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "preferences" {
		t.Errorf("table name = %q, want 'preferences'", name)
	}
}

func TestKidModeDefaultsOn(t *testing.T) {
	s := openTestStore(t)
	on, err := s.PreferenceRepo().KidMode(context.Background())
	if err != nil {
		t.Fatalf("kid mode: %v", err)
	}
	if !on {
		t.Error("expected kid mode on for a fresh store")
	}
}

func TestKidModeRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PreferenceRepo()
	ctx := context.Background()

	for _, want := range []bool{false, true, false} {
		if err := repo.SetKidMode(ctx, want); err != nil {
			t.Fatalf("set kid mode %v: %v", want, err)
		}
		got, err := repo.KidMode(ctx)
		if err != nil {
			t.Fatalf("kid mode: %v", err)
		}
		if got != want {
			t.Errorf("KidMode() = %v, want %v", got, want)
		}
	}

	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM preferences").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("preference rows = %d, want 1 (upsert)", n)
	}
}

func TestKidModePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanzi.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.PreferenceRepo().SetKidMode(ctx, false); err != nil {
		t.Fatalf("set kid mode: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	on, err := s.PreferenceRepo().KidMode(ctx)
	if err != nil {
		t.Fatalf("kid mode: %v", err)
	}
	if on {
		t.Error("expected kid mode to stay off after reopen")
	}
}

func TestKidModeIgnoresGarbage(t *testing.T) {
	s := openTestStore(t)
	_, err := s.DB().Exec(
		"INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)",
		KeyKidMode, "maybe",
	)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	on, err := s.PreferenceRepo().KidMode(context.Background())
	if err != nil {
		t.Fatalf("kid mode: %v", err)
	}
	if !on {
		t.Error("expected unparsable value to fall back to on")
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("HANZI_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HANZI_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "hanzi", "hanzi.db"); got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}

func TestWithConnPragmas(t *testing.T) {
	if got := withConnPragmas("a.db"); !strings.HasPrefix(got, "a.db?_pragma=") {
		t.Errorf("withConnPragmas(a.db) = %q", got)
	}
	if got := withConnPragmas("file:x?mode=memory"); !strings.HasPrefix(got, "file:x?mode=memory&_pragma=") {
		t.Errorf("withConnPragmas(file:x?mode=memory) = %q", got)
	}
}
