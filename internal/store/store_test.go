package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tallydev/tally/internal/model"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "habits.db"), opts...)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadMissingReturnsNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load(); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err = %v, want model.ErrNotFound", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	l := model.New("2024-06-15")
	l.Activities = []string{"Read", "Run"}
	l.DailyRecords["2024-06-15"] = model.DailyRecord{"Read": true}
	l.Theme = model.ThemeDark

	if err := s.Save(l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Activities) != 2 || got.Activities[0] != "Read" {
		t.Fatalf("Activities = %v", got.Activities)
	}
	if !got.Record("2024-06-15")["Read"] {
		t.Fatal("record lost")
	}
	if got.Theme != model.ThemeDark {
		t.Fatalf("theme = %q, want dark", got.Theme)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	s := openTestStore(t)

	l := model.New("2024-06-15")
	l.Activities = []string{"Read"}
	if err := s.Save(l); err != nil {
		t.Fatal(err)
	}

	l.Activities = []string{"Run"}
	if err := s.Save(l); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Activities) != 1 || got.Activities[0] != "Run" {
		t.Fatalf("Activities = %v, want [Run]", got.Activities)
	}
}

func TestSaveQuotaExceeded(t *testing.T) {
	s := openTestStore(t, WithQuota(64))

	l := model.New("2024-06-15")
	l.Activities = []string{"a habit with a name long enough to overflow a tiny quota"}

	if err := s.Save(l); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}

	// The rejected write must leave nothing behind.
	if _, err := s.Load(); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Load after rejected save err = %v, want model.ErrNotFound", err)
	}
}

func TestLoadMalformedBlob(t *testing.T) {
	s := openTestStore(t)

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO ledger_blob (key, value, saved_at) VALUES (?, ?, ?)",
		ledgerKey, []byte("{corrupt"), "2024-06-15T00:00:00Z",
	)
	if err != nil {
		t.Fatalf("inserting corrupt blob: %v", err)
	}

	if _, err := s.Load(); !errors.Is(err, model.ErrMalformed) {
		t.Fatalf("err = %v, want model.ErrMalformed", err)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "habits.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Save(model.New("2024-06-15")); err != nil {
		t.Fatalf("Save: %v", err)
	}
}
