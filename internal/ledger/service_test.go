package ledger

import (
	"errors"
	"testing"

	"github.com/tallydev/tally/internal/model"
)

// memStore is an in-memory Store with injectable failures.
type memStore struct {
	led     *model.Ledger
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() (*model.Ledger, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.led == nil {
		return nil, model.ErrNotFound
	}
	return m.led, nil
}

func (m *memStore) Save(l *model.Ledger) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.led = l
	return nil
}

func fixedDay(d model.DateKey) func() model.DateKey {
	return func() model.DateKey { return d }
}

func TestOpenInitializesFreshLedger(t *testing.T) {
	st := &memStore{}
	svc := NewServiceAt(st, fixedDay("2024-06-15"))

	l, err := svc.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !l.AppOpens["2024-06-15"] {
		t.Fatal("today not marked as opened")
	}
	if l.CurrentStreak != 1 {
		t.Fatalf("CurrentStreak = %d, want 1", l.CurrentStreak)
	}
	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1", st.saves)
	}
}

func TestOpenSkipsSaveWhenAlreadyOpenedToday(t *testing.T) {
	st := &memStore{}
	svc := NewServiceAt(st, fixedDay("2024-06-15"))

	if _, err := svc.Open(); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Open(); err != nil {
		t.Fatal(err)
	}
	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1 (second open is a no-op)", st.saves)
	}
}

func TestOpenRollsOverToNewDay(t *testing.T) {
	st := &memStore{}
	svc := NewServiceAt(st, fixedDay("2024-06-15"))
	if _, err := svc.Open(); err != nil {
		t.Fatal(err)
	}

	next := NewServiceAt(st, fixedDay("2024-06-16"))
	l, err := next.Open()
	if err != nil {
		t.Fatal(err)
	}
	if l.LastResetDate != "2024-06-16" {
		t.Fatalf("LastResetDate = %q, want 2024-06-16", l.LastResetDate)
	}
	if l.CurrentStreak != 2 {
		t.Fatalf("CurrentStreak = %d, want 2", l.CurrentStreak)
	}
}

func TestMalformedStoreFallsBackToDefaults(t *testing.T) {
	st := &memStore{loadErr: model.ErrMalformed}
	svc := NewServiceAt(st, fixedDay("2024-06-15"))

	l, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l.Activities) != 0 || l.LastResetDate != "2024-06-15" {
		t.Fatalf("fallback ledger = %+v, want fresh defaults", l)
	}
}

func TestMutationSurvivesFailedSave(t *testing.T) {
	st := &memStore{}
	svc := NewServiceAt(st, fixedDay("2024-06-15"))
	if _, err := svc.Open(); err != nil {
		t.Fatal(err)
	}

	st.saveErr = errors.New("disk full")
	l, err := svc.AddActivity("Read")
	if err == nil {
		t.Fatal("expected save error")
	}
	if l == nil || !l.HasActivity("Read") {
		t.Fatal("in-memory mutation must stand despite failed save")
	}
}

func TestValidationFailureNeverSaves(t *testing.T) {
	st := &memStore{}
	svc := NewServiceAt(st, fixedDay("2024-06-15"))
	if _, err := svc.Open(); err != nil {
		t.Fatal(err)
	}
	savesBefore := st.saves

	if _, err := svc.AddActivity("  "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
	if st.saves != savesBefore {
		t.Fatalf("saves = %d, want %d (validation failure must not persist)", st.saves, savesBefore)
	}
}

func TestToggleThroughService(t *testing.T) {
	st := &memStore{}
	svc := NewServiceAt(st, fixedDay("2024-06-15"))
	if _, err := svc.Open(); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddActivity("Read"); err != nil {
		t.Fatal(err)
	}

	l, err := svc.ToggleActivity("Read", svc.Today())
	if err != nil {
		t.Fatalf("ToggleActivity: %v", err)
	}
	if !l.Record("2024-06-15")["Read"] {
		t.Fatal("toggle not persisted")
	}

	if _, err := svc.ToggleActivity("Ghost", svc.Today()); !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("err = %v, want ErrUnknownActivity", err)
	}
}
