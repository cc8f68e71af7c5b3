package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tallydev/tally/internal/model"
)

// Store is the persistence collaborator the service writes through.
// Load reports model.ErrNotFound when no ledger has been persisted.
type Store interface {
	Load() (*model.Ledger, error)
	Save(*model.Ledger) error
}

// Service owns the load-mutate-persist cycle around the pure ledger
// operations. The mutex makes the cycle a critical section; the store
// is assumed single-writer.
type Service struct {
	mu    sync.Mutex
	store Store
	now   func() model.DateKey
}

// NewService returns a service backed by st, using the local calendar
// day as the clock.
func NewService(st Store) *Service {
	return &Service{store: st, now: model.Today}
}

// NewServiceAt is NewService with an injectable clock, for rollover
// tests.
func NewServiceAt(st Store, now func() model.DateKey) *Service {
	return &Service{store: st, now: now}
}

// Open loads the persisted ledger (or initializes a fresh one), marks
// today as an app-open day, refreshes streaks, and persists. This is
// the entry point every command runs through.
func (s *Service) Open() (*model.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, fresh, err := s.loadOrInit()
	if err != nil {
		return nil, err
	}
	today := s.now()
	if !fresh && l.AppOpens[today] && l.LastResetDate == today {
		return l, nil
	}
	MarkOpened(l, today)
	if err := s.store.Save(l); err != nil {
		return l, fmt.Errorf("saving ledger: %w", err)
	}
	return l, nil
}

// Load returns the persisted ledger without mutating it, initializing
// defaults when nothing usable is stored.
func (s *Service) Load() (*model.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AddActivity sanitizes, validates, appends, and persists a new
// activity. Validation failures are never persisted.
func (s *Service) AddActivity(raw string) (*model.Ledger, error) {
	return s.mutate(func(l *model.Ledger) error {
		return AddActivity(l, raw)
	})
}

// DeleteActivity removes an activity and purges its history.
func (s *Service) DeleteActivity(name string) (*model.Ledger, error) {
	return s.mutate(func(l *model.Ledger) error {
		DeleteActivity(l, name)
		return nil
	})
}

// ToggleActivity flips completion of name on date.
func (s *Service) ToggleActivity(name string, date model.DateKey) (*model.Ledger, error) {
	return s.mutate(func(l *model.Ledger) error {
		return ToggleActivity(l, name, date)
	})
}

// ToggleTheme switches the stored theme.
func (s *Service) ToggleTheme() (*model.Ledger, error) {
	return s.mutate(func(l *model.Ledger) error {
		ToggleTheme(l)
		return nil
	})
}

// Today returns the service clock's current DateKey.
func (s *Service) Today() model.DateKey {
	return s.now()
}

func (s *Service) mutate(op func(*model.Ledger) error) (*model.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := op(l); err != nil {
		return l, err
	}
	if err := s.store.Save(l); err != nil {
		// The in-memory mutation stands; the caller decides whether to
		// retry or warn about unsaved state.
		return l, fmt.Errorf("saving ledger: %w", err)
	}
	return l, nil
}

func (s *Service) load() (*model.Ledger, error) {
	l, _, err := s.loadOrInit()
	return l, err
}

// loadOrInit loads the stored ledger, initializing defaults when
// nothing usable is stored. fresh reports that the ledger was
// initialized rather than loaded.
func (s *Service) loadOrInit() (l *model.Ledger, fresh bool, err error) {
	l, err = s.store.Load()
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrMalformed) {
			return model.New(s.now()), true, nil
		}
		return nil, false, fmt.Errorf("loading ledger: %w", err)
	}
	return l, false, nil
}
