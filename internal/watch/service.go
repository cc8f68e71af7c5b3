// Package watch provides the long-running rollover watcher: a
// localhost service that detects date changes, keeps streaks current,
// and publishes ledger progress events over HTTP/SSE.
package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/tallydev/tally/internal/ledger"
	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/stats"
	"github.com/tallydev/tally/internal/store"
)

// Config controls the watcher runtime behavior.
type Config struct {
	DBPath       string
	Interval     time.Duration
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact ledger state for status/event payloads.
type Snapshot struct {
	At             time.Time     `json:"at"`
	Date           model.DateKey `json:"date"`
	Activities     int           `json:"activities"`
	CompletedToday int           `json:"completed_today"`
	TodayPercent   int           `json:"today_percent"`
	WeekPercent    int           `json:"week_percent"`
	MonthPercent   int           `json:"month_percent"`
	CurrentStreak  int           `json:"current_streak"`
	BestStreak     int           `json:"best_streak"`
}

// Delta captures snapshot changes between polls.
type Delta struct {
	CompletedToday int `json:"completed_today"`
	CurrentStreak  int `json:"current_streak"`
}

func (d Delta) isZero() bool {
	return d.CompletedToday == 0 && d.CurrentStreak == 0
}

// Event is emitted on rollover and whenever progress changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Event types.
const (
	EventSnapshot      = "snapshot"
	EventDayRollover   = "day_rollover"
	EventProgressDelta = "progress_delta"
)

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DBPath          string    `json:"db_path"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the watcher runtime and HTTP API.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new watcher service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = time.Minute
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8790"
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("watch http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	now := time.Now()
	led, rolledOver, err := s.loadLedger()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("tally watch poll error: %v", err)
		return
	}

	snap := snapshotFromLedger(led, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	switch {
	case !prevExists:
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      EventSnapshot,
			Timestamp: now,
			Snapshot:  snap,
		}
		publish = true
	case rolledOver:
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      EventDayRollover,
			Timestamp: now,
			Snapshot:  snap,
			Delta:     diffSnapshots(prev, snap),
		}
		publish = true
	default:
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      EventProgressDelta,
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

// loadLedger opens the store, handles date rollover (marking the new
// day opened and re-deriving streaks), and returns the current ledger.
func (s *Service) loadLedger() (*model.Ledger, bool, error) {
	st, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = st.Close() }()

	svc := ledger.NewService(st)
	led, err := svc.Load()
	if err != nil {
		return nil, false, err
	}

	today := svc.Today()
	if led.LastResetDate == today {
		return led, false, nil
	}

	// Date rollover: mark the new day and persist the re-derivation.
	led, err = svc.Open()
	if err != nil {
		return nil, false, err
	}
	return led, true, nil
}

func snapshotFromLedger(l *model.Ledger, at time.Time) Snapshot {
	today := model.DateKeyOf(at)
	day := stats.SnapshotDay(today, l)
	week := stats.ComputeSuccess(stats.WeekRange(today), l)
	month := stats.ComputeSuccess(stats.MonthRange(at.Year(), at.Month()), l)

	return Snapshot{
		At:             at,
		Date:           today,
		Activities:     len(l.Activities),
		CompletedToday: day.CompletedCount,
		TodayPercent:   day.Percentage,
		WeekPercent:    week.Overall,
		MonthPercent:   month.Overall,
		CurrentStreak:  l.CurrentStreak,
		BestStreak:     l.BestStreak,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		CompletedToday: curr.CompletedToday - prev.CompletedToday,
		CurrentStreak:  curr.CurrentStreak - prev.CurrentStreak,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DBPath:          s.cfg.DBPath,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      EventSnapshot,
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
