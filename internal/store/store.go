// Package store persists the habit ledger as a single JSON blob in a
// SQLite key-value table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tallydev/tally/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultQuota is the maximum serialized ledger size in bytes.
const DefaultQuota = 5_000_000

// ErrQuotaExceeded means the serialized ledger outgrew the size limit.
// The write is rejected; the on-disk blob is left untouched.
var ErrQuotaExceeded = errors.New("ledger exceeds storage quota")

// Store is the SQLite-backed blob store for the ledger.
type Store struct {
	db    *sql.DB
	quota int
}

// Option configures a Store.
type Option func(*Store)

// WithQuota overrides the serialized-size limit. Tests use small
// quotas to exercise rejection.
func WithQuota(bytes int) Option {
	return func(s *Store) { s.quota = bytes }
}

// Open opens or creates the store database at the given path.
func Open(dbPath string, opts ...Option) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db, quota: DefaultQuota}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads and validates the persisted ledger. A missing blob
// returns model.ErrNotFound; a blob that fails schema validation is
// reported as malformed so callers can fall back to defaults.
func (s *Store) Load() (*model.Ledger, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT value FROM ledger_blob WHERE key = ?", ledgerKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger blob: %w", err)
	}
	return model.Parse(blob)
}

// Save serializes the ledger and overwrites the blob wholesale. Fails
// with ErrQuotaExceeded when the serialized form exceeds the quota.
func (s *Store) Save(l *model.Ledger) error {
	blob, err := model.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if len(blob) > s.quota {
		return fmt.Errorf("%w: %d bytes > %d", ErrQuotaExceeded, len(blob), s.quota)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO ledger_blob (key, value, saved_at) VALUES (?, ?, ?)",
		ledgerKey, blob, now,
	)
	if err != nil {
		return fmt.Errorf("writing ledger blob: %w", err)
	}
	return nil
}
