package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists journal entries to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite journal store.
// The path should be a file path (e.g., "./firings.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS firings (
			id TEXT PRIMARY KEY,
			event_name TEXT NOT NULL,
			caller TEXT NOT NULL DEFAULT '',
			data BLOB,
			fired_at TEXT NOT NULL,
			cancelled INTEGER NOT NULL,
			sequence INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_firings_event_name
		ON firings(event_name)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	row := s.db.QueryRow(`
		INSERT INTO firings (id, event_name, caller, data, fired_at, cancelled, sequence)
		VALUES (
			?, ?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(sequence) FROM firings), 0) + 1
		)
		RETURNING sequence
	`, entry.ID, entry.EventName, entry.Caller, entry.Data,
		entry.Time.UTC().Format(time.RFC3339Nano), boolToInt(entry.Cancelled))

	if err := row.Scan(&entry.Sequence); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// Get implements Store.
func (s *SQLiteStore) Get(id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	row := s.db.QueryRow(`
		SELECT id, event_name, caller, data, fired_at, cancelled, sequence
		FROM firings
		WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// List implements Store.
func (s *SQLiteStore) List(eventName string) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT id, event_name, caller, data, fired_at, cancelled, sequence
		FROM firings
		WHERE event_name = ?
		ORDER BY sequence
	`, eventName)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListAll implements Store.
func (s *SQLiteStore) ListAll(limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited
	}
	rows, err := s.db.Query(`
		SELECT id, event_name, caller, data, fired_at, cancelled, sequence
		FROM firings
		ORDER BY sequence
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list all entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// CountByEvent implements Store.
func (s *SQLiteStore) CountByEvent() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT event_name, COUNT(*)
		FROM firings
		GROUP BY event_name
	`)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// Purge implements Store.
func (s *SQLiteStore) Purge(eventName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`
		DELETE FROM firings WHERE event_name = ?
	`, eventName); err != nil {
		return fmt.Errorf("purge entries: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var entry Entry
	var firedAt string
	var cancelled int
	if err := row.Scan(&entry.ID, &entry.EventName, &entry.Caller, &entry.Data,
		&firedAt, &cancelled, &entry.Sequence); err != nil {
		return nil, err
	}
	entry.Time, _ = time.Parse(time.RFC3339Nano, firedAt)
	entry.Cancelled = cancelled != 0
	return &entry, nil
}

func collectEntries(rows *sql.Rows) ([]*Entry, error) {
	entries := make([]*Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
