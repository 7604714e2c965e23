// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     journal
// Description: Persistent journal of processed launcher command lines
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
)

// Entry is one processed command line
type Entry struct {
	ID          string            `json:"id" yaml:"id"`
	Timestamp   time.Time         `json:"timestamp" yaml:"timestamp"`
	RequestID   string            `json:"request_id" yaml:"request_id"`
	Application string            `json:"application" yaml:"application"`
	Options     map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
	// Command is the shortcut-resolved command
	Command string `json:"command" yaml:"command"`
	// Unresolved is the command as typed
	Unresolved string `json:"unresolved" yaml:"unresolved"`
	Message    string `json:"message" yaml:"message"`
	ExitCode   int    `json:"exit_code" yaml:"exit_code"`
}

// Filter selects journal entries. Zero fields match everything.
type Filter struct {
	Since       time.Time
	Message     string
	Application string
	Limit       int
}

// Stats summarizes the journal
type Stats struct {
	Total     int64            `json:"total" yaml:"total"`
	Failures  int64            `json:"failures" yaml:"failures"`
	ByMessage map[string]int64 `json:"by_message" yaml:"by_message"`
	LastEntry time.Time        `json:"last_entry,omitempty" yaml:"last_entry,omitempty"`
}

// Store persists journal entries
type Store interface {
	Record(ctx context.Context, entry *Entry) error
	Query(ctx context.Context, filter Filter) ([]*Entry, error)
	Stats(ctx context.Context) (Stats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/journal.db",
	}
}

// Open creates or opens the journal database
func Open(cfg Config) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storeError(err, "failed to create journal directory", "journal.Open").
			WithDetail("path", cfg.Path)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storeError(err, "failed to open journal", "journal.Open").
			WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storeError(err, "failed to initialize schema", "journal.Open").
			WithDetail("path", cfg.Path)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS launches (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		request_id TEXT NOT NULL,
		application TEXT NOT NULL,
		options TEXT,
		command TEXT NOT NULL,
		unresolved TEXT NOT NULL,
		message TEXT NOT NULL,
		exit_code INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_launches_timestamp ON launches(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_launches_message ON launches(message);
	CREATE INDEX IF NOT EXISTS idx_launches_application ON launches(application);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores an entry, filling in ID and Timestamp when empty
func (s *SQLiteStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(entry)

	var optionsJSON []byte
	if len(entry.Options) > 0 {
		var err error
		if optionsJSON, err = json.Marshal(entry.Options); err != nil {
			return storeError(err, "failed to encode options", "journal.Record").
				WithDetail("id", entry.ID)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO launches (id, timestamp, request_id, application, options, command, unresolved, message, exit_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Timestamp, entry.RequestID, entry.Application, optionsJSON,
		entry.Command, entry.Unresolved, entry.Message, entry.ExitCode)
	if err != nil {
		return storeError(err, "failed to insert journal entry", "journal.Record").
			WithDetail("id", entry.ID)
	}

	return nil
}

// Query returns matching entries, newest first
func (s *SQLiteStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, timestamp, request_id, application, options, command, unresolved, message, exit_code
		FROM launches WHERE 1=1`
	var args []interface{}

	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since.UTC())
	}
	if filter.Message != "" {
		query += " AND message = ?"
		args = append(args, filter.Message)
	}
	if filter.Application != "" {
		query += " AND application = ?"
		args = append(args, filter.Application)
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query journal", "journal.Query")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var optionsJSON sql.NullString

		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.RequestID, &entry.Application,
			&optionsJSON, &entry.Command, &entry.Unresolved, &entry.Message, &entry.ExitCode); err != nil {
			return nil, storeError(err, "failed to scan journal entry", "journal.Query")
		}

		if optionsJSON.Valid && optionsJSON.String != "" {
			if err := json.Unmarshal([]byte(optionsJSON.String), &entry.Options); err != nil {
				return nil, storeError(err, "failed to decode journal options", "journal.Query").
					WithDetail("id", entry.ID)
			}
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to read journal", "journal.Query")
	}
	return entries, nil
}

// Stats returns entry counts per message
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{ByMessage: make(map[string]int64)}

	rows, err := s.db.QueryContext(ctx, `SELECT message, COUNT(*), SUM(CASE WHEN exit_code != 0 THEN 1 ELSE 0 END) FROM launches GROUP BY message`)
	if err != nil {
		return stats, storeError(err, "failed to read journal stats", "journal.Stats")
	}
	defer rows.Close()

	for rows.Next() {
		var message string
		var count, failures int64
		if err := rows.Scan(&message, &count, &failures); err != nil {
			return stats, storeError(err, "failed to scan journal stats", "journal.Stats")
		}
		stats.ByMessage[message] = count
		stats.Total += count
		stats.Failures += failures
	}

	if stats.Total > 0 {
		var last Entry
		err := s.db.QueryRowContext(ctx, `SELECT timestamp FROM launches ORDER BY timestamp DESC LIMIT 1`).
			Scan(&last.Timestamp)
		if err != nil {
			return stats, storeError(err, "failed to read last journal entry", "journal.Stats")
		}
		stats.LastEntry = last.Timestamp
	}

	return stats, nil
}

// Prune deletes entries older than the given age
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()

	result, err := s.db.ExecContext(ctx, `DELETE FROM launches WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, storeError(err, "failed to prune journal", "journal.Prune")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory implementation, used in tests
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record stores an entry
func (s *MemoryStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(entry)
	s.entries = append(s.entries, entry)
	return nil
}

// Query returns matching entries, newest first
func (s *MemoryStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Entry
	for _, e := range s.entries {
		if !filter.Since.IsZero() && e.Timestamp.Before(filter.Since) {
			continue
		}
		if filter.Message != "" && e.Message != filter.Message {
			continue
		}
		if filter.Application != "" && e.Application != filter.Application {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Stats returns entry counts per message
func (s *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{ByMessage: make(map[string]int64)}
	for _, e := range s.entries {
		stats.Total++
		stats.ByMessage[e.Message]++
		if e.ExitCode != 0 {
			stats.Failures++
		}
		if e.Timestamp.After(stats.LastEntry) {
			stats.LastEntry = e.Timestamp
		}
	}
	return stats, nil
}

// Prune deletes entries older than the given age
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	kept := s.entries[:0]
	var deleted int64
	for _, e := range s.entries {
		if e.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return deleted, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

func prepare(entry *Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	// stored as text; one zone keeps the ordering lexical
	entry.Timestamp = entry.Timestamp.UTC()
}

func storeError(err error, message, op string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeInternal).
		WithOperation(op)
}
