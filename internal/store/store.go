// Package store provides a SQLite-backed state store remembering the last
// viewed line per file and recently used search terms.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	path     TEXT PRIMARY KEY,
	line     INTEGER NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS search_terms (
	term   TEXT PRIMARY KEY,
	used   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_terms_used ON search_terms(used);
`

// maxTerms caps how many recent search terms are kept.
const maxTerms = 50

// Store is a SQLite-backed session state store.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates or opens a state database at the given path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// LastLine returns the remembered line for a file path.
// Safe to call on a nil receiver (returns miss).
func (s *Store) LastLine(path string) (int, bool) {
	if s == nil {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var line int
	err := s.db.QueryRow(
		"SELECT line FROM positions WHERE path = ?",
		path,
	).Scan(&line)
	if err != nil {
		return 0, false
	}
	return line, true
}

// SetLastLine remembers the current line for a file path. No-op on nil receiver.
func (s *Store) SetLastLine(path string, line int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO positions (path, line, updated) VALUES (?, ?, ?)",
		path, line, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to store position")
	}
}

// LastTerm returns the most recently used search term.
// Safe to call on a nil receiver (returns miss).
func (s *Store) LastTerm() (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var term string
	err := s.db.QueryRow(
		"SELECT term FROM search_terms ORDER BY used DESC LIMIT 1",
	).Scan(&term)
	if err != nil {
		return "", false
	}
	return term, true
}

// RecordTerm stores a search term, trimming the history to the most recent
// entries. No-op on nil receiver or empty term.
func (s *Store) RecordTerm(term string) {
	if s == nil {
		return
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO search_terms (term, used) VALUES (?, ?)",
		term, time.Now().UnixNano(),
	)
	if err != nil {
		log.Warn().Err(err).Str("term", term).Msg("failed to record search term")
		return
	}
	_, err = s.db.Exec(
		`DELETE FROM search_terms WHERE term NOT IN (
			SELECT term FROM search_terms ORDER BY used DESC LIMIT ?
		)`,
		maxTerms,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to trim search terms")
	}
}
