package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Store errors.
var (
	ErrNotFound     = errors.New("post not found")
	ErrInvalidTitle = errors.New("title must not be empty")
	ErrClosed       = errors.New("store is closed")
)

// Store persists topics, posts and the status log in a SQLite database.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open validates cfg, creates DataDir if needed, opens the database and
// applies the schema. A nil logger discards log output.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(cfg.DataDir, DatabaseFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps PRAGMA settings and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	logger.Debug("blog store opened", slog.String("path", path))
	return &Store{db: db, path: path, logger: logger}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// conn returns the open database or ErrClosed. Callers hold s.mu.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}
