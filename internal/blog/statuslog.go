package blog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogEntry records the outcome of one post write.
type LogEntry struct {
	LogID     string     `json:"log_id" yaml:"log_id"`
	PostID    int64      `json:"post_id" yaml:"post_id"`
	Status    PostStatus `json:"-" yaml:"-"`
	Code      int64      `json:"code" yaml:"code"`
	Message   string     `json:"message" yaml:"message"`
	Kind      string     `json:"kind" yaml:"kind"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
}

// appendStatusLog writes a log row for result. The message and kind come
// from the status registry; an undeclared status fails the write.
func appendStatusLog(ctx context.Context, tx *sql.Tx, postID int64, result PostStatus) error {
	decl, err := Describe(result)
	if err != nil {
		return fmt.Errorf("describing %s: %w", result, err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating UUID v7: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO status_log (log_id, post_id, code, message, kind, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id.String(), postID, result.Code(), decl.Message, decl.Kind.String(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending status log: %w", err)
	}
	return nil
}

// StatusLog returns the status log oldest first.
func (s *Store) StatusLog(ctx context.Context) ([]*LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	// UUID v7 ids sort by creation time.
	rows, err := db.QueryContext(ctx,
		"SELECT log_id, post_id, code, message, kind, created_at FROM status_log ORDER BY log_id",
	)
	if err != nil {
		return nil, fmt.Errorf("querying status log: %w", err)
	}
	defer rows.Close()

	entries := []*LogEntry{}
	for rows.Next() {
		var (
			e         LogEntry
			createdAt string
		)
		if err := rows.Scan(&e.LogID, &e.PostID, &e.Code, &e.Message, &e.Kind, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning status log: %w", err)
		}
		if e.Status, err = PostStatusFromCode(e.Code); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
