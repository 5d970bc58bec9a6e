package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// Topic is a main topic heading that posts belong to.
type Topic struct {
	ID    int64  `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Post is a blog post.
type Post struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Content     string `json:"content" yaml:"content"`
	MainTopicID int64  `json:"main_topic_id" yaml:"main_topic_id"`
}

// SaveTopic inserts a main topic and returns it with its assigned ID.
func (s *Store) SaveTopic(ctx context.Context, title string) (*Topic, error) {
	if title == "" {
		return nil, ErrInvalidTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	res, err := db.ExecContext(ctx, "INSERT INTO main_topics (title) VALUES (?)", title)
	if err != nil {
		return nil, fmt.Errorf("inserting topic: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading topic id: %w", err)
	}
	return &Topic{ID: id, Title: title}, nil
}

// Seed inserts the given topics when the topic table is empty. It returns the
// number of topics inserted. The emptiness check and the inserts share one
// transaction, so concurrent calls seed at most once.
func (s *Store) Seed(ctx context.Context, titles ...string) (int, error) {
	for _, title := range titles {
		if title == "" {
			return 0, ErrInvalidTitle
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM main_topics").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting topics: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	for _, title := range titles {
		if _, err := tx.ExecContext(ctx, "INSERT INTO main_topics (title) VALUES (?)", title); err != nil {
			return 0, fmt.Errorf("seeding topic %q: %w", title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed: %w", err)
	}

	s.logger.Info("topics seeded", slog.Int("count", len(titles)))
	return len(titles), nil
}

// ListTopics returns all topics ordered by ID.
func (s *Store) ListTopics(ctx context.Context) ([]*Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, "SELECT id, title FROM main_topics ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	defer rows.Close()

	topics := []*Topic{}
	for rows.Next() {
		var t Topic
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		topics = append(topics, &t)
	}
	return topics, rows.Err()
}

// UpsertPost inserts or updates a post and reports the outcome:
//
//   - UserInformationCouldNotBeVerified when MainTopicID names no topic;
//     nothing is written to blog_posts.
//   - UpdatedRecord when a post with p.ID exists; it is overwritten.
//   - NewRecord otherwise; p.ID is set to the newly assigned ID.
//
// Every outcome is appended to the status log in the same transaction.
func (s *Store) UpsertPost(ctx context.Context, p *Post) (PostStatus, error) {
	if p.Title == "" {
		return 0, ErrInvalidTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := upsertPostTx(ctx, tx, p)
	if err != nil {
		return 0, err
	}
	if err := appendStatusLog(ctx, tx, p.ID, result); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing post: %w", err)
	}

	s.logger.Info("post upserted",
		slog.Int64("post_id", p.ID),
		slog.String("status", result.String()),
	)
	return result, nil
}

func upsertPostTx(ctx context.Context, tx *sql.Tx, p *Post) (PostStatus, error) {
	found, err := exists(ctx, tx, "SELECT 1 FROM main_topics WHERE id = ?", p.MainTopicID)
	if err != nil {
		return 0, fmt.Errorf("checking topic: %w", err)
	}
	if !found {
		return UserInformationCouldNotBeVerified, nil
	}

	found, err = exists(ctx, tx, "SELECT 1 FROM blog_posts WHERE id = ?", p.ID)
	if err != nil {
		return 0, fmt.Errorf("checking post: %w", err)
	}
	if found {
		_, err := tx.ExecContext(ctx,
			"UPDATE blog_posts SET title = ?, content = ?, main_topic_id = ? WHERE id = ?",
			p.Title, p.Content, p.MainTopicID, p.ID,
		)
		if err != nil {
			return 0, fmt.Errorf("updating post: %w", err)
		}
		return UpdatedRecord, nil
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO blog_posts (title, content, main_topic_id) VALUES (?, ?, ?)",
		p.Title, p.Content, p.MainTopicID,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading post id: %w", err)
	}
	p.ID = id
	return NewRecord, nil
}

// DeletePost removes a post. Returns ErrNotFound if no post has the ID.
func (s *Store) DeletePost(ctx context.Context, id int64) (PostStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	if err := appendStatusLog(ctx, tx, id, DeletedRecord); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing delete: %w", err)
	}

	s.logger.Info("post deleted", slog.Int64("post_id", id))
	return DeletedRecord, nil
}

// GetPost returns the post with the given ID.
// Returns ErrNotFound if no post has the ID.
func (s *Store) GetPost(ctx context.Context, id int64) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	var p Post
	err = db.QueryRowContext(ctx,
		"SELECT id, title, content, main_topic_id FROM blog_posts WHERE id = ?", id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.MainTopicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting post %d: %w", id, err)
	}
	return &p, nil
}

// ListPosts returns all posts ordered by ID.
// Returns an empty slice (not nil) when there are none.
func (s *Store) ListPosts(ctx context.Context) ([]*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, "SELECT id, title, content, main_topic_id FROM blog_posts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.MainTopicID); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func exists(ctx context.Context, tx *sql.Tx, query string, args ...any) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
