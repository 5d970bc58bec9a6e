package blog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), Config{DataDir: t.TempDir()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTopics(t *testing.T, s *Store) {
	t.Helper()
	n, err := s.Seed(context.Background(), "Technology", "Lifestyle")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := Open(context.Background(), Config{DataDir: dir}, nil)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, DatabaseFile))
	assert.NoError(t, err, "database file should be created")
	assert.Equal(t, filepath.Join(dir, DatabaseFile), s.Path())
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(context.Background(), Config{}, nil)
	assert.ErrorIs(t, err, ErrDataDirEmpty)
}

func TestOpenPreservesData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, Config{DataDir: dir}, nil)
	require.NoError(t, err)
	seedTopics(t, s)
	require.NoError(t, s.Close())

	s, err = Open(ctx, Config{DataDir: dir}, nil)
	require.NoError(t, err)
	defer s.Close()

	topics, err := s.ListTopics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 2)

	n, err := s.Seed(ctx, "Technology", "Lifestyle")
	require.NoError(t, err)
	assert.Equal(t, 0, n, "seed must not duplicate existing topics")
}

func TestSeedConcurrent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	const callers = 8
	inserted := make([]int, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted[i], errs[i] = s.Seed(ctx, "Technology", "Lifestyle")
		}()
	}
	wg.Wait()

	total := 0
	for i := range callers {
		require.NoError(t, errs[i])
		total += inserted[i]
	}
	assert.Equal(t, 2, total, "exactly one caller seeds")

	topics, err := s.ListTopics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 2)
}

func TestSeedRejectsEmptyTitle(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Seed(context.Background(), "Technology", "")
	assert.ErrorIs(t, err, ErrInvalidTitle)

	topics, err := s.ListTopics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestUpsertPostLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedTopics(t, s)

	// Insert a new post.
	p := &Post{Title: "First Post", Content: "This is the content of the first post.", MainTopicID: 1}
	got, err := s.UpsertPost(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, NewRecord, got)
	assert.Equal(t, int64(1), p.ID)

	// Update it.
	p = &Post{ID: 1, Title: "Updated Post", Content: "This is the updated content.", MainTopicID: 1}
	got, err = s.UpsertPost(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, UpdatedRecord, got)

	stored, err := s.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Updated Post", stored.Title)
	assert.Equal(t, "This is the updated content.", stored.Content)

	// Unknown topic.
	p = &Post{Title: "Invalid Post", Content: "This post has an invalid MainTopicId.", MainTopicID: 999}
	got, err = s.UpsertPost(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, UserInformationCouldNotBeVerified, got)

	decl, err := Describe(got)
	require.NoError(t, err)
	assert.Equal(t, "User Information Could Not Be Verified", decl.Message)
	assert.True(t, IsError(got))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1, "rejected post must not be written")
}

func TestUpsertPostRejectsEmptyTitle(t *testing.T) {
	s := openTestStore(t)
	_, err := s.UpsertPost(context.Background(), &Post{MainTopicID: 1})
	assert.ErrorIs(t, err, ErrInvalidTitle)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedTopics(t, s)

	p := &Post{Title: "Doomed", Content: "x", MainTopicID: 2}
	_, err := s.UpsertPost(ctx, p)
	require.NoError(t, err)

	got, err := s.DeletePost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, DeletedRecord, got)

	_, err = s.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.DeletePost(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatusLog(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedTopics(t, s)

	p := &Post{Title: "Logged", Content: "x", MainTopicID: 1}
	_, err := s.UpsertPost(ctx, p)
	require.NoError(t, err)
	_, err = s.UpsertPost(ctx, &Post{Title: "Orphan", Content: "x", MainTopicID: 50})
	require.NoError(t, err)
	_, err = s.DeletePost(ctx, p.ID)
	require.NoError(t, err)

	entries, err := s.StatusLog(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, NewRecord, entries[0].Status)
	assert.Equal(t, "New Record Created.", entries[0].Message)
	assert.Equal(t, "Success", entries[0].Kind)
	assert.Equal(t, p.ID, entries[0].PostID)

	assert.Equal(t, UserInformationCouldNotBeVerified, entries[1].Status)
	assert.Equal(t, "Error", entries[1].Kind)

	assert.Equal(t, DeletedRecord, entries[2].Status)
	assert.Equal(t, "Record Deleted.", entries[2].Message)

	for _, e := range entries {
		assert.Len(t, e.LogID, 36)
		assert.False(t, e.CreatedAt.IsZero())
	}
}

func TestClosedStore(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Config{DataDir: t.TempDir()}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close is idempotent")

	_, err = s.ListPosts(ctx)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.UpsertPost(ctx, &Post{Title: "x"})
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.SaveTopic(ctx, "x")
	assert.ErrorIs(t, err, ErrClosed)
}
