package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	apperrors "task-tracker/internal/errors"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := filepath.Join(t.TempDir(), "data", "task.db")

	repo, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	cleanup := func() {
		repo.Close(context.Background())
	}

	return repo, cleanup
}

func TestNew(t *testing.T) {
	t.Run("empty path is a configuration error", func(t *testing.T) {
		repo, err := New(context.Background(), "")
		assert.Nil(t, repo)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeConfiguration))
	})

	t.Run("unopenable path is a database error", func(t *testing.T) {
		repo, err := New(context.Background(), t.TempDir())
		assert.Nil(t, repo)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
		assert.Contains(t, err.Error(), "run migrations")
	})

	t.Run("in-memory database", func(t *testing.T) {
		repo, err := New(context.Background(), MemoryPath)
		require.NoError(t, err)
		defer repo.Close(context.Background())

		id, ok := repo.Insert(context.Background(), "Buy milk")
		require.True(t, ok)
		task, ok := repo.Get(context.Background(), id)
		require.True(t, ok)
		assert.Equal(t, "Buy milk", task.Title)
	})

	t.Run("reopening keeps stored tasks", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "task.db")
		ctx := context.Background()

		repo, err := New(context.Background(), dbPath)
		require.NoError(t, err)
		id, ok := repo.Insert(ctx, "Survives restart")
		require.True(t, ok)
		require.NoError(t, repo.Close(ctx))

		repo, err = New(context.Background(), dbPath)
		require.NoError(t, err)
		defer repo.Close(ctx)

		task, ok := repo.Get(ctx, id)
		require.True(t, ok)
		assert.Equal(t, "Survives restart", task.Title)
	})
}

func TestInsert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, ok := repo.Insert(context.Background(), "Buy milk")
	require.True(t, ok)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, parsed.String(), id)

	other, ok := repo.Insert(context.Background(), "Buy milk")
	require.True(t, ok)
	assert.NotEqual(t, id, other, "same title must get a new identifier")
}

func TestInsert_ClosedDatabase(t *testing.T) {
	repo, err := New(context.Background(), filepath.Join(t.TempDir(), "task.db"))
	require.NoError(t, err)
	require.NoError(t, repo.Close(context.Background()))

	id, ok := repo.Insert(context.Background(), "Buy milk")
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	id, ok := domain.CreateTask(ctx, repo, "Buy milk")
	require.True(t, ok)

	tests := []struct {
		name      string
		id        string
		wantTitle string
		wantOK    bool
	}{
		{name: "stored id", id: id, wantTitle: "Buy milk", wantOK: true},
		{name: "upper-case form of stored id", id: upper(id), wantTitle: "Buy milk", wantOK: true},
		{name: "well-formed but absent id", id: uuid.Nil.String(), wantOK: false},
		{name: "malformed id", id: "not-an-id", wantOK: false},
		{name: "object id format", id: "000000000000000000000000", wantOK: false},
		{name: "empty id", id: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, ok := domain.GetTask(ctx, repo, tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, task)
				assert.Equal(t, tt.wantTitle, task.Title)
			} else {
				assert.Nil(t, task)
			}
		})
	}
}

func TestGet_ClosedDatabase(t *testing.T) {
	repo, err := New(context.Background(), filepath.Join(t.TempDir(), "task.db"))
	require.NoError(t, err)
	id, ok := repo.Insert(context.Background(), "Buy milk")
	require.True(t, ok)
	require.NoError(t, repo.Close(context.Background()))

	task, ok := repo.Get(context.Background(), id)
	assert.False(t, ok)
	assert.Nil(t, task)
}

func TestRoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for _, title := range []string{"a", "Unicode ✓ 日本語", "quote ' and \" marks", ""} {
		id, ok := domain.CreateTask(ctx, repo, title)
		require.True(t, ok)

		task, ok := domain.GetTask(ctx, repo, id)
		require.True(t, ok)
		assert.Equal(t, title, task.Title)
	}
}

func upper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}
