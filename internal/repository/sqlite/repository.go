package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"task-tracker/internal/domain"
	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Repository stores tasks in an embedded SQLite database. Identifiers are
// random UUIDs in canonical text form.
type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ domain.Driver = (*Repository)(nil)

// New opens (creating if needed) the database at dbPath and brings its schema up to date.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	if dbPath == "" {
		return nil, apperrors.NewConfigurationError("TASK_DB_PATH", "database path cannot be empty", nil)
	}

	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, apperrors.NewConfigurationError("TASK_DB_PATH", "failed to create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open database", err)
	}
	if dbPath == MemoryPath {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := migrations.Apply(ctx, db); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}

	return &Repository{
		db:     db,
		logger: logging.Logger().With("backend", "sqlite", "path", dbPath),
	}, nil
}

// Close closes the database connection
func (r *Repository) Close(_ context.Context) error {
	return r.db.Close()
}

// Insert stores a new entry under a fresh UUID
func (r *Repository) Insert(ctx context.Context, title string) (string, bool) {
	id := uuid.NewString()
	query := `INSERT INTO entry (id, title) VALUES (?, ?)`

	if err := ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id, title); err != nil {
		r.report("insert_task", err)
		return "", false
	}

	r.logger.Debug("insert_task", "id", id)
	return id, true
}

// Get retrieves an entry by its UUID
func (r *Repository) Get(ctx context.Context, id string) (*domain.Task, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		r.report("get_task", apperrors.NewInvalidInputError("id", id, "not a valid uuid"))
		return nil, false
	}

	query := `SELECT id, title FROM entry WHERE id = ?`
	entry, err := QuerySingle(ctx, r.db, query, ScanEntry, "task", id, parsed.String())
	if err != nil {
		r.report("get_task", err)
		return nil, false
	}

	r.logger.Debug("get_task", "id", entry.ID)
	return entry.toDomain(), true
}

// report logs a failure that is about to be collapsed into an empty result.
func (r *Repository) report(op string, err error) {
	attrs := apperrors.LogAttrs(err, "identifier", "rows_affected")
	if apperrors.ShouldLogError(err) {
		r.logger.Warn(op, attrs...)
		return
	}
	r.logger.Debug(op, attrs...)
}
