package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.up.sql
var schemaFS embed.FS

// Step is one forward-only schema change, embedded as NNNNNN_<name>.up.sql
type Step struct {
	Version int
	Name    string
	SQL     string
}

// Steps returns the embedded schema changes ordered by version
func Steps() ([]Step, error) {
	files, err := fs.Glob(schemaFS, "*.up.sql")
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(files))
	seen := make(map[int]string, len(files))
	for _, file := range files {
		version, err := parseVersion(file)
		if err != nil {
			return nil, err
		}
		if other, dup := seen[version]; dup {
			return nil, fmt.Errorf("schema version %d used by both %s and %s", version, other, file)
		}
		seen[version] = file

		body, err := schemaFS.ReadFile(file)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{
			Version: version,
			Name:    strings.TrimSuffix(file, ".up.sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].Version < steps[j].Version })
	return steps, nil
}

// Version reads the schema version SQLite keeps in its file header
func Version(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
	return version, err
}

// Apply runs every step newer than the recorded schema version
func Apply(ctx context.Context, db *sql.DB) error {
	steps, err := Steps()
	if err != nil {
		return fmt.Errorf("load schema steps: %w", err)
	}

	current, err := Version(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, step := range steps {
		if step.Version <= current {
			continue
		}
		if err := applyStep(ctx, db, step); err != nil {
			return fmt.Errorf("apply %s: %w", step.Name, err)
		}
	}
	return nil
}

// applyStep runs the step and bumps user_version in one transaction
func applyStep(ctx context.Context, db *sql.DB, step Step) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
		return err
	}
	// PRAGMA statements take no bound parameters
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", step.Version)); err != nil {
		return err
	}
	return tx.Commit()
}

func parseVersion(file string) (int, error) {
	prefix, _, ok := strings.Cut(file, "_")
	if !ok {
		return 0, fmt.Errorf("schema file %s: want NNNNNN_<name>.up.sql", file)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, fmt.Errorf("schema file %s: version must be a positive integer", file)
	}
	return version, nil
}
