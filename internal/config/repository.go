package config

import (
	"context"
	"fmt"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository/mongodb"
	"task-tracker/internal/repository/sqlite"
)

// Repository is a storage backend the process owns and must close
type Repository interface {
	domain.Driver
	Close(ctx context.Context) error
}

// CreateRepository creates the backend selected by config.Database.Backend
func CreateRepository(ctx context.Context, config *Config) (Repository, error) {
	switch config.Database.Backend {
	case BackendMongo:
		repo, err := mongodb.New(ctx, config.MongoOptions())
		if err != nil {
			return nil, err
		}
		return repo, nil
	case BackendSQLite:
		repo, err := sqlite.New(ctx, config.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, &ConfigError{
			Field:   "database.backend",
			Message: fmt.Sprintf("unknown backend %q", config.Database.Backend),
		}
	}
}
