package config

import (
	"os"
	"path/filepath"
	"strconv"

	"task-tracker/internal/repository/mongodb"
)

// Supported storage backends
const (
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

// Environment variables read by LoadFromEnvironment
const (
	EnvBackend    = "TASK_BACKEND"
	EnvMongoURL   = "MONGO_DB_URL"
	EnvSQLitePath = "TASK_DB_PATH"
	EnvDebug      = "TASK_DEBUG"
)

// Config holds all configuration options for the task tracker
type Config struct {
	Database    DatabaseConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Backend    string `env:"TASK_BACKEND"`
	MongoURL   string `env:"MONGO_DB_URL"`
	Name       string
	Collection string
	AppName    string
	SQLitePath string `env:"TASK_DB_PATH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Debug bool `env:"TASK_DEBUG"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Backend:    BackendMongo,
			Name:       mongodb.DefaultDatabase,
			Collection: mongodb.DefaultCollection,
			AppName:    mongodb.DefaultAppName,
			SQLitePath: filepath.Join(homeDir, ".task", "task.db"),
		},
	}
}

// MongoOptions returns the connection settings for the mongo backend
func (c *Config) MongoOptions() mongodb.Options {
	return mongodb.Options{
		URL:        c.Database.MongoURL,
		Database:   c.Database.Name,
		Collection: c.Database.Collection,
		AppName:    c.Database.AppName,
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv(EnvBackend); backend != "" {
		c.Database.Backend = backend
	}
	if url := os.Getenv(EnvMongoURL); url != "" {
		c.Database.MongoURL = url
	}
	if path := os.Getenv(EnvSQLitePath); path != "" {
		c.Database.SQLitePath = path
	}
	if debug := os.Getenv(EnvDebug); debug != "" {
		// any value other than an explicit false turns debug on
		if b, err := strconv.ParseBool(debug); err == nil {
			c.Application.Debug = b
		} else {
			c.Application.Debug = true
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors.
// A missing MONGO_DB_URL is reported when the backend is constructed.
func (c *Config) Validate() error {
	switch c.Database.Backend {
	case BackendMongo:
		if c.Database.Name == "" {
			return &ConfigError{Field: "database.name", Message: "database name cannot be empty"}
		}
		if c.Database.Collection == "" {
			return &ConfigError{Field: "database.collection", Message: "collection name cannot be empty"}
		}
	case BackendSQLite:
		if c.Database.SQLitePath == "" {
			return &ConfigError{Field: "database.sqlite_path", Message: "database path cannot be empty"}
		}
	default:
		return &ConfigError{
			Field:   "database.backend",
			Message: "unknown backend " + strconv.Quote(c.Database.Backend) + " (expected mongo or sqlite)",
		}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
