package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	envFiles []string
	envErr   error
}

// NewLoader creates a configuration loader that reads envFiles (default ".env")
// before consulting the environment
func NewLoader(envFiles ...string) *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: envFiles,
	}
}

// LoadDotEnv copies variables from the given files (default ".env") into the
// process environment. Variables that are already set win. Missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		if err := godotenv.Load(filename); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &ConfigError{Field: filename, Message: err.Error()}
		}
	}
	return nil
}

// LoadWithOverrides loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Fill unset variables from the .env files
// 3. Override with environment variables
// 4. Override with command line flags
//
// An unreadable .env file does not fail the load; see DotEnvError.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	l.envErr = LoadDotEnv(l.envFiles...)

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// DotEnvError returns the error hit while reading .env files during the last load
func (l *Loader) DotEnvError() error {
	return l.envErr
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Backend    *string
	MongoURL   *string
	SQLitePath *string
	Debug      *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Database.Backend = *overrides.Backend
	}
	if overrides.MongoURL != nil {
		config.Database.MongoURL = *overrides.MongoURL
	}
	if overrides.SQLitePath != nil {
		config.Database.SQLitePath = *overrides.SQLitePath
	}
	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
}
