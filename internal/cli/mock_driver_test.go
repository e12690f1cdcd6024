package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// mockDriver implements config.Repository in memory for testing
type mockDriver struct {
	tasks      map[string]domain.Task
	nextID     int
	failWrites bool
	closed     bool
}

// newMockDriver creates a new mock driver instance
func newMockDriver() *mockDriver {
	return &mockDriver{tasks: make(map[string]domain.Task)}
}

func (m *mockDriver) Insert(_ context.Context, title string) (string, bool) {
	if m.failWrites {
		return "", false
	}
	m.nextID++
	id := fmt.Sprintf("%024x", m.nextID)
	m.tasks[id] = domain.NewTask(title)
	return id, true
}

func (m *mockDriver) Get(_ context.Context, id string) (*domain.Task, bool) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, false
	}
	return &task, true
}

func (m *mockDriver) Close(context.Context) error {
	m.closed = true
	return nil
}

// setupTestApp returns an App backed by a fresh mock driver and the buffer it writes to
func setupTestApp(t *testing.T) (*App, *mockDriver, *bytes.Buffer) {
	t.Helper()
	driver := newMockDriver()
	out := &bytes.Buffer{}
	return NewApp(driver, out), driver, out
}

// staticFactory always hands out the same repository
func staticFactory(repo config.Repository) RepositoryFactory {
	return func(context.Context, *config.Config) (config.Repository, error) {
		return repo, nil
	}
}
