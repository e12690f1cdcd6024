package sqlite

import "task-tracker/internal/domain"

// Entry is a row of the entry table.
type Entry struct {
	ID    string
	Title string
}

func (e *Entry) toDomain() *domain.Task {
	task := domain.NewTask(e.Title)
	return &task
}
