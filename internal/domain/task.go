package domain

// Task represents a to-do entry in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	Title string
}

// NewTask creates a new Task with the given title.
func NewTask(title string) Task {
	return Task{
		Title: title,
	}
}
