package domain

import "context"

// CreateTask stores a task with the given title through d.
// The title is passed through as is.
func CreateTask(ctx context.Context, d Driver, title string) (string, bool) {
	return d.Insert(ctx, title)
}

// GetTask retrieves the task identified by id through d.
// The identifier is opaque here; parsing it is the backend's job.
func GetTask(ctx context.Context, d Driver, id string) (*Task, bool) {
	return d.Get(ctx, id)
}
