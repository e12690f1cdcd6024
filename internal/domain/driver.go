package domain

import "context"

// Driver is the contract every storage backend satisfies.
//
// Both operations are total. Failures of any kind (malformed identifier,
// write failure, lookup miss, unreachable server) are reported as an empty
// result and never as an error.
type Driver interface {
	// Insert stores a new task with the given title and returns the
	// identifier assigned by the backend.
	Insert(ctx context.Context, title string) (string, bool)

	// Get looks up a task by the identifier Insert returned.
	Get(ctx context.Context, id string) (*Task, bool)
}
