package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	driver domain.Driver
	out    io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		driver: app.driver,
		out:    app.out,
	}
}

// Execute stores a task and prints its identifier. A failed insert prints nothing.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "add", "usage: task add <title>")
	}

	id, ok := domain.CreateTask(ctx, c.driver, args[0])
	if !ok {
		return nil
	}

	fmt.Fprintf(c.out, "id: %s\n", id)
	return nil
}
