package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// NotFoundMessage is printed for every failed lookup, whatever the cause
const NotFoundMessage = "No entry found."

// GetCommand handles the get command
type GetCommand struct {
	driver domain.Driver
	out    io.Writer
}

// NewGetCommand creates a new get command handler
func NewGetCommand(app *App) *GetCommand {
	return &GetCommand{
		driver: app.driver,
		out:    app.out,
	}
}

// Execute looks up a task and prints its title
func (c *GetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "get", "usage: task get <id>")
	}

	task, ok := domain.GetTask(ctx, c.driver, args[0])
	if !ok {
		fmt.Fprintln(c.out, NotFoundMessage)
		return nil
	}

	fmt.Fprintf(c.out, "title: %s\n", task.Title)
	return nil
}
