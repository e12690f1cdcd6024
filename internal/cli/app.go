package cli

import (
	"io"
	"os"

	"task-tracker/internal/domain"
)

// App represents the main CLI application
type App struct {
	driver   domain.Driver
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application writing command output to out
func NewApp(driver domain.Driver, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	app := &App{
		driver: driver,
		out:    out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}
