package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/logging"
)

// RepositoryFactory builds the storage backend for a loaded configuration
type RepositoryFactory func(ctx context.Context, cfg *config.Config) (config.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	loader       *config.Loader
	factory      RepositoryFactory
	config       *config.Config
	repo         config.Repository
	errorHandler *ErrorHandler
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, factory RepositoryFactory) *RootCommand {
	root := &RootCommand{
		loader:       loader,
		factory:      factory,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "task",
		Short: "A minimal command-line task tracker",
		Long: `task stores to-do entries in a document database and looks them up by id.

EXAMPLES:
  task add "Buy milk"                      # Prints: id: <24 hex characters>
  task get 6523f0c2a1b2c3d4e5f60718        # Prints: title: Buy milk

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

    MONGO_DB_URL                           MongoDB connection string (required for the mongo backend)
    TASK_BACKEND                           Storage backend: mongo or sqlite (default: mongo)
    TASK_DB_PATH                           SQLite database file (default: ~/.task/task.db)
    TASK_DEBUG                             Write debug logs to stderr when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases the backend afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.closeRepository(ctx)
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("backend", "", "Storage backend: mongo or sqlite (overrides TASK_BACKEND)")
	flags.String("mongo-url", "", "MongoDB connection string (overrides MONGO_DB_URL)")
	flags.String("db-path", "", "SQLite database file (overrides TASK_DB_PATH)")
	flags.Bool("debug", false, "Write debug logs to stderr (overrides TASK_DEBUG)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:     "add <title>",
		Short:   "Add a task",
		Long:    "Store a new task with the given title and print its id.",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.openRepository,
		RunE:    r.run,
	}

	getCmd := &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a task",
		Long:    "Print the title of the task with the given id, or \"No entry found.\"",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.openRepository,
		RunE:    r.run,
	}

	r.cmd.AddCommand(addCmd, getCmd)
}

// run dispatches a subcommand to its handler
func (r *RootCommand) run(cmd *cobra.Command, args []string) error {
	app := NewApp(r.repo, cmd.OutOrStdout())
	return app.registry.Execute(cmd.Context(), cmd.Name(), args)
}

// loadConfig applies flag overrides on top of environment configuration
func (r *RootCommand) loadConfig() error {
	cfg, err := r.loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return r.errorHandler.Handle("load configuration", err)
	}
	r.config = cfg

	logging.SetEnabled(cfg.Application.Debug)
	if err := r.loader.DotEnvError(); err != nil {
		logging.Logger().Debug("load_dotenv", "error", err)
	}
	return nil
}

// openRepository constructs the backend; failing to do so aborts the command
func (r *RootCommand) openRepository(cmd *cobra.Command, args []string) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	repo, err := r.factory(cmd.Context(), r.config)
	if err != nil {
		logging.Logger().Error("open_repository",
			"backend", r.config.Database.Backend,
			"code", r.errorHandler.GetErrorCode(err),
			"error", err)
		return r.errorHandler.Handle("connect to database", err)
	}
	r.repo = repo
	return nil
}

func (r *RootCommand) closeRepository(ctx context.Context) {
	if r.repo == nil {
		return
	}
	if err := r.repo.Close(ctx); err != nil {
		logging.Logger().Warn("close_repository", "error", err)
	}
	r.repo = nil
}

// getOverridesFromFlags collects the flags the user actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		overrides.Backend = &backend
	}
	if flags.Changed("mongo-url") {
		url, _ := flags.GetString("mongo-url")
		overrides.MongoURL = &url
	}
	if flags.Changed("db-path") {
		path, _ := flags.GetString("db-path")
		overrides.SQLitePath = &path
	}
	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		overrides.Debug = &debug
	}

	return overrides
}
