// Package ui provides the command-line interface.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/logspan/internal/config"
	"github.com/javiermolinar/logspan/internal/db"
	"github.com/javiermolinar/logspan/internal/history"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   history.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	// now stamps saved windows and ages in the history listing.
	now func() time.Time
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path the first time history is needed.
func NewApp(repo history.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = a.pickCmd()

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes logspan-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.convertCmd())
	a.root.AddCommand(a.historyCmd())
	a.root.AddCommand(a.keysCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "logspan %s (commit: %s)\n", Version, Commit)
		},
	}
}

// history returns the history repository, opening it on first use.
func (a *App) history() (history.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := openRepo(a.config.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	return repo, nil
}

func openRepo(dbPath string) (history.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// SetArgs overrides the arguments used by Execute.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the history repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
