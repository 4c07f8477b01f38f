// Package cli implements the stakemap command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/buildinfo"
	"github.com/stakemap/stakemap/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "stakemap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the default config file location when set
	// via --config.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "stakemap",
		Short:        "Stakemap tracks stakeholder relationship maps",
		Long:         `Stakemap is a CLI tool for building and maintaining stakeholder relationship maps: who matters to your work, how much influence they have, and how they connect to each other.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/stakemap/config.toml)")

	// Attach the logger to the context so helpers deep in a command can
	// log without threading *CLI through.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.createCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.stakeholderCommand())
	root.AddCommand(c.connectionCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.resetCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// openStore builds the store from the active config. The caller owns the
// returned store and must Close it.
func (c *CLI) openStore(ctx context.Context) (*store.Store, error) {
	cfg, err := loadConfig(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	logger.Debug("storage ready", "backend", cfg.Backend)
	return store.New(backend, logger), nil
}
