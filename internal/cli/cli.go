// Package cli implements the checkcrates command-line interface.
//
// checkcrates is a single command: it searches crates.io for the given name
// and prints the matches as a right-aligned text table on stdout. Logging
// goes to stderr through charmbracelet/log; --verbose (-v) switches it to
// debug level.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo, cfg)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/checkcrates/internal/config"
	"github.com/matzehuels/checkcrates/pkg/buildinfo"
	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
)

// appName is the application name used for display.
const appName = "checkcrates"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	// registryURL is bound to --registry and defaults to Config.RegistryURL.
	registryURL string
}

// New creates a new CLI instance logging to w at the given level.
// A nil cfg means [config.Default].
func New(w io.Writer, level log.Level, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The command takes exactly
// one positional argument, the search term, and has no subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " <NAME>",
		Short: "Search crates.io and print the matches as a table",
		Long: `checkcrates searches the crates.io registry for NAME and prints each match
with its latest stable version and last update time, right-aligned in columns.`,
		Example:       "  checkcrates serde\n  checkcrates --registry http://localhost:8080 tokio",
		Version:       buildinfo.Resolve().Version,
		Args:          searchArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runSearch,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVar(&c.registryURL, "registry", c.Config.RegistryURL, "registry base URL")

	return root
}

// ReportError writes err to w as a single line without its error code. The
// code is logged at debug level.
func (c *CLI) ReportError(w io.Writer, err error) {
	c.Logger.Debug("Command failed", "code", apperrors.GetCode(err))
	fmt.Fprintln(w, "Error:", apperrors.UserMessage(err))
}
