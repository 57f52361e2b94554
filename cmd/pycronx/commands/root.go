// Package commands implements the CLI commands for pycronx.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/bmestref/pycronx/internal/app"
	"github.com/bmestref/pycronx/internal/build"
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for pycronx.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	RunDaemon(ctx context.Context, id string, args []string) error
	Start(ctx context.Context, args []string) (domain.RegistryRecord, error)
	List(ctx context.Context) ([]app.TaskStatus, error)
	Watch(ctx context.Context, render func([]app.TaskStatus)) error
	Stop(ctx context.Context, id string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pycronx",
		Short:         "Run scripts on a recurring schedule, one supervised daemon per task",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStartCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newStopCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
