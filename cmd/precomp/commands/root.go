// Package commands implements the precomp command line.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/precomp/internal/app"
	"go.trai.ch/precomp/internal/build"
)

// CLI represents the command line interface for precomp.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Compile(ctx context.Context, files []string, opts app.Options) error
	Scan(ctx context.Context, opts app.Options) error
	Watch(ctx context.Context, opts app.Options) error
	Deps(ctx context.Context, file string, mode app.DepsMode, opts app.Options) ([]app.Dependency, error)
	Dependents(ctx context.Context, file string, opts app.Options) ([]app.Dependency, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "precomp",
		Short:         "Incremental stylesheet compiler with dependency tracking",
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

	rootCmd.PersistentFlags().StringVarP(&c.opts.ConfigPath, "config", "c", "", "Path to the configuration file (default precomp.yaml)")
	rootCmd.PersistentFlags().BoolVar(&c.opts.JSONLogs, "json-logs", false, "Write logs as JSON")

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newDependentsCmd())
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
