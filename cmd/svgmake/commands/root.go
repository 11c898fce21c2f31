// Package commands implements the CLI commands for svgmake.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/svgmake/internal/app"
	"go.trai.ch/svgmake/internal/build"
)

// CLI represents the command line interface for svgmake.
type CLI struct {
	app     Application
	logs    LogFormatter
	rootCmd *cobra.Command
}

// LogFormatter switches diagnostics between pretty and JSON output.
type LogFormatter interface {
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogFormatter lets the --log-json flag reach the logger.
func WithLogFormatter(f LogFormatter) Option {
	return func(c *CLI) {
		c.logs = f
	}
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
	Watch(ctx context.Context, opts app.GenerateOptions) error
	ListRasterizers(ctx context.Context, w io.Writer) error
	Rasterize(ctx context.Context, input, output string, scale int) error
	Pack(ctx context.Context, archive string, files []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	c := &CLI{app: a}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:           "svgmake",
		Short:         "Generate a Makefile that rasterizes an SVG skin",
		Long:          "Without a subcommand, svgmake behaves like \"svgmake generate\".",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runGenerate,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs && c.logs != nil {
				c.logs.SetJSON(true)
			}
		},
	}
	addGenerateFlags(rootCmd)
	rootCmd.PersistentFlags().Bool("log-json", false, "Write diagnostics as JSON lines")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newRasterizersCmd())
	rootCmd.AddCommand(c.newRasterizeCmd())
	rootCmd.AddCommand(c.newPackCmd())
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
