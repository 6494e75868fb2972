// Package cli provides the command-line interface for skillcatalog.
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/kumo-ai/kumo-skills-catalog/internal/logging"
	"github.com/kumo-ai/kumo-skills-catalog/internal/ui"
)

var (
	// Version is the current version of the application.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// New builds the root command. Running it without a subcommand regenerates
// the README.
func New() *cli.Command {
	return &cli.Command{
		Name:    "skillcatalog",
		Usage:   "Regenerate the skills catalog table in README.md from SKILL.md frontmatter",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Value: ".",
				Usage: "Repository root to scan",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Report whether the README is current without writing it",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			configureColors(cmd)
			return configureLogging(ctx, cmd), nil
		},
		Action: generateAction,
		Commands: []*cli.Command{
			listCommand(),
			versionCommand(),
		},
	}
}

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}

// configureColors sets up color output based on CLI flags.
func configureColors(cmd *cli.Command) {
	if cmd.Bool("no-color") {
		ui.DisableColors()
	}
}

// configureLogging sets up the logging level based on CLI flags and stores
// the logger in the returned context.
func configureLogging(ctx context.Context, cmd *cli.Command) context.Context {
	opts := logging.DefaultOptions()

	if cmd.Bool("debug") {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	} else if cmd.Bool("verbose") {
		opts.Level = slog.LevelInfo
	}

	logger := logging.New(opts)
	logging.SetDefault(logger)

	logging.Debug("logging configured", slog.String("level", opts.Level.String()))

	return logging.NewContext(ctx, logger)
}
