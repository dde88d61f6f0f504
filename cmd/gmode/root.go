package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/probelab/gmode/internal/logging"
)

// commandContext carries the persistent flags into the subcommands.
type commandContext struct {
	logLevel  *string
	logFormat *string
}

func (c *commandContext) logger() (*slog.Logger, error) {
	return logging.New(logging.Options{Level: *c.logLevel, Format: *c.logFormat})
}

func newRootCommand() *cobra.Command {
	var logLevel, logFormat string

	ctx := &commandContext{logLevel: &logLevel, logFormat: &logFormat}

	rootCmd := &cobra.Command{
		Use:           "gmode",
		Short:         "G-mode scanning-probe processing toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(newTranslateCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newTrialCommand(ctx))
	rootCmd.AddCommand(newFilterCommand(ctx))
	rootCmd.AddCommand(newReshapeCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newPlotCommand(ctx))

	return rootCmd
}
