package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "slimdev",
		Short:         "Project devcontainer settings from pyproject.toml into .env",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The bare invocation is the prebuild entry point.
			return runGenerate(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.sourcePath, "source", "s", "", "Path to pyproject.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().StringVarP(&opts.outputPath, "output", "o", "", "Destination env file (default: .devcontainer/.env next to the source)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "Log format (console, json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress log output")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newExtractCommand(opts))
	rootCmd.AddCommand(newVerifyCommand(opts))
	rootCmd.AddCommand(newDoctorCommand(opts))

	return rootCmd
}

type rootOptions struct {
	sourcePath string
	outputPath string
	logLevel   string
	logFormat  string
	quiet      bool
}
