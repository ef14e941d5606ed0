package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"slimdev/internal/config"
	"slimdev/internal/envfile"
	"slimdev/internal/logging"
)

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the .env file from pyproject.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	logger, err := newLogger(cmd, opts)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	sourcePath, err := resolveSource(opts)
	if err != nil {
		return err
	}
	outputPath := resolveOutput(opts, sourcePath)
	logger.Info("generating environment file",
		slog.String("source", sourcePath),
		slog.String("output", outputPath))

	record, err := project(sourcePath)
	if err != nil {
		return err
	}

	// The lock file lives next to the output, so the directory must exist
	// before the lock can be taken.
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Serialize concurrent prebuild invocations. Write atomicity itself comes
	// from the temp-file rename inside envfile.Write; the lock only prevents
	// two generators from racing each other's renames.
	lockPath := outputPath + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire env file lock: %w", err)
	}
	defer func() {
		lock.Unlock()
		os.Remove(lockPath)
	}()

	if err := envfile.Write(record, outputPath); err != nil {
		return err
	}

	logger.Info("environment file written",
		slog.String("path", outputPath),
		slog.Int("keys", record.Len()))
	return nil
}

// project runs the parse and resolve steps shared by generate and extract.
func project(sourcePath string) (envfile.Record, error) {
	doc, err := config.Load(sourcePath)
	if err != nil {
		return envfile.Record{}, err
	}
	return config.Resolve(doc)
}

func resolveSource(opts *rootOptions) (string, error) {
	if path := strings.TrimSpace(opts.sourcePath); path != "" {
		return filepath.Abs(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return config.LocateSource(cwd)
}

func resolveOutput(opts *rootOptions, sourcePath string) string {
	if path := strings.TrimSpace(opts.outputPath); path != "" {
		return path
	}
	return filepath.Join(filepath.Dir(sourcePath), ".devcontainer", ".env")
}

func newLogger(cmd *cobra.Command, opts *rootOptions) (*slog.Logger, error) {
	if opts.quiet {
		return logging.NewNop(), nil
	}
	return logging.New(logging.Options{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		Writer: cmd.ErrOrStderr(),
	})
}
