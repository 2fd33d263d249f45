package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/Raza978/cpp-fundamentals/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := domain.DefaultConfig()

	cmd := &cobra.Command{
		Use:          "fundamentals",
		Short:        "Object-oriented building blocks in Go, printed one line at a time",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, cfg)
		},
	}

	cmd.PersistentFlags().BoolVar(&cfg.Log.Debug, "debug", false, "enable verbose logging (stderr unless --log-file is set)")
	cmd.PersistentFlags().StringVar(&cfg.Log.File, "log-file", "", "write JSON logs to this file")
	bindDemoFlags(cmd, &cfg)

	cmd.AddCommand(
		runCmd(&cfg),
		rosterCmd(&cfg),
		typesCmd(&cfg),
		versionCmd(),
	)
	return cmd
}

// withLogging sets up the global logger for the duration of fn.
func withLogging(cmd *cobra.Command, cfg domain.LogConfig, fn func(*slog.Logger) error) error {
	cleanup, err := logger.Setup(logger.Config{
		File:   cfg.File,
		Debug:  cfg.Debug,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return &domain.OpError{
			Op:   "cli.logging",
			Kind: domain.KindExecution,
			Path: cfg.File,
			Err:  fmt.Errorf("%w: %w", domain.ErrExecution, err),
		}
	}
	defer func() { _ = cleanup() }()

	l := logger.L().With("cmd", cmd.Name())
	l.Debug("command.started", "log_file", logger.Path())
	if err := fn(l); err != nil {
		l.Error("command.failed", "err", err)
		return err
	}
	return nil
}
