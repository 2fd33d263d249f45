package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/Raza978/cpp-fundamentals/internal/namespace"
	"github.com/Raza978/cpp-fundamentals/internal/usecase"
)

func runCmd(cfg *domain.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration sequence (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, *cfg)
		},
	}

	bindDemoFlags(c, cfg)
	return c
}

func bindDemoFlags(c *cobra.Command, cfg *domain.Config) {
	c.Flags().StringVarP(&cfg.Namespace, "namespace", "n", cfg.Namespace, "Namespace supplying the greeting constant: first|second")
	c.Flags().StringVar(&cfg.Format, "format", cfg.Format, "Output format: pretty|json")
}

func runDemo(cmd *cobra.Command, cfg domain.Config) error {
	return withLogging(cmd, cfg.Log, func(l *slog.Logger) error {
		greeting, err := namespace.Lookup(cfg.Namespace)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		uc := usecase.NewRunDemo(greeting, usecase.WithLogger(l))
		if err := uc.Execute(cmd.Context(), &buf); err != nil {
			return err
		}

		return printDemo(cmd.OutOrStdout(), cfg.Namespace, buf.String(), cfg.Format)
	})
}

func printDemo(w io.Writer, ns string, transcript string, format string) error {
	switch format {
	case domain.FormatJSON:
		if ns == "" {
			ns = domain.NamespaceFirst
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"namespace": ns,
			"lines":     splitLines(transcript),
		}
		return enc.Encode(payload)
	case domain.FormatPretty, "":
		_, err := io.WriteString(w, transcript)
		return err
	default:
		return &domain.OpError{
			Op:   "cli.print",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported format %q (expected pretty|json): %w", format, domain.ErrInvalidConfig),
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
