package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/Raza978/cpp-fundamentals/internal/ui/typesview"
)

func typesCmd(cfg *domain.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show the domain types, what they embed and which capabilities they satisfy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLogging(cmd, cfg.Log, func(_ *slog.Logger) error {
				return typesview.Render(cmd.OutOrStdout(), domain.Catalog())
			})
		},
	}
}
