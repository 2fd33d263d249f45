package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/Raza978/cpp-fundamentals/internal/infra/yamlroster"
	"github.com/Raza978/cpp-fundamentals/internal/usecase"
)

func rosterCmd(cfg *domain.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "roster FILE",
		Short: "Print every member of a YAML roster through the capabilities it satisfies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogging(cmd, cfg.Log, func(l *slog.Logger) error {
				uc := usecase.NewShowRoster(yamlroster.NewLoader())
				r, err := uc.Execute(cmd.Context(), args[0], cmd.OutOrStdout())
				if err != nil {
					return err
				}
				l.Info("roster.shown", "name", r.Name, "members", len(r.Members))
				return nil
			})
		},
	}
}
