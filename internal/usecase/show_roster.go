package usecase

import (
	"context"
	"io"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/Raza978/cpp-fundamentals/internal/ports"
)

type ShowRoster struct {
	rosters ports.RosterLoader
}

func NewShowRoster(rl ports.RosterLoader) *ShowRoster {
	return &ShowRoster{rosters: rl}
}

// Execute loads the roster at path and prints each member through the
// capabilities it satisfies: its info line if it is an Informer, then its age
// line if it is an Ager.
func (uc *ShowRoster) Execute(ctx context.Context, path string, w io.Writer) (domain.Roster, error) {
	r, err := uc.rosters.LoadRoster(path)
	if err != nil {
		return domain.Roster{}, err
	}

	for _, m := range r.Members {
		if err := ctx.Err(); err != nil {
			return r, err
		}

		entity := m.Entity()
		if info, ok := entity.(domain.Informer); ok {
			info.PrintInfo(w)
		}
		if ager, ok := entity.(domain.Ager); ok {
			ager.PrintAge(w)
		}
	}

	return r, nil
}
