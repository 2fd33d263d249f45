package ports

import "github.com/Raza978/cpp-fundamentals/internal/domain"

// RosterLoader loads a roster from a source (e.g., filesystem).
type RosterLoader interface {
	LoadRoster(path string) (domain.Roster, error)
}
