package yamlroster

import (
	"fmt"
	"os"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/Raza978/cpp-fundamentals/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.RosterLoader = (*Loader)(nil)

func (l *Loader) LoadRoster(path string) (domain.Roster, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Roster{}, &domain.OpError{
			Op:   "yamlroster.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
		}
	}

	var yr yamlRoster
	if err := yaml.Unmarshal(b, &yr); err != nil {
		return domain.Roster{}, &domain.OpError{
			Op:   "yamlroster.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapRoster(path, yr)
}
