package yamlroster

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
)

func mapRoster(path string, yr yamlRoster) (domain.Roster, error) {
	name := strings.TrimSpace(yr.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	r := domain.Roster{
		Name:    name,
		Members: make([]domain.Member, 0, len(yr.Members)),
	}

	for i, m := range yr.Members {
		field := fmt.Sprintf("members[%d].kind", i)

		raw := strings.ToLower(strings.TrimSpace(m.Kind))
		if raw == "" {
			return domain.Roster{}, invalidField(path, field, "kind is required")
		}
		kind, ok := domain.ParseMemberKind(raw)
		if !ok {
			return domain.Roster{}, invalidField(path, field, fmt.Sprintf("unsupported kind %q (expected person|employee|dog)", m.Kind))
		}

		// Names and departments are kept verbatim; constructors accept anything.
		r.Members = append(r.Members, domain.Member{
			Kind:       kind,
			First:      m.First,
			Last:       m.Last,
			Middle:     m.Middle,
			Department: m.Department,
		})
	}

	return r, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlroster.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
