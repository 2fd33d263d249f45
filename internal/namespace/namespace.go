// Package namespace selects a greeting constant by namespace name.
package namespace

import (
	"fmt"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
	"github.com/Raza978/cpp-fundamentals/internal/namespace/first"
	"github.com/Raza978/cpp-fundamentals/internal/namespace/second"
)

// Lookup returns X from the named namespace package.
func Lookup(name string) (int, error) {
	switch name {
	case domain.NamespaceFirst, "":
		return first.X, nil
	case domain.NamespaceSecond:
		return second.X, nil
	default:
		return 0, &domain.OpError{
			Op:   "namespace.lookup",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown namespace %q (expected first|second): %w", name, domain.ErrInvalidConfig),
		}
	}
}
