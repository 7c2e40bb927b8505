package orchestration

import (
	"github.com/agbru/longdiv/internal/division"
)

// GetStrategiesToRun resolves a selection ("all" or a name) against the
// registry, in name order. An unknown name yields no strategies.
func GetStrategiesToRun(selection string, registry *division.Registry) []division.Strategy {
	strategies, err := registry.Select(selection)
	if err != nil {
		return nil
	}
	return strategies
}
