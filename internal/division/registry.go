package division

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownStrategy is returned by Registry.Get for an unregistered name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Registry maps strategy names to implementations. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// NewDefaultRegistry returns a registry holding every built-in strategy.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []Strategy{
		DirectStrategy{},
		SignedStrategy{},
		SplitStrategy{},
		ComplementStrategy{},
		TwoPassStrategy{},
	} {
		// Built-in names are distinct.
		_ = r.Register(s)
	}
	return r
}

// Register adds a strategy. It fails if the name is already taken.
func (r *Registry) Register(s Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.strategies[s.Name()]; exists {
		return fmt.Errorf("strategy %q already registered", s.Name())
	}
	r.strategies[s.Name()] = s
	return nil
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered strategy, ordered by name.
func (r *Registry) GetAll() []Strategy {
	names := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Strategy, 0, len(names))
	for _, name := range names {
		all = append(all, r.strategies[name])
	}
	return all
}

// Select resolves a selection to strategies: "all" yields every registered
// strategy, any other value a single named one.
func (r *Registry) Select(selection string) ([]Strategy, error) {
	if selection == "all" {
		return r.GetAll(), nil
	}
	s, err := r.Get(selection)
	if err != nil {
		return nil, err
	}
	return []Strategy{s}, nil
}
