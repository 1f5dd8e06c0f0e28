package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/tendril/pkg/domain"
)

// Loader implements ports.DefinitionLoader using an in-memory map.
// Useful for tests and for embedding machines directly in a program.
type Loader struct {
	machines map[string]*domain.Machine
}

// NewLoader creates an empty in-memory library.
func NewLoader() *Loader {
	return &Loader{machines: make(map[string]*domain.Machine)}
}

// NewFromMachines creates a loader from domain objects. Every machine is
// validated on the way in, so tests fail at setup rather than mid-run.
func NewFromMachines(machines ...*domain.Machine) (*Loader, error) {
	l := NewLoader()
	for _, m := range machines {
		if err := l.Add(m); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add validates and registers one machine under its name.
func (l *Loader) Add(m *domain.Machine) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("machine missing name")
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("add machine %q: %w", m.Name, err)
	}
	l.machines[m.Name] = m
	return nil
}

// Load retrieves a machine definition by name.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Machine, error) {
	m, ok := l.machines[name]
	if !ok {
		return nil, fmt.Errorf("load %q: %w", name, domain.ErrMachineNotFound)
	}
	// Copy the header so callers cannot swap fields under the library.
	cp := *m
	return &cp, nil
}

// List returns all available machine names.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(l.machines))
	for name := range l.machines {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}
