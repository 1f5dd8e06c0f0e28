package ports

import (
	"context"

	"github.com/aretw0/tendril/pkg/domain"
)

// DefinitionLoader defines how the engine retrieves machine definitions.
// This allows the storage layer (directory of files, memory, remote) to be
// decoupled.
type DefinitionLoader interface {
	// Load retrieves a machine definition by name.
	// Returns domain.ErrMachineNotFound if the name is unknown and an error
	// wrapping domain.ErrMalformedDefinition if the definition cannot be
	// parsed.
	Load(ctx context.Context, name string) (*domain.Machine, error)

	// List returns the names of all machines available in the library.
	// Used for introspection and tooling (e.g. 'tendril machines').
	List(ctx context.Context) ([]string, error)
}
