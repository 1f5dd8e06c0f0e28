package ports

import (
	"context"

	"github.com/aretw0/tendril/pkg/domain"
)

// RunStore defines the interface for persisting finished simulation runs.
// This allows results to be archived and fetched later by ID.
type RunStore interface {
	// Save persists the run under the given ID.
	Save(ctx context.Context, id string, run *domain.Run) error

	// Load retrieves the run for a given ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.Run, error)

	// Delete removes the run for a given ID. Deleting an unknown ID is not
	// an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored runs.
	List(ctx context.Context) ([]string, error)
}
