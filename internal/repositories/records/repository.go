// Package records provides persistence for normalized records
package records

//go:generate mockgen -destination=mock/mock_repository.go -package=recordsmock github.com/KirkDiggler/dexseed/internal/repositories/records Repository

import (
	"context"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
)

// Repository stores the records of a batch run so they can be inspected or
// re-exported without calling the upstream service again
type Repository interface {
	// Save stores a record, replacing any record with the same number
	// Returns errors.InvalidArgument for a nil record or non-positive number
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves one record by number
	// Returns errors.NotFound if no record is stored
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every stored record in number order
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Prune scans every record key and removes entries that no longer
	// decode as a record, along with their index members
	Prune(ctx context.Context, input PruneInput) (*PruneOutput, error)
}

// SaveInput defines the input for saving a record
type SaveInput struct {
	Record *dex.Record
}

// SaveOutput defines the output for saving a record
type SaveOutput struct {
	Number int
}

// GetInput defines the input for getting a record
type GetInput struct {
	Number int
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *dex.Record
}

// ListInput defines the input for listing records
type ListInput struct{}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*dex.Record
}

// PruneInput defines the input for pruning corrupted records
type PruneInput struct {
	// DryRun reports corrupted keys without deleting them
	DryRun bool
}

// PruneOutput defines the output for pruning corrupted records
type PruneOutput struct {
	Checked   int
	Corrupted []string
	Removed   int
}
