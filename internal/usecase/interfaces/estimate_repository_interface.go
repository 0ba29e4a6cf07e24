package interfaces

import (
	"context"

	"catermate/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for saved estimates.
//
// Missing rows are signalled with a zero-value Estimate (empty ID), not an
// error; errors are reserved for storage failures. Update is a full replace
// of the stored item and never recomputes any bucket.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	// List returns all estimates ordered newest-first.
	List(ctx context.Context) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	// Delete reports whether an item existed to delete.
	Delete(ctx context.Context, id string) (bool, error)
}
