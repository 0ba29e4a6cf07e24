package interfaces

import (
	"context"

	"catermate/internal/domain/entities"
)

// IProposalRepository writes proposals on behalf of the estimate promoter.
//
// PromoteFromEstimate must persist the proposal and flip the source estimate
// DRAFT -> CONVERTED_TO_PROPOSAL as one atomic write, so two concurrent
// promotions of the same estimate can never both succeed and a partial
// failure can never leave the two tables disagreeing. A zero-value Proposal
// return (empty ID, nil error) means the estimate was not in DRAFT when the
// write landed.

type IProposalRepository interface {
	PromoteFromEstimate(ctx context.Context, estimateID string, p entities.Proposal) (entities.Proposal, error)
}
