package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"catermate/internal/domain/entities"
	"catermate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound         = errors.New("estimate not found")
	ErrInvalidEstimateID        = errors.New("invalid estimate id")
	ErrInvalidUserID            = errors.New("invalid user id")
	ErrEstimateNotLinked        = errors.New("estimate must be linked to an event")
	ErrEstimateAlreadyConverted = errors.New("estimate already converted to a proposal")
)

const proposalValidity = 30 * 24 * time.Hour

// IEstimateUseCase exposes the saved-estimate store plus the one-way
// promotion of an estimate into a proposal.

type IEstimateUseCase interface {
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Update(ctx context.Context, id string, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	ConvertToProposal(ctx context.Context, estimateID, userID string) (entities.Proposal, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	proposals interfaces.IProposalRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, proposals interfaces.IProposalRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, proposals: proposals}
}

// Save persists a snapshot produced by the calculator. The store records
// exactly what it is given; recomputation is the caller's job.
func (u *EstimateUseCase) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.Status = entities.EstimateStatusDraft
	e.CreatedAt = now
	e.UpdatedAt = now
	if strings.TrimSpace(e.Name) == "" {
		e.Name = "Estimate - " + now.Format("2006-01-02")
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

// Update is a full replace of the editable fields. Identity, creation time
// and the id in the path win over whatever the payload carries.
func (u *EstimateUseCase) Update(ctx context.Context, id string, e entities.Estimate) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	e.ID = current.ID
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	if e.Status == "" {
		e.Status = current.Status
	}

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimateNotFound
	}
	return nil
}

// ConvertToProposal materializes a stored estimate's top-line cost buckets
// into a draft proposal and marks the estimate consumed. Preconditions, in
// order: the estimate exists, and it is linked to an event. The write itself
// is atomic; if the estimate left DRAFT between the read and the write, the
// whole operation aborts.
func (u *EstimateUseCase) ConvertToProposal(ctx context.Context, estimateID, userID string) (entities.Proposal, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Proposal{}, ErrInvalidEstimateID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Proposal{}, ErrInvalidUserID
	}

	est, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if est.ID == "" {
		return entities.Proposal{}, ErrEstimateNotFound
	}
	if est.EventID == "" {
		return entities.Proposal{}, ErrEstimateNotLinked
	}
	if est.Status == entities.EstimateStatusConverted {
		return entities.Proposal{}, ErrEstimateAlreadyConverted
	}

	now := time.Now().UTC()
	proposal := entities.Proposal{
		ID:          uuid.NewString(),
		EventID:     est.EventID,
		CreatedByID: userID,
		Status:      entities.ProposalStatusDraft,
		TotalAmount: est.Total,
		ValidUntil:  now.Add(proposalValidity),
		Notes:       fmt.Sprintf("Generated from estimate: %s", est.Name),
		LineItems:   materializeLineItems(est),
		CreatedAt:   now,
	}

	created, err := u.proposals.PromoteFromEstimate(ctx, est.ID, proposal)
	if err != nil {
		return entities.Proposal{}, err
	}
	if created.ID == "" {
		// Lost the race: another promotion moved the estimate out of DRAFT.
		return entities.Proposal{}, ErrEstimateAlreadyConverted
	}
	return created, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// materializeLineItems flattens the three top-line buckets into proposal
// lines. Food is priced per head; labor and equipment are single lines.
func materializeLineItems(est entities.Estimate) []entities.ProposalLineItem {
	foodQty := est.GuestCount
	foodUnit := est.FoodCost
	if foodQty > 0 {
		foodUnit = est.FoodCost / float64(foodQty)
	} else {
		foodQty = 1
	}

	return []entities.ProposalLineItem{
		{
			Description: "Food & Beverage",
			Quantity:    foodQty,
			UnitPrice:   round2(foodUnit),
			Total:       est.FoodCost,
			Category:    "Food",
		},
		{
			Description: "Labor & Service",
			Quantity:    1,
			UnitPrice:   est.LaborCost,
			Total:       est.LaborCost,
			Category:    "Labor",
		},
		{
			Description: "Equipment Rental",
			Quantity:    1,
			UnitPrice:   est.EquipmentCost,
			Total:       est.EquipmentCost,
			Category:    "Equipment",
		},
	}
}
