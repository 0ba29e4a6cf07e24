package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"catermate/internal/domain/entities"
	mock_interfaces "catermate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_Save(t *testing.T) {
	t.Run("defaults name and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" {
					t.Fatalf("expected generated id")
				}
				if e.Status != entities.EstimateStatusDraft {
					t.Fatalf("expected DRAFT, got %s", e.Status)
				}
				if !strings.HasPrefix(e.Name, "Estimate - ") {
					t.Fatalf("expected default name, got %q", e.Name)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		saved, err := uc.Save(context.Background(), entities.Estimate{GuestCount: 100, Total: 5775.30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Total != 5775.30 {
			t.Fatalf("snapshot values must persist untouched: %+v", saved)
		}
	})

	t.Run("keeps caller name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Name != "Gala v2" {
					t.Fatalf("expected caller name, got %q", e.Name)
				}
				return e, nil
			},
		)

		if _, err := uc.Save(context.Background(), entities.Estimate{Name: "Gala v2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		if _, err := uc.GetByID(context.Background(), "est-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)

		e, err := uc.GetByID(context.Background(), " est-1 ")
		if err != nil || e.ID != "est-1" {
			t.Fatalf("unexpected result: %+v, %v", e, err)
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		if _, err := uc.Update(context.Background(), "est-1", entities.Estimate{}); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("preserves identity and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft, CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != "est-1" || !e.CreatedAt.Equal(created) {
					t.Fatalf("identity not preserved: %+v", e)
				}
				if e.Status != entities.EstimateStatusDraft {
					t.Fatalf("empty payload status must keep stored status, got %s", e.Status)
				}
				if e.Total != 123.45 {
					t.Fatalf("payload fields must replace stored ones: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), "est-1", entities.Estimate{ID: "spoofed", Total: 123.45}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "est-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_ConvertToProposal(t *testing.T) {
	draft := entities.Estimate{
		ID:            "est-1",
		Name:          "Summer Gala",
		EventID:       "ev-1",
		GuestCount:    100,
		FoodCost:      2400,
		LaborCost:     1170,
		EquipmentCost: 150,
		Total:         5775.30,
		Status:        entities.EstimateStatusDraft,
	}

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		if _, err := uc.ConvertToProposal(context.Background(), "est-1", " "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		if _, err := uc.ConvertToProposal(context.Background(), "est-1", "user-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("no linked event creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		// No proposal repository expectation at all: the precondition failure
		// must not reach the write path.
		uc := NewEstimateUseCase(repo, mock_interfaces.NewMockIProposalRepository(ctrl))

		unlinked := draft
		unlinked.EventID = ""
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(unlinked, nil)

		if _, err := uc.ConvertToProposal(context.Background(), "est-1", "user-1"); !errors.Is(err, ErrEstimateNotLinked) {
			t.Fatalf("expected ErrEstimateNotLinked, got %v", err)
		}
	})

	t.Run("already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		converted := draft
		converted.Status = entities.EstimateStatusConverted
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(converted, nil)

		if _, err := uc.ConvertToProposal(context.Background(), "est-1", "user-1"); !errors.Is(err, ErrEstimateAlreadyConverted) {
			t.Fatalf("expected ErrEstimateAlreadyConverted, got %v", err)
		}
	})

	t.Run("concurrent promotion loses the conditional write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewEstimateUseCase(repo, proposals)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft, nil)
		proposals.EXPECT().PromoteFromEstimate(gomock.Any(), "est-1", gomock.Any()).Return(entities.Proposal{}, nil)

		if _, err := uc.ConvertToProposal(context.Background(), "est-1", "user-1"); !errors.Is(err, ErrEstimateAlreadyConverted) {
			t.Fatalf("expected ErrEstimateAlreadyConverted, got %v", err)
		}
	})

	t.Run("success materializes three line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewEstimateUseCase(repo, proposals)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft, nil)
		proposals.EXPECT().PromoteFromEstimate(gomock.Any(), "est-1", gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, _ string, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" || p.EventID != "ev-1" || p.CreatedByID != "user-1" {
					t.Fatalf("unexpected proposal header: %+v", p)
				}
				if p.Status != entities.ProposalStatusDraft || p.TotalAmount != 5775.30 {
					t.Fatalf("unexpected proposal fields: %+v", p)
				}
				if until := time.Until(p.ValidUntil); until < 29*24*time.Hour || until > 31*24*time.Hour {
					t.Fatalf("expected ~30 day validity, got %v", until)
				}
				if len(p.LineItems) != 3 {
					t.Fatalf("expected 3 line items, got %d", len(p.LineItems))
				}
				food, labor, equip := p.LineItems[0], p.LineItems[1], p.LineItems[2]
				if food.Quantity != 100 || food.UnitPrice != 24 || food.Total != 2400 || food.Category != "Food" {
					t.Fatalf("unexpected food line: %+v", food)
				}
				if labor.Quantity != 1 || labor.UnitPrice != 1170 || labor.Total != 1170 || labor.Category != "Labor" {
					t.Fatalf("unexpected labor line: %+v", labor)
				}
				if equip.Quantity != 1 || equip.UnitPrice != 150 || equip.Total != 150 || equip.Category != "Equipment" {
					t.Fatalf("unexpected equipment line: %+v", equip)
				}
				return p, nil
			},
		)

		created, err := uc.ConvertToProposal(context.Background(), "est-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected created proposal")
		}
	})
}
