package response

import (
	"testing"
	"time"

	"catermate/internal/domain/costing"
	"catermate/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:         "est-1",
		Name:       "Summer Gala",
		EventID:    "ev-1",
		GuestCount: 100,
		FoodCost:   2400,
		Total:      5775.30,
		Status:     entities.EstimateStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.Name != "Summer Gala" || res.EventID != "ev-1" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if res.FoodCost != 2400 || res.Total != 5775.30 || res.Status != "DRAFT" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromResult_MapsBuckets(t *testing.T) {
	r := costing.Result{
		Summary: costing.Summary{GuestCount: 100, PricePerPerson: 57.75, Total: 5775.30},
		Breakdown: costing.Breakdown{
			FoodCost:    2400,
			DirectCosts: 3720,
			Overhead:    costing.Rate{Percent: 15, Amount: 558},
			Tax:         costing.Rate{Percent: 8, Amount: 427.80},
			Total:       5775.30,
		},
		Details: costing.Details{
			Package: &costing.PackageDetail{Name: "Gold", PricePerPerson: 60},
			Labor:   []costing.LaborDetail{{Role: "Chef", Hours: 12, Rate: 35, Cost: 420}},
		},
	}

	res := FromResult(r)
	if res.Summary.GuestCount != 100 || res.Breakdown.Overhead.Amount != 558 {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.Breakdown.Tax.Rate != 8 {
		t.Fatalf("tax percent must map to the rate field: %+v", res.Breakdown.Tax)
	}
	if res.Details.Package == nil || res.Details.Package.Name != "Gold" {
		t.Fatalf("unexpected package detail: %+v", res.Details.Package)
	}
	if len(res.Details.Labor) != 1 || res.Details.Labor[0].Role != "Chef" {
		t.Fatalf("unexpected labor detail: %+v", res.Details.Labor)
	}
	if res.Details.Equipment == nil || res.Details.Additional == nil {
		t.Fatalf("detail slices must serialize as [], not null")
	}
}
