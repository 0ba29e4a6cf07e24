package request

import (
	"catermate/internal/domain/costing"
)

// The costing endpoints keep the estimator UI's camelCase contract; the
// persistence endpoints use the platform's snake_case.

type StaffingLineRequest struct {
	Role       string  `json:"role"`
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourlyRate"`
}

type AdditionalCostRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// EstimateRequest is the full calculator payload. Staffing may arrive as an
// explicit roster, a single flat hours figure, or not at all; ResolveLabor
// collapses that into the tagged variant the calculator switches on, so the
// shape decision is made exactly once, here.
type EstimateRequest struct {
	GuestCount      int                     `json:"guestCount" binding:"required"`
	PackageID       string                  `json:"packageId"`
	Staffing        []StaffingLineRequest   `json:"staffing"`
	StaffHours      *float64                `json:"staffHours"`
	EquipmentIDs    []string                `json:"equipmentIds"`
	AdditionalCosts []AdditionalCostRequest `json:"additionalCosts"`

	OverheadPercent     *float64 `json:"overheadPercent"`
	ProfitMarginPercent *float64 `json:"profitMarginPercent"`
	TaxRate             *float64 `json:"taxRate"`
	LaborCostPerHour    *float64 `json:"laborCostPerHour"`
}

// ResolveLabor decides the labor variant. An explicit roster wins over flat
// hours; both absent means the staffing heuristic.
func (r EstimateRequest) ResolveLabor() costing.LaborInput {
	if len(r.Staffing) > 0 {
		roster := make([]costing.StaffLine, 0, len(r.Staffing))
		for _, s := range r.Staffing {
			roster = append(roster, costing.StaffLine{Role: s.Role, Hours: s.Hours, HourlyRate: s.HourlyRate})
		}
		return costing.LaborInput{Mode: costing.LaborRoster, Roster: roster}
	}
	if r.StaffHours != nil {
		return costing.LaborInput{Mode: costing.LaborFlatHours, Hours: *r.StaffHours}
	}
	return costing.LaborInput{Mode: costing.LaborUnspecified}
}

func (r EstimateRequest) ResolveAdditional() []costing.CostLine {
	lines := make([]costing.CostLine, 0, len(r.AdditionalCosts))
	for _, c := range r.AdditionalCosts {
		lines = append(lines, costing.CostLine{Description: c.Description, Amount: c.Amount})
	}
	return lines
}

func (r EstimateRequest) ResolveOverrides() costing.PolicyOverrides {
	return costing.PolicyOverrides{
		LaborRate:           r.LaborCostPerHour,
		OverheadPercent:     r.OverheadPercent,
		ProfitMarginPercent: r.ProfitMarginPercent,
		TaxRatePercent:      r.TaxRate,
	}
}

// BreakEvenRequest carries the three solver inputs. Presence validation is
// the solver's job; the zero value is what it rejects.
type BreakEvenRequest struct {
	FixedCosts            float64 `json:"fixedCosts"`
	VariableCostPerPerson float64 `json:"variableCostPerPerson"`
	PricePerPerson        float64 `json:"pricePerPerson"`
}
