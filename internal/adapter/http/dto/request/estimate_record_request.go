package request

import (
	"strings"

	"catermate/internal/domain/entities"
)

// EstimateRecordRequest is the save/update payload for the estimate store: a
// flattened snapshot of a calculator result plus the parameters that
// produced it. The store persists exactly these values; nothing is
// recomputed on write.
type EstimateRecordRequest struct {
	Name       string `json:"name"`
	EventID    string `json:"event_id"`
	PackageID  string `json:"package_id"`
	GuestCount int    `json:"guest_count"`

	OverheadPercent     float64 `json:"overhead_percent"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	TaxRatePercent      float64 `json:"tax_rate_percent"`
	LaborRate           float64 `json:"labor_rate"`

	FoodCost        float64 `json:"food_cost"`
	LaborCost       float64 `json:"labor_cost"`
	EquipmentCost   float64 `json:"equipment_cost"`
	AdditionalCosts float64 `json:"additional_costs"`
	DirectCosts     float64 `json:"direct_costs"`
	OverheadAmount  float64 `json:"overhead_amount"`
	Subtotal        float64 `json:"subtotal"`
	ProfitAmount    float64 `json:"profit_amount"`
	PreTaxTotal     float64 `json:"pre_tax_total"`
	TaxAmount       float64 `json:"tax_amount"`
	Total           float64 `json:"total"`
	PricePerPerson  float64 `json:"price_per_person"`

	StaffDetail          string `json:"staff_detail"`
	AdditionalCostDetail string `json:"additional_cost_detail"`
	Notes                string `json:"notes"`
	Status               string `json:"status"`
}

func (r EstimateRecordRequest) ToEntity() entities.Estimate {
	return entities.Estimate{
		Name:                 strings.TrimSpace(r.Name),
		EventID:              strings.TrimSpace(r.EventID),
		PackageID:            strings.TrimSpace(r.PackageID),
		GuestCount:           r.GuestCount,
		OverheadPercent:      r.OverheadPercent,
		ProfitMarginPercent:  r.ProfitMarginPercent,
		TaxRatePercent:       r.TaxRatePercent,
		LaborRate:            r.LaborRate,
		FoodCost:             r.FoodCost,
		LaborCost:            r.LaborCost,
		EquipmentCost:        r.EquipmentCost,
		AdditionalCosts:      r.AdditionalCosts,
		DirectCosts:          r.DirectCosts,
		OverheadAmount:       r.OverheadAmount,
		Subtotal:             r.Subtotal,
		ProfitAmount:         r.ProfitAmount,
		PreTaxTotal:          r.PreTaxTotal,
		TaxAmount:            r.TaxAmount,
		Total:                r.Total,
		PricePerPerson:       r.PricePerPerson,
		StaffDetail:          r.StaffDetail,
		AdditionalCostDetail: r.AdditionalCostDetail,
		Notes:                r.Notes,
		Status:               entities.EstimateStatus(strings.TrimSpace(r.Status)),
	}
}

// ConvertToProposalRequest identifies who is promoting the estimate.
type ConvertToProposalRequest struct {
	UserID string `json:"user_id"`
}

func (r ConvertToProposalRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}
