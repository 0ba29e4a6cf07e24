package response

import (
	"time"

	"catermate/internal/domain/entities"
)

type EstimateResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EventID    string `json:"event_id,omitempty"`
	PackageID  string `json:"package_id,omitempty"`
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

	StaffDetail          string    `json:"staff_detail,omitempty"`
	AdditionalCostDetail string    `json:"additional_cost_detail,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                   e.ID,
		Name:                 e.Name,
		EventID:              e.EventID,
		PackageID:            e.PackageID,
		GuestCount:           e.GuestCount,
		OverheadPercent:      e.OverheadPercent,
		ProfitMarginPercent:  e.ProfitMarginPercent,
		TaxRatePercent:       e.TaxRatePercent,
		LaborRate:            e.LaborRate,
		FoodCost:             e.FoodCost,
		LaborCost:            e.LaborCost,
		EquipmentCost:        e.EquipmentCost,
		AdditionalCosts:      e.AdditionalCosts,
		DirectCosts:          e.DirectCosts,
		OverheadAmount:       e.OverheadAmount,
		Subtotal:             e.Subtotal,
		ProfitAmount:         e.ProfitAmount,
		PreTaxTotal:          e.PreTaxTotal,
		TaxAmount:            e.TaxAmount,
		Total:                e.Total,
		PricePerPerson:       e.PricePerPerson,
		StaffDetail:          e.StaffDetail,
		AdditionalCostDetail: e.AdditionalCostDetail,
		Notes:                e.Notes,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

type ProposalLineItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Category    string  `json:"category"`
}

type ProposalResponse struct {
	ID          string                     `json:"id"`
	EventID     string                     `json:"event_id"`
	CreatedByID string                     `json:"created_by_id"`
	Status      string                     `json:"status"`
	TotalAmount float64                    `json:"total_amount"`
	ValidUntil  time.Time                  `json:"valid_until"`
	Notes       string                     `json:"notes,omitempty"`
	LineItems   []ProposalLineItemResponse `json:"line_items"`
	CreatedAt   time.Time                  `json:"created_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	items := make([]ProposalLineItemResponse, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		items = append(items, ProposalLineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
			Category:    li.Category,
		})
	}
	return ProposalResponse{
		ID:          p.ID,
		EventID:     p.EventID,
		CreatedByID: p.CreatedByID,
		Status:      string(p.Status),
		TotalAmount: p.TotalAmount,
		ValidUntil:  p.ValidUntil,
		Notes:       p.Notes,
		LineItems:   items,
		CreatedAt:   p.CreatedAt,
	}
}
