package entities

import "time"

// EstimateStatus represents the lifecycle of a saved cost estimate.
//
// Domain notes:
//   - Estimates stay editable while in DRAFT.
//   - CONVERTED_TO_PROPOSAL is terminal and is set only by the proposal
//     promotion flow; there is no un-promote.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "DRAFT"
	EstimateStatusConverted EstimateStatus = "CONVERTED_TO_PROPOSAL"
)

// Estimate is a named, reusable cost estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EventID and PackageID are weak references into the platform's event and
// menu-package tables. Deleting the referent never cascades here; a dangling
// id simply resolves to "unknown" on the next read.
//
// The breakdown buckets are flattened snapshots of a calculator result. The
// store never recomputes them; the calculator is the single source of truth
// for the arithmetic.
type Estimate struct {
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

	// Free-form JSON blobs carrying the itemized staffing and additional-cost
	// lines the UI used to build the snapshot. Opaque to the engine.
	StaffDetail          string `json:"staff_detail,omitempty"`
	AdditionalCostDetail string `json:"additional_cost_detail,omitempty"`

	Notes     string         `json:"notes,omitempty"`
	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
