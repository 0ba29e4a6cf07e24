package response

import (
	"catermate/internal/domain/costing"
	"catermate/internal/usecase"
)

// The costing payloads mirror the estimator UI's camelCase contract exactly,
// bucket for bucket.

type RateResponse struct {
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

type TaxResponse struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

type SummaryResponse struct {
	GuestCount     int     `json:"guestCount"`
	PricePerPerson float64 `json:"pricePerPerson"`
	Total          float64 `json:"total"`
}

type BreakdownResponse struct {
	FoodCost        float64      `json:"foodCost"`
	LaborCost       float64      `json:"laborCost"`
	EquipmentCost   float64      `json:"equipmentCost"`
	AdditionalCosts float64      `json:"additionalCosts"`
	DirectCosts     float64      `json:"directCosts"`
	Overhead        RateResponse `json:"overhead"`
	Subtotal        float64      `json:"subtotal"`
	Profit          RateResponse `json:"profit"`
	PreTaxTotal     float64      `json:"preTaxTotal"`
	Tax             TaxResponse  `json:"tax"`
	Total           float64      `json:"total"`
}

type LaborLineResponse struct {
	Role  string  `json:"role"`
	Hours float64 `json:"hours"`
	Rate  float64 `json:"rate"`
	Cost  float64 `json:"cost"`
}

type EquipmentLineResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type PackageDetailResponse struct {
	Name           string  `json:"name"`
	PricePerPerson float64 `json:"pricePerPerson"`
	CostPerPerson  float64 `json:"costPerPerson"`
}

type AdditionalLineResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type DetailsResponse struct {
	Package    *PackageDetailResponse   `json:"package,omitempty"`
	Labor      []LaborLineResponse      `json:"labor"`
	Equipment  []EquipmentLineResponse  `json:"equipment"`
	Additional []AdditionalLineResponse `json:"additionalCosts"`
}

type EstimateResultResponse struct {
	Summary   SummaryResponse   `json:"summary"`
	Breakdown BreakdownResponse `json:"breakdown"`
	Details   DetailsResponse   `json:"details"`
}

func FromResult(r costing.Result) EstimateResultResponse {
	labor := make([]LaborLineResponse, 0, len(r.Details.Labor))
	for _, l := range r.Details.Labor {
		labor = append(labor, LaborLineResponse{Role: l.Role, Hours: l.Hours, Rate: l.Rate, Cost: l.Cost})
	}
	equipment := make([]EquipmentLineResponse, 0, len(r.Details.Equipment))
	for _, e := range r.Details.Equipment {
		equipment = append(equipment, EquipmentLineResponse{Name: e.Name, Quantity: e.Quantity, Cost: e.Cost})
	}
	additional := make([]AdditionalLineResponse, 0, len(r.Details.Additional))
	for _, a := range r.Details.Additional {
		additional = append(additional, AdditionalLineResponse{Description: a.Description, Amount: a.Amount})
	}
	var pkg *PackageDetailResponse
	if r.Details.Package != nil {
		pkg = &PackageDetailResponse{
			Name:           r.Details.Package.Name,
			PricePerPerson: r.Details.Package.PricePerPerson,
			CostPerPerson:  r.Details.Package.CostPerPerson,
		}
	}

	return EstimateResultResponse{
		Summary: SummaryResponse{
			GuestCount:     r.Summary.GuestCount,
			PricePerPerson: r.Summary.PricePerPerson,
			Total:          r.Summary.Total,
		},
		Breakdown: BreakdownResponse{
			FoodCost:        r.Breakdown.FoodCost,
			LaborCost:       r.Breakdown.LaborCost,
			EquipmentCost:   r.Breakdown.EquipmentCost,
			AdditionalCosts: r.Breakdown.AdditionalCosts,
			DirectCosts:     r.Breakdown.DirectCosts,
			Overhead:        RateResponse{Percent: r.Breakdown.Overhead.Percent, Amount: r.Breakdown.Overhead.Amount},
			Subtotal:        r.Breakdown.Subtotal,
			Profit:          RateResponse{Percent: r.Breakdown.Profit.Percent, Amount: r.Breakdown.Profit.Amount},
			PreTaxTotal:     r.Breakdown.PreTaxTotal,
			Tax:             TaxResponse{Rate: r.Breakdown.Tax.Percent, Amount: r.Breakdown.Tax.Amount},
			Total:           r.Breakdown.Total,
		},
		Details: DetailsResponse{Package: pkg, Labor: labor, Equipment: equipment, Additional: additional},
	}
}

type QuickEstimateResponse struct {
	EventID   string                 `json:"eventId"`
	EventName string                 `json:"eventName"`
	Estimate  EstimateResultResponse `json:"estimate"`
}

func FromQuickEstimate(r usecase.QuickEstimateReport) QuickEstimateResponse {
	return QuickEstimateResponse{
		EventID:   r.EventID,
		EventName: r.EventName,
		Estimate:  FromResult(r.Result),
	}
}

type MarginReportResponse struct {
	EventName          string  `json:"eventName"`
	Revenue            float64 `json:"revenue"`
	FoodCost           float64 `json:"foodCost"`
	LaborCost          float64 `json:"laborCost"`
	EquipmentCost      float64 `json:"equipmentCost"`
	TotalCost          float64 `json:"totalCost"`
	GrossProfit        float64 `json:"grossProfit"`
	GrossMarginPercent float64 `json:"grossMarginPercent"`
}

func FromMarginReport(r costing.MarginReport) MarginReportResponse {
	return MarginReportResponse{
		EventName:          r.EventName,
		Revenue:            r.Revenue,
		FoodCost:           r.FoodCost,
		LaborCost:          r.LaborCost,
		EquipmentCost:      r.EquipmentCost,
		TotalCost:          r.TotalCost,
		GrossProfit:        r.GrossProfit,
		GrossMarginPercent: r.GrossMarginPercent,
	}
}

type ProjectionResponse struct {
	Guests int     `json:"guests"`
	Profit float64 `json:"profit"`
}

type BreakEvenResponse struct {
	ContributionMargin float64              `json:"contributionMargin"`
	BreakEvenGuests    int                  `json:"breakEvenGuests"`
	Projection         []ProjectionResponse `json:"projection"`
}

func FromBreakEven(r costing.BreakEvenResult) BreakEvenResponse {
	projection := make([]ProjectionResponse, 0, len(r.Projection))
	for _, p := range r.Projection {
		projection = append(projection, ProjectionResponse{Guests: p.Guests, Profit: p.Profit})
	}
	return BreakEvenResponse{
		ContributionMargin: r.ContributionMargin,
		BreakEvenGuests:    r.BreakEvenGuests,
		Projection:         projection,
	}
}
