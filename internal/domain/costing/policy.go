package costing

// RatePolicy is the set of default numeric assumptions the calculator falls
// back on when a request does not override them. It is injected as a value;
// callers get copies and nothing here is ever mutated process-wide.
type RatePolicy struct {
	// LaborRate is the default hourly rate applied to roster entries without
	// an explicit rate and to flat-hours input.
	LaborRate           float64
	OverheadPercent     float64
	ProfitMarginPercent float64
	TaxRatePercent      float64

	// RoleRates is the standard hourly rate card per staffing role.
	RoleRates map[string]float64
}

// DefaultPolicy returns the house rate card. The map is built fresh on every
// call so a caller can never poison the shared defaults.
func DefaultPolicy() RatePolicy {
	return RatePolicy{
		LaborRate:           25,
		OverheadPercent:     15,
		ProfitMarginPercent: 25,
		TaxRatePercent:      8,
		RoleRates: map[string]float64{
			"Executive Chef":    55,
			"Sous Chef":         40,
			"Line Cook":         28,
			"Prep Cook":         22,
			"Pastry Chef":       35,
			"Head Server":       30,
			"Server":            25,
			"Bartender":         28,
			"Busser":            20,
			"Event Manager":     45,
			"Event Coordinator": 35,
			"Setup Crew":        20,
			"Dishwasher":        18,
			"Driver":            22,
		},
	}
}

// RoleRate resolves a role against the rate card, falling back to the
// default labor rate for unknown roles.
func (p RatePolicy) RoleRate(role string) float64 {
	if rate, ok := p.RoleRates[role]; ok {
		return rate
	}
	return p.LaborRate
}

// PolicyOverrides carries per-request overrides of the scalar defaults.
// Nil fields keep the policy value.
type PolicyOverrides struct {
	LaborRate           *float64
	OverheadPercent     *float64
	ProfitMarginPercent *float64
	TaxRatePercent      *float64
}

// Apply returns a copy of p with the overrides folded in. The receiver is
// left untouched, including its rate card.
func (o PolicyOverrides) Apply(p RatePolicy) RatePolicy {
	if o.LaborRate != nil {
		p.LaborRate = *o.LaborRate
	}
	if o.OverheadPercent != nil {
		p.OverheadPercent = *o.OverheadPercent
	}
	if o.ProfitMarginPercent != nil {
		p.ProfitMarginPercent = *o.ProfitMarginPercent
	}
	if o.TaxRatePercent != nil {
		p.TaxRatePercent = *o.TaxRatePercent
	}
	return p
}
