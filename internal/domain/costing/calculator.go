package costing

import (
	"errors"
	"math"

	"catermate/internal/domain/entities"
)

var ErrInvalidGuestCount = errors.New("guest count must be positive")

// Heuristic constants. These are the rule-of-thumb figures the business uses
// when a request carries no explicit staffing or equipment detail; margin
// analysis reuses them verbatim so both sides of the comparison share one
// formula set.
const (
	foodCostShare = 0.40 // estimated food cost as a share of package price

	guestsPerServer      = 20
	guestsPerChef        = 50
	heuristicShiftHours  = 6
	heuristicChefRate    = 35
	heuristicServerRate  = 25
	guestsPerEquipUnit   = 10
	heuristicEquipRate   = 15
	explicitEquipUnit    = 5
	defaultFoodPerPerson = 25 // quick-estimate/margin fallback when no package resolves
)

// LaborMode tags the three mutually exclusive labor input shapes. The shape
// is decided once at the boundary so the calculator can switch exhaustively
// instead of probing types.
type LaborMode int

const (
	LaborUnspecified LaborMode = iota
	LaborFlatHours
	LaborRoster
)

// StaffLine is one explicit roster entry. HourlyRate 0 means "use the
// policy default".
type StaffLine struct {
	Role       string
	Hours      float64
	HourlyRate float64
}

// LaborInput is the tagged labor variant. Hours is meaningful only for
// LaborFlatHours, Roster only for LaborRoster.
type LaborInput struct {
	Mode   LaborMode
	Hours  float64
	Roster []StaffLine
}

// CostLine is a free-form additional cost.
type CostLine struct {
	Description string
	Amount      float64
}

// Input is everything Compute needs, fully resolved. Package and Equipment
// lookups happen before this call; the calculator performs no I/O.
type Input struct {
	GuestCount int
	Package    *entities.MenuPackage
	Labor      LaborInput
	// Equipment nil means "unspecified, use the heuristic"; a non-nil slice
	// (even empty) means the caller supplied explicit equipment.
	Equipment  []entities.EquipmentItem
	Additional []CostLine
	Policy     RatePolicy
}

// Rate is a percent plus the amount it produced.
type Rate struct {
	Percent float64
	Amount  float64
}

type Summary struct {
	GuestCount     int
	PricePerPerson float64
	Total          float64
}

// Breakdown is the itemized price build-up. Every field is rounded to cents;
// the chain is food+labor+equipment+additional = direct, then overhead,
// profit and tax layered on in that order.
type Breakdown struct {
	FoodCost        float64
	LaborCost       float64
	EquipmentCost   float64
	AdditionalCosts float64
	DirectCosts     float64
	Overhead        Rate
	Subtotal        float64
	Profit          Rate
	PreTaxTotal     float64
	Tax             Rate
	Total           float64
}

// LaborDetail is one display line of the labor bucket. Values keep full
// precision; they are never re-summed downstream.
type LaborDetail struct {
	Role  string
	Hours float64
	Rate  float64
	Cost  float64
}

type EquipmentDetail struct {
	Name     string
	Quantity int
	Cost     float64
}

type PackageDetail struct {
	Name           string
	PricePerPerson float64
	CostPerPerson  float64
}

type Details struct {
	Package    *PackageDetail
	Labor      []LaborDetail
	Equipment  []EquipmentDetail
	Additional []CostLine
}

type Result struct {
	Summary   Summary
	Breakdown Breakdown
	Details   Details
}

// Compute produces the full itemized estimate. It is a total function over
// its optional inputs; the only rejected input is a non-positive guest count.
func Compute(in Input) (Result, error) {
	if in.GuestCount <= 0 {
		return Result{}, ErrInvalidGuestCount
	}
	guests := float64(in.GuestCount)

	var foodCost float64
	var pkgDetail *PackageDetail
	if in.Package != nil {
		foodCost = packageCostPerPerson(in.Package) * guests
		pkgDetail = &PackageDetail{
			Name:           in.Package.Name,
			PricePerPerson: in.Package.PricePerPerson,
			CostPerPerson:  in.Package.CostPerPerson,
		}
	}

	laborCost, laborLines := laborBucket(in.Labor, in.GuestCount, in.Policy)
	equipCost, equipLines := equipmentBucket(in.Equipment, in.GuestCount)

	additional := 0.0
	addLines := make([]CostLine, 0, len(in.Additional))
	for _, line := range in.Additional {
		additional += line.Amount
		addLines = append(addLines, line)
	}

	details := Details{
		Package:    pkgDetail,
		Labor:      laborLines,
		Equipment:  equipLines,
		Additional: addLines,
	}
	return assemble(in.GuestCount, foodCost, laborCost, equipCost, additional, details, in.Policy), nil
}

// packageCostPerPerson applies the food-cost fallback: explicit cost basis
// when present, otherwise 40% of the selling price.
func packageCostPerPerson(pkg *entities.MenuPackage) float64 {
	if pkg.CostPerPerson > 0 {
		return pkg.CostPerPerson
	}
	return pkg.PricePerPerson * foodCostShare
}

func laborBucket(labor LaborInput, guestCount int, policy RatePolicy) (float64, []LaborDetail) {
	switch labor.Mode {
	case LaborRoster:
		total := 0.0
		lines := make([]LaborDetail, 0, len(labor.Roster))
		for _, s := range labor.Roster {
			rate := s.HourlyRate
			if rate <= 0 {
				rate = policy.LaborRate
			}
			cost := s.Hours * rate
			total += cost
			lines = append(lines, LaborDetail{Role: s.Role, Hours: s.Hours, Rate: rate, Cost: cost})
		}
		return total, lines
	case LaborFlatHours:
		cost := labor.Hours * policy.LaborRate
		return cost, []LaborDetail{{Role: "General Staff", Hours: labor.Hours, Rate: policy.LaborRate, Cost: cost}}
	default:
		return HeuristicLabor(guestCount)
	}
}

// HeuristicLabor is the staffing-by-guest-count fallback: one server per 20
// guests, one chef per 50, six-hour shifts at the standard chef/server rates.
func HeuristicLabor(guestCount int) (float64, []LaborDetail) {
	servers := math.Ceil(float64(guestCount) / guestsPerServer)
	chefs := math.Ceil(float64(guestCount) / guestsPerChef)
	chefHours := chefs * heuristicShiftHours
	serverHours := servers * heuristicShiftHours
	chefCost := chefHours * heuristicChefRate
	serverCost := serverHours * heuristicServerRate
	return chefCost + serverCost, []LaborDetail{
		{Role: "Chef", Hours: chefHours, Rate: heuristicChefRate, Cost: chefCost},
		{Role: "Servers", Hours: serverHours, Rate: heuristicServerRate, Cost: serverCost},
	}
}

func equipmentBucket(items []entities.EquipmentItem, guestCount int) (float64, []EquipmentDetail) {
	if items == nil {
		return HeuristicEquipment(guestCount)
	}
	total := 0.0
	lines := make([]EquipmentDetail, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		cost := float64(explicitEquipUnit * qty)
		total += cost
		lines = append(lines, EquipmentDetail{Name: it.Name, Quantity: qty, Cost: cost})
	}
	return total, lines
}

// HeuristicEquipment is the equipment-by-guest-count fallback: one standard
// equipment unit per 10 guests.
func HeuristicEquipment(guestCount int) (float64, []EquipmentDetail) {
	units := int(math.Ceil(float64(guestCount) / guestsPerEquipUnit))
	cost := float64(units * heuristicEquipRate)
	return cost, []EquipmentDetail{{Name: "Standard Equipment Package", Quantity: units, Cost: cost}}
}

// QuickCompute is the reduced-input ballpark: heuristics for everything, and
// a flat per-person food default when no package is linked so a quick figure
// never shows zero food cost.
func QuickCompute(guestCount int, pkg *entities.MenuPackage, policy RatePolicy) (Result, error) {
	if guestCount <= 0 {
		return Result{}, ErrInvalidGuestCount
	}
	guests := float64(guestCount)

	foodCost := heuristicFoodPerPerson(pkg) * guests
	var pkgDetail *PackageDetail
	if pkg != nil {
		pkgDetail = &PackageDetail{Name: pkg.Name, PricePerPerson: pkg.PricePerPerson, CostPerPerson: pkg.CostPerPerson}
	}
	laborCost, laborLines := HeuristicLabor(guestCount)
	equipCost, equipLines := HeuristicEquipment(guestCount)

	details := Details{
		Package:    pkgDetail,
		Labor:      laborLines,
		Equipment:  equipLines,
		Additional: []CostLine{},
	}
	return assemble(guestCount, foodCost, laborCost, equipCost, 0, details, policy), nil
}

func heuristicFoodPerPerson(pkg *entities.MenuPackage) float64 {
	if pkg != nil {
		if pkg.CostPerPerson > 0 {
			return pkg.CostPerPerson
		}
		if pkg.PricePerPerson > 0 {
			return pkg.PricePerPerson * foodCostShare
		}
	}
	return defaultFoodPerPerson
}

// assemble layers overhead, profit and tax onto the direct-cost buckets.
// Rounding happens here and only here; all intermediate math upstream stays
// unrounded so parallel uses of the heuristics cannot drift.
func assemble(guestCount int, food, labor, equipment, additional float64, details Details, policy RatePolicy) Result {
	direct := food + labor + equipment + additional
	overheadAmount := direct * policy.OverheadPercent / 100
	subtotal := direct + overheadAmount
	profitAmount := subtotal * policy.ProfitMarginPercent / 100
	preTax := subtotal + profitAmount
	taxAmount := preTax * policy.TaxRatePercent / 100
	total := preTax + taxAmount

	perPerson := 0.0
	if guestCount > 0 {
		perPerson = total / float64(guestCount)
	}

	return Result{
		Summary: Summary{
			GuestCount:     guestCount,
			PricePerPerson: round2(perPerson),
			Total:          round2(total),
		},
		Breakdown: Breakdown{
			FoodCost:        round2(food),
			LaborCost:       round2(labor),
			EquipmentCost:   round2(equipment),
			AdditionalCosts: round2(additional),
			DirectCosts:     round2(direct),
			Overhead:        Rate{Percent: policy.OverheadPercent, Amount: round2(overheadAmount)},
			Subtotal:        round2(subtotal),
			Profit:          Rate{Percent: policy.ProfitMarginPercent, Amount: round2(profitAmount)},
			PreTaxTotal:     round2(preTax),
			Tax:             Rate{Percent: policy.TaxRatePercent, Amount: round2(taxAmount)},
			Total:           round2(total),
		},
		Details: details,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
