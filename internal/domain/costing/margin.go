package costing

import "catermate/internal/domain/entities"

// MarginReport compares what an event actually billed against what the
// rule-of-thumb costing says it should have cost. It deliberately ignores
// any explicit staffing or equipment detail a saved estimate might carry;
// the question it answers is how the heuristics stack up against revenue.
type MarginReport struct {
	EventName          string
	Revenue            float64
	FoodCost           float64
	LaborCost          float64
	EquipmentCost      float64
	TotalCost          float64
	GrossProfit        float64
	GrossMarginPercent float64
}

// AnalyzeMargin builds the report from realized revenue and the heuristic
// cost buckets. Revenue 0 yields a 0 margin percent, never a division error.
func AnalyzeMargin(eventName string, guestCount int, pkg *entities.MenuPackage, revenue float64) MarginReport {
	food := heuristicFoodPerPerson(pkg) * float64(guestCount)
	labor, _ := HeuristicLabor(guestCount)
	equipment, _ := HeuristicEquipment(guestCount)

	totalCost := food + labor + equipment
	grossProfit := revenue - totalCost
	marginPercent := 0.0
	if revenue > 0 {
		marginPercent = grossProfit / revenue * 100
	}

	return MarginReport{
		EventName:          eventName,
		Revenue:            round2(revenue),
		FoodCost:           round2(food),
		LaborCost:          round2(labor),
		EquipmentCost:      round2(equipment),
		TotalCost:          round2(totalCost),
		GrossProfit:        round2(grossProfit),
		GrossMarginPercent: round2(marginPercent),
	}
}
