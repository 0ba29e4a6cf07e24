package costing

import (
	"errors"
	"math"
)

var ErrInvalidBreakEvenInput = errors.New("price per person and variable cost per person are required")

// projectionCheckpoints are the guest counts the UI plots profit at.
var projectionCheckpoints = [...]int{50, 100, 150, 200}

type Projection struct {
	Guests int
	Profit float64
}

type BreakEvenResult struct {
	ContributionMargin float64
	BreakEvenGuests    int
	Projection         []Projection
}

// SolveBreakEven inverts the contribution-margin formula. Zero is not a
// valid price or variable cost in this domain, so both are required. A
// negative contribution margin is allowed and simply yields a break-even
// count of 0 with negative projected profits, which callers surface as-is.
func SolveBreakEven(fixedCosts, variableCostPerPerson, pricePerPerson float64) (BreakEvenResult, error) {
	if variableCostPerPerson == 0 || pricePerPerson == 0 {
		return BreakEvenResult{}, ErrInvalidBreakEvenInput
	}

	margin := pricePerPerson - variableCostPerPerson
	breakEven := 0
	if fixedCosts > 0 && margin > 0 {
		breakEven = int(math.Ceil(fixedCosts / margin))
	}

	projection := make([]Projection, 0, len(projectionCheckpoints))
	for _, guests := range projectionCheckpoints {
		profit := float64(guests)*margin - fixedCosts
		projection = append(projection, Projection{Guests: guests, Profit: round2(profit)})
	}

	return BreakEvenResult{
		ContributionMargin: round2(margin),
		BreakEvenGuests:    breakEven,
		Projection:         projection,
	}, nil
}
