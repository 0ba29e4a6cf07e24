package usecase

import (
	"context"
	"errors"
	"strings"

	"catermate/internal/domain/costing"
	"catermate/internal/domain/entities"
	"catermate/internal/usecase/interfaces"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidEventID = errors.New("invalid event id")
)

// EstimateCommand is the resolved-reference form of an estimate request:
// ids still to be looked up, labor already shaped into its tagged variant
// by the boundary layer.
type EstimateCommand struct {
	GuestCount   int
	PackageID    string
	Labor        costing.LaborInput
	EquipmentIDs []string
	Additional   []costing.CostLine
	Overrides    costing.PolicyOverrides
}

// QuickEstimateReport pairs a ballpark result with the event it was derived
// from.
type QuickEstimateReport struct {
	EventID   string
	EventName string
	Result    costing.Result
}

// ICostingUseCase exposes the deterministic pricing operations: the full
// calculator, the one-click quick estimate, after-the-fact margin analysis
// and the break-even solver.

type ICostingUseCase interface {
	ComputeEstimate(ctx context.Context, cmd EstimateCommand) (costing.Result, error)
	QuickEstimate(ctx context.Context, eventID string) (QuickEstimateReport, error)
	AnalyzeMargin(ctx context.Context, eventID string) (costing.MarginReport, error)
	SolveBreakEven(fixedCosts, variableCostPerPerson, pricePerPerson float64) (costing.BreakEvenResult, error)
}

type CostingUseCase struct {
	catalog interfaces.ICateringCatalog
	policy  costing.RatePolicy
}

var _ ICostingUseCase = (*CostingUseCase)(nil)

func NewCostingUseCase(catalog interfaces.ICateringCatalog, policy costing.RatePolicy) *CostingUseCase {
	return &CostingUseCase{catalog: catalog, policy: policy}
}

// ComputeEstimate resolves the command's weak references and hands the pure
// calculator a fully materialized input. Unresolvable package or equipment
// ids degrade to the calculator's fallback branches instead of failing.
func (u *CostingUseCase) ComputeEstimate(ctx context.Context, cmd EstimateCommand) (costing.Result, error) {
	if cmd.GuestCount <= 0 {
		return costing.Result{}, costing.ErrInvalidGuestCount
	}

	var pkg *entities.MenuPackage
	if id := strings.TrimSpace(cmd.PackageID); id != "" {
		resolved, err := u.catalog.GetMenuPackage(ctx, id)
		if err != nil {
			return costing.Result{}, err
		}
		if resolved.ID != "" {
			pkg = &resolved
		}
	}

	var equipment []entities.EquipmentItem
	if len(cmd.EquipmentIDs) > 0 {
		resolved, err := u.catalog.GetEquipmentByIDs(ctx, cmd.EquipmentIDs)
		if err != nil {
			return costing.Result{}, err
		}
		if resolved == nil {
			resolved = []entities.EquipmentItem{}
		}
		equipment = resolved
	}

	return costing.Compute(costing.Input{
		GuestCount: cmd.GuestCount,
		Package:    pkg,
		Labor:      cmd.Labor,
		Equipment:  equipment,
		Additional: cmd.Additional,
		Policy:     cmd.Overrides.Apply(u.policy),
	})
}

// QuickEstimate derives guest count and package from the event's first
// linked order and runs the heuristic-only calculator.
func (u *CostingUseCase) QuickEstimate(ctx context.Context, eventID string) (QuickEstimateReport, error) {
	ev, err := u.loadEvent(ctx, eventID)
	if err != nil {
		return QuickEstimateReport{}, err
	}

	pkg, err := u.firstOrderPackage(ctx, ev)
	if err != nil {
		return QuickEstimateReport{}, err
	}

	result, err := costing.QuickCompute(ev.GuestCount, pkg, u.policy)
	if err != nil {
		return QuickEstimateReport{}, err
	}
	return QuickEstimateReport{EventID: ev.ID, EventName: ev.Name, Result: result}, nil
}

// AnalyzeMargin compares the event's paid invoices against the heuristic
// cost buckets. Saved estimates and their explicit overrides are never
// consulted here.
func (u *CostingUseCase) AnalyzeMargin(ctx context.Context, eventID string) (costing.MarginReport, error) {
	ev, err := u.loadEvent(ctx, eventID)
	if err != nil {
		return costing.MarginReport{}, err
	}

	pkg, err := u.firstOrderPackage(ctx, ev)
	if err != nil {
		return costing.MarginReport{}, err
	}

	revenue := 0.0
	for _, inv := range ev.Invoices {
		if strings.EqualFold(inv.Status, entities.InvoiceStatusPaid) {
			revenue += inv.Total
		}
	}

	return costing.AnalyzeMargin(ev.Name, ev.GuestCount, pkg, revenue), nil
}

func (u *CostingUseCase) SolveBreakEven(fixedCosts, variableCostPerPerson, pricePerPerson float64) (costing.BreakEvenResult, error) {
	return costing.SolveBreakEven(fixedCosts, variableCostPerPerson, pricePerPerson)
}

func (u *CostingUseCase) loadEvent(ctx context.Context, eventID string) (entities.Event, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return entities.Event{}, ErrInvalidEventID
	}
	ev, err := u.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return entities.Event{}, err
	}
	if ev.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	return ev, nil
}

// firstOrderPackage resolves the menu package of the event's first order.
// Events without orders, and dangling package ids, both mean "no package".
func (u *CostingUseCase) firstOrderPackage(ctx context.Context, ev entities.Event) (*entities.MenuPackage, error) {
	if len(ev.Orders) == 0 || ev.Orders[0].PackageID == "" {
		return nil, nil
	}
	resolved, err := u.catalog.GetMenuPackage(ctx, ev.Orders[0].PackageID)
	if err != nil {
		return nil, err
	}
	if resolved.ID == "" {
		return nil, nil
	}
	return &resolved, nil
}
