package handlers

import (
	"errors"
	"net/http"

	request "catermate/internal/adapter/http/dto/request"
	response "catermate/internal/adapter/http/dto/response"
	"catermate/internal/domain/costing"
	"catermate/internal/usecase"
	"catermate/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCostingPayload = pkg.NewDomainErrorSimple("INVALID_COSTING_INPUT", "Invalid costing payload", http.StatusBadRequest)
)

// CostingHandler handles the calculator-side endpoints: full estimates,
// quick estimates, margin analysis and break-even.

type CostingHandler struct {
	usecase usecase.ICostingUseCase
}

func NewCostingHandler(uc usecase.ICostingUseCase) *CostingHandler {
	return &CostingHandler{usecase: uc}
}

// ComputeEstimate runs the full cost breakdown calculator over the request
// payload and returns the itemized result without persisting anything.
func (h *CostingHandler) ComputeEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostingPayload.HTTPStatus, errInvalidCostingPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ComputeEstimate(c.Request.Context(), usecase.EstimateCommand{
		GuestCount:   payload.GuestCount,
		PackageID:    payload.PackageID,
		Labor:        payload.ResolveLabor(),
		EquipmentIDs: payload.EquipmentIDs,
		Additional:   payload.ResolveAdditional(),
		Overrides:    payload.ResolveOverrides(),
	})
	if err != nil {
		appErr := mapCostingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResult(result))
}

// QuickEstimate returns the one-click ballpark figure for an event.
func (h *CostingHandler) QuickEstimate(c *gin.Context) {
	report, err := h.usecase.QuickEstimate(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		appErr := mapCostingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuickEstimate(report))
}

// MarginAnalysis reports realized revenue against heuristic costs.
func (h *CostingHandler) MarginAnalysis(c *gin.Context) {
	report, err := h.usecase.AnalyzeMargin(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		appErr := mapCostingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMarginReport(report))
}

// BreakEven solves for the guest count at which fixed costs are covered.
func (h *CostingHandler) BreakEven(c *gin.Context) {
	var payload request.BreakEvenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostingPayload.HTTPStatus, errInvalidCostingPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SolveBreakEven(payload.FixedCosts, payload.VariableCostPerPerson, payload.PricePerPerson)
	if err != nil {
		appErr := mapCostingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakEven(result))
}

func mapCostingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, costing.ErrInvalidGuestCount),
		errors.Is(err, costing.ErrInvalidBreakEvenInput),
		errors.Is(err, usecase.ErrInvalidEventID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Underlying storage is unavailable", err, http.StatusServiceUnavailable)
	}
}
