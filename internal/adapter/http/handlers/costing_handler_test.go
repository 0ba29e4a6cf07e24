package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"catermate/internal/adapter/http/handlers/mocks"
	"catermate/internal/domain/costing"
	"catermate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCostingHandler_ComputeEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.POST("/v1/costing/estimate", h.ComputeEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/costing/estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid guest count maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.POST("/v1/costing/estimate", h.ComputeEstimate)

		uc.EXPECT().ComputeEstimate(gomock.Any(), gomock.Any()).Return(costing.Result{}, costing.ErrInvalidGuestCount)

		req := httptest.NewRequest(http.MethodPost, "/v1/costing/estimate", bytes.NewBufferString(`{"guestCount":-3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with camelCase breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.POST("/v1/costing/estimate", h.ComputeEstimate)

		uc.EXPECT().ComputeEstimate(gomock.Any(), gomock.AssignableToTypeOf(usecase.EstimateCommand{})).DoAndReturn(
			func(_ any, cmd usecase.EstimateCommand) (costing.Result, error) {
				if cmd.GuestCount != 100 || cmd.PackageID != "pkg-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.Labor.Mode != costing.LaborFlatHours || cmd.Labor.Hours != 12 {
					t.Fatalf("unexpected labor variant: %+v", cmd.Labor)
				}
				return costing.Result{
					Summary:   costing.Summary{GuestCount: 100, PricePerPerson: 57.75, Total: 5775.30},
					Breakdown: costing.Breakdown{FoodCost: 2400, Total: 5775.30},
				}, nil
			},
		)

		body := `{"guestCount":100,"packageId":"pkg-1","staffHours":12}`
		req := httptest.NewRequest(http.MethodPost, "/v1/costing/estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		breakdown, _ := resp["breakdown"].(map[string]any)
		if breakdown["foodCost"] != 2400.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCostingHandler_QuickEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("event not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.GET("/v1/costing/quick-estimate/:event_id", h.QuickEstimate)

		uc.EXPECT().QuickEstimate(gomock.Any(), "ev-x").Return(usecase.QuickEstimateReport{}, usecase.ErrEventNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/costing/quick-estimate/ev-x", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.GET("/v1/costing/quick-estimate/:event_id", h.QuickEstimate)

		uc.EXPECT().QuickEstimate(gomock.Any(), "ev-1").Return(usecase.QuickEstimateReport{
			EventID:   "ev-1",
			EventName: "Summer Gala",
			Result:    costing.Result{Summary: costing.Summary{GuestCount: 50, Total: 3000}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/costing/quick-estimate/ev-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["eventName"] != "Summer Gala" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCostingHandler_MarginAnalysis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("storage failure maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.GET("/v1/costing/margin-analysis/:event_id", h.MarginAnalysis)

		uc.EXPECT().AnalyzeMargin(gomock.Any(), "ev-1").Return(costing.MarginReport{}, errors.New("dynamo down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/costing/margin-analysis/ev-1", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.GET("/v1/costing/margin-analysis/:event_id", h.MarginAnalysis)

		uc.EXPECT().AnalyzeMargin(gomock.Any(), "ev-1").Return(costing.MarginReport{
			EventName:          "Summer Gala",
			Revenue:            6000,
			GrossMarginPercent: 66.92,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/costing/margin-analysis/ev-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["grossMarginPercent"] != 66.92 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCostingHandler_BreakEven(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing inputs map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.POST("/v1/costing/break-even", h.BreakEven)

		uc.EXPECT().SolveBreakEven(1000.0, 0.0, 50.0).Return(costing.BreakEvenResult{}, costing.ErrInvalidBreakEvenInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/costing/break-even", bytes.NewBufferString(`{"fixedCosts":1000,"pricePerPerson":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostingUseCase(ctrl)
		h := NewCostingHandler(uc)

		r := gin.New()
		r.POST("/v1/costing/break-even", h.BreakEven)

		uc.EXPECT().SolveBreakEven(1000.0, 20.0, 50.0).Return(costing.BreakEvenResult{
			ContributionMargin: 30,
			BreakEvenGuests:    34,
			Projection:         []costing.Projection{{Guests: 50, Profit: 500}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/costing/break-even", bytes.NewBufferString(`{"fixedCosts":1000,"variableCostPerPerson":20,"pricePerPerson":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["breakEvenGuests"] != 34.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
