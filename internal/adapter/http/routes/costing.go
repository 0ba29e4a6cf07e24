package routes

import (
	"catermate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCosting   = "/costing"
	PathEstimates = "/estimates"
)

func addCostingRoutes(rg *gin.RouterGroup, costingHandler *handlers.CostingHandler) {
	costing := rg.Group(PathCosting)
	{
		costing.POST("/estimate", costingHandler.ComputeEstimate)
		costing.GET("/quick-estimate/:event_id", costingHandler.QuickEstimate)
		costing.GET("/margin-analysis/:event_id", costingHandler.MarginAnalysis)
		costing.POST("/break-even", costingHandler.BreakEven)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.SaveEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.POST("/:id/convert-to-proposal", estimateHandler.ConvertToProposal)
	}
}
