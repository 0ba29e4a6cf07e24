package routes

import (
	"log"
	"strconv"

	_ "catermate/docs" // This will be auto-generated
	"catermate/internal/adapter/http/handlers"
	"catermate/internal/adapter/persistence/repository"
	"catermate/internal/domain/costing"
	"catermate/internal/infrastructure/database"
	"catermate/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	proposalRepo := repository.NewProposalDynamoRepository(ddb)
	catalog := repository.NewCatalogDynamoRepository(ddb)

	costingUseCase := usecase.NewCostingUseCase(catalog, costing.DefaultPolicy())
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, proposalRepo)

	costingHandler := handlers.NewCostingHandler(costingUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCostingRoutes(v1, costingHandler)
	addEstimateRoutes(v1, estimateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
