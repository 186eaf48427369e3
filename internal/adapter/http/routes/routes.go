package routes

import (
	"log"
	"strconv"

	_ "gestao_imobiliaria/docs" // This will be auto-generated
	"gestao_imobiliaria/internal/adapter/http/handlers"
	"gestao_imobiliaria/internal/adapter/persistence/repository"
	"gestao_imobiliaria/internal/infrastructure/database"
	"gestao_imobiliaria/internal/usecase"

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

	propertyRepo := repository.NewPropertyDynamoRepository(ddb)
	contractRepo := repository.NewContractDynamoRepository(ddb)
	tenantRepo := repository.NewTenantDynamoRepository(ddb)
	legalCaseRepo := repository.NewLegalCaseDynamoRepository(ddb)

	reconciler := usecase.NewPropertyStatusReconciler(contractRepo, propertyRepo)

	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, tenantRepo, propertyRepo, reconciler)
	tenantUseCase := usecase.NewTenantUseCase(tenantRepo)
	legalCaseUseCase := usecase.NewLegalCaseUseCase(legalCaseRepo)

	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	tenantHandler := handlers.NewTenantHandler(tenantUseCase)
	legalCaseHandler := handlers.NewLegalCaseHandler(legalCaseUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPropertyRoutes(v1, propertyHandler)
	addContractRoutes(v1, contractHandler)
	addTenantRoutes(v1, tenantHandler)
	addLegalCaseRoutes(v1, legalCaseHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
