package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "kd_cleaning/docs" // This will be auto-generated
	"kd_cleaning/internal/adapter/http/handlers"
	repository2 "kd_cleaning/internal/adapter/persistence/repository"
	"kd_cleaning/internal/infrastructure/database"
	"kd_cleaning/internal/infrastructure/extraction"
	"kd_cleaning/internal/usecase"
	"kd_cleaning/internal/usecase/interfaces"

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

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	workerRepo := repository2.NewWorkerDynamoRepository(ddb)
	unitRepo := repository2.NewUnitDynamoRepository(ddb)
	unitTypeRepo := repository2.NewUnitTypeDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	configRepo := repository2.NewUserConfigDynamoRepository(ddb)

	var extractionGateway interfaces.IExtractionGateway
	gemini, err := extraction.NewGeminiGateway(os.Getenv("EXTRACTION_API_KEY"))
	if err != nil {
		log.Printf("Extraction gateway not configured: %v", err)
	} else {
		extractionGateway = gemini
	}

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, workerRepo, unitRepo, configRepo)
	workerUseCase := usecase.NewWorkerUseCase(workerRepo)
	unitUseCase := usecase.NewUnitUseCase(unitRepo)
	unitTypeUseCase := usecase.NewUnitTypeUseCase(unitTypeRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, serviceRepo, workerRepo, unitRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, serviceRepo, configRepo)
	configUseCase := usecase.NewUserConfigUseCase(configRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(serviceRepo, workerRepo, unitRepo, clientRepo, paymentRepo, invoiceRepo)
	importUseCase := usecase.NewImportUseCase(extractionGateway, unitRepo)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	workerHandler := handlers.NewWorkerHandler(workerUseCase)
	unitHandler := handlers.NewUnitHandler(unitUseCase, unitTypeUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	configHandler := handlers.NewUserConfigHandler(configUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	importHandler := handlers.NewImportHandler(importUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSchedulingRoutes(v1, serviceHandler, importHandler)
	addCatalogRoutes(v1, workerHandler, unitHandler, clientHandler)
	addBillingRoutes(v1, paymentHandler, invoiceHandler)
	addAccountRoutes(v1, configHandler, dashboardHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
