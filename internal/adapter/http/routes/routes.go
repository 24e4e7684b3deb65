package routes

import (
	"log"
	"os"
	"strconv"

	_ "clinic_pos/docs" // This will be auto-generated
	"clinic_pos/internal/adapter/http/handlers"
	repository2 "clinic_pos/internal/adapter/persistence/repository"
	"clinic_pos/internal/infrastructure/database"
	"clinic_pos/internal/infrastructure/payments"
	"clinic_pos/internal/usecase"
	"clinic_pos/internal/usecase/interfaces"

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

	saleRepo := repository2.NewSaleDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	salesUseCase := usecase.NewSalesReportUseCase(saleRepo, catalogRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, draftRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(saleRepo, catalogRepo, paymentGateway)

	salesHandler := handlers.NewSalesHandler(salesUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPosRoutes(v1, salesHandler, catalogHandler, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
