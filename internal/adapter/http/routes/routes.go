package routes

import (
	_ "catering_ledger/docs"
	"catering_ledger/internal/adapter/http/handlers"
	"catering_ledger/internal/adapter/persistence/repository"
	"catering_ledger/internal/config"
	"catering_ledger/internal/infrastructure/cache"
	"catering_ledger/internal/infrastructure/database"
	"catering_ledger/internal/infrastructure/messaging"
	"catering_ledger/internal/infrastructure/payments"
	"catering_ledger/internal/usecase"
	"catering_ledger/internal/usecase/interfaces"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.BookingsTable)
	receiptRepo := repository.NewPaymentReceiptDynamoRepository(ddb, cfg.PaymentsTable)

	var portfolioCache interfaces.IPortfolioCache
	if client := cache.NewRedisClient(cfg); client != nil {
		portfolioCache = cache.NewRedisPortfolioCache(client, cfg.PortfolioCacheTTL)
	}

	publisher := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.NotificationsQueue)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	if cfg.PaymentGatewayMock {
		log.Printf("Payment gateway mock mode enabled")
	}

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, publisher, portfolioCache).WithLocation(cfg.Location)
	ledgerUseCase := usecase.NewLedgerUseCase(bookingUseCase, portfolioCache, cfg.Location)
	paymentUseCase := usecase.NewBillingPaymentUseCase(receiptRepo, bookingUseCase, paymentGateway)

	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)
	billingPaymentHandler := handlers.NewBillingPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler)
	addLedgerRoutes(v1, ledgerHandler)
	addPaymentRoutes(v1, billingPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
