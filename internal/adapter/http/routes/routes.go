package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "imperium_store/docs" // This will be auto-generated
	"imperium_store/internal/adapter/http/handlers"
	repository2 "imperium_store/internal/adapter/persistence/repository"
	"imperium_store/internal/infrastructure/auth"
	"imperium_store/internal/infrastructure/database"
	"imperium_store/internal/infrastructure/payments"
	"imperium_store/internal/infrastructure/storage"
	"imperium_store/internal/usecase"
	"imperium_store/internal/usecase/interfaces"

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

	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	couponRepo := repository2.NewCouponDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var objectStorage interfaces.IObjectStorage
	s3Storage, err := storage.NewS3ObjectStorageFromEnv(context.Background())
	if err != nil {
		log.Printf("S3 storage not configured: %v", err)
	} else if s3Storage != nil {
		objectStorage = s3Storage
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	shippingUseCase := usecase.NewShippingQuoteUseCase()
	productUseCase := usecase.NewProductUseCase(productRepo, objectStorage)
	cartUseCase := usecase.NewCartUseCase(userRepo, productRepo)
	couponUseCase := usecase.NewCouponUseCase(couponRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(userRepo, productRepo, orderRepo, couponUseCase, shippingUseCase, paymentGateway)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, productRepo, userRepo)

	shippingHandler := handlers.NewShippingHandler(shippingUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	couponHandler := handlers.NewCouponHandler(couponUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewPaymentWebhookHandler(orderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	jwtManager := auth.NewJWTManagerFromEnv()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, jwtManager, shippingHandler, productHandler, cartHandler, checkoutHandler, orderHandler, userHandler, webhookHandler)
	addAdminRoutes(v1, jwtManager, productHandler, couponHandler, orderHandler, userHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
