package routes

import (
	"imperium_store/internal/adapter/http/handlers"
	"imperium_store/internal/adapter/http/middleware"
	"imperium_store/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathShipping = "/shipping"
	PathCart     = "/cart"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathMe       = "/me"
	PathPayments = "/payments"
)

func addStoreRoutes(
	rg *gin.RouterGroup,
	jwtManager *auth.JWTManager,
	shippingHandler *handlers.ShippingHandler,
	productHandler *handlers.ProductHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	orderHandler *handlers.OrderHandler,
	userHandler *handlers.UserHandler,
	webhookHandler *handlers.PaymentWebhookHandler,
) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.List)
		products.GET("/categories", productHandler.Categories)
		products.GET("/:id", productHandler.GetByID)
	}

	shipping := rg.Group(PathShipping)
	{
		shipping.POST("/quotes", shippingHandler.Quote)
	}

	// Provider-facing; Mercado Pago authenticates via its own signature, not ours.
	rg.POST(PathPayments+"/webhook", webhookHandler.Receive)

	authenticated := rg.Group("", middleware.RequireAuth(jwtManager))
	{
		cart := authenticated.Group(PathCart)
		{
			cart.GET("", cartHandler.Get)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:product_id", cartHandler.UpdateItem)
			cart.DELETE("/items/:product_id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.Clear)
		}

		authenticated.POST(PathCheckout, checkoutHandler.Create)

		orders := authenticated.Group(PathOrders)
		{
			orders.GET("", orderHandler.ListMine)
			orders.GET("/:id", orderHandler.GetByID)
		}

		authenticated.GET(PathMe, userHandler.Me)
		authenticated.PUT(PathMe, userHandler.UpdateProfile)
	}
}
