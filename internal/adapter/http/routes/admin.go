package routes

import (
	"imperium_store/internal/adapter/http/handlers"
	"imperium_store/internal/adapter/http/middleware"
	"imperium_store/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(
	rg *gin.RouterGroup,
	jwtManager *auth.JWTManager,
	productHandler *handlers.ProductHandler,
	couponHandler *handlers.CouponHandler,
	orderHandler *handlers.OrderHandler,
	userHandler *handlers.UserHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	admin := rg.Group(PathAdmin, middleware.RequireAuth(jwtManager), middleware.RequireAdmin())

	products := admin.Group(PathProducts)
	{
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
		products.POST("/:id/image-upload-url", productHandler.GenerateImageUploadURL)
	}

	coupons := admin.Group("/coupons")
	{
		coupons.GET("", couponHandler.List)
		coupons.POST("", couponHandler.Create)
		coupons.PUT("/:id", couponHandler.Update)
		coupons.DELETE("/:id", couponHandler.Delete)
	}

	orders := admin.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListAll)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	}

	admin.GET("/customers", userHandler.ListCustomers)
	admin.GET("/dashboard", dashboardHandler.Summary)
}
