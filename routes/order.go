package routes

import (
	orderControllers "github.com/Nikita-Dem/StreetCoffeeSait/controllers/order"
	"github.com/Nikita-Dem/StreetCoffeeSait/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		// Checkout submission
		api.POST("/orders", orderControllers.CreateOrderHandler(db))

		// Live feed of accepted orders for the barista dashboard
		api.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

		// Order history for a customer phone number
		api.GET("/orders/:phone", orderControllers.GetOrdersByPhoneHandler(db))
	}

	admin := r.Group("/api/admin", middleware.ValidateAPIKey)
	{
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
	}
}
