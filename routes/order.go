package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/order"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout: create a new order from the requested items
		orders.POST("/", orderControllers.PlaceOrderHandler(db))

		// Order history of the authenticated user
		orders.GET("/history", orderControllers.GetOrderHistoryHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch one of the user's own orders
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Owner cancellation (CREATED or PENDING_PAYMENT only)
		orders.PUT("/cancel/:orderID", orderControllers.CancelOrderHandler(db))

		// Staff status transition
		orders.PUT("/:orderID/status",
			middleware.RequireAdmin, orderControllers.ChangeOrderStatusHandler(db))

		// Fetch all orders (staff)
		orders.GET("/", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))
	}
}
