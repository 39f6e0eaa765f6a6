package routes

import (
	orderControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/order"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/middleware"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order from the caller's cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders
		orders.GET("/my", orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Admin: list everything, move status along
		admin := orders.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("", orderControllers.GetAllOrdersHandler(db))
			admin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		}
	}
}
