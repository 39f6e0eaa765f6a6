package routes

import (
	cartControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/cart"
	userControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/user"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// User profile
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCartHandler(db))
			cartGroup.POST("", cartControllers.AddCartItemHandler(db))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItemHandler(db))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItemHandler(db))
		}

		// Favorite products
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("", userControllers.GetFavoriteProducts(db))
			favGroup.POST("/:product_id", userControllers.AddFavoriteProduct(db))
			favGroup.DELETE("/:product_id", userControllers.RemoveFavoriteProduct(db))
		}
	}
}
