package routes

import (
	categoryControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/category"
	manufacturerControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/manufacturer"
	productcontroller "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/product"
	userControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/user"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/middleware"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT
// carrying the Admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		// User management
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// Product management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// Category management
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categoryControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", categoryControllers.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categoryControllers.DeleteCategoryHandler(db))
		}

		// Manufacturer management
		manufacturerAdmin := adminGroup.Group("/manufacturers")
		{
			manufacturerAdmin.POST("", manufacturerControllers.CreateManufacturer(db))
			manufacturerAdmin.PUT("/:id", manufacturerControllers.UpdateManufacturer(db))
			manufacturerAdmin.DELETE("/:id", manufacturerControllers.DeleteManufacturerHandler(db))
		}
	}
}
