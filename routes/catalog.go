package routes

import (
	categoryControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/category"
	manufacturerControllers "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/manufacturer"
	productcontroller "github.com/ApiPlusReactOrganization/PCComponentsAPI/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public, read-only catalog endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/filter", productcontroller.FilterProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryControllers.GetAllCategories(db))
		categories.GET("/:id", categoryControllers.GetCategoryByID(db))
	}

	manufacturers := r.Group("/manufacturers")
	{
		manufacturers.GET("", manufacturerControllers.GetAllManufacturers(db))
		manufacturers.GET("/:id", manufacturerControllers.GetManufacturerByID(db))
	}
}
