package productcontroller

import (
	"errors"
	"net/http"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name           *string  `json:"name"`
	Price          *float64 `json:"price"`
	Description    *string  `json:"description"`
	StockQuantity  *int     `json:"stock_quantity"`
	CategoryID     *string  `json:"category_id"`
	ManufacturerID *string  `json:"manufacturer_id"`
}

// UpdateProduct applies a partial update. Stock set here is the explicit
// admin path; order placement is the only other stock mutation.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ProductNotFound(id))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch product", err))
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
				return
			}
			product.Price = *input.Price
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.StockQuantity != nil {
			if *input.StockQuantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock_quantity must not be negative"})
				return
			}
			product.StockQuantity = *input.StockQuantity
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
				apperrors.Respond(c, apperrors.CategoryNotFound(*input.CategoryID))
				return
			}
			product.CategoryID = category.ID
		}
		if input.ManufacturerID != nil {
			var manufacturer models.Manufacturer
			if err := db.First(&manufacturer, "id = ?", *input.ManufacturerID).Error; err != nil {
				apperrors.Respond(c, apperrors.ManufacturerNotFound(*input.ManufacturerID))
				return
			}
			product.ManufacturerID = manufacturer.ID
		}

		if err := db.Save(&product).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to update product", err))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
