package productcontroller

import (
	"errors"
	"net/http"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its category,
// manufacturer and images.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Category").Preload("Manufacturer").Preload("Images").
			First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ProductNotFound(id))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to retrieve product", err))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
