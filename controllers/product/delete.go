package productcontroller

import (
	"net/http"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct removes a product and, via cascade, its images and any
// cart lines referencing it. Order item snapshots are unaffected.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to delete product", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apperrors.Respond(c, apperrors.ProductNotFound(id))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
