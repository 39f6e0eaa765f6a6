package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts returns all products.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Preload("Manufacturer").Preload("Images").
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to fetch products", err))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// FilterProducts narrows the catalog by any combination of category,
// manufacturers, name substring, price range and stock range.
// Query params: category_id, manufacturer_ids, name, min_price,
// max_price, min_stock, max_stock.
func FilterProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Category").Preload("Manufacturer").Preload("Images")

		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if manufacturerIDs := c.QueryArray("manufacturer_ids"); len(manufacturerIDs) > 0 {
			query = query.Where("manufacturer_id IN ?", manufacturerIDs)
		}
		if name := c.Query("name"); name != "" {
			query = query.Where("name LIKE ?", "%"+name+"%")
		}

		for param, clause := range map[string]string{
			"min_price": "price >= ?",
			"max_price": "price <= ?",
		} {
			if raw := c.Query(param); raw != "" {
				value, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
					return
				}
				query = query.Where(clause, value)
			}
		}
		for param, clause := range map[string]string{
			"min_stock": "stock_quantity >= ?",
			"max_stock": "stock_quantity <= ?",
		} {
			if raw := c.Query(param); raw != "" {
				value, err := strconv.Atoi(raw)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
					return
				}
				query = query.Where(clause, value)
			}
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to filter products", err))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
