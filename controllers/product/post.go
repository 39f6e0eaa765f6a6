package productcontroller

import (
	"errors"
	"net/http"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name           string   `json:"name" binding:"required"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	Description    string   `json:"description"`
	StockQuantity  int      `json:"stock_quantity" binding:"min=0"`
	CategoryID     string   `json:"category_id" binding:"required"`
	ManufacturerID string   `json:"manufacturer_id" binding:"required"`
	Images         []string `json:"images"`
}

// CreateProduct creates a new product under an existing category and
// manufacturer.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.CategoryNotFound(input.CategoryID))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch category", err))
			return
		}

		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, "id = ?", input.ManufacturerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ManufacturerNotFound(input.ManufacturerID))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch manufacturer", err))
			return
		}

		product := models.Product{
			ID:             uuid.NewString(),
			Name:           input.Name,
			Price:          input.Price,
			Description:    input.Description,
			StockQuantity:  input.StockQuantity,
			CategoryID:     category.ID,
			ManufacturerID: manufacturer.ID,
		}
		for _, fileName := range input.Images {
			product.Images = append(product.Images, models.ProductImage{
				ID:        uuid.NewString(),
				ProductID: product.ID,
				FileName:  fileName,
			})
		}

		if err := db.Create(&product).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to create product", err))
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
