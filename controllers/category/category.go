package categoryControllers

import (
	"errors"
	"net/http"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// DeleteCategory removes a category unless products still reference it;
// the store's foreign-key rejection is translated into a conflict.
func DeleteCategory(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.CategoryNotFound(id)
		}
		return nil, apperrors.Unknown("failed to fetch category", err)
	}

	if err := db.Delete(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.HasRelatedEntities("category", id)
		}
		return nil, apperrors.Unknown("failed to delete category", err)
	}
	return &category, nil
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to fetch categories", err))
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.CategoryNotFound(id))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch category", err))
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// POST /categories (admin)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{ID: uuid.NewString(), Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to create category", err))
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /categories/:id (admin)
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.CategoryNotFound(id))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch category", err))
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category.Name = input.Name
		if err := db.Save(&category).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to update category", err))
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /categories/:id (admin)
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := DeleteCategory(db, c.Param("id"))
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
