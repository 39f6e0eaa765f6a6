package manufacturerControllers

import (
	"errors"
	"net/http"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ManufacturerInput struct {
	Name string `json:"name" binding:"required"`
}

// DeleteManufacturer removes a manufacturer unless products still
// reference it.
func DeleteManufacturer(db *gorm.DB, id string) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	if err := db.First(&manufacturer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ManufacturerNotFound(id)
		}
		return nil, apperrors.Unknown("failed to fetch manufacturer", err)
	}

	if err := db.Delete(&manufacturer).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.HasRelatedEntities("manufacturer", id)
		}
		return nil, apperrors.Unknown("failed to delete manufacturer", err)
	}
	return &manufacturer, nil
}

// GET /manufacturers
func GetAllManufacturers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var manufacturers []models.Manufacturer
		if err := db.Order("name").Find(&manufacturers).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to fetch manufacturers", err))
			return
		}
		c.JSON(http.StatusOK, manufacturers)
	}
}

// GET /manufacturers/:id
func GetManufacturerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ManufacturerNotFound(id))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch manufacturer", err))
			return
		}
		c.JSON(http.StatusOK, manufacturer)
	}
}

// POST /manufacturers (admin)
func CreateManufacturer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ManufacturerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		manufacturer := models.Manufacturer{ID: uuid.NewString(), Name: input.Name}
		if err := db.Create(&manufacturer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Manufacturer already exists"})
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to create manufacturer", err))
			return
		}
		c.JSON(http.StatusCreated, manufacturer)
	}
}

// PUT /manufacturers/:id (admin)
func UpdateManufacturer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ManufacturerNotFound(id))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch manufacturer", err))
			return
		}

		var input ManufacturerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		manufacturer.Name = input.Name
		if err := db.Save(&manufacturer).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to update manufacturer", err))
			return
		}
		c.JSON(http.StatusOK, manufacturer)
	}
}

// DELETE /manufacturers/:id (admin)
func DeleteManufacturerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		manufacturer, err := DeleteManufacturer(db, c.Param("id"))
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, manufacturer)
	}
}
