package userControllers

import (
	"errors"
	"net/http"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Name *string `json:"name"`
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.Preload("Roles").
			Preload("CartItems", "is_finished = ?", false).
			Preload("CartItems.Product").
			Preload("FavoriteProducts").
			First(&user, "id = ?", userID).Error; err != nil {
			apperrors.Respond(c, apperrors.UserNotFound(userID))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Preload("Roles").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to fetch users", err))
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PUT /user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			apperrors.Respond(c, apperrors.UserNotFound(userID))
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if err := db.Save(&user).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to update user", err))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /user/favorites/:product_id
func AddFavoriteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("product_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			apperrors.Respond(c, apperrors.UserNotFound(userID))
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.ProductNotFound(productID))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch product", err))
			return
		}

		if err := db.Model(&user).Association("FavoriteProducts").Append(&product); err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to add favorite", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to favorites"})
	}
}

// DELETE /user/favorites/:product_id
func RemoveFavoriteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("product_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			apperrors.Respond(c, apperrors.UserNotFound(userID))
			return
		}

		if err := db.Model(&user).Association("FavoriteProducts").
			Delete(&models.Product{ID: productID}); err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to remove favorite", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from favorites"})
	}
}

// GET /user/favorites
func GetFavoriteProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.Preload("FavoriteProducts").First(&user, "id = ?", userID).Error; err != nil {
			apperrors.Respond(c, apperrors.UserNotFound(userID))
			return
		}
		c.JSON(http.StatusOK, user.FavoriteProducts)
	}
}
