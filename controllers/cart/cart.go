package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// AddCartItem validates a requested cart line against current stock and
// persists it. An existing unfinished line for the same product is
// updated instead of duplicated.
func AddCartItem(db *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, apperrors.InvalidQuantity(quantity)
	}

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ProductNotFound(productID)
		}
		return nil, apperrors.Unknown("failed to fetch product", err)
	}

	if quantity > product.StockQuantity {
		return nil, apperrors.QuantityExceedsStock(productID, quantity, product.StockQuantity)
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ? AND is_finished = ?", userID, productID, false).
		First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unknown("failed to fetch cart item", err)
		}
		item = models.CartItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, apperrors.Unknown("failed to add item to cart", err)
		}
		return &item, nil
	}

	item.Quantity = quantity
	item.AddedAt = time.Now()
	if err := db.Save(&item).Error; err != nil {
		return nil, apperrors.Unknown("failed to update cart item", err)
	}
	return &item, nil
}

// UpdateCartItemQuantity re-validates the new quantity against current
// stock; stock may have changed since the line was created.
func UpdateCartItemQuantity(db *gorm.DB, itemID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, apperrors.InvalidQuantity(quantity)
	}

	var item models.CartItem
	if err := db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.CartItemNotFound(itemID)
		}
		return nil, apperrors.Unknown("failed to fetch cart item", err)
	}

	var product models.Product
	if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ProductNotFound(item.ProductID)
		}
		return nil, apperrors.Unknown("failed to fetch product", err)
	}

	if quantity > product.StockQuantity {
		return nil, apperrors.QuantityExceedsStock(item.ProductID, quantity, product.StockQuantity)
	}

	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return nil, apperrors.Unknown("failed to update cart item", err)
	}
	return &item, nil
}

// POST /user/cart
func AddCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddCartItem(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/cart/:item_id
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := UpdateCartItemQuantity(db, itemID, input.Quantity)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("item_id")

		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to delete cart item", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apperrors.Respond(c, apperrors.CartItemNotFound(itemID))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// GET /user/cart
func GetUserCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.CartItem
		if err := db.Preload("Product").
			Where("user_id = ? AND is_finished = ?", userID, false).
			Order("added_at").
			Find(&items).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to fetch cart", err))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
