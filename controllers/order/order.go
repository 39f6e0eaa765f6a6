package orderControllers

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

type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PlaceOrder converts a user's cart into an order: resolve the user,
// snapshot the cart lines, then insert the order, decrement stock and
// clear the cart inside one transaction. Validation failures carry no
// side effects; anything unexpected after assembly rolls back and is
// reported with the order id and cause.
func PlaceOrder(db *gorm.DB, userID, deliveryAddress string) (*models.Order, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.OrderUserNotFound(userID)
		}
		return nil, apperrors.Unknown("failed to fetch user", err)
	}

	var cartItems []models.CartItem
	if err := db.Where("user_id = ? AND is_finished = ?", user.ID, false).
		Find(&cartItems).Error; err != nil {
		return nil, apperrors.Unknown("failed to fetch cart", err)
	}
	if len(cartItems) == 0 {
		return nil, apperrors.OrderUserCartIsEmpty(user.ID)
	}

	productIDs := make([]string, 0, len(cartItems))
	for _, item := range cartItems {
		productIDs = append(productIDs, item.ProductID)
	}
	var products []models.Product
	if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, apperrors.Unknown("failed to fetch products", err)
	}
	productsByID := make(map[string]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Status:          models.OrderStatusProcessing,
		DeliveryAddress: deliveryAddress,
		CreatedAt:       time.Now(),
	}
	for _, item := range cartItems {
		product, ok := productsByID[item.ProductID]
		if !ok {
			return nil, apperrors.ProductNotFound(item.ProductID)
		}
		order.Items = append(order.Items, models.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Guarded decrement: the stock check and the write are one
		// statement, so a concurrent placement cannot drive stock
		// negative.
		for _, item := range cartItems {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.InsufficientStock(item.ProductID)
			}
		}

		if err := tx.Where("user_id = ? AND is_finished = ?", user.ID, false).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.OrderUnknown(order.ID, err)
	}

	return &order, nil
}

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req.DeliveryAddress)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/my
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.OrderNotFound(orderID))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch order", err))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.OrderNotFound(orderID))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to fetch order", err))
			return
		}

		order.Status = models.OrderStatus(req.Status)
		if err := db.Save(&order).Error; err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to update order", err))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
