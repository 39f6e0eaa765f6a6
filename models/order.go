package models

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the enumerated statuses.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              string      `gorm:"primaryKey;size:36" json:"id"`
	UserID          string      `gorm:"size:36;not null;index" json:"user_id"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);not null" json:"status"`
	DeliveryAddress string      `gorm:"not null" json:"delivery_address"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem is an immutable snapshot of a cart line taken at placement
// time. ProductID is kept for stock bookkeeping but carries no foreign
// key: the snapshot must outlive the product.
type OrderItem struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	OrderID     string  `gorm:"size:36;index" json:"order_id"`
	ProductID   string  `gorm:"size:36" json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
