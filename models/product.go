package models

import "time"

type Product struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Price          float64        `gorm:"not null" json:"price"`
	Description    string         `json:"description"`
	StockQuantity  int            `gorm:"not null;default:0" json:"stock_quantity"`
	CategoryID     string         `gorm:"size:36;not null;index" json:"category_id"`
	Category       *Category      `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	ManufacturerID string         `gorm:"size:36;not null;index" json:"manufacturer_id"`
	Manufacturer   *Manufacturer  `gorm:"foreignKey:ManufacturerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"manufacturer,omitempty"`
	Images         []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ProductImage holds image metadata only; file storage lives outside
// this service.
type ProductImage struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ProductID string `gorm:"size:36;index" json:"product_id"`
	FileName  string `gorm:"not null" json:"file_name"`
}
