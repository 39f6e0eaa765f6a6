package models

import "gorm.io/gorm"

// Migrate creates the schema and seeds the role table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Role{},
		&User{},
		&Category{},
		&Manufacturer{},
		&Product{},
		&ProductImage{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&RefreshToken{},
	); err != nil {
		return err
	}

	for _, role := range []Role{{ID: RoleAdmin}, {ID: RoleUser}} {
		if err := db.FirstOrCreate(&Role{}, role).Error; err != nil {
			return err
		}
	}
	return nil
}
