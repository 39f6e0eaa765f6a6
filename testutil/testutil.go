// Package testutil provides a migrated in-memory database and fixture
// seeding for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens a uniquely named in-memory sqlite database with foreign
// keys enforced and the schema migrated. Each call gets its own store.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	return db
}

// SeedUser inserts a user with the given email, a bcrypt hash of
// password and the default User role.
func SeedUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Roles:        []models.Role{{ID: models.RoleUser}},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// SeedCatalog inserts one category and one manufacturer.
func SeedCatalog(t *testing.T, db *gorm.DB) (*models.Category, *models.Manufacturer) {
	t.Helper()

	category := &models.Category{ID: uuid.NewString(), Name: "GPU " + uuid.NewString()}
	require.NoError(t, db.Create(category).Error)

	manufacturer := &models.Manufacturer{ID: uuid.NewString(), Name: "ACME " + uuid.NewString()}
	require.NoError(t, db.Create(manufacturer).Error)

	return category, manufacturer
}

// SeedProduct inserts a product with the given stock under a fresh
// category and manufacturer.
func SeedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()

	category, manufacturer := SeedCatalog(t, db)
	product := &models.Product{
		ID:             uuid.NewString(),
		Name:           name,
		Price:          price,
		StockQuantity:  stock,
		CategoryID:     category.ID,
		ManufacturerID: manufacturer.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

// SeedCartItem inserts an unfinished cart line.
func SeedCartItem(t *testing.T, db *gorm.DB, userID, productID string, quantity int) *models.CartItem {
	t.Helper()

	item := &models.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
