package orderControllers

import (
	"testing"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCreatesOrderDecrementsStockAndClearsCart(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "buyer@example.com", "password123")
	product := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 5)
	testutil.SeedCartItem(t, db, user.ID, product.ID, 2)

	order, err := PlaceOrder(db, user.ID, "Main Street 1")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, "Main Street 1", order.DeliveryAddress)
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, "RTX 4070", order.Items[0].ProductName)
	assert.Equal(t, 599.99, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	assert.Len(t, stored.Items, 1)

	var updatedProduct models.Product
	require.NoError(t, db.First(&updatedProduct, "id = ?", product.ID).Error)
	assert.Equal(t, 3, updatedProduct.StockQuantity)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestPlaceOrderMultipleLines(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "buyer@example.com", "password123")
	gpu := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 4)
	cpu := testutil.SeedProduct(t, db, "Ryzen 7", 329.00, 10)
	testutil.SeedCartItem(t, db, user.ID, gpu.ID, 1)
	testutil.SeedCartItem(t, db, user.ID, cpu.ID, 3)

	order, err := PlaceOrder(db, user.ID, "Main Street 1")
	require.NoError(t, err)
	assert.Len(t, order.Items, 2)

	var gpuAfter, cpuAfter models.Product
	require.NoError(t, db.First(&gpuAfter, "id = ?", gpu.ID).Error)
	require.NoError(t, db.First(&cpuAfter, "id = ?", cpu.ID).Error)
	assert.Equal(t, 3, gpuAfter.StockQuantity)
	assert.Equal(t, 7, cpuAfter.StockQuantity)
}

func TestPlaceOrderUserNotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	missingID := uuid.NewString()

	// Repeating the failed request yields the same result and zero
	// side effects each time.
	for i := 0; i < 3; i++ {
		order, err := PlaceOrder(db, missingID, "Main Street 1")
		assert.Nil(t, order)

		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	}

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "buyer@example.com", "password123")
	product := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 5)

	order, err := PlaceOrder(db, user.ID, "Main Street 1")
	assert.Nil(t, order)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)

	// No order, no stock change, no cart mutation.
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var unchanged models.Product
	require.NoError(t, db.First(&unchanged, "id = ?", product.ID).Error)
	assert.Equal(t, 5, unchanged.StockQuantity)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "buyer@example.com", "password123")
	product := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 5)
	// The line was valid when added; stock dropped afterwards.
	testutil.SeedCartItem(t, db, user.ID, product.ID, 4)
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("stock_quantity", 1).Error)

	order, err := PlaceOrder(db, user.ID, "Main Street 1")
	assert.Nil(t, order)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)

	// The whole placement rolled back: no order row, stock untouched,
	// cart intact.
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var after models.Product
	require.NoError(t, db.First(&after, "id = ?", product.ID).Error)
	assert.Equal(t, 1, after.StockQuantity)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.EqualValues(t, 1, cartCount)
}

func TestPlaceOrderPartialInsufficiencyRollsBackAllLines(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "buyer@example.com", "password123")
	gpu := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 5)
	cpu := testutil.SeedProduct(t, db, "Ryzen 7", 329.00, 0)
	testutil.SeedCartItem(t, db, user.ID, gpu.ID, 2)
	testutil.SeedCartItem(t, db, user.ID, cpu.ID, 1)

	_, err := PlaceOrder(db, user.ID, "Main Street 1")
	require.Error(t, err)

	// The first line's decrement must not survive the second line's
	// failure.
	var gpuAfter models.Product
	require.NoError(t, db.First(&gpuAfter, "id = ?", gpu.ID).Error)
	assert.Equal(t, 5, gpuAfter.StockQuantity)
}
