package manufacturerControllers

import (
	"testing"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteManufacturerWithoutProducts(t *testing.T) {
	db := testutil.OpenDB(t)

	manufacturer := &models.Manufacturer{ID: uuid.NewString(), Name: "ACME"}
	require.NoError(t, db.Create(manufacturer).Error)

	deleted, err := DeleteManufacturer(db, manufacturer.ID)
	require.NoError(t, err)
	assert.Equal(t, manufacturer.ID, deleted.ID)

	var count int64
	require.NoError(t, db.Model(&models.Manufacturer{}).
		Where("id = ?", manufacturer.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteManufacturerWithProductsIsConflict(t *testing.T) {
	db := testutil.OpenDB(t)
	product := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 5)

	deleted, err := DeleteManufacturer(db, product.ManufacturerID)
	assert.Nil(t, deleted)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)

	var count int64
	require.NoError(t, db.Model(&models.Manufacturer{}).
		Where("id = ?", product.ManufacturerID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteManufacturerNotFound(t *testing.T) {
	db := testutil.OpenDB(t)

	deleted, err := DeleteManufacturer(db, uuid.NewString())
	assert.Nil(t, deleted)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
