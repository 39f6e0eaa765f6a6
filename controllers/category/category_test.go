package categoryControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryWithoutProducts(t *testing.T) {
	db := testutil.OpenDB(t)

	category := &models.Category{ID: uuid.NewString(), Name: "Cases"}
	require.NoError(t, db.Create(category).Error)

	deleted, err := DeleteCategory(db, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, deleted.ID)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).
		Where("id = ?", category.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCategoryWithProductsIsConflict(t *testing.T) {
	db := testutil.OpenDB(t)
	product := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 5)

	deleted, err := DeleteCategory(db, product.CategoryID)
	assert.Nil(t, deleted)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)

	// The row remains.
	var count int64
	require.NoError(t, db.Model(&models.Category{}).
		Where("id = ?", product.CategoryID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	db := testutil.OpenDB(t)

	deleted, err := DeleteCategory(db, uuid.NewString())
	assert.Nil(t, deleted)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestDeleteCategoryHandlerMapsConflictTo409(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := testutil.OpenDB(t)
	product := testutil.SeedProduct(t, db, "RTX 4070", 599.99, 5)

	r := gin.New()
	r.DELETE("/admin/categories/:id", DeleteCategoryHandler(db))

	req := httptest.NewRequest(http.MethodDelete, "/admin/categories/"+product.CategoryID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "related products")
}
