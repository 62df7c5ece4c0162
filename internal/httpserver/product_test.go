package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giannis-supplies/storefront/internal/models"
)

func TestProductHandler_List(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeJSON(t, rec, &products)
	assert.Len(t, products, 8)
}

func TestProductHandler_ListByCategory(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/products?category=shaving", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Category     string           `json:"category"`
		CategoryName string           `json:"category_name"`
		Data         []models.Product `json:"data"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "shaving", resp.Category)
	assert.Equal(t, "Shaving Supplies", resp.CategoryName)
	assert.Len(t, resp.Data, 2)
}

func TestProductHandler_Featured(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/products/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeJSON(t, rec, &products)
	require.Len(t, products, 4)
	assert.Equal(t, 1, products[0].ID)
}

func TestProductHandler_Get(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/products/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var product models.Product
	decodeJSON(t, rec, &product)
	assert.Equal(t, "Premium Pomade - Strong Hold", product.Name)

	rec = env.doJSONRequest(http.MethodGet, "/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSONRequest(http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_SearchFallsBackToCatalog(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/products/search?q=pomade", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeJSON(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].ID)

	rec = env.doJSONRequest(http.MethodGet, "/products/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
