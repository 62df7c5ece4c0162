package httpserver

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/giannis-supplies/storefront/internal/catalog"
	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/search"
)

type ProductHTTP struct {
	Catalog *catalog.Catalog
	ES      *elasticsearch.Client
}

func (h *ProductHTTP) List(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return c.JSON(http.StatusOK, h.Catalog.All())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"category":      category,
		"category_name": catalog.CategoryName(category),
		"data":          h.Catalog.ByCategory(category),
	})
}

func (h *ProductHTTP) Featured(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Featured())
}

func (h *ProductHTTP) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}
	product, ok := h.Catalog.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

// Search goes through Elasticsearch when one is configured and falls back to
// the in-memory catalog scan otherwise (or when ES is unreachable).
func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.search")

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, "query parameter q required")
	}

	if h.ES != nil {
		products, err := search.Products(ctx, h.ES, search.Index, query, 20)
		if err == nil {
			return c.JSON(http.StatusOK, products)
		}
		l.Warn("es_search_failed", "error", err)
	}

	return c.JSON(http.StatusOK, h.Catalog.Query(query))
}
