package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/services"
)

// CatalogController exposes the three catalog operations over HTTP.
type CatalogController struct {
	service CatalogServiceAPI
	cache   *CacheManager
}

func NewCatalogController(service CatalogServiceAPI, redisClient *redis.Client) *CatalogController {
	return &CatalogController{
		service: service,
		cache:   NewCacheManager(redisClient),
	}
}

// GetProducts serves listings, cross-family search and the unscoped browse
// path. Backend failures still answer with an empty product list and zeroed
// pagination so the storefront can render an empty state.
func (cc *CatalogController) GetProducts(c *gin.Context) {
	query, ok := bindCatalogQuery(c)
	if !ok {
		return
	}

	if page, hit := cc.cache.GetProductList(c.Request.Context(), query); hit {
		c.JSON(http.StatusOK, page)
		return
	}

	page, err := cc.service.ListProducts(c.Request.Context(), query)
	if err != nil {
		zap.L().Error("Error listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Failed to fetch products",
			"products":   page.Products,
			"pagination": page.Pagination,
		})
		return
	}

	cc.cache.SetProductListAsync(query, page)
	c.JSON(http.StatusOK, page)
}

// GetProductByID looks an ID up across the families in their fixed probe
// order and returns the first match.
func (cc *CatalogController) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	if product, hit := cc.cache.GetProduct(c.Request.Context(), id); hit {
		c.JSON(http.StatusOK, product)
		return
	}

	product, err := cc.service.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			zap.L().Info("Product not found", zap.String("id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		zap.L().Error("Error fetching product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	cc.cache.SetProductAsync(id, product)
	c.JSON(http.StatusOK, product)
}

// GetFacets returns grouped counts scoped to the same filters as the
// listing the storefront is currently showing.
func (cc *CatalogController) GetFacets(c *gin.Context) {
	query, ok := bindCatalogQuery(c)
	if !ok {
		return
	}

	if facets, hit := cc.cache.GetFacets(c.Request.Context(), query); hit {
		c.JSON(http.StatusOK, facets)
		return
	}

	facets, err := cc.service.GetFacets(c.Request.Context(), query)
	if err != nil {
		zap.L().Error("Error computing facets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute facets"})
		return
	}

	cc.cache.SetFacetsAsync(query, facets)
	c.JSON(http.StatusOK, facets)
}

// bindCatalogQuery binds the reserved query parameters and collects the
// remaining ones into Extra for the predicate builder.
func bindCatalogQuery(c *gin.Context) (models.CatalogQuery, bool) {
	var query models.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		zap.L().Warn("Invalid query parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return query, false
	}

	extra := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if models.ReservedQueryKeys[key] || len(values) == 0 {
			continue
		}
		extra[key] = values[0]
	}
	if len(extra) > 0 {
		query.Extra = extra
	}

	query.Normalize()
	return query, true
}
