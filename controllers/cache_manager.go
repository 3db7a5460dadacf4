package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/services"
)

const (
	ProductCachePrefix = "catalog:detail:"
	ListCachePrefix    = "catalog:list:v:"
	FacetCachePrefix   = "catalog:facets:v:"
	CacheVersionKey    = "catalog:version"
)

// CacheManager handles the Redis response caches. List and facet entries are
// version-keyed: bumping the version on catalog writes invalidates every
// listing at once without scanning keys.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redis,
		ttl:   DefaultCacheTTL,
	}
}

// GetProductList retrieves a cached listing for the query, if present.
func (cm *CacheManager) GetProductList(ctx context.Context, query models.CatalogQuery) (*services.ProductPage, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, ListCachePrefix+queryCacheKey(version, query)).Result()
	if err != nil {
		return nil, false
	}

	var page services.ProductPage
	if err := json.Unmarshal([]byte(cached), &page); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return &page, true
}

// SetProductListAsync caches a listing without blocking the response.
func (cm *CacheManager) SetProductListAsync(query models.CatalogQuery, page *services.ProductPage) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		payload, err := json.Marshal(page)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(bgCtx, ListCachePrefix+queryCacheKey(version, query), payload, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// GetFacets retrieves cached facet counts for the query, if present.
func (cm *CacheManager) GetFacets(ctx context.Context, query models.CatalogQuery) (*models.Facets, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, FacetCachePrefix+queryCacheKey(version, query)).Result()
	if err != nil {
		return nil, false
	}

	var facets models.Facets
	if err := json.Unmarshal([]byte(cached), &facets); err != nil {
		zap.L().Warn("Failed to unmarshal cached facets", zap.Error(err))
		return nil, false
	}
	return &facets, true
}

// SetFacetsAsync caches facet counts without blocking the response.
func (cm *CacheManager) SetFacetsAsync(query models.CatalogQuery, facets *models.Facets) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		payload, err := json.Marshal(facets)
		if err != nil {
			zap.L().Warn("Failed to marshal facets for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(bgCtx, FacetCachePrefix+queryCacheKey(version, query), payload, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache facets", zap.Error(err))
		}
	}()
}

// GetProduct retrieves a cached product detail by ID.
func (cm *CacheManager) GetProduct(ctx context.Context, id string) (*models.Product, bool) {
	cached, err := cm.redis.Get(ctx, ProductCachePrefix+id).Result()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(cached), &product); err != nil {
		zap.L().Warn("Failed to unmarshal cached product", zap.Error(err), zap.String("product_id", id))
		return nil, false
	}
	return &product, true
}

// SetProductAsync caches a single product detail without blocking.
func (cm *CacheManager) SetProductAsync(id string, product *models.Product) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(product)
		if err != nil {
			zap.L().Warn("Failed to marshal product for cache", zap.Error(err), zap.String("product_id", id))
			return
		}
		if err := cm.redis.Set(bgCtx, ProductCachePrefix+id, payload, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.Error(err), zap.String("product_id", id))
		}
	}()
}

// Invalidate invalidates every list and facet cache by bumping the version.
func (cm *CacheManager) Invalidate(ctx context.Context) error {
	newVersion, err := cm.redis.Incr(ctx, CacheVersionKey).Result()
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	zap.L().Info("Catalog cache invalidated", zap.Int64("new_version", newVersion))
	return nil
}

// getCacheVersion retrieves the current cache version with retry logic.
func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		ver, err := cm.redis.Get(ctx, CacheVersionKey).Int64()
		if err == nil && ver > 0 {
			return ver, nil
		}

		if err == redis.Nil {
			if err := cm.redis.Set(ctx, CacheVersionKey, 1, 0).Err(); err == nil {
				return 1, nil
			}
		}

		if i < maxRetries-1 {
			time.Sleep(time.Millisecond * 50)
		}
	}

	return 0, fmt.Errorf("failed to get cache version after %d retries", maxRetries)
}

// queryCacheKey serializes a query into a stable cache key. Extra keys are
// sorted so two equal queries always produce the same key.
func queryCacheKey(version int64, query models.CatalogQuery) string {
	var extras []string
	for key, value := range query.Extra {
		extras = append(extras, key+"="+value)
	}
	sort.Strings(extras)

	return fmt.Sprintf(
		"%d:c:%s:sc:%s:ssc:%s:q:%s:pr:%s:g:%s:col:%s:b:%s:s:%s:%s:p:%d:l:%d:x:%s",
		version,
		query.Category,
		query.SubCategory,
		query.SubSubCategory,
		query.Search,
		query.PriceRange,
		query.Gender,
		query.Color,
		query.Brand,
		query.Sort,
		query.Order,
		query.Page,
		query.Limit,
		strings.Join(extras, "&"),
	)
}
