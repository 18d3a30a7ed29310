package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/models"
)

// CatalogCache keeps catalog reads (products, categories, offers) in
// Redis with a TTL. It is the daemon-grade version of the browser
// client's localStorage category/offer caching: purely best-effort,
// the upstream catalog stays authoritative.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a CatalogCache with the given TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

func keyProducts(category string) string {
	if category == "" {
		return "catalog:products"
	}
	return fmt.Sprintf("catalog:products:%s", category)
}

const (
	keyCategories = "catalog:categories"
	keyOffers     = "catalog:offers"
)

// GetProducts returns cached products for a category ("" for all).
// The bool is false on a miss.
func (c *CatalogCache) GetProducts(ctx context.Context, category string) ([]models.Product, bool) {
	return getList[models.Product](ctx, c, keyProducts(category))
}

// SetProducts caches products for a category.
func (c *CatalogCache) SetProducts(ctx context.Context, category string, products []models.Product) error {
	return setList(ctx, c, keyProducts(category), products)
}

// GetCategories returns cached categories.
func (c *CatalogCache) GetCategories(ctx context.Context) ([]models.Category, bool) {
	return getList[models.Category](ctx, c, keyCategories)
}

// SetCategories caches categories.
func (c *CatalogCache) SetCategories(ctx context.Context, categories []models.Category) error {
	return setList(ctx, c, keyCategories, categories)
}

// GetOffers returns cached offers.
func (c *CatalogCache) GetOffers(ctx context.Context) ([]models.Offer, bool) {
	return getList[models.Offer](ctx, c, keyOffers)
}

// SetOffers caches offers.
func (c *CatalogCache) SetOffers(ctx context.Context, offers []models.Offer) error {
	return setList(ctx, c, keyOffers, offers)
}

// Invalidate drops every catalog key. Used by the refresh worker
// before repopulating.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, keyProducts(""), keyCategories, keyOffers)
}

func getList[T any](ctx context.Context, c *CatalogCache, key string) ([]T, bool) {
	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		if !IsMiss(err) {
			log.Warn().Err(err).Str("key", key).Msg("Catalog cache read failed")
		}
		return nil, false
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}
	return out, true
}

func setList[T any](ctx context.Context, c *CatalogCache, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	return c.redis.Set(ctx, key, string(raw), c.ttl)
}
