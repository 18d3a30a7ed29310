package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/cache"
	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/pkg/indiabills"
)

// CatalogService serves catalog reads through the Redis cache, falling
// back to the upstream API on a miss. Categories and offers are also
// mirrored into the local store, matching the browser client's
// localStorage copies. Upstream failures degrade to empty lists rather
// than errors: the console shell stays available even when the data is
// not.
type CatalogService struct {
	api     *indiabills.Client
	catalog *cache.CatalogCache
	local   *localstore.Store
}

// NewCatalogService constructs a CatalogService. catalog may be nil
// when Redis is unavailable; reads then always go upstream.
func NewCatalogService(api *indiabills.Client, catalog *cache.CatalogCache, local *localstore.Store) *CatalogService {
	return &CatalogService{api: api, catalog: catalog, local: local}
}

// Products returns catalog products, optionally filtered by category.
func (s *CatalogService) Products(ctx context.Context, category string) []models.Product {
	if s.catalog != nil {
		if products, ok := s.catalog.GetProducts(ctx, category); ok {
			return products
		}
	}

	res := s.api.Products(ctx, category)
	if !res.IsOk() {
		log.Warn().Int("status", res.Status()).Str("error", res.Message()).Msg("Product fetch failed, serving empty list")
		return []models.Product{}
	}
	products := res.Data()

	if s.catalog != nil {
		if err := s.catalog.SetProducts(ctx, category, products); err != nil {
			log.Warn().Err(err).Msg("Failed to cache products")
		}
	}
	return products
}

// ProductByID returns one product. Misses the cache deliberately: the
// detail view wants the freshest price.
func (s *CatalogService) ProductByID(ctx context.Context, id int) (*models.Product, bool) {
	res := s.api.Product(ctx, id)
	if !res.IsOk() {
		return nil, false
	}
	p := res.Data()
	return &p, true
}

// Categories returns catalog categories.
func (s *CatalogService) Categories(ctx context.Context) []models.Category {
	if s.catalog != nil {
		if categories, ok := s.catalog.GetCategories(ctx); ok {
			return categories
		}
	}

	res := s.api.Categories(ctx)
	if !res.IsOk() {
		// Degrade to the last locally persisted copy.
		var stale []models.Category
		if ok, _ := s.local.GetJSON(localstore.KeyCategories, &stale); ok {
			log.Warn().Int("status", res.Status()).Msg("Category fetch failed, serving persisted copy")
			return stale
		}
		return []models.Category{}
	}
	categories := res.Data()

	if s.catalog != nil {
		if err := s.catalog.SetCategories(ctx, categories); err != nil {
			log.Warn().Err(err).Msg("Failed to cache categories")
		}
	}
	if err := s.local.SetJSON(localstore.KeyCategories, categories); err != nil {
		log.Warn().Err(err).Msg("Failed to persist categories")
	}
	return categories
}

// Offers returns active offers, with the same degrade path as
// Categories.
func (s *CatalogService) Offers(ctx context.Context) []models.Offer {
	if s.catalog != nil {
		if offers, ok := s.catalog.GetOffers(ctx); ok {
			return offers
		}
	}

	res := s.api.Offers(ctx)
	if !res.IsOk() {
		var stale []models.Offer
		if ok, _ := s.local.GetJSON(localstore.KeyOffers, &stale); ok {
			log.Warn().Int("status", res.Status()).Msg("Offer fetch failed, serving persisted copy")
			return stale
		}
		return []models.Offer{}
	}
	offers := res.Data()

	if s.catalog != nil {
		if err := s.catalog.SetOffers(ctx, offers); err != nil {
			log.Warn().Err(err).Msg("Failed to cache offers")
		}
	}
	if err := s.local.SetJSON(localstore.KeyOffers, offers); err != nil {
		log.Warn().Err(err).Msg("Failed to persist offers")
	}
	return offers
}

// Suppliers, Warehouses and Batches are thin passthroughs for the
// admin console views.

func (s *CatalogService) Suppliers(ctx context.Context) []models.Supplier {
	res := s.api.Suppliers(ctx)
	if !res.IsOk() {
		return []models.Supplier{}
	}
	return res.Data()
}

func (s *CatalogService) Warehouses(ctx context.Context) []models.Warehouse {
	res := s.api.Warehouses(ctx)
	if !res.IsOk() {
		return []models.Warehouse{}
	}
	return res.Data()
}

func (s *CatalogService) Batches(ctx context.Context, productID int) []models.Batch {
	res := s.api.Batches(ctx, productID)
	if !res.IsOk() {
		return []models.Batch{}
	}
	return res.Data()
}

// Refresh repopulates the Redis cache from upstream. Called by the
// catalog refresh worker.
func (s *CatalogService) Refresh(ctx context.Context) error {
	if s.catalog == nil {
		return nil
	}

	if err := s.catalog.Invalidate(ctx); err != nil {
		return err
	}

	if res := s.api.Products(ctx, ""); res.IsOk() {
		if err := s.catalog.SetProducts(ctx, "", res.Data()); err != nil {
			return err
		}
	}
	if res := s.api.Categories(ctx); res.IsOk() {
		if err := s.catalog.SetCategories(ctx, res.Data()); err != nil {
			return err
		}
	}
	if res := s.api.Offers(ctx); res.IsOk() {
		if err := s.catalog.SetOffers(ctx, res.Data()); err != nil {
			return err
		}
	}
	return nil
}
