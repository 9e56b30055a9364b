package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type ProductService interface {
	ListCatalog(ctx context.Context, search string, category models.Category) ([]models.ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error)
}

type productService struct {
	repo     repository.ProductRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewProductService(repo repository.ProductRepository, c cache.Cache, cacheTTL time.Duration) ProductService {
	return &productService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

// ListCatalog filters the whole catalog in memory. The unfiltered list is
// read through the cache; a cache outage only costs a database round trip.
func (s *productService) ListCatalog(ctx context.Context, search string, category models.Category) ([]models.ProductView, error) {

	logger := middleware.LoggerFromContext(ctx)

	if category != "" && category != models.CategoryAll && !category.Valid() {
		return nil, appErrors.BadRequestError("Unknown category").WithDetail(string(category))
	}

	products, err := cache.Fetch(ctx, s.cache, cache.ProductListKey, s.cacheTTL, s.repo.ListProducts, func(err error) {
		logger.Warn("Product cache unavailable", slog.Any("error", err))
	})
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	filtered := catalog.Filter(products, search, category)

	views := make([]models.ProductView, 0, len(filtered))
	for _, p := range filtered {
		views = append(views, pricing.View(p))
	}

	return views, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	view := pricing.View(product)

	return &view, nil
}
