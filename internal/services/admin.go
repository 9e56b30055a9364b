package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminService backs the admin console. Callers are expected to have passed
// middleware.RequireAdmin already.
type AdminService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context) ([]*models.User, error)
	SetAdmin(ctx context.Context, actorID, targetID uuid.UUID, isAdmin bool) error
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error
	Stats(ctx context.Context) (*models.AdminStats, error)
}

type adminService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	cache       cache.Cache
}

func NewAdminService(productRepo repository.ProductRepository, userRepo repository.UserRepository, orderRepo repository.OrderRepository, c cache.Cache) AdminService {
	return &adminService{productRepo: productRepo, userRepo: userRepo, orderRepo: orderRepo, cache: c}
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return appErrors.AddValidationError("price", "must be greater than zero")
	}
	if err := pricing.CheckAmount(price); err != nil {
		return appErrors.AddValidationError("price", err.Error())
	}

	return nil
}

// normalizeDiscount treats a missing or non-positive discount as none and
// rejects one that does not undercut the price.
func normalizeDiscount(price decimal.Decimal, discount *decimal.Decimal) (decimal.NullDecimal, error) {
	if discount == nil || !discount.IsPositive() {
		return decimal.NullDecimal{}, nil
	}

	if err := pricing.CheckAmount(*discount); err != nil {
		return decimal.NullDecimal{}, appErrors.AddValidationError("discount_price", err.Error())
	}

	if !discount.LessThan(price) {
		return decimal.NullDecimal{}, appErrors.AddValidationError("discount_price", "must be lower than price")
	}

	return decimal.NewNullDecimal(*discount), nil
}

func (s *adminService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	name := utils.SanitizeText(req.Name)
	if name == "" {
		return nil, appErrors.AddValidationError("name", "must not be empty")
	}

	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	discount, err := normalizeDiscount(req.Price, req.DiscountPrice)
	if err != nil {
		return nil, err
	}

	sizes := req.Sizes
	if len(sizes) == 0 {
		sizes = append([]string(nil), models.DefaultSizes...)
	}

	colors := req.Colors
	if colors == nil {
		colors = []string{}
	}

	product := &models.Product{
		ID:            uuid.New(),
		Name:          name,
		Description:   utils.SanitizeText(req.Description),
		Price:         req.Price,
		DiscountPrice: discount,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Sizes:         sizes,
		Colors:        colors,
		Stock:         req.Stock,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	s.invalidateCatalog(ctx)

	return product, nil
}

// UpdateProduct applies the fields present in req. Concurrent edits are last write wins.
func (s *adminService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.Name != nil {
		product.Name = utils.SanitizeText(*req.Name)
		if product.Name == "" {
			return nil, appErrors.AddValidationError("name", "must not be empty")
		}
	}
	if req.Description != nil {
		product.Description = utils.SanitizeText(*req.Description)
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Sizes != nil {
		product.Sizes = req.Sizes
	}
	if req.Colors != nil {
		product.Colors = req.Colors
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	discount := req.DiscountPrice
	if discount == nil && product.DiscountPrice.Valid {
		discount = &product.DiscountPrice.Decimal
	}

	if product.DiscountPrice, err = normalizeDiscount(product.Price, discount); err != nil {
		return nil, err
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidateCatalog(ctx)

	return product, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Product not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidateCatalog(ctx)

	return nil
}

func (s *adminService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.ProductListKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate product cache", slog.Any("error", err))
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]*models.User, error) {

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list users").WithError(err)
	}

	return users, nil
}

func (s *adminService) SetAdmin(ctx context.Context, actorID, targetID uuid.UUID, isAdmin bool) error {

	if actorID == targetID {
		return appErrors.SelfTargetError("You cannot change your own admin status")
	}

	if err := s.userRepo.SetAdmin(ctx, targetID, isAdmin); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("User not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to update user").WithError(err)
	}

	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {

	if actorID == targetID {
		return appErrors.SelfTargetError("You cannot delete your own account")
	}

	if err := s.userRepo.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("User not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to delete user").WithError(err)
	}

	return nil
}

// Stats summarises the store. Revenue only counts paid orders.
func (s *adminService) Stats(ctx context.Context) (*models.AdminStats, error) {

	revenue, orders, err := s.orderRepo.Stats(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load order stats").WithError(err)
	}

	products, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count products").WithError(err)
	}

	users, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count users").WithError(err)
	}

	return &models.AdminStats{
		TotalRevenue:  revenue,
		TotalOrders:   orders,
		TotalProducts: products,
		TotalUsers:    users,
	}, nil
}
