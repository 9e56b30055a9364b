package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cart"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/pkg/payment"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error)
	SetQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) (*models.Cart, error)
	Checkout(ctx context.Context, userID uuid.UUID) (*models.Order, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	links       payment.LinkGenerator
	notifier    OrderNotifier
}

// NewCartService wires the cart engine. notifier may be nil, in which case
// no confirmation is sent after checkout.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	links payment.LinkGenerator,
	notifier OrderNotifier,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		links:       links,
		notifier:    notifier,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return &models.Cart{
		UserID:    userID,
		Lines:     lines,
		ItemCount: pricing.ItemCount(lines),
		Total:     pricing.Total(lines),
	}, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := checkVariant(product, req.Size, req.Color); err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	if err := s.apply(ctx, userID, cart.PlanAdd(lines, userID, product.ID, req.Size, req.Color)); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) SetQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) (*models.Cart, error) {

	line, err := s.cartRepo.GetLine(ctx, userID, lineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Cart item not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	if err := s.apply(ctx, userID, cart.PlanSetQuantity(*line, quantity)); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) apply(ctx context.Context, userID uuid.UUID, m cart.Mutation) error {

	if m.Kind == cart.MutationUpdate && m.Quantity > cart.MaxQuantity {
		return appErrors.AddValidationError("quantity", fmt.Sprintf("must not exceed %d", cart.MaxQuantity))
	}

	var err error

	switch m.Kind {
	case cart.MutationInsert:
		line := m.Line
		err = s.cartRepo.InsertLine(ctx, &line)
	case cart.MutationUpdate:
		err = s.cartRepo.UpdateQuantity(ctx, userID, m.LineID, m.Quantity)
	case cart.MutationDelete:
		err = s.cartRepo.DeleteLine(ctx, userID, m.LineID)
	}

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Cart item not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	metrics.RecordCartMutation(string(m.Kind))

	return nil
}

// checkVariant rejects a size or color the product does not offer. A product
// without options accepts any value, including empty.
func checkVariant(product *models.Product, size, color string) error {
	if len(product.Sizes) > 0 && !slices.Contains(product.Sizes, size) {
		return appErrors.BadRequestError("Size is not available for this product")
	}

	if len(product.Colors) > 0 && !slices.Contains(product.Colors, color) {
		return appErrors.BadRequestError("Color is not available for this product")
	}

	return nil
}

// Checkout converts the cart into a pending order. The order, its lines and
// the cart clearing are committed together or not at all.
func (s *cartService) Checkout(ctx context.Context, userID uuid.UUID) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("userID", userID.String()))

	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		metrics.RecordCheckout(metrics.CheckoutStoreErr)
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	if len(lines) == 0 {
		metrics.RecordCheckout(metrics.CheckoutEmptyCart)
		return nil, appErrors.EmptyCartError("Cannot checkout an empty cart")
	}

	order := cart.BuildOrder(userID, lines)

	link, err := s.links.PaymentLink(ctx, order)
	if err != nil {
		metrics.RecordCheckout(metrics.CheckoutPaymentErr)
		return nil, appErrors.ThirdPartyError("Failed to create payment link").WithError(err)
	}
	order.PaymentURL = link

	if err := s.orderRepo.CreateOrderFromCart(ctx, order); err != nil {
		if errors.Is(err, repository.ErrCartChanged) {
			metrics.RecordCheckout(metrics.CheckoutConflict)
			logger.Warn("Cart changed during checkout", slog.Any("error", err))
			return nil, appErrors.CartChangedError("Your cart changed while checking out, please review it and try again").WithError(err)
		}

		metrics.RecordCheckout(metrics.CheckoutStoreErr)
		return nil, appErrors.DatabaseError("Failed to place order").WithError(err)
	}

	metrics.RecordCheckout(metrics.CheckoutPlaced)
	logger.Info("Order placed", slog.String("orderId", order.ID.String()), slog.String("total", order.Total.String()))

	s.notify(ctx, logger, order)

	order.Present()

	return order, nil
}

// notify sends the confirmation e-mail. The order is already committed, so
// failures are only logged.
func (s *cartService) notify(ctx context.Context, logger *slog.Logger, order *models.Order) {
	if s.notifier == nil {
		return
	}

	user, err := s.userRepo.GetUserById(ctx, order.UserID)
	if err != nil {
		logger.Warn("Skipping order confirmation, user lookup failed", slog.Any("error", err))
		return
	}

	if err := s.notifier.OrderPlaced(ctx, user, order); err != nil {
		logger.Warn("Order confirmation not sent", slog.Any("error", err))
	}
}
