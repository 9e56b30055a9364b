package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the current user's cart
//	@Description	Returns every cart line with its product resolved, plus the item count and total.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart				"Current cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "cart access")
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart retrieved", slog.Int("lines", len(cart.Lines)))
		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add a product variant to the cart
//	@Description	Adds one unit of the (product, size, color) variant. An existing line is incremented instead of duplicated.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product variant"
//	@Success		200		{object}	models.Cart				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or unavailable size/color"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "add to cart")
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		logger = logger.With(slog.String("productId", req.ProductID.String()))

		cart, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart")
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Set the quantity of a cart line
//	@Description	Sets the line's quantity. Zero or a negative value removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Cart line ID (UUID)"	Format(uuid)
//	@Param			body	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200		{object}	models.Cart					"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid line ID or body"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Cart line not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "cart update")
		if !ok {
			return
		}

		lineID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart line id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		logger = logger.With(slog.String("lineId", lineID.String()), slog.Int("quantity", *req.Quantity))

		cart, err := h.cartService.SetQuantity(r.Context(), claims.UserID, lineID, *req.Quantity)
		if err != nil {
			logger.Error("Failed to update cart line", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart line updated")
		response.Success(w, http.StatusOK, cart)
	}
}

// Checkout godoc
//
//	@Summary		Place an order from the cart
//	@Description	Converts the cart into a pending order with captured prices, returns it with its payment link and empties the cart.
//	@Tags			Cart
//	@Produce		json
//	@Success		201	{object}	models.Order			"Order placed"
//	@Failure		400	{object}	response.ErrorResponse	"Cart is empty"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		409	{object}	response.ErrorResponse	"Cart changed during checkout"
//	@Failure		500	{object}	response.ErrorResponse	"Payment gateway or database failure"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "checkout")
		if !ok {
			return
		}

		order, err := h.cartService.Checkout(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("orderId", order.ID.String()))
		response.Success(w, http.StatusCreated, order)
	}
}
