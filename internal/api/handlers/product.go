package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts godoc
//
//	@Summary		Browse the catalog
//	@Description	Lists products newest first. search matches name or description case-insensitively; category narrows to one category unless it is "all".
//	@Tags			Products
//	@Produce		json
//	@Param			search		query		string						false	"Search term"
//	@Param			category	query		string						false	"Category"	Enums(all, tops, bottoms, dresses, accessories)
//	@Success		200			{array}		models.ProductView			"Matching products"
//	@Failure		400			{object}	response.ErrorResponse		"Unknown category"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		search := strings.TrimSpace(r.URL.Query().Get("search"))
		category := models.Category(strings.ToLower(r.URL.Query().Get("category")))

		logger = logger.With(slog.String("search", search), slog.String("category", string(category)))

		products, err := h.productService.ListCatalog(r.Context(), search, category)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed", slog.Int("count", len(products)))
		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product by ID
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.ProductView		"Product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
