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

// AdminHandler serves the admin console. Every route is mounted behind
// middleware.RequireAdmin.
type AdminHandler struct {
	adminService service.AdminService
	validator    *validator.Validate
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService, validator: validator.New()}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Adds a product to the catalog. Text fields are stripped of markup, a non-positive discount means none, and sizes default to XS-XL.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product				"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Admin access required"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *AdminHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := requireClaims(w, r, "product creation")
		if !ok {
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.adminService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Applies the fields present in the body. Concurrent edits are last write wins.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Admin access required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [patch]
func (h *AdminHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := requireClaims(w, r, "product update")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.adminService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Tags			Admin
//	@Param			id	path	string	true	"Product ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := requireClaims(w, r, "product deletion")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.adminService.DeleteProduct(r.Context(), id); err != nil {
			logger.Error("Failed to delete product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListUsers godoc
//
//	@Summary		List users
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		models.User				"Users, newest first"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required"
//	@Security		BearerAuth
//	@Router			/admin/users [get]
func (h *AdminHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := requireClaims(w, r, "user list")
		if !ok {
			return
		}

		users, err := h.adminService.ListUsers(r.Context())
		if err != nil {
			logger.Error("Failed to list users", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, users)
	}
}

// SetAdmin godoc
//
//	@Summary		Grant or revoke admin rights
//	@Description	Changes another user's admin flag. Targeting your own account is forbidden.
//	@Tags			Admin
//	@Accept			json
//	@Param			id		path	string					true	"User ID (UUID)"	Format(uuid)
//	@Param			body	body	models.SetAdminRequest	true	"Admin flag"
//	@Success		204		"Updated"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		403		{object}	response.ErrorResponse	"Admin access required or self target"
//	@Failure		404		{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/admin/users/{id}/admin [patch]
func (h *AdminHandler) SetAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "admin toggle")
		if !ok {
			return
		}

		target, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.SetAdminRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		logger = logger.With(slog.String("targetId", target.String()), slog.Bool("isAdmin", *req.IsAdmin))

		if err := h.adminService.SetAdmin(r.Context(), claims.UserID, target, *req.IsAdmin); err != nil {
			logger.Warn("Failed to change admin status", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Admin status changed")
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Deletes another user's account together with their cart and orders. Deleting yourself is forbidden.
//	@Tags			Admin
//	@Param			id	path	string	true	"User ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required or self target"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r, "user deletion")
		if !ok {
			return
		}

		target, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.adminService.DeleteUser(r.Context(), claims.UserID, target); err != nil {
			logger.Warn("Failed to delete user", slog.String("targetId", target.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User deleted", slog.String("targetId", target.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// Stats godoc
//
//	@Summary		Store statistics
//	@Description	Revenue from paid orders plus order, product and user counts.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.AdminStats		"Statistics"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required"
//	@Security		BearerAuth
//	@Router			/admin/stats [get]
func (h *AdminHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := requireClaims(w, r, "stats")
		if !ok {
			return
		}

		stats, err := h.adminService.Stats(r.Context())
		if err != nil {
			logger.Error("Failed to load stats", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}
