// Package api assembles the HTTP surface of the storefront.
package api

import (
	"net/http"

	_ "github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Services struct {
	Users    service.UserService
	Products service.ProductService
	Carts    service.CartService
	Orders   service.OrderService
	Admin    service.AdminService
}

type Deps struct {
	Services Services
	Auth     *middleware.AuthMiddleware
	Admins   middleware.UserLookup
	Health   http.Handler
}

// NewRouter registers every route and wraps the mux as
// otelhttp -> Logging -> metrics -> mux. The metrics middleware sits right on
// the mux so the matched route pattern is known when it records.
func NewRouter(deps Deps) http.Handler {
	userHandler := handlers.NewUserHandler(deps.Services.Users)
	productHandler := handlers.NewProductHandler(deps.Services.Products)
	cartHandler := handlers.NewCartHandler(deps.Services.Carts)
	orderHandler := handlers.NewOrderHandler(deps.Services.Orders)
	adminHandler := handlers.NewAdminHandler(deps.Services.Admin)

	auth := deps.Auth.Authenticate
	requireAdmin := middleware.RequireAdmin(deps.Admins)
	admin := func(h http.Handler) http.HandlerFunc { return auth(requireAdmin(h)) }

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	mux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	mux.HandleFunc("POST /api/v1/users/logout", auth(userHandler.Logout()))
	mux.HandleFunc("GET /api/v1/users/profile", auth(userHandler.Profile()))

	mux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	mux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())

	mux.HandleFunc("GET /api/v1/cart", auth(cartHandler.GetCart()))
	mux.HandleFunc("POST /api/v1/cart/items", auth(cartHandler.AddItem()))
	mux.HandleFunc("PUT /api/v1/cart/items/{id}", auth(cartHandler.UpdateQuantity()))
	mux.HandleFunc("POST /api/v1/checkout", auth(cartHandler.Checkout()))

	mux.HandleFunc("GET /api/v1/orders", auth(orderHandler.ListOrders()))
	mux.HandleFunc("GET /api/v1/orders/{id}", auth(orderHandler.GetOrder()))

	mux.HandleFunc("POST /api/v1/admin/products", admin(adminHandler.CreateProduct()))
	mux.HandleFunc("PATCH /api/v1/admin/products/{id}", admin(adminHandler.UpdateProduct()))
	mux.HandleFunc("DELETE /api/v1/admin/products/{id}", admin(adminHandler.DeleteProduct()))
	mux.HandleFunc("GET /api/v1/admin/users", admin(adminHandler.ListUsers()))
	mux.HandleFunc("PATCH /api/v1/admin/users/{id}/admin", admin(adminHandler.SetAdmin()))
	mux.HandleFunc("DELETE /api/v1/admin/users/{id}", admin(adminHandler.DeleteUser()))
	mux.HandleFunc("GET /api/v1/admin/stats", admin(adminHandler.Stats()))

	if deps.Health != nil {
		mux.Handle("GET /health", deps.Health)
	}
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	return handler
}
