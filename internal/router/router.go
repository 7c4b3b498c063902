package router

import (
	"net/http"

	"ovenaura/internal/handler"
	"ovenaura/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the gateway's handlers.
type Handlers struct {
	Status  *handler.StatusHandler
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Admin   *handler.AdminHandler
}

// Options configures the middleware stack.
type Options struct {
	AllowedOrigin string
	APIKey        string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Liveness of the gateway itself, no envelope
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/status", h.Status.Status)

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)
	mux.HandleFunc("PUT /api/auth/profile", h.Auth.UpdateProfile)

	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("GET /api/products/{id}", h.Product.Get)
	mux.HandleFunc("POST /api/products/{id}/quote", h.Product.Quote)

	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("POST /api/cart/items", h.Cart.Add)
	mux.HandleFunc("PUT /api/cart/items/{id}", h.Cart.Update)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.Cart.Remove)

	mux.HandleFunc("POST /api/checkout", h.Order.Checkout)
	mux.HandleFunc("GET /api/orders", h.Order.MyOrders)

	mux.HandleFunc("GET /api/admin/orders", h.Order.AllOrders)
	mux.HandleFunc("PUT /api/admin/orders/{id}/status", h.Order.UpdateStatus)
	mux.HandleFunc("GET /api/admin/stats", h.Admin.Stats)
	mux.HandleFunc("GET /api/admin/analytics", h.Admin.Analytics)
	mux.HandleFunc("GET /api/admin/reports/dashboard", h.Admin.Dashboard)

	mux.HandleFunc("GET /api/admin/staff", h.Admin.ListStaff)
	mux.HandleFunc("POST /api/admin/staff", h.Admin.CreateStaff)
	mux.HandleFunc("PUT /api/admin/staff/{id}", h.Admin.UpdateStaff)
	mux.HandleFunc("DELETE /api/admin/staff/{id}", h.Admin.DeleteStaff)

	mux.HandleFunc("GET /api/admin/menu/categories", h.Admin.MenuCategories)
	mux.HandleFunc("GET /api/admin/menu/categories/{id}/items", h.Admin.MenuItems)
	mux.HandleFunc("POST /api/admin/menu/items", h.Admin.CreateMenuItem)
	mux.HandleFunc("PUT /api/admin/menu/items/{id}", h.Admin.UpdateMenuItem)
	mux.HandleFunc("DELETE /api/admin/menu/items/{id}", h.Admin.DeleteMenuItem)

	mux.HandleFunc("POST /api/admin/products", h.Admin.CreateProduct)
	mux.HandleFunc("PUT /api/admin/products/{id}", h.Admin.UpdateProduct)
	mux.HandleFunc("DELETE /api/admin/products/{id}", h.Admin.DeleteProduct)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(opts.APIKey, logger)(handler)
	handler = middleware.CORS(opts.AllowedOrigin)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
