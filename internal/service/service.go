package service

import (
	"context"

	"ovenaura/internal/model"
	"ovenaura/internal/pricing"
	"ovenaura/internal/probe"
)

// Session is the process-wide session the services read and update.
type Session interface {
	Token() string
	HasToken() bool
	User() *model.User
	SetUser(user *model.User)
	Set(token string, user *model.User) error
	Clear() error
}

// AuthAPI is the backend surface used by AuthService.
type AuthAPI interface {
	Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error)
	Register(ctx context.Context, reg model.Registration) (*model.AuthResult, error)
	Me(ctx context.Context) (*model.User, error)
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error)
}

// CatalogAPI is the backend surface used by CatalogService.
type CatalogAPI interface {
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

// CartAPI is the backend surface used by CartService.
type CartAPI interface {
	GetCart(ctx context.Context) (*model.Cart, error)
	AddToCart(ctx context.Context, req model.AddToCartRequest) (*model.Cart, error)
	UpdateCartItem(ctx context.Context, itemID string, quantity int) (*model.Cart, error)
	RemoveCartItem(ctx context.Context, itemID string) (*model.Cart, error)
	ClearCart(ctx context.Context) (*model.Cart, error)
}

// OrderAPI is the backend surface used by CheckoutService and OrderService.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (*model.Order, error)
	MyOrders(ctx context.Context) ([]model.Order, error)
	AdminOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// AdminAPI is the backend surface used by AdminService.
type AdminAPI interface {
	Stats(ctx context.Context) (model.Report, error)
	Analytics(ctx context.Context) (model.Report, error)
	DashboardReport(ctx context.Context) (model.Report, error)

	ListStaff(ctx context.Context) ([]model.Staff, error)
	CreateStaff(ctx context.Context, member model.Staff) (*model.Staff, error)
	UpdateStaff(ctx context.Context, id string, member model.Staff) (*model.Staff, error)
	DeleteStaff(ctx context.Context, id string) error

	MenuCategories(ctx context.Context) ([]model.MenuCategory, error)
	MenuItems(ctx context.Context, categoryID string) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, item model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// AuthService defines the sign-in lifecycle.
type AuthService interface {
	// Restore validates a hydrated token and loads the cart.
	Restore(ctx context.Context) (*model.User, error)

	// Login signs in and loads the cart.
	Login(ctx context.Context, creds model.Credentials) (*model.User, error)

	// Register creates an account and signs in.
	Register(ctx context.Context, reg model.Registration) (*model.User, error)

	// Logout ends the session and drops the cached cart.
	Logout(ctx context.Context) error

	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *model.User

	// UpdateProfile changes the signed-in user's details.
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error)
}

// CatalogService defines the product browsing operations.
type CatalogService interface {
	// List returns the filtered catalogue with display prices.
	List(ctx context.Context, filter model.ProductFilter) ([]ProductView, error)

	// Get returns one product priced at its default selection.
	Get(ctx context.Context, id string) (*ProductDetail, error)

	// Quote prices a selection for one product.
	Quote(ctx context.Context, id string, sel pricing.Selection) (*pricing.Quote, error)
}

// CartService defines the cart state machine.
type CartService interface {
	Fetch(ctx context.Context) CartSnapshot
	Add(ctx context.Context, req model.AddToCartRequest) (CartSnapshot, error)
	AddSelection(ctx context.Context, productID string, sel pricing.Selection) (CartSnapshot, error)
	Update(ctx context.Context, lineID string, quantity int) (CartSnapshot, error)
	Remove(ctx context.Context, lineID string) (CartSnapshot, error)
	Clear(ctx context.Context) (CartSnapshot, error)
	Snapshot() CartSnapshot
	Reset()
}

// CheckoutService places the cached cart as an order.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, details CustomerDetails) (*model.Order, error)
}

// OrderService defines order history and status management.
type OrderService interface {
	MyOrders(ctx context.Context) ([]OrderView, error)
	AllOrders(ctx context.Context) ([]OrderView, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// StatusService reports backend reachability.
type StatusService interface {
	Check(ctx context.Context) (probe.Result, error)
}

// AdminService is a thin pass-through to the admin endpoints.
type AdminService interface {
	AdminAPI
}
