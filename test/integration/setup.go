package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"ovenaura/internal/backend"
	"ovenaura/internal/config"
	"ovenaura/internal/handler"
	"ovenaura/internal/model"
	"ovenaura/internal/pricing"
	"ovenaura/internal/probe"
	"ovenaura/internal/router"
	"ovenaura/internal/service"
	"ovenaura/internal/session"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	testEmail    = "asha@example.com"
	testPassword = "secret123"
	testToken    = "tok-asha"
)

// FakeBakery is an in-memory stand-in for the bakery REST API.
type FakeBakery struct {
	Server *httptest.Server

	mu       sync.Mutex
	products map[string]model.Product
	cart     model.Cart
	orders   []model.Order
	placed   []model.PlaceOrderRequest
	hits     map[string]int
	failCart bool
	nextLine int
}

// NewFakeBakery starts a fake backend seeded with a customisable pizza and a
// plain croissant.
func NewFakeBakery(t *testing.T) *FakeBakery {
	t.Helper()

	f := &FakeBakery{
		products: map[string]model.Product{
			"p-pizza": {
				ID:       "p-pizza",
				Name:     "Farmhouse Pizza",
				Price:    decimal.NewFromInt(200),
				Stock:    12,
				Category: "Pizzas",
				Sizes: []model.SizeOption{
					{Size: "M", Price: decimal.NewFromInt(250)},
					{Size: "L", Price: decimal.NewFromInt(350)},
				},
				Toppings: []model.Topping{
					{Name: "Cheese", Price: decimal.NewFromInt(30)},
					{Name: "Olives", Price: decimal.NewFromInt(20)},
				},
			},
			"p-croissant": {
				ID:       "p-croissant",
				Name:     "Butter Croissant",
				Price:    decimal.NewFromInt(90),
				Stock:    40,
				Category: "Bakery",
			},
		},
		cart: model.EmptyCart(),
		hits: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	mux.HandleFunc("POST /api/auth/login", f.login)
	mux.HandleFunc("GET /api/auth/me", f.authed(f.me))
	mux.HandleFunc("GET /api/products", f.listProducts)
	mux.HandleFunc("GET /api/products/{id}", f.getProduct)
	mux.HandleFunc("GET /api/cart", f.authed(f.getCart))
	mux.HandleFunc("POST /api/cart/add", f.authed(f.addToCart))
	mux.HandleFunc("DELETE /api/cart/clear", f.authed(f.clearCart))
	mux.HandleFunc("POST /api/orders", f.authed(f.placeOrder))
	mux.HandleFunc("GET /api/orders/my-orders", f.authed(f.myOrders))

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.Method+" "+r.URL.Path]++
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Server.Close)

	return f
}

// URL returns the API base URL.
func (f *FakeBakery) URL() string {
	return f.Server.URL + "/api"
}

// Hits returns how many times method and path were requested.
func (f *FakeBakery) Hits(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[method+" "+path]
}

// TotalHits returns the number of requests received.
func (f *FakeBakery) TotalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.hits {
		n += c
	}
	return n
}

// FailCart makes cart reads drop the connection.
func (f *FakeBakery) FailCart(fail bool) {
	f.mu.Lock()
	f.failCart = fail
	f.mu.Unlock()
}

// Placed returns the order requests received.
func (f *FakeBakery) Placed() []model.PlaceOrderRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.PlaceOrderRequest(nil), f.placed...)
}

func (f *FakeBakery) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			reply(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Not authorized, token failed"})
			return
		}
		next(w, r)
	}
}

func (f *FakeBakery) login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		reply(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid body"})
		return
	}
	if creds.Email != testEmail || creds.Password != testPassword {
		reply(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid email or password"})
		return
	}
	reply(w, http.StatusOK, map[string]any{"success": true, "token": testToken, "user": testUser()})
}

func (f *FakeBakery) me(w http.ResponseWriter, r *http.Request) {
	reply(w, http.StatusOK, map[string]any{"success": true, "user": testUser()})
}

func (f *FakeBakery) listProducts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	search := strings.ToLower(r.URL.Query().Get("search"))
	out := []model.Product{}
	for _, id := range []string{"p-pizza", "p-croissant"} {
		p := f.products[id]
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	reply(w, http.StatusOK, map[string]any{"success": true, "products": out})
}

func (f *FakeBakery) getProduct(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	p, ok := f.products[r.PathValue("id")]
	f.mu.Unlock()

	if !ok {
		reply(w, http.StatusNotFound, map[string]any{"success": false, "message": "Product not found"})
		return
	}
	reply(w, http.StatusOK, map[string]any{"success": true, "product": p})
}

func (f *FakeBakery) getCart(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	fail := f.failCart
	cart := f.cart.Clone()
	f.mu.Unlock()

	if fail {
		dropConnection(w)
		return
	}
	reply(w, http.StatusOK, map[string]any{"success": true, "cart": cart})
}

func (f *FakeBakery) addToCart(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reply(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[req.ProductID]
	if !ok {
		reply(w, http.StatusNotFound, map[string]any{"success": false, "message": "Product not found"})
		return
	}
	price := p.Price
	if req.Price != nil {
		price = *req.Price
	}

	f.nextLine++
	f.cart.Items = append(f.cart.Items, model.CartLine{
		ID:       fmt.Sprintf("line-%d", f.nextLine),
		Product:  model.ProductRef{ID: p.ID, Product: &p},
		Quantity: req.Quantity,
		Price:    price,
		Size:     req.Size,
		Toppings: req.Toppings,
	})
	f.recompute()

	reply(w, http.StatusOK, map[string]any{"success": true, "cart": f.cart})
}

func (f *FakeBakery) clearCart(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.cart = model.EmptyCart()
	cart := f.cart
	f.mu.Unlock()

	reply(w, http.StatusOK, map[string]any{"success": true, "message": "Cart cleared", "cart": cart})
}

func (f *FakeBakery) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reply(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	order := model.Order{
		ID:           fmt.Sprintf("order-%d", len(f.orders)+1),
		TotalAmount:  req.TotalAmount,
		Status:       model.OrderStatusPending,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		CreatedAt:    time.Now().UTC(),
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, model.OrderLine{
			Product:  model.ProductRef{ID: item.Product},
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	f.orders = append(f.orders, order)
	f.placed = append(f.placed, req)

	reply(w, http.StatusCreated, map[string]any{"success": true, "order": order})
}

func (f *FakeBakery) myOrders(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	orders := append([]model.Order{}, f.orders...)
	f.mu.Unlock()

	reply(w, http.StatusOK, map[string]any{"success": true, "orders": orders})
}

// recompute must be called with mu held.
func (f *FakeBakery) recompute() {
	total := decimal.Zero
	for _, line := range f.cart.Items {
		total = total.Add(line.LineTotal())
	}
	f.cart.TotalAmount = total
}

func testUser() model.User {
	return model.User{ID: "u-asha", Name: "Asha", Email: testEmail, Phone: "9876543210", Role: "customer"}
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func dropConnection(w http.ResponseWriter) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		panic(http.ErrAbortHandler)
	}
	conn, _, err := hj.Hijack()
	if err != nil {
		panic(http.ErrAbortHandler)
	}
	_ = conn.Close()
}

// Stack is a fully wired gateway in front of a FakeBakery.
type Stack struct {
	Bakery    *FakeBakery
	Session   *session.Store
	Auth      service.AuthService
	Cart      service.CartService
	Handler   http.Handler
	TokenFile string
}

// NewStack wires the gateway the way the storefront binary does. tokenFile
// may already hold a persisted token.
func NewStack(t *testing.T, bakery *FakeBakery, tokenFile string) *Stack {
	t.Helper()

	logger := zerolog.Nop()

	sess := session.NewStore(tokenFile, logger)
	if err := sess.Hydrate(); err != nil {
		t.Fatalf("failed to hydrate session: %v", err)
	}

	client, err := backend.NewClient(config.BackendConfig{
		BaseURL: bakery.URL(),
		Timeout: 2 * time.Second,
	}, sess, logger)
	if err != nil {
		t.Fatalf("failed to create backend client: %v", err)
	}

	cartService := service.NewCartService(client, client, sess, 10, logger)
	authService := service.NewAuthService(client, sess, cartService, logger)
	catalogService := service.NewCatalogService(client, pricing.NewFormatter("₹"), 10, logger)
	checkoutService := service.NewCheckoutService(client, cartService, sess, logger)
	orderService := service.NewOrderService(client, sess, logger)
	adminService := service.NewAdminService(client, sess, logger)
	prober := probe.New(client, time.Second, 10*time.Millisecond, logger)

	handlers := router.Handlers{
		Status:  handler.NewStatusHandler(prober, logger),
		Auth:    handler.NewAuthHandler(authService, logger),
		Product: handler.NewProductHandler(catalogService, logger),
		Cart:    handler.NewCartHandler(cartService, logger),
		Order:   handler.NewOrderHandler(checkoutService, orderService, logger),
		Admin:   handler.NewAdminHandler(adminService, logger),
	}

	return &Stack{
		Bakery:    bakery,
		Session:   sess,
		Auth:      authService,
		Cart:      cartService,
		Handler:   router.New(handlers, router.Options{AllowedOrigin: "*"}, logger),
		TokenFile: tokenFile,
	}
}

// TokenPath returns a token file location inside a test temp dir.
func TokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session", "token")
}
