package service

import (
	"context"
	"sync"

	"ovenaura/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeSession is an in-memory Session.
type fakeSession struct {
	mu      sync.Mutex
	token   string
	user    *model.User
	cleared int
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) HasToken() bool { return s.Token() != "" }

func (s *fakeSession) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *fakeSession) SetUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *fakeSession) Set(token string, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = token, user
	return nil
}

func (s *fakeSession) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
	s.cleared++
	return nil
}

// MockCartAPI is a mock implementation of CartAPI.
type MockCartAPI struct {
	mock.Mock
}

func (m *MockCartAPI) GetCart(ctx context.Context) (*model.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartAPI) AddToCart(ctx context.Context, req model.AddToCartRequest) (*model.Cart, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartAPI) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*model.Cart, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartAPI) RemoveCartItem(ctx context.Context, itemID string) (*model.Cart, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartAPI) ClearCart(ctx context.Context) (*model.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

// MockCatalogAPI is a mock implementation of CatalogAPI.
type MockCatalogAPI struct {
	mock.Mock
}

func (m *MockCatalogAPI) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogAPI) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockAuthAPI is a mock implementation of AuthAPI.
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, reg model.Registration) (*model.AuthResult, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func (m *MockAuthAPI) Me(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthAPI) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockOrderAPI is a mock implementation of OrderAPI.
type MockOrderAPI struct {
	mock.Mock
}

func (m *MockOrderAPI) PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderAPI) MyOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderAPI) AdminOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderAPI) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// pizza is the customisable product used across tests.
func pizza() *model.Product {
	return &model.Product{
		ID:       "p1",
		Name:     "Margherita",
		Price:    dec(200),
		Category: "pizzas",
		Sizes: []model.SizeOption{
			{Size: "M", Price: dec(250)},
			{Size: "L", Price: dec(350)},
		},
		Toppings: []model.Topping{
			{Name: "Cheese", Price: dec(30)},
			{Name: "Olives", Price: dec(20)},
		},
	}
}

func cartWith(lines ...model.CartLine) *model.Cart {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return &model.Cart{Items: lines, TotalAmount: total}
}

func line(id, productID string, quantity int, price int64) model.CartLine {
	return model.CartLine{
		ID:       id,
		Product:  model.ProductRef{ID: productID},
		Quantity: quantity,
		Price:    dec(price),
	}
}
