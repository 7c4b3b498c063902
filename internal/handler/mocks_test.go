package handler

import (
	"context"

	"ovenaura/internal/model"
	"ovenaura/internal/pricing"
	"ovenaura/internal/probe"
	"ovenaura/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, filter model.ProductFilter) ([]service.ProductView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ProductView), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*service.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductDetail), args.Error(1)
}

func (m *MockCatalogService) Quote(ctx context.Context, id string, sel pricing.Selection) (*pricing.Quote, error) {
	args := m.Called(ctx, id, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Quote), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Fetch(ctx context.Context) service.CartSnapshot {
	return m.Called(ctx).Get(0).(service.CartSnapshot)
}

func (m *MockCartService) Add(ctx context.Context, req model.AddToCartRequest) (service.CartSnapshot, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.CartSnapshot), args.Error(1)
}

func (m *MockCartService) AddSelection(ctx context.Context, productID string, sel pricing.Selection) (service.CartSnapshot, error) {
	args := m.Called(ctx, productID, sel)
	return args.Get(0).(service.CartSnapshot), args.Error(1)
}

func (m *MockCartService) Update(ctx context.Context, lineID string, quantity int) (service.CartSnapshot, error) {
	args := m.Called(ctx, lineID, quantity)
	return args.Get(0).(service.CartSnapshot), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, lineID string) (service.CartSnapshot, error) {
	args := m.Called(ctx, lineID)
	return args.Get(0).(service.CartSnapshot), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context) (service.CartSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.CartSnapshot), args.Error(1)
}

func (m *MockCartService) Snapshot() service.CartSnapshot {
	return m.Called().Get(0).(service.CartSnapshot)
}

func (m *MockCartService) Reset() {
	m.Called()
}

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) PlaceOrder(ctx context.Context, details service.CustomerDetails) (*model.Order, error) {
	args := m.Called(ctx, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) MyOrders(ctx context.Context) ([]service.OrderView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.OrderView), args.Error(1)
}

func (m *MockOrderService) AllOrders(ctx context.Context) ([]service.OrderView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.OrderView), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Restore(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, creds model.Credentials) (*model.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthService) CurrentUser() *model.User {
	user, _ := m.Called().Get(0).(*model.User)
	return user
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockStatusService is a mock implementation of StatusService.
type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Check(ctx context.Context) (probe.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(probe.Result), args.Error(1)
}
