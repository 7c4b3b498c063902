package service

import (
	"context"
	"testing"

	"ovenaura/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAdminAPI records calls and returns canned values.
type stubAdminAPI struct {
	AdminAPI
	calls []string
}

func (s *stubAdminAPI) Stats(ctx context.Context) (model.Report, error) {
	s.calls = append(s.calls, "Stats")
	return model.Report{"totalOrders": []byte("12")}, nil
}

func (s *stubAdminAPI) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	s.calls = append(s.calls, "CreateProduct")
	p.ID = "new"
	return &p, nil
}

func (s *stubAdminAPI) DeleteStaff(ctx context.Context, id string) error {
	s.calls = append(s.calls, "DeleteStaff:"+id)
	return nil
}

func TestAdminService_Guard(t *testing.T) {
	tests := []struct {
		name        string
		session     *fakeSession
		expectedErr error
	}{
		{name: "admin", session: &fakeSession{token: "t", user: &model.User{Role: model.RoleAdmin}}},
		{name: "user not loaded yet", session: &fakeSession{token: "t"}},
		{name: "customer", session: &fakeSession{token: "t", user: &model.User{Role: model.RoleCustomer}}, expectedErr: model.ErrForbidden},
		{name: "signed out", session: &fakeSession{}, expectedErr: model.ErrLoginRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAdminAPI{}
			svc := NewAdminService(api, tt.session, zerolog.Nop())

			report, err := svc.Stats(context.Background())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, api.calls)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, report, "totalOrders")
			assert.Equal(t, []string{"Stats"}, api.calls)
		})
	}
}

func TestAdminService_CreateProduct_Validation(t *testing.T) {
	session := &fakeSession{token: "t", user: &model.User{Role: model.RoleAdmin}}

	tests := []struct {
		name    string
		product model.Product
		valid   bool
	}{
		{name: "flat price", product: model.Product{Name: "Croissant", Price: dec(120)}, valid: true},
		{name: "sized", product: *pizza(), valid: true},
		{name: "missing name", product: model.Product{Price: dec(120)}},
		{name: "negative price", product: model.Product{Name: "X", Price: dec(-1)}},
		{name: "negative stock", product: model.Product{Name: "X", Stock: -2}},
		{
			name: "duplicate size",
			product: model.Product{Name: "X", Sizes: []model.SizeOption{
				{Size: "M", Price: dec(10)},
				{Size: "M", Price: dec(12)},
			}},
		},
		{
			name:    "negative topping",
			product: model.Product{Name: "X", Toppings: []model.Topping{{Name: "Cheese", Price: dec(-5)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAdminAPI{}
			svc := NewAdminService(api, session, zerolog.Nop())

			created, err := svc.CreateProduct(context.Background(), tt.product)
			if !tt.valid {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				assert.Empty(t, api.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new", created.ID)
		})
	}
}

func TestAdminService_DeleteStaff(t *testing.T) {
	session := &fakeSession{token: "t", user: &model.User{Role: model.RoleAdmin}}
	api := &stubAdminAPI{}
	svc := NewAdminService(api, session, zerolog.Nop())

	assert.ErrorIs(t, svc.DeleteStaff(context.Background(), ""), model.ErrInvalidInput)
	require.NoError(t, svc.DeleteStaff(context.Background(), "s1"))
	assert.Equal(t, []string{"DeleteStaff:s1"}, api.calls)
}
