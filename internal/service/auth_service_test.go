package service

import (
	"context"
	"testing"

	"ovenaura/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	api     *MockAuthAPI
	cartAPI *MockCartAPI
	session *fakeSession
	cart    CartService
	svc     AuthService
}

func newAuthFixture(token string) *authFixture {
	f := &authFixture{
		api:     new(MockAuthAPI),
		cartAPI: new(MockCartAPI),
		session: &fakeSession{token: token},
	}
	f.cart = NewCartService(f.cartAPI, new(MockCatalogAPI), f.session, 10, zerolog.Nop())
	f.svc = NewAuthService(f.api, f.session, f.cart, zerolog.Nop())
	return f
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture("")
	user := &model.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: model.RoleCustomer}

	f.api.On("Login", mock.Anything, model.Credentials{Email: "asha@example.com", Password: "secret1"}).
		Return(&model.AuthResult{Token: "t1", User: user}, nil)
	f.cartAPI.On("GetCart", mock.Anything).Return(cartWith(line("l1", "p1", 1, 120)), nil)

	got, err := f.svc.Login(context.Background(), model.Credentials{Email: " asha@example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "t1", f.session.Token())
	assert.Equal(t, user, f.svc.CurrentUser())
	assert.Equal(t, 1, f.cart.Snapshot().ItemCount)
}

func TestAuthService_Login_Validation(t *testing.T) {
	tests := []struct {
		name  string
		creds model.Credentials
	}{
		{name: "missing email", creds: model.Credentials{Password: "secret1"}},
		{name: "malformed email", creds: model.Credentials{Email: "asha", Password: "secret1"}},
		{name: "missing password", creds: model.Credentials{Email: "asha@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture("")
			_, err := f.svc.Login(context.Background(), tt.creds)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Empty(t, f.api.Calls)
		})
	}
}

func TestAuthService_Login_Rejected(t *testing.T) {
	f := newAuthFixture("")
	f.api.On("Login", mock.Anything, mock.Anything).
		Return(nil, &model.APIError{StatusCode: 401, Message: "Invalid credentials"})

	_, err := f.svc.Login(context.Background(), model.Credentials{Email: "asha@example.com", Password: "wrong!"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", model.UserMessage(err, "Login failed"))
	assert.False(t, f.session.HasToken())
	assert.Empty(t, f.cartAPI.Calls)
}

func TestAuthService_Register_Validation(t *testing.T) {
	valid := model.Registration{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Password: "secret"}

	tests := []struct {
		name   string
		mutate func(r *model.Registration)
	}{
		{name: "missing name", mutate: func(r *model.Registration) { r.Name = "" }},
		{name: "bad email", mutate: func(r *model.Registration) { r.Email = "asha@" }},
		{name: "missing phone", mutate: func(r *model.Registration) { r.Phone = " " }},
		{name: "short password", mutate: func(r *model.Registration) { r.Password = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture("")
			reg := valid
			tt.mutate(&reg)

			_, err := f.svc.Register(context.Background(), reg)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Empty(t, f.api.Calls)
		})
	}

	t.Run("six characters is enough", func(t *testing.T) {
		f := newAuthFixture("")
		f.api.On("Register", mock.Anything, valid).
			Return(&model.AuthResult{Token: "t2", User: &model.User{ID: "u2"}}, nil)
		f.cartAPI.On("GetCart", mock.Anything).Return(&model.Cart{}, nil)

		_, err := f.svc.Register(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, "t2", f.session.Token())
	})
}

func TestAuthService_Restore(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		f := newAuthFixture("t1")
		f.api.On("Me", mock.Anything).Return(&model.User{ID: "u1", Role: model.RoleAdmin}, nil)
		f.cartAPI.On("GetCart", mock.Anything).Return(cartWith(line("l1", "p1", 2, 120)), nil)

		user, err := f.svc.Restore(context.Background())
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
		assert.Equal(t, "t1", f.session.Token())
		assert.Equal(t, 2, f.cart.Snapshot().ItemCount)
	})

	t.Run("stale token is removed", func(t *testing.T) {
		f := newAuthFixture("stale")
		f.api.On("Me", mock.Anything).Return(nil, &model.APIError{StatusCode: 401, Message: "Token expired"})

		user, err := f.svc.Restore(context.Background())
		require.Error(t, err)
		assert.Nil(t, user)
		assert.False(t, f.session.HasToken())
		assert.Equal(t, 1, f.session.cleared)
		assert.Empty(t, f.cartAPI.Calls)
	})

	t.Run("no token", func(t *testing.T) {
		f := newAuthFixture("")

		user, err := f.svc.Restore(context.Background())
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.Empty(t, f.api.Calls)
		assert.Empty(t, f.cartAPI.Calls)
	})
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture("t1")
	f.cartAPI.On("GetCart", mock.Anything).Return(cartWith(line("l1", "p1", 2, 120)), nil)
	f.cart.Fetch(context.Background())

	require.NoError(t, f.svc.Logout(context.Background()))

	assert.False(t, f.session.HasToken())
	assert.Nil(t, f.svc.CurrentUser())
	assert.Zero(t, f.cart.Snapshot().ItemCount)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	f := newAuthFixture("")
	_, err := f.svc.UpdateProfile(context.Background(), model.ProfileUpdate{Name: "Asha", Email: "asha@example.com"})
	assert.ErrorIs(t, err, model.ErrLoginRequired)

	f = newAuthFixture("t1")
	update := model.ProfileUpdate{Name: "Asha K", Email: "asha@example.com", Phone: "9876543210"}
	f.api.On("UpdateProfile", mock.Anything, update).Return(&model.User{ID: "u1", Name: "Asha K"}, nil)

	user, err := f.svc.UpdateProfile(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, "Asha K", user.Name)
	assert.Equal(t, "Asha K", f.svc.CurrentUser().Name)
}
