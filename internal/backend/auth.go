package backend

import (
	"context"
	"fmt"
	"net/http"

	"ovenaura/internal/model"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(env)
}

// Register creates an account and returns its session token.
func (c *Client) Register(ctx context.Context, reg model.Registration) (*model.AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(env)
}

// Me returns the user owning the current token.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(env)
}

// UpdateProfile updates the signed-in user's profile.
func (c *Client) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error) {
	env, err := c.do(ctx, http.MethodPut, "/auth/profile", nil, update)
	if err != nil {
		return nil, err
	}
	return decodeUser(env)
}

func decodeAuthResult(env *model.Envelope) (*model.AuthResult, error) {
	var result model.AuthResult
	if err := env.Decode(&result); err != nil {
		return nil, err
	}
	if result.Token == "" || result.User == nil {
		return nil, fmt.Errorf("%w: login response is missing token or user", model.ErrUnexpectedResponse)
	}
	return &result, nil
}

func decodeUser(env *model.Envelope) (*model.User, error) {
	var user model.User
	if err := env.Decode(&user, "user"); err != nil {
		return nil, err
	}
	if user.ID == "" && user.Email == "" {
		return nil, fmt.Errorf("%w: user payload is empty", model.ErrUnexpectedResponse)
	}
	return &user, nil
}
