package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"ovenaura/internal/model"

	"github.com/rs/zerolog"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 6

// authService implements AuthService.
type authService struct {
	api     AuthAPI
	session Session
	cart    CartService
	logger  zerolog.Logger
}

// NewAuthService creates a new auth service. The cart service is refreshed on
// sign-in and reset on sign-out.
func NewAuthService(api AuthAPI, session Session, cart CartService, logger zerolog.Logger) AuthService {
	return &authService{
		api:     api,
		session: session,
		cart:    cart,
		logger:  logger.With().Str("service", "auth").Logger(),
	}
}

// Restore checks a hydrated token against the backend. A rejected token is
// removed as stale; the cart is loaded either way.
func (s *authService) Restore(ctx context.Context) (*model.User, error) {
	if !s.session.HasToken() {
		s.cart.Fetch(ctx)
		return nil, nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("stored session rejected, signing out")
		if clearErr := s.session.Clear(); clearErr != nil {
			s.logger.Error().Err(clearErr).Msg("failed to clear stale session")
		}
		s.cart.Fetch(ctx)
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	s.session.SetUser(user)
	s.cart.Fetch(ctx)

	s.logger.Info().Str("user_id", user.ID).Msg("session restored")
	return user, nil
}

// Login signs in with email and password.
func (s *authService) Login(ctx context.Context, creds model.Credentials) (*model.User, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validateEmail(creds.Email); err != nil {
		return nil, err
	}
	if creds.Password == "" {
		return nil, model.InvalidInput("password is required")
	}

	result, err := s.api.Login(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", creds.Email).Msg("login failed")
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.start(ctx, result)
}

// Register creates an account and signs in with it.
func (s *authService) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)

	if reg.Name == "" {
		return nil, model.InvalidInput("name is required")
	}
	if err := validateEmail(reg.Email); err != nil {
		return nil, err
	}
	if reg.Phone == "" {
		return nil, model.InvalidInput("phone is required")
	}
	if len(reg.Password) < minPasswordLength {
		return nil, model.InvalidInput("password must be at least %d characters", minPasswordLength)
	}

	result, err := s.api.Register(ctx, reg)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", reg.Email).Msg("registration failed")
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.start(ctx, result)
}

// Logout clears the session and the cart cache together.
func (s *authService) Logout(ctx context.Context) error {
	s.cart.Reset()
	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info().Msg("signed out")
	return nil
}

// CurrentUser returns the signed-in user.
func (s *authService) CurrentUser() *model.User {
	return s.session.User()
}

// UpdateProfile changes the signed-in user's details and caches the result.
func (s *authService) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error) {
	if !s.session.HasToken() {
		return nil, model.ErrLoginRequired
	}

	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)
	update.Phone = strings.TrimSpace(update.Phone)
	if update.Name == "" {
		return nil, model.InvalidInput("name is required")
	}
	if err := validateEmail(update.Email); err != nil {
		return nil, err
	}

	user, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.session.SetUser(user)
	return user, nil
}

func (s *authService) start(ctx context.Context, result *model.AuthResult) (*model.User, error) {
	if err := s.session.Set(result.Token, result.User); err != nil {
		s.logger.Error().Err(err).Msg("failed to store session")
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.cart.Fetch(ctx)

	s.logger.Info().
		Str("user_id", result.User.ID).
		Str("role", result.User.Role).
		Msg("signed in")
	return result.User, nil
}

func validateEmail(email string) error {
	if email == "" {
		return model.InvalidInput("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.InvalidInput("email %q is not valid", email)
	}
	return nil
}
