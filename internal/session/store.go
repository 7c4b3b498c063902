// Package session holds the process-wide bearer token and the signed-in user.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ovenaura/internal/model"

	"github.com/rs/zerolog"
)

// Store is the gateway's session. The token is persisted to a file so a
// restart resumes the session; the user is kept in memory only.
type Store struct {
	mu     sync.RWMutex
	path   string
	token  string
	user   *model.User
	logger zerolog.Logger
}

// NewStore creates a store backed by the token file at path. Call Hydrate
// before first use.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// Hydrate loads a persisted token. A missing file means no session.
func (s *Store) Hydrate() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("file", s.path).Msg("no persisted session")
			return nil
		}
		return fmt.Errorf("failed to read session token: %w", err)
	}

	token := strings.TrimSpace(string(data))

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()

	s.logger.Info().Bool("has_token", token != "").Msg("session hydrated")
	return nil
}

// Token returns the bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HasToken reports whether a bearer token is cached.
func (s *Store) HasToken() bool {
	return s.Token() != ""
}

// User returns a copy of the signed-in user, or nil.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the cached user without touching the token.
func (s *Store) SetUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Set starts a session and persists its token.
func (s *Store) Set(token string, user *model.User) error {
	if token == "" {
		return fmt.Errorf("session token is empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	s.logger.Info().Msg("session started")
	return nil
}

// Clear ends the session and removes the persisted token.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session token: %w", err)
	}

	s.logger.Info().Msg("session cleared")
	return nil
}
