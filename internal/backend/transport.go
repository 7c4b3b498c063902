package backend

import (
	"net/http"
	"time"

	"ovenaura/internal/requestid"

	"github.com/rs/zerolog"
)

// TokenSource supplies the current bearer token; "" means no session.
type TokenSource interface {
	Token() string
}

// Middleware wraps an outgoing transport.
type Middleware func(http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Chain applies middlewares so the first one listed runs first.
func Chain(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	rt := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		rt = middlewares[i](rt)
	}
	return rt
}

// BearerAuth adds "Authorization: Bearer <token>" whenever a session exists.
// The token is read on every request and never modified here.
func BearerAuth(tokens TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			token := tokens.Token()
			if token == "" {
				return next.RoundTrip(r)
			}
			r = r.Clone(r.Context())
			r.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(r)
		})
	}
}

// RequestID propagates the caller's correlation id, generating one when the
// call did not originate from a browser request.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get(requestid.Header) != "" {
				return next.RoundTrip(r)
			}
			id := requestid.FromContext(r.Context())
			if id == "" {
				id = requestid.New()
			}
			r = r.Clone(r.Context())
			r.Header.Set(requestid.Header, id)
			return next.RoundTrip(r)
		})
	}
}

// Logging logs backend calls with timing information.
func Logging(logger zerolog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)
			duration := time.Since(start)

			if err != nil {
				logger.Warn().
					Err(err).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", r.Header.Get(requestid.Header)).
					Dur("duration", duration).
					Msg("backend request failed")
				return nil, err
			}

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", resp.StatusCode).
				Str("request_id", r.Header.Get(requestid.Header)).
				Dur("duration", duration).
				Msg("backend request")
			return resp, nil
		})
	}
}
