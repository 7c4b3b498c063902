// Package backend is the REST client for the external bakery API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ovenaura/internal/config"
	"ovenaura/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// Client talks JSON to the bakery backend. All responses pass through
// model.ParseEnvelope.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a backend client. The token source is consulted on every
// request to attach the bearer token.
func NewClient(cfg config.BackendConfig, tokens TokenSource, logger zerolog.Logger) (*Client, error) {
	return NewClientWithTransport(cfg, tokens, http.DefaultTransport, logger)
}

// NewClientWithTransport creates a backend client on top of base.
func NewClientWithTransport(cfg config.BackendConfig, tokens TokenSource, base http.RoundTripper, logger zerolog.Logger) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base URL: %q", cfg.BaseURL)
	}

	logger = logger.With().Str("component", "backend-client").Logger()

	transport := Chain(base,
		RequestID(),
		BearerAuth(tokens),
		Logging(logger),
	)

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Msg("backend client initialised")

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// do sends one request and returns the parsed success envelope. Transport
// failures are ErrBackendUnavailable; failed envelopes are *model.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*model.Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s %s: %w", model.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s %s: %w", model.ErrBackendUnavailable, method, path, err)
	}

	env, err := model.ParseEnvelope(resp.StatusCode, raw)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("unexpected response body")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if err := env.Err(); err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", env.StatusCode).
			Str("message", env.Message).
			Msg("backend rejected request")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return env, nil
}

// notFoundAs rewrites a backend 404 into the given domain error, keeping the
// backend's message reachable through errors.As.
func notFoundAs(err error, domainErr error) error {
	if apiErr, ok := model.AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", domainErr, err)
	}
	return err
}

func escape(id string) string {
	return url.PathEscape(id)
}
