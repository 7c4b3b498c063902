// Package requestid carries a correlation id from the browser request to the
// backend calls it triggers.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the id in both directions.
const Header = "X-Request-ID"

type contextKey struct{}

// New returns a fresh id.
func New() string {
	return uuid.NewString()
}

// NewContext returns ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the id in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
