package backend

import (
	"context"
	"errors"
	"net/http"

	"ovenaura/internal/model"
)

// Health checks that the backend answers. Any 2xx counts, whatever the body.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	if errors.Is(err, model.ErrUnexpectedResponse) {
		return nil
	}
	return err
}
