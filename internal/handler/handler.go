package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"ovenaura/internal/model"
	"ovenaura/internal/requestid"

	"github.com/rs/zerolog"
)

// maxRequestBytes caps request bodies read from the browser.
const maxRequestBytes = 1 << 20

// writeJSON writes a JSON response with the given status code. Once the
// header is out an encode failure cannot change the response, so it is
// dropped.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeData writes a success envelope.
func writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, status, model.Response{
		Success:   true,
		Data:      data,
		RequestID: requestid.FromContext(r.Context()),
	})
}

// writeError maps err to a status and writes a failure envelope. fallback is
// the message shown when err carries no user-facing text.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string, logger zerolog.Logger) {
	writeErrorWithData(w, r, err, fallback, nil, logger)
}

// writeErrorWithData is writeError with a degraded payload (an empty list or
// the unchanged cart) the browser can render instead of nothing.
func writeErrorWithData(w http.ResponseWriter, r *http.Request, err error, fallback string, data any, logger zerolog.Logger) {
	status, code := statusFor(err)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("code", code).
		Str("path", r.URL.Path).
		Msg("handler error")

	writeJSON(w, status, model.Response{
		Success:   false,
		Data:      data,
		Message:   model.UserMessage(err, fallback),
		Code:      code,
		RequestID: requestid.FromContext(r.Context()),
	})
}

// statusFor maps the error taxonomy to an HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, model.ErrCodeInvalidJSON
	case errors.Is(err, model.ErrLoginRequired):
		return http.StatusUnauthorized, model.ErrCodeLoginRequired
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, model.ErrCodeForbidden
	case errors.Is(err, model.ErrInvalidQuantity):
		return http.StatusBadRequest, model.ErrCodeInvalidQuantity
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, model.ErrCodeInvalidInput
	case errors.Is(err, model.ErrInvalidStatus):
		return http.StatusBadRequest, model.ErrCodeInvalidStatus
	case errors.Is(err, model.ErrEmptyCart):
		return http.StatusBadRequest, model.ErrCodeEmptyCart
	case errors.Is(err, model.ErrProductNotFound):
		return http.StatusNotFound, model.ErrCodeProductNotFound
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, model.ErrCodeNotFound
	case errors.Is(err, model.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, model.ErrCodeBackendUnavailable
	case errors.Is(err, model.ErrUnexpectedResponse):
		return http.StatusNotFound, model.ErrCodeUnexpectedResponse
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, model.ErrCodeBackendUnavailable
	}

	if apiErr, ok := model.AsAPIError(err); ok {
		if apiErr.StatusCode >= http.StatusBadRequest {
			return apiErr.StatusCode, ""
		}
		return http.StatusBadRequest, ""
	}

	return http.StatusInternalServerError, model.ErrCodeInternalError
}

// errInvalidJSON is reported for request bodies that fail to decode.
var errInvalidJSON = model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")

// decodeJSON reads a JSON request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}
	return nil
}
