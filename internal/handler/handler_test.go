package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ovenaura/internal/model"
	"ovenaura/internal/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "login required", err: model.ErrLoginRequired, expectedStatus: http.StatusUnauthorized, expectedCode: model.ErrCodeLoginRequired},
		{name: "forbidden", err: model.ErrForbidden, expectedStatus: http.StatusForbidden, expectedCode: model.ErrCodeForbidden},
		{name: "invalid quantity", err: fmt.Errorf("%w: got 0", model.ErrInvalidQuantity), expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidQuantity},
		{name: "invalid input", err: model.InvalidInput("name is required"), expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidInput},
		{name: "invalid status", err: model.ErrInvalidStatus, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidStatus},
		{name: "empty cart", err: model.ErrEmptyCart, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeEmptyCart},
		{name: "invalid json", err: fmt.Errorf("%w: EOF", errInvalidJSON), expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidJSON},
		{
			name:           "product not found wrapping backend 404",
			err:            fmt.Errorf("%w: %w", model.ErrProductNotFound, &model.APIError{StatusCode: 404, Message: "gone"}),
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
		{name: "unexpected response", err: model.ErrUnexpectedResponse, expectedStatus: http.StatusNotFound, expectedCode: model.ErrCodeUnexpectedResponse},
		{name: "backend unavailable", err: fmt.Errorf("%w: dial", model.ErrBackendUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedCode: model.ErrCodeBackendUnavailable},
		{name: "timeout", err: fmt.Errorf("GET /cart: %w", context.DeadlineExceeded), expectedStatus: http.StatusGatewayTimeout, expectedCode: model.ErrCodeBackendUnavailable},
		{name: "backend business error", err: &model.APIError{StatusCode: 409, Message: "Out of stock"}, expectedStatus: http.StatusConflict},
		{name: "success false on 200", err: &model.APIError{StatusCode: 200, Message: "Nope"}, expectedStatus: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedCode: model.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := statusFor(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}

func TestWriteError_Envelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req = req.WithContext(requestid.NewContext(req.Context(), "req-7"))
	w := httptest.NewRecorder()

	writeErrorWithData(w, req, &model.APIError{StatusCode: 400, Message: "Only 2 left"}, "fallback", []string{}, testLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "data": [], "message": "Only 2 left", "requestId": "req-7"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Quantity int `json:"quantity"`
	}

	empty := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, decodeJSON(empty, &dst))

	valid := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity": 3}`))
	require.NoError(t, decodeJSON(valid, &dst))
	assert.Equal(t, 3, dst.Quantity)

	broken := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":`))
	err := decodeJSON(broken, &dst)
	assert.ErrorIs(t, err, errInvalidJSON)
	assert.Equal(t, "invalid request body", model.UserMessage(err, ""))
}

// decodeResponse unmarshals a gateway envelope, decoding data into dst when
// dst is non-nil.
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, dst any) model.Response {
	t.Helper()
	var raw struct {
		model.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	if dst != nil {
		require.NoError(t, json.Unmarshal(raw.Data, dst))
	}
	return raw.Response
}

func TestWriteJSON(t *testing.T) {
	t.Run("Encodes body with status", func(t *testing.T) {
		w := httptest.NewRecorder()
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
	})

	t.Run("Unencodable value keeps the status", func(t *testing.T) {
		w := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			writeJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
