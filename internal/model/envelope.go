package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the normalised form of a backend response body. The backend
// wraps most payloads as {success, data|message}, but some endpoints answer
// with a named key (cart, user) or with the bare document; Payload resolves
// all of those in one place.
type Envelope struct {
	StatusCode int
	Success    bool
	Message    string

	fields map[string]json.RawMessage
	body   json.RawMessage
}

// reserved keys never count as payload on their own.
var reservedKeys = map[string]bool{"success": true, "message": true}

// ParseEnvelope classifies a response body. A body is a failure when the
// status is not 2xx or when it carries "success": false.
func ParseEnvelope(statusCode int, body []byte) (*Envelope, error) {
	env := &Envelope{
		StatusCode: statusCode,
		Success:    statusCode >= 200 && statusCode < 300,
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return env, nil
	}

	if !json.Valid(trimmed) {
		if env.Success {
			return nil, fmt.Errorf("%w: body is not JSON", ErrUnexpectedResponse)
		}
		return env, nil
	}

	env.body = json.RawMessage(trimmed)
	if trimmed[0] != '{' {
		return env, nil
	}

	if err := json.Unmarshal(trimmed, &env.fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	if raw, ok := env.fields["success"]; ok {
		var success bool
		if err := json.Unmarshal(raw, &success); err == nil && !success {
			env.Success = false
		}
	}
	if raw, ok := env.fields["message"]; ok {
		_ = json.Unmarshal(raw, &env.Message)
	}

	return env, nil
}

// Err returns the backend-reported error for a failed envelope.
func (e *Envelope) Err() error {
	if e.Success {
		return nil
	}
	return &APIError{StatusCode: e.StatusCode, Message: e.Message}
}

// Payload finds the response payload: the first present named key, then
// "data", then the bare body when it carries anything besides
// success/message.
func (e *Envelope) Payload(keys ...string) (json.RawMessage, bool) {
	if e.fields == nil {
		if len(e.body) == 0 || isNull(e.body) {
			return nil, false
		}
		return e.body, true
	}

	for _, key := range keys {
		if raw, ok := e.fields[key]; ok && !isNull(raw) {
			return raw, true
		}
	}
	if raw, ok := e.fields["data"]; ok && !isNull(raw) {
		return raw, true
	}

	for key := range e.fields {
		if !reservedKeys[key] && key != "data" {
			return e.body, true
		}
	}
	return nil, false
}

// Decode unmarshals the payload into dst. A missing or malformed payload is
// ErrUnexpectedResponse.
func (e *Envelope) Decode(dst any, keys ...string) error {
	raw, ok := e.Payload(keys...)
	if !ok {
		return fmt.Errorf("%w: no payload", ErrUnexpectedResponse)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Response is the envelope the gateway writes to the browser.
type Response struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
