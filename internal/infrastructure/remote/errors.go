package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError is returned when the remote store answered with a status the
// client will not (or can no longer) retry: any 4xx, or a 5xx once retries
// are exhausted. It is always surfaced, never swallowed.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		return fmt.Sprintf("remote store: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote store: status %d: %s", e.StatusCode, body)
}

// Message extracts the human message from the store's error envelope
// ({"status":"error","message":...}), falling back to the raw body.
func (e *APIError) Message() string {
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(e.Body))
}

// IsStatus reports whether err is an *APIError carrying the given HTTP
// status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// NetworkError is returned when no HTTP response was received at all: DNS
// failure, refused connection, a context cancelled mid-flight, or an open
// circuit breaker. Never raised for a response with a status code.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("remote store unreachable: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// FieldError names a single violated payload constraint.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError is returned when a payload does not conform to its
// declared schema. Writes are checked before they are sent; masking a
// shape mismatch would push corrupt data downstream.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "payload validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " (" + f.Rule + ")"
	}
	return "payload validation failed: " + strings.Join(parts, ", ")
}

// newValidationError converts validator output into the boundary taxonomy.
func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
	}
	return &ValidationError{Fields: fields}
}
