package payment

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

// FieldErrors maps a field name to the validation messages for it. It is the
// payload shape for both inbound input errors and provider schema errors.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// GatewayError is returned whenever a provider call cannot yield a valid
// result. StatusCode and Payload are rendered as-is by the HTTP layer.
type GatewayError struct {
	StatusCode int
	Payload    any
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error: status %d", e.StatusCode)
}

// serverError is the opaque failure surfaced when the provider is unreachable
// or answers with an unparsable body. The real cause is logged, not exposed.
func serverError() *GatewayError {
	return &GatewayError{
		StatusCode: http.StatusInternalServerError,
		Payload: map[string]any{
			"status":  false,
			"message": "Server error",
			"data":    map[string]any{},
		},
	}
}
