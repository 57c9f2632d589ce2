package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paygate-be/internal/payment"

	"github.com/stretchr/testify/assert"
)

func TestSetupServer(t *testing.T) {
	// Wire the full stack against the deterministic mock backend; only the
	// HTTP plumbing is under test here.
	gw := payment.NewPaystackGateway("https://api.paystack.co", "sk_test_secret", payment.NewMockTransport())
	handler := payment.NewHandler(payment.NewService(gw, nil))

	srv := setupServer(handler)

	t.Run("Init payment route", func(t *testing.T) {
		body := `{"customer_name": "John Doe", "customer_email": "john@example.com", "amount": 50.00}`
		req := httptest.NewRequest("POST", "/v1/payments/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "mock-ref-john-at-example.com-5000")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Status route", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/payments/test-payment-id/", nil)
		rr := httptest.NewRecorder()

		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Unknown route", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/nope", nil)
		rr := httptest.NewRecorder()

		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
