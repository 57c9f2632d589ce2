package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// mockTransport emulates the provider's wire contract so the gateway client
// and its callers can run without network access. Verification outcomes are
// keyed off the queried reference:
//
//   - a reserved set of ids is reported as not found
//   - ids containing "failed" verify as failed, unpaid
//   - freshly initiated ids (they carry the mock reference prefix) verify as
//     pending, unpaid
//   - everything else verifies as success, paid now
type mockTransport struct{}

// NewMockTransport returns a RoundTripper that answers like Paystack.
func NewMockTransport() http.RoundTripper {
	return mockTransport{}
}

const (
	mockReferencePrefix  = "mock-ref"
	mockAuthorizationURL = "https://checkout.paystack.com/mock-reference-123"
)

var mockNotFoundIDs = map[string]bool{
	"invalid-payment-id": true,
	"test-payment-id":    true,
}

func (mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodPost && req.URL.Path == "/transaction/initialize" {
		return mockInitialize(req)
	}
	if req.Method == http.MethodGet && strings.HasPrefix(req.URL.Path, "/transaction/verify/") {
		reference := strings.TrimPrefix(req.URL.Path, "/transaction/verify/")
		return mockVerify(reference)
	}

	return jsonResponse(http.StatusNotFound, map[string]any{
		"status":  false,
		"message": "Endpoint not found",
	})
}

func mockInitialize(req *http.Request) (*http.Response, error) {
	var in struct {
		Email  string `json:"email"`
		Amount int64  `json:"amount"`
	}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		_ = json.Unmarshal(body, &in)
	}

	// Deterministic reference so tests can recompute the expected value.
	reference := fmt.Sprintf("%s-%s-%d",
		mockReferencePrefix,
		strings.ReplaceAll(in.Email, "@", "-at-"),
		in.Amount,
	)

	return jsonResponse(http.StatusOK, map[string]any{
		"status":  true,
		"message": "Authorization URL created",
		"data": map[string]any{
			"authorization_url": mockAuthorizationURL,
			"reference":         reference,
		},
	})
}

func mockVerify(reference string) (*http.Response, error) {
	if mockNotFoundIDs[reference] {
		return jsonResponse(http.StatusNotFound, map[string]any{
			"status":  false,
			"message": "Transaction reference not found",
			"code":    "transaction_not_found",
		})
	}

	now := time.Now().UTC().Format(time.RFC3339)

	switch {
	case strings.Contains(strings.ToLower(reference), "failed"):
		return jsonResponse(http.StatusOK, verificationBody(reference, StatusFailed, nil, now))
	case strings.Contains(reference, mockReferencePrefix):
		// Freshly initiated, nothing paid yet.
		return jsonResponse(http.StatusOK, verificationBody(reference, StatusPending, nil, now))
	default:
		paidAt := now
		return jsonResponse(http.StatusOK, verificationBody(reference, StatusSuccess, &paidAt, now))
	}
}

func verificationBody(reference string, status Status, paidAt *string, createdAt string) map[string]any {
	return map[string]any{
		"status":  true,
		"message": "Verification successful",
		"data": map[string]any{
			"domain":     "test",
			"status":     status,
			"reference":  reference,
			"paid_at":    paidAt,
			"created_at": createdAt,
			"channel":    "card",
			"currency":   "KES",
			"amount":     "3000.00",
		},
	}
}

func jsonResponse(statusCode int, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: statusCode,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(b)),
	}, nil
}
