package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"paygate-be/internal/logger"
	"paygate-be/internal/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const requestTimeout = 15 * time.Second

type paystackGateway struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewPaystackGateway builds a gateway client for the given provider base URL.
// A nil transport means real HTTP; tests and local runs pass NewMockTransport
// to get the same request/response mapping without network access.
func NewPaystackGateway(baseURL, secretKey string, transport http.RoundTripper) Gateway {
	if secretKey == "" {
		logger.L().Warn("Paystack secret key is empty")
	}

	client := &http.Client{Timeout: requestTimeout}
	if transport != nil {
		client.Transport = transport
	}

	return &paystackGateway{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: client,
	}
}

func (g *paystackGateway) InitPayment(ctx context.Context, email string, amount decimal.Decimal) (*InitResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("email", email),
		zap.String("amount", amount.String()),
	)
	metrics.Gateway.InitCalls.Inc()
	timer := metrics.StartTimer()

	// The provider expects integer minor units; sub-cent digits are truncated
	// toward zero.
	body, err := json.Marshal(map[string]any{
		"email":  email,
		"amount": amount.Shift(2).IntPart(),
	})
	if err != nil {
		metrics.Gateway.InitFailures.Inc()
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/transaction/initialize", bytes.NewBuffer(body))
	if err != nil {
		metrics.Gateway.InitFailures.Inc()
		log.Error("failed building init request", zap.Error(err))
		return nil, err
	}
	g.setHeaders(req)

	log.Info("initializing transaction with Paystack")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.Gateway.InitFailures.Inc()
		log.Error("paystack request failed", zap.Error(err))
		return nil, serverError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.Gateway.InitFailures.Inc()
		log.Error("failed reading paystack response", zap.Error(err))
		return nil, serverError()
	}

	if !is2xx(resp.StatusCode) {
		metrics.Gateway.InitFailures.Inc()
		log.Error("paystack returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		var payload any
		if err := json.Unmarshal(respBody, &payload); err != nil {
			// Unparsable error body (e.g. a bare 5xx page); detail stays in
			// the log.
			return nil, serverError()
		}
		return nil, &GatewayError{StatusCode: http.StatusBadRequest, Payload: payload}
	}

	result, ferrs := ParseInitResponse(respBody)
	if ferrs != nil {
		metrics.Gateway.InitFailures.Inc()
		log.Error("paystack init response failed validation",
			zap.Any("errors", ferrs),
			zap.ByteString("response", respBody),
		)
		return nil, &GatewayError{StatusCode: http.StatusBadRequest, Payload: ferrs}
	}

	log.Info("transaction initialized",
		zap.String("reference", result.Reference),
		zap.Duration("duration", timer.Duration()),
	)
	return result, nil
}

func (g *paystackGateway) GetPaymentStatus(ctx context.Context, reference string) (*StatusResult, error) {
	log := logger.FromCtx(ctx).With(zap.String("reference", reference))
	metrics.Gateway.VerifyCalls.Inc()
	timer := metrics.StartTimer()

	verifyURL := fmt.Sprintf("%s/transaction/verify/%s", g.baseURL, url.PathEscape(reference))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, verifyURL, nil)
	if err != nil {
		metrics.Gateway.VerifyFailures.Inc()
		log.Error("failed building verify request", zap.Error(err))
		return nil, err
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.Gateway.VerifyFailures.Inc()
		log.Error("paystack request failed", zap.Error(err))
		return nil, serverError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.Gateway.VerifyFailures.Inc()
		log.Error("failed reading paystack response", zap.Error(err))
		return nil, serverError()
	}

	if !is2xx(resp.StatusCode) {
		metrics.Gateway.VerifyFailures.Inc()
		log.Error("paystack returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)

		var provErr struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(respBody, &provErr); err != nil {
			return nil, serverError()
		}

		if provErr.Code == "transaction_not_found" {
			return nil, &GatewayError{
				StatusCode: http.StatusNotFound,
				Payload: map[string]any{
					"reference": reference,
					"status":    StatusFailed,
					"message":   "Payment with the given payment id not found",
				},
			}
		}
		return nil, &GatewayError{
			StatusCode: http.StatusBadRequest,
			Payload: map[string]any{
				"reference": reference,
				"status":    StatusFailed,
			},
		}
	}

	result, ferrs := ParseStatusResponse(respBody)
	if ferrs != nil {
		metrics.Gateway.VerifyFailures.Inc()
		log.Error("paystack verify response failed validation",
			zap.Any("errors", ferrs),
			zap.ByteString("response", respBody),
		)
		return nil, &GatewayError{StatusCode: http.StatusBadRequest, Payload: ferrs}
	}

	log.Info("transaction verified",
		zap.String("status", string(result.Status)),
		zap.Duration("duration", timer.Duration()),
	)
	return result, nil
}

func (g *paystackGateway) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")
}

func is2xx(code int) bool {
	return code >= 200 && code < 300
}
