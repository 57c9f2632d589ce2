package payment

import (
	"context"
	"time"

	"paygate-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	InitiatePayment(ctx context.Context, req InitRequest) (*InitResult, error)
	GetPaymentStatus(ctx context.Context, reference string) (*StatusResult, error)
}

type service struct {
	gateway Gateway
	repo    Repository
}

// NewService wires the gateway to the placeholder record store. repo may be
// nil when the service runs without a database.
func NewService(gateway Gateway, repo Repository) Service {
	return &service{gateway: gateway, repo: repo}
}

func (s *service) InitiatePayment(ctx context.Context, req InitRequest) (*InitResult, error) {
	result, err := s.gateway.InitPayment(ctx, req.CustomerEmail, req.Amount)
	if err != nil {
		return nil, err
	}

	if s.repo != nil {
		p := &Payment{
			Reference:     result.Reference,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Amount:        req.Amount,
			Status:        StatusPending,
			InitiatedAt:   time.Now().UTC(),
		}
		// The gateway result is authoritative; a failed record write must not
		// fail the initiation the customer already has a checkout URL for.
		if err := s.repo.SavePayment(ctx, p); err != nil {
			logger.FromCtx(ctx).Error("failed to save payment record",
				zap.String("reference", result.Reference),
				zap.Error(err),
			)
		}
	}

	return result, nil
}

func (s *service) GetPaymentStatus(ctx context.Context, reference string) (*StatusResult, error) {
	// Always a fresh round trip; settlement state is never cached.
	return s.gateway.GetPaymentStatus(ctx, reference)
}
