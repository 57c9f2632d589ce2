package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Gateway is the capability this service needs from the payment provider.
// Implementations must be safe for concurrent use and hold no per-call state.
type Gateway interface {
	InitPayment(ctx context.Context, email string, amount decimal.Decimal) (*InitResult, error)
	GetPaymentStatus(ctx context.Context, reference string) (*StatusResult, error)
}
