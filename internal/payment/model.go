package payment

import (
	"encoding/json"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the settlement state of a transaction as reported by the provider.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusPending   Status = "pending"
	StatusAbandoned Status = "abandoned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusPending, StatusAbandoned:
		return true
	}
	return false
}

// Completed reports whether the transaction has been paid. paid_at is set
// exactly when this is true.
func (s Status) Completed() bool {
	return s == StatusSuccess
}

// Payment is the persisted record of an initiated transaction. It is created
// when initiation succeeds and updated later by reconciliation.
type Payment struct {
	ID            uint
	Reference     string
	CustomerName  string
	CustomerEmail string
	Amount        decimal.Decimal
	Status        Status
	PaidAt        *time.Time
	InitiatedAt   time.Time
}

// InitRequest is a validated payment-initiation request.
type InitRequest struct {
	CustomerName  string
	CustomerEmail string
	Amount        decimal.Decimal
}

// InitResult is the normalized outcome of a successful initiation.
type InitResult struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

// StatusResult is the normalized outcome of a status check. It is produced
// fresh on every call and never cached.
type StatusResult struct {
	Domain    string          `json:"domain"`
	Status    Status          `json:"status"`
	Reference string          `json:"reference"`
	PaidAt    *time.Time      `json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
	Channel   string          `json:"channel"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
}

// InitPaymentInput is the raw inbound request body. Amount stays raw so a
// malformed value can be reported per field instead of failing the decode.
type InitPaymentInput struct {
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Amount        json.RawMessage `json:"amount"`
}

const (
	maxAmountDigits  = 10
	maxDecimalPlaces = 2
)

// Validate checks the input and returns the validated request, or a field
// error map when any field is missing or malformed.
func (in InitPaymentInput) Validate() (*InitRequest, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		errs.Add("customer_name", "This field is required.")
	}

	email := strings.TrimSpace(in.CustomerEmail)
	if email == "" {
		errs.Add("customer_email", "This field is required.")
	} else if !validEmail(email) {
		errs.Add("customer_email", "Enter a valid email address.")
	}

	amount, amountErr := parseAmount(in.Amount)
	if amountErr != "" {
		errs.Add("amount", amountErr)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &InitRequest{
		CustomerName:  name,
		CustomerEmail: email,
		Amount:        amount,
	}, nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func parseAmount(raw json.RawMessage) (decimal.Decimal, string) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, "This field is required."
	}
	s = strings.Trim(s, `"`)

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, "A valid number is required."
	}
	if !amount.IsPositive() {
		return decimal.Zero, "Ensure this value is greater than 0."
	}
	if msg := checkAmountBounds(amount); msg != "" {
		return decimal.Zero, msg
	}
	return amount, ""
}

// checkAmountBounds enforces the provider's decimal contract: at most
// maxAmountDigits digits in total and maxDecimalPlaces after the point.
func checkAmountBounds(amount decimal.Decimal) string {
	if amount.Exponent() < -int32(maxDecimalPlaces) {
		return "Ensure that there are no more than 2 decimal places."
	}
	digits := strings.ReplaceAll(strings.TrimPrefix(amount.Abs().String(), "0."), ".", "")
	if len(digits) > maxAmountDigits {
		return "Ensure that there are no more than 10 digits in total."
	}
	return ""
}
