package payment

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Provider payloads are validated strictly before they become internal
// results: required fields must be present and well typed, and the paid_at
// null-ness must agree with the reported status. Any violation is reported as
// a FieldErrors map keyed by the dotted field path.

type initResponse struct {
	Status  *bool     `json:"status"`
	Message *string   `json:"message"`
	Data    *initData `json:"data"`
}

type initData struct {
	AuthorizationURL *string `json:"authorization_url"`
	Reference        *string `json:"reference"`
}

type statusResponse struct {
	Status  *bool       `json:"status"`
	Message *string     `json:"message"`
	Data    *statusData `json:"data"`
}

type statusData struct {
	Domain    *string         `json:"domain"`
	Status    *string         `json:"status"`
	Reference *string         `json:"reference"`
	PaidAt    json.RawMessage `json:"paid_at"`
	CreatedAt *string         `json:"created_at"`
	Channel   *string         `json:"channel"`
	Currency  *string         `json:"currency"`
	Amount    json.RawMessage `json:"amount"`
}

const (
	msgRequired     = "This field is required."
	msgInvalidJSON  = "Response body is not valid JSON."
	msgInvalidURL   = "Enter a valid URL."
	msgInvalidTime  = "Datetime has wrong format."
	msgInvalidValue = "A valid number is required."
)

// ParseInitResponse validates a 2xx initialization body and normalizes it.
func ParseInitResponse(body []byte) (*InitResult, FieldErrors) {
	var resp initResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, FieldErrors{"non_field_errors": {msgInvalidJSON}}
	}

	errs := FieldErrors{}
	if resp.Status == nil {
		errs.Add("status", msgRequired)
	}
	if resp.Message == nil {
		errs.Add("message", msgRequired)
	}
	if resp.Data == nil {
		errs.Add("data", msgRequired)
		return nil, errs
	}

	if resp.Data.AuthorizationURL == nil {
		errs.Add("data.authorization_url", msgRequired)
	} else if !validURL(*resp.Data.AuthorizationURL) {
		errs.Add("data.authorization_url", msgInvalidURL)
	}
	if resp.Data.Reference == nil || *resp.Data.Reference == "" {
		errs.Add("data.reference", msgRequired)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &InitResult{
		AuthorizationURL: *resp.Data.AuthorizationURL,
		Reference:        *resp.Data.Reference,
	}, nil
}

// ParseStatusResponse validates a 2xx verification body and normalizes it.
// The paid_at invariant is enforced here: it must be set exactly when the
// status is "success".
func ParseStatusResponse(body []byte) (*StatusResult, FieldErrors) {
	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, FieldErrors{"non_field_errors": {msgInvalidJSON}}
	}

	errs := FieldErrors{}
	if resp.Status == nil {
		errs.Add("status", msgRequired)
	}
	if resp.Message == nil {
		errs.Add("message", msgRequired)
	}
	if resp.Data == nil {
		errs.Add("data", msgRequired)
		return nil, errs
	}
	d := resp.Data

	requireString(errs, "data.domain", d.Domain)
	requireString(errs, "data.reference", d.Reference)
	requireString(errs, "data.channel", d.Channel)
	requireString(errs, "data.currency", d.Currency)

	var status Status
	if d.Status == nil {
		errs.Add("data.status", msgRequired)
	} else {
		status = Status(*d.Status)
		if !status.Valid() {
			errs.Add("data.status", `"`+*d.Status+`" is not a valid choice.`)
		}
	}

	var createdAt time.Time
	if d.CreatedAt == nil {
		errs.Add("data.created_at", msgRequired)
	} else if t, err := parseTimestamp(*d.CreatedAt); err != nil {
		errs.Add("data.created_at", msgInvalidTime)
	} else {
		createdAt = t
	}

	paidAt, ok := parsePaidAt(errs, d.PaidAt)
	if ok && status.Valid() {
		if status.Completed() && paidAt == nil {
			errs.Add("data.paid_at", `paid_at must be set when status is "success".`)
		}
		if !status.Completed() && paidAt != nil {
			errs.Add("data.paid_at", `paid_at must be null unless status is "success".`)
		}
	}

	var amount decimal.Decimal
	if len(d.Amount) == 0 {
		errs.Add("data.amount", msgRequired)
	} else {
		parsed, msg := parseAmount(d.Amount)
		if msg != "" {
			errs.Add("data.amount", msgInvalidValue)
		} else {
			amount = parsed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &StatusResult{
		Domain:    *d.Domain,
		Status:    status,
		Reference: *d.Reference,
		PaidAt:    paidAt,
		CreatedAt: createdAt,
		Channel:   *d.Channel,
		Currency:  *d.Currency,
		Amount:    amount,
	}, nil
}

func requireString(errs FieldErrors, field string, v *string) {
	if v == nil || *v == "" {
		errs.Add(field, msgRequired)
	}
}

// parsePaidAt distinguishes an absent paid_at (schema violation) from an
// explicit null (transaction not completed). ok is false when the value could
// not be interpreted at all.
func parsePaidAt(errs FieldErrors, raw json.RawMessage) (*time.Time, bool) {
	if len(raw) == 0 {
		errs.Add("data.paid_at", msgRequired)
		return nil, false
	}
	if string(raw) == "null" {
		return nil, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.Add("data.paid_at", msgInvalidTime)
		return nil, false
	}
	t, err := parseTimestamp(s)
	if err != nil {
		errs.Add("data.paid_at", msgInvalidTime)
		return nil, false
	}
	return &t, true
}

// parseTimestamp accepts RFC3339 as well as the zone-less ISO form some
// provider environments emit; the latter is taken as UTC.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" &&
		!strings.ContainsAny(s, " ")
}
