package provider

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Fetch error taxonomy. Every adapter failure wraps one of these so the
// chain resolver can classify without string matching.
var (
	// ErrNotConfigured means the provider's credential is absent; the
	// adapter was skipped without a network call.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrUnavailable covers non-2xx responses, network failures, and
	// timeouts.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrMalformed means the response body parsed but lacked the price
	// field or could not be decoded at all.
	ErrMalformed = errors.New("malformed provider response")

	// ErrNonPositivePrice means the response carried a price <= 0, which
	// the engine treats as a non-result.
	ErrNonPositivePrice = errors.New("non-positive price")
)

// ParsePercentString parses a numeric string, tolerating the trailing '%'
// some providers append to change-percent fields ("1.0214%" -> 1.0214).
func ParsePercentString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	return decimal.NewFromString(s)
}
