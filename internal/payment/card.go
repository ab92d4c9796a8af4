package payment

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingCardFields = errors.New("missing card fields")
	ErrInvalidExpiry     = errors.New("invalid card expiry")

	expiryPattern = regexp.MustCompile(`^(\d{2})\s*\/\s*(\d{2})$`)
)

// CardDetails holds the raw card fields entered at checkout. They are used
// exactly once, to call the tokenization endpoint, and must never be logged
// or persisted.
type CardDetails struct {
	HolderName string
	Number     string
	Expiry     string
	CVC        string
}

// Validate checks completeness and the MM/AA expiry format. It runs before
// any network call is made.
func (d CardDetails) Validate() error {
	if d.HolderName == "" || d.Number == "" || d.Expiry == "" || d.CVC == "" {
		return ErrMissingCardFields
	}
	if !expiryPattern.MatchString(d.Expiry) {
		return ErrInvalidExpiry
	}
	return nil
}

// NormalizeCardNumber strips internal whitespace so "4111 1111 1111 1111"
// is transmitted as a contiguous digit string.
func NormalizeCardNumber(number string) string {
	return strings.ReplaceAll(strings.TrimSpace(number), " ", "")
}

// ParseExpiry splits an "MM/AA" display value into a month and a 4-digit
// year ("09/27" -> "09", "2027").
func ParseExpiry(expiry string) (month, year string, err error) {
	m := expiryPattern.FindStringSubmatch(strings.TrimSpace(expiry))
	if m == nil {
		return "", "", ErrInvalidExpiry
	}
	return m[1], "20" + m[2], nil
}
