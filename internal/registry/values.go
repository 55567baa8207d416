package registry

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// dateLayouts are the accepted date formats, tried in order. ISO first.
// Natural-language dates are out of scope: anything else is rejected.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
}

func parseDate(raw string) (domain.TermValue, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateValue{Date: domain.DateOnly(t)}, nil
		}
	}
	return nil, domain.NewValidationError("value", fmt.Sprintf("invalid date %q", raw))
}

const defaultCurrency = "USD"

// parseMoney accepts values like "12500", "$12,500.00", "EUR 4200".
// The amount is normalized to integer minor units; a trailing or leading
// three-letter code sets the currency, otherwise USD is assumed.
// The decimal separator is a period; commas are thousands separators.
func parseMoney(raw string) (domain.TermValue, error) {
	s := strings.TrimSpace(raw)
	currency := defaultCurrency

	fields := strings.Fields(s)
	if len(fields) > 1 {
		if code, ok := currencyCode(fields[0]); ok {
			currency = code
			fields = fields[1:]
		} else if code, ok := currencyCode(fields[len(fields)-1]); ok {
			currency = code
			fields = fields[:len(fields)-1]
		}
		s = strings.Join(fields, "")
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsDigit(r) || r == '.' || r == '-':
			b.WriteRune(r)
		case r == ',' || r == ' ' || r == '$' || r == '€' || r == '£':
			// thousands separators and currency symbols are dropped
		default:
			return nil, domain.NewValidationError("value", fmt.Sprintf("invalid money amount %q", raw))
		}
	}

	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil, domain.NewValidationError("value", fmt.Sprintf("invalid money amount %q", raw))
	}
	if amount < 0 {
		return nil, domain.NewValidationError("value", "money amount must not be negative")
	}

	cents := int64(amount*100 + 0.5)
	return domain.MoneyValue{Cents: cents, Currency: currency}, nil
}

func currencyCode(s string) (string, bool) {
	if len(s) != 3 {
		return "", false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return strings.ToUpper(s), true
}

var (
	truthy = []string{"true", "yes", "y", "1"}
	falsy  = []string{"false", "no", "n", "0"}
)

func parseBool(raw string) (domain.TermValue, error) {
	s := domain.NormalizeText(raw)
	switch {
	case slices.Contains(truthy, s):
		return domain.BoolValue{Value: true}, nil
	case slices.Contains(falsy, s):
		return domain.BoolValue{Value: false}, nil
	}
	return nil, domain.NewValidationError("value", fmt.Sprintf("invalid boolean %q", raw))
}

func parseEnum(raw string, allowed []string) (domain.TermValue, error) {
	s := domain.NormalizeText(raw)
	s = strings.ReplaceAll(s, " ", "_")
	if len(allowed) > 0 && !slices.Contains(allowed, s) {
		return nil, domain.NewValidationError("value",
			fmt.Sprintf("%q is not one of %s", raw, strings.Join(allowed, ", ")))
	}
	return domain.EnumValue{Value: s}, nil
}
