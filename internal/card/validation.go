package card

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Validation messages shown to the user. They are compared verbatim by
// callers and tests, including the doubled "be" in MsgHolderTooLong.
const (
	MsgBlank          = "Can't be blank"
	MsgNumberLength   = "Must be 16 digits"
	MsgHolderRequired = "Cardholder name is required"
	MsgHolderTooShort = "Must be at least 3 characters long"
	MsgHolderTooLong  = "Must be be at most 30 characters"
	MsgHolderOverflow = "Maximum input is 30 characters."
	MsgInvalidMonth   = "Invalid month"
	MsgMonthPassed    = "Month passed"
	MsgYearPassed     = "Year passed"
	MsgCVCTooShort    = "Can't be less than 3 numbers"
)

const (
	cardNumberDigits = 16
	holderMinLength  = 3
	holderMaxLength  = 30
	cvcMinLength     = 3
)

// ValidateField checks a single field value and returns its error message,
// or "" when the value is acceptable. fields supplies the paired expiry
// value for the month/year rules; now supplies the current month and
// two-digit year.
//
// Month and year each carry their own copy of the "month passed" check.
// The year rule only consults a non-zero month; the month rule has no such
// guard. Both behaviours are kept as they are.
func ValidateField(field Field, value string, fields FieldSet, now time.Time) string {
	switch field {
	case CardNumber:
		return validateCardNumber(value)
	case CardHolder:
		return validateCardHolder(value)
	case ExpiryMonth:
		return validateExpiryMonth(value, fields.ExpiryYear, now)
	case ExpiryYear:
		return validateExpiryYear(value, fields.ExpiryMonth, now)
	case CVC:
		return validateCVC(value)
	default:
		return ""
	}
}

// ValidateForm runs ValidateField over every field and returns the fresh
// error set. The form is valid iff the returned set is empty.
func ValidateForm(fields FieldSet, now time.Time) (ErrorSet, bool) {
	errs := make(ErrorSet)
	for _, f := range fieldOrder {
		if msg := ValidateField(f, fields.Get(f), fields, now); msg != "" {
			errs[f] = msg
		}
	}
	return errs, len(errs) == 0
}

func validateCardNumber(value string) string {
	num := stripSpace(value)
	if num == "" {
		return MsgBlank
	}
	if len(num) != cardNumberDigits || DigitsOnly(num) != num {
		return MsgNumberLength
	}
	return ""
}

func validateCardHolder(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return MsgHolderRequired
	}
	if utf8.RuneCountInString(trimmed) < holderMinLength {
		return MsgHolderTooShort
	}
	// Upper bound deliberately uses the untrimmed length.
	if utf8.RuneCountInString(value) > holderMaxLength {
		return MsgHolderTooLong
	}
	return ""
}

func validateExpiryMonth(value, pairedYear string, now time.Time) string {
	if value == "" {
		return MsgBlank
	}
	month := parseNumber(value)
	year := parseNumber(pairedYear)
	currentYear, currentMonth := clockParts(now)

	if month < 1 || month > 12 {
		return MsgInvalidMonth
	}
	if year == currentYear && month < currentMonth {
		return MsgMonthPassed
	}
	return ""
}

func validateExpiryYear(value, pairedMonth string, now time.Time) string {
	if value == "" {
		return MsgBlank
	}
	year := parseNumber(value)
	month := parseNumber(pairedMonth)
	currentYear, currentMonth := clockParts(now)

	if year < currentYear {
		return MsgYearPassed
	}
	if year == currentYear && truthy(month) && month < currentMonth {
		return MsgMonthPassed
	}
	return ""
}

func validateCVC(value string) string {
	if value == "" {
		return MsgBlank
	}
	if utf8.RuneCountInString(value) < cvcMinLength {
		return MsgCVCTooShort
	}
	return ""
}

// clockParts returns the two-digit year and 1-based month of now.
func clockParts(now time.Time) (year, month float64) {
	return float64(now.Year() % 100), float64(now.Month())
}

// parseNumber converts an input value to a number. Blank input is 0 and
// anything unparsable is NaN, which fails every comparison.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func truthy(n float64) bool {
	return n != 0 && !math.IsNaN(n)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
