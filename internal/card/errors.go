package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind is the category of a validation message.
type ErrorKind int

const (
	// KindBlank means a required value is missing.
	KindBlank ErrorKind = iota
	// KindFormat means the value has the wrong shape or length.
	KindFormat
	// KindTemporal means the expiry month or year is in the past.
	KindTemporal
	// KindRejected means the edit itself was refused and the value kept.
	KindRejected
)

// String returns a human-readable name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindBlank:
		return "Required"
	case KindFormat:
		return "Invalid Format"
	case KindTemporal:
		return "Expired"
	case KindRejected:
		return "Input Rejected"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Classify maps a validation message to its kind. Unknown messages are
// treated as format errors.
func Classify(msg string) ErrorKind {
	switch msg {
	case MsgBlank, MsgHolderRequired:
		return KindBlank
	case MsgMonthPassed, MsgYearPassed:
		return KindTemporal
	case MsgHolderOverflow:
		return KindRejected
	default:
		return KindFormat
	}
}

// ValidationError is a single field message lifted into an error value.
// The engine itself never returns these; they exist for callers such as the
// CLI that need to report an ErrorSet through an error return.
type ValidationError struct {
	Field   Field
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for field with msg
func NewValidationError(field Field, msg string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    Classify(msg),
		Message: msg,
	}
}

// IsValidationError checks if err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// FormError aggregates the validation errors of a rejected submit.
type FormError struct {
	Errors []*ValidationError
}

// Error implements the error interface
func (e *FormError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("card details invalid (%d error(s)): %s", len(e.Errors), strings.Join(parts, "; "))
}

// Unwrap exposes the individual field errors to errors.Is/As.
func (e *FormError) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		out[i] = err
	}
	return out
}

// ErrorFromSet converts an ErrorSet into a *FormError ordered like the form.
// It returns nil when the set is empty.
func ErrorFromSet(set ErrorSet) error {
	if len(set) == 0 {
		return nil
	}
	fe := &FormError{}
	for _, f := range fieldOrder {
		if msg, ok := set[f]; ok {
			fe.Errors = append(fe.Errors, NewValidationError(f, msg))
		}
	}
	return fe
}

// FormatErrors renders an ErrorSet as a numbered list in form order.
func FormatErrors(set ErrorSet) string {
	if len(set) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Card validation failed with %d error(s):\n", len(set)))

	i := 1
	for _, f := range fieldOrder {
		msg, ok := set[f]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i, f.Label(), msg))
		i++
	}

	return sb.String()
}
