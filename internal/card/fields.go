package card

import "fmt"

// Field identifies one of the five inputs captured by the form.
type Field int

const (
	CardNumber Field = iota
	CardHolder
	ExpiryMonth
	ExpiryYear
	CVC
)

// fieldOrder is the order inputs appear on the form.
var fieldOrder = []Field{CardHolder, CardNumber, ExpiryMonth, ExpiryYear, CVC}

// Fields returns every field in form order (holder, number, month, year, cvc).
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// String returns the field key (e.g. "cardNumber").
func (f Field) String() string {
	switch f {
	case CardNumber:
		return "cardNumber"
	case CardHolder:
		return "cardHolder"
	case ExpiryMonth:
		return "expiryMonth"
	case ExpiryYear:
		return "expiryYear"
	case CVC:
		return "cvc"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Label returns the upper-case label shown next to the input.
func (f Field) Label() string {
	switch f {
	case CardNumber:
		return "CARD NUMBER"
	case CardHolder:
		return "CARDHOLDER NAME"
	case ExpiryMonth:
		return "EXP. MONTH (MM)"
	case ExpiryYear:
		return "EXP. YEAR (YY)"
	case CVC:
		return "CVC"
	default:
		return f.String()
	}
}

// Placeholder returns the example text shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case CardNumber:
		return "e.g. 1234 5678 9123 0000"
	case CardHolder:
		return "e.g. Wise Enesi"
	case ExpiryMonth:
		return "MM"
	case ExpiryYear:
		return "YY"
	case CVC:
		return "e.g. 123"
	default:
		return ""
	}
}

// Valid reports whether f is one of the five known fields.
func (f Field) Valid() bool {
	return f >= CardNumber && f <= CVC
}

// ParseField maps a field key back to its Field.
func ParseField(key string) (Field, error) {
	for _, f := range fieldOrder {
		if f.String() == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", key)
}

// MaxLength is the input mask length for a field. The holder limit is
// enforced by rejecting the edit; the others by truncation.
func MaxLength(f Field) int {
	switch f {
	case CardNumber:
		return 19 // 16 digits + 3 group separators
	case CardHolder:
		return 30
	case ExpiryMonth, ExpiryYear:
		return 2
	case CVC:
		return 4
	default:
		return 0
	}
}

// FieldSet holds the current value of every field. Values are never absent;
// the zero value is the empty form.
type FieldSet struct {
	CardNumber  string
	CardHolder  string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
}

// Get returns the value stored for f.
func (s FieldSet) Get(f Field) string {
	switch f {
	case CardNumber:
		return s.CardNumber
	case CardHolder:
		return s.CardHolder
	case ExpiryMonth:
		return s.ExpiryMonth
	case ExpiryYear:
		return s.ExpiryYear
	case CVC:
		return s.CVC
	default:
		return ""
	}
}

// With returns a copy of s with f set to value.
func (s FieldSet) With(f Field, value string) FieldSet {
	switch f {
	case CardNumber:
		s.CardNumber = value
	case CardHolder:
		s.CardHolder = value
	case ExpiryMonth:
		s.ExpiryMonth = value
	case ExpiryYear:
		s.ExpiryYear = value
	case CVC:
		s.CVC = value
	}
	return s
}

// ErrorSet maps fields to their current validation message. A missing key
// means no error is known for that field.
type ErrorSet map[Field]string

// Get returns the message for f, or "" if there is none.
func (e ErrorSet) Get(f Field) string {
	return e[f]
}

// Has reports whether f has a message.
func (e ErrorSet) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Clone returns an independent copy.
func (e ErrorSet) Clone() ErrorSet {
	out := make(ErrorSet, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// TouchedSet records which fields have lost focus at least once.
type TouchedSet map[Field]bool

// FocusState is the field that currently holds input focus and the caret
// offset inside it. Active is false when no field is focused.
type FocusState struct {
	Field  Field
	Cursor int
	Active bool
}
