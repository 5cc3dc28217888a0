package preview

import (
	"strings"
	"unicode"

	"github.com/muurk/cardform/internal/card"
)

// Placeholders shown on the card while a field is empty.
const (
	PlaceholderNumber = "0000 0000 0000 0000"
	PlaceholderHolder = "WISE ENESI"
	PlaceholderCVC    = "000"
)

// Input is the snapshot of form values the projector reads.
type Input struct {
	CardNumber  string
	CardHolder  string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
	Flipped     bool
}

// DisplayModel is what the card faces show.
type DisplayModel struct {
	Number  string // grouped number or placeholder
	Holder  string // raw holder name or placeholder; upper-cased at render time
	Expiry  string // MM/YY
	CVC     string // back face only
	Flipped bool   // back face in front
}

// FromFields builds an Input from the engine's field values.
func FromFields(fields card.FieldSet, flipped bool) Input {
	return Input{
		CardNumber:  fields.CardNumber,
		CardHolder:  fields.CardHolder,
		ExpiryMonth: fields.ExpiryMonth,
		ExpiryYear:  fields.ExpiryYear,
		CVC:         fields.CVC,
		Flipped:     flipped,
	}
}

// Project maps form values to the card display model. It is pure and keeps
// no state between calls.
func Project(in Input) DisplayModel {
	return ProjectWith(in, PlaceholderHolder)
}

// ProjectWith is Project with a custom holder placeholder. An empty
// placeholder falls back to PlaceholderHolder.
func ProjectWith(in Input, holderPlaceholder string) DisplayModel {
	if holderPlaceholder == "" {
		holderPlaceholder = PlaceholderHolder
	}

	holder := in.CardHolder
	if holder == "" {
		holder = holderPlaceholder
	}

	cvc := in.CVC
	if cvc == "" {
		cvc = PlaceholderCVC
	}

	return DisplayModel{
		Number:  formatNumber(in.CardNumber),
		Holder:  holder,
		Expiry:  padTwo(in.ExpiryMonth) + "/" + padTwo(in.ExpiryYear),
		CVC:     cvc,
		Flipped: in.Flipped,
	}
}

// formatNumber drops whitespace and regroups every four characters.
// Unlike card.FormatCardNumber it keeps non-digits.
func formatNumber(number string) string {
	cleaned := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number))

	if len(cleaned) == 0 {
		return PlaceholderNumber
	}

	var b strings.Builder
	for i, r := range cleaned {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// padTwo left-pads s with zeros to two characters.
func padTwo(s string) string {
	n := len([]rune(s))
	if n >= 2 {
		return s
	}
	return strings.Repeat("0", 2-n) + s
}
