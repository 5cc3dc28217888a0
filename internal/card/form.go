package card

import (
	"time"
	"unicode/utf8"
)

// Notification is a transient message the host shows once and then hides.
type Notification struct {
	Title    string
	Message  string
	Duration time.Duration
}

// SuccessNotification is emitted by a successful Submit.
var SuccessNotification = Notification{
	Title:    "Success!",
	Message:  "Card confirmed.",
	Duration: 3 * time.Second,
}

// FocusRestorer is implemented by the host UI. Given a field and caret
// offset it re-applies input focus and caret position to the matching
// control. It returns an error when the control no longer exists.
type FocusRestorer interface {
	RestoreFocus(field Field, cursor int) error
}

// FocusRestorerFunc adapts a plain function to FocusRestorer.
type FocusRestorerFunc func(field Field, cursor int) error

// RestoreFocus calls fn(field, cursor).
func (fn FocusRestorerFunc) RestoreFocus(field Field, cursor int) error {
	return fn(field, cursor)
}

// CursorSync is a pending caret correction created after an edit. Only the
// most recently scheduled ticket can be applied.
type CursorSync struct {
	Field  Field
	Cursor int
	Seq    uint64
}

// Form owns the state of one card entry session. Every exported method is a
// single user-triggered transition and runs to completion; a Form is not
// safe for concurrent use.
type Form struct {
	// Clock supplies the current time for the expiry rules.
	Clock func() time.Time

	fields    FieldSet
	errors    ErrorSet
	touched   TouchedSet
	focus     FocusState
	submitted bool
	syncSeq   uint64
}

// NewForm returns an empty form using the system clock.
func NewForm() *Form {
	return &Form{
		Clock:   time.Now,
		errors:  make(ErrorSet),
		touched: make(TouchedSet),
	}
}

func (f *Form) now() time.Time {
	if f.Clock == nil {
		return time.Now()
	}
	return f.Clock()
}

// Values returns a copy of the current field values.
func (f *Form) Values() FieldSet {
	return f.fields
}

// Errors returns a copy of the current error set.
func (f *Form) Errors() ErrorSet {
	return f.errors.Clone()
}

// IsValid reports whether the current values would pass ValidateForm.
// It does not change the stored error set.
func (f *Form) IsValid() bool {
	_, ok := ValidateForm(f.fields, f.now())
	return ok
}

// Touched reports whether field has been blurred or submitted.
func (f *Form) Touched(field Field) bool {
	return f.touched[field]
}

// Focus returns the current focus state.
func (f *Form) Focus() FocusState {
	return f.focus
}

// Submitted reports whether the last submit succeeded and has not been
// acknowledged with Reset.
func (f *Form) Submitted() bool {
	return f.submitted
}

// CVCFocused is the flip signal for the card preview.
func (f *Form) CVCFocused() bool {
	return f.focus.Active && f.focus.Field == CVC
}

// VisibleError returns the message to display for field. Untouched fields
// never display errors, even when invalid.
func (f *Form) VisibleError(field Field) string {
	if !f.touched[field] {
		return ""
	}
	return f.errors[field]
}

// ChangeField applies a raw edit to field. It normalizes the input, stores
// it, and re-validates that field only. Sibling fields keep their previous
// messages, so editing the year does not refresh the month's error.
//
// An accepted edit supersedes any pending caret correction. It returns
// false when the edit was rejected and the stored value kept.
func (f *Form) ChangeField(field Field, raw string) bool {
	f.ensureMaps()
	var value string

	switch field {
	case CardHolder:
		if utf8.RuneCountInString(raw) > holderMaxLength {
			f.errors[field] = MsgHolderOverflow
			return false
		}
		value = SanitizeHolder(raw)

	case CardNumber:
		value = FormatCardNumber(raw)
		if len(DigitsOnly(value)) > cardNumberDigits {
			return false
		}

	case ExpiryMonth, ExpiryYear, CVC:
		value = truncateRunes(DigitsOnly(raw), MaxLength(field))

	default:
		return false
	}

	f.fields = f.fields.With(field, value)
	f.setError(field, ValidateField(field, value, f.fields, f.now()))
	f.syncSeq++
	return true
}

// FocusField marks field as focused with the caret at cursor.
func (f *Form) FocusField(field Field, cursor int) {
	f.focus = FocusState{Field: field, Cursor: cursor, Active: true}
}

// BlurField clears focus and marks field as touched.
func (f *Form) BlurField(field Field) {
	f.ensureMaps()
	f.focus = FocusState{}
	f.touched[field] = true
}

// MoveCursor records a new caret offset for field and drops any pending
// caret correction. It is ignored unless field currently has focus.
func (f *Form) MoveCursor(field Field, cursor int) {
	if f.focus.Active && f.focus.Field == field {
		f.focus.Cursor = cursor
		f.syncSeq++
	}
}

// ScheduleCursorSync creates a caret correction for field to be applied
// once the host has redrawn the new text. Scheduling, a later accepted edit
// or a caret move supersedes any ticket handed out earlier.
func (f *Form) ScheduleCursorSync(field Field, cursor int) CursorSync {
	f.syncSeq++
	return CursorSync{Field: field, Cursor: cursor, Seq: f.syncSeq}
}

// ApplyCursorSync applies ticket if it is still the latest one and its
// field is still focused. It reports whether the caret was updated.
func (f *Form) ApplyCursorSync(ticket CursorSync) bool {
	if ticket.Seq != f.syncSeq {
		return false
	}
	if !f.focus.Active || f.focus.Field != ticket.Field {
		return false
	}
	f.focus.Cursor = ticket.Cursor
	return true
}

// RestoreFocus asks r to put focus and caret back on the active field,
// typically after a resize. It silently does nothing when no field is
// focused or when r reports the control is gone.
func (f *Form) RestoreFocus(r FocusRestorer) bool {
	if r == nil || !f.focus.Active {
		return false
	}
	return r.RestoreFocus(f.focus.Field, f.focus.Cursor) == nil
}

// Submit marks every field touched and validates the whole form. On success
// it sets the submitted flag and returns the success notification. On
// failure the fresh error set replaces the old one and becomes visible.
func (f *Form) Submit() (Notification, bool) {
	f.ensureMaps()
	for _, field := range fieldOrder {
		f.touched[field] = true
	}

	errs, ok := ValidateForm(f.fields, f.now())
	f.errors = errs
	if !ok {
		f.submitted = false
		return Notification{}, false
	}

	f.submitted = true
	return SuccessNotification, true
}

// Reset clears values, errors, touched flags and the submitted flag so the
// user can enter a new card.
func (f *Form) Reset() {
	f.fields = FieldSet{}
	f.errors = make(ErrorSet)
	f.touched = make(TouchedSet)
	f.submitted = false
}

// ensureMaps lets a zero Form be used without NewForm.
func (f *Form) ensureMaps() {
	if f.errors == nil {
		f.errors = make(ErrorSet)
	}
	if f.touched == nil {
		f.touched = make(TouchedSet)
	}
}

func (f *Form) setError(field Field, msg string) {
	if msg == "" {
		delete(f.errors, field)
		return
	}
	f.errors[field] = msg
}
