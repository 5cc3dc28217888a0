// Package card implements the state and validation engine of the card entry
// form.
//
// The engine owns five string fields (holder name, card number, expiry
// month, expiry year and CVC) together with their validation messages,
// touched flags, the focused field and its caret offset, and a submitted
// flag. It knows nothing about how the form is drawn; a host UI feeds it
// events and reads back derived state.
//
// # Transitions
//
// Each method on Form is one user-triggered transition:
//
//	form := card.NewForm()
//	form.FocusField(card.CardNumber, 0)
//	form.ChangeField(card.CardNumber, "4242424242424242") // stored as "4242 4242 4242 4242"
//	form.BlurField(card.CardNumber)                      // now touched
//	if note, ok := form.Submit(); ok {
//	    show(note) // "Success!" / "Card confirmed." for 3s
//	}
//	form.Reset()
//
// # Validation
//
// Validation messages are data, not errors. ValidateField is a pure
// function of the field, its value, the paired expiry value and the clock.
// ChangeField re-validates only the edited field; Submit re-validates all
// of them. A message is shown to the user only once the field is touched
// (see Form.VisibleError).
//
// Expiry month and year each check "Month passed" independently, and an
// edit to one does not refresh the other's message until it is edited
// itself or the form is submitted.
//
// # Focus
//
// The engine tracks which field should have focus and where its caret sits.
// Restoring focus on the real control is delegated to a FocusRestorer
// supplied by the host. Caret corrections scheduled after an edit are
// sequence-stamped so a later keystroke supersedes an earlier correction.
//
// # Error values
//
// ValidationError and FormError turn an ErrorSet into an error for
// callers that report through error returns, such as the CLI.
package card
