// Package tui implements the interactive card entry form.
//
// The form is a Bubble Tea program with two screens:
//   - Entry: five inputs next to a live card preview
//   - Success: confirmation with a Continue action that clears the form
//
// All screens use RenderApplicationContainer for a consistent header,
// content area and context-sensitive footer.
//
// # Engine Ownership
//
// The inputs do not own their values. Every keystroke that changes an
// input's text is passed to card.Form.ChangeField, and the input is then
// set to whatever the engine stored (formatted, sanitized, or unchanged if
// the edit was refused). When the stored text differs from what was typed,
// the caret is corrected one message later through a cursor sync ticket;
// a newer edit makes older tickets void.
//
// Moving focus away from an input blurs the matching field in the engine,
// which marks it touched and lets its error show. The card preview shows
// its back face while the CVC input has focus.
//
// # Framework Components
//
//   - bubbles/textinput: one input per card field
//   - bubbles/help and bubbles/key: key bindings and footer help
//   - lipgloss: layout, card faces and the toast
//
// # Usage Example
//
//	app := tui.NewAppModel(tui.Options{HolderPlaceholder: "JANE DOE"})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
//
// # Key Bindings
//
//	tab, down         next field
//	shift+tab, up     previous field
//	enter             next field, or confirm on the last field
//	ctrl+s            confirm from any field
//	esc, ctrl+c       quit
//
// On the success screen, enter continues with an empty form.
package tui
