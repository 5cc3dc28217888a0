// Package ui provides terminal output components for the cardform CLI.
//
// These components use Lipgloss to render styled output for the
// non-interactive commands. Unlike the interactive form in wizard/tui, they
// render once and return.
//
// # Components
//
//   - Header: command banner showing the operation and its inputs
//   - Checklist: one row per card field with a pass/fail marker and a bar
//   - Result: success, failure or warning box
//   - Confirm: typed confirmation prompt before overwriting files
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader(ui.NewHeader("Card Check", "cardform check",
//	    ui.Param{Key: "Number", Value: ui.MaskCardNumber(number)}))
//	p.PrintChecklist(ui.NewFieldChecklist("Validating card details...", errs))
//
// Card numbers shown in headers are masked with MaskCardNumber.
package ui
