package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/cardform/internal/card"
	"github.com/muurk/cardform/internal/logging"
	"github.com/muurk/cardform/internal/preview"
	"github.com/muurk/cardform/internal/ui"
	"github.com/muurk/cardform/internal/wizard/tui"
)

// Card flags shared by check and preview
var (
	cardNumber  string
	cardHolder  string
	expiryMonth string
	expiryYear  string
	cvc         string
)

// Command flags
var (
	outputFormat string
	showBack     bool
	showBoth     bool
)

// msgNumberOverflow reports a card number flag with more than 16 digits.
const msgNumberOverflow = "Maximum input is 16 digits."

// errCardInvalid is returned by check after the problems have been printed.
var errCardInvalid = errors.New("card details invalid")

func init() {
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)

	for _, c := range []*cobra.Command{checkCmd, previewCmd} {
		c.Flags().StringVar(&cardNumber, "number", "", "Card number (spaces optional)")
		c.Flags().StringVar(&cardHolder, "holder", "", "Cardholder name")
		c.Flags().StringVar(&expiryMonth, "month", "", "Expiry month (MM)")
		c.Flags().StringVar(&expiryYear, "year", "", "Expiry year (YY)")
		c.Flags().StringVar(&cvc, "cvc", "", "Card security code")
	}
	checkCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, plain, json)")
	previewCmd.Flags().BoolVar(&showBack, "back", false, "Show the back of the card")
	previewCmd.Flags().BoolVar(&showBoth, "both", false, "Show both faces of the card")
}

// formCmd launches the interactive form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Launch the interactive card form",
	Long: `Launch the interactive card entry form.

Type the cardholder name, card number, expiry and security code. Errors
appear once you leave a field. Press enter in any field to confirm.

This is the default command.`,
	Example: `  # Launch the form
  cardform form
  # Or simply:
  cardform

  # Write debug logs while the form runs
  cardform --log-level debug`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	// The form owns the terminal, so logs must go to a file
	if prefs.LogLevel != "" {
		logFile := prefs.LogFile
		if logFile == "" {
			logFile = filepath.Join(os.TempDir(), "cardform.log")
		}
		if err := logging.InitializeWith(logging.Options{Level: prefs.LogLevel, File: logFile}); err != nil {
			return err
		}
	}
	logging.Info("Starting card form", zap.Bool("alt_screen", prefs.AltScreen))

	model := tui.NewAppModel(tui.Options{
		ToastDuration:     time.Duration(prefs.ToastSeconds) * time.Second,
		HolderPlaceholder: prefs.HolderPlaceholder,
	})

	var opts []tea.ProgramOption
	if prefs.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		logging.Error("Form exited with error", zap.Error(err))
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}

// checkCmd validates card details given as flags
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate card details without the interactive form",
	Long: `Validate card details passed as flags.

The values go through the same normalization as typed input (non-digits
are dropped, the number is grouped, the name is cleaned) and then through
the same checks as confirming the form. The command exits with a non-zero
status if any field is invalid.`,
	Example: `  # Check a card
  cardform check --holder "Jane Doe" --number 4242424242424242 \
    --month 09 --year 27 --cvc 123

  # JSON output for scripting
  cardform check --number 4242 --format json

  # Unstyled numbered list of problems
  cardform check --number 4242 --format plain`,
	SilenceUsage: true,
	RunE:         runCheck,
}

// checkOutcome is the result of pushing flag values through a form.
type checkOutcome struct {
	Values card.FieldSet
	Errors card.ErrorSet
	Valid  bool
}

// checkCard applies inputs to form in form order, then submits. Edits the
// form refuses are reported against their field.
func checkCard(form *card.Form, inputs card.FieldSet) checkOutcome {
	rejected := make(card.ErrorSet)
	for _, f := range card.Fields() {
		if form.ChangeField(f, inputs.Get(f)) {
			continue
		}
		if f == card.CardNumber {
			rejected[f] = msgNumberOverflow
		} else {
			rejected[f] = form.Errors().Get(f)
		}
		logging.LogRejectedInput(f, len([]rune(inputs.Get(f))))
	}

	_, ok := form.Submit()
	errs := form.Errors()
	for f, msg := range rejected {
		errs[f] = msg
	}
	logging.LogSubmit(ok && len(rejected) == 0, errs)

	return checkOutcome{
		Values: form.Values(),
		Errors: errs,
		Valid:  ok && len(rejected) == 0,
	}
}

func flagInputs() card.FieldSet {
	return card.FieldSet{
		CardNumber:  cardNumber,
		CardHolder:  cardHolder,
		ExpiryMonth: expiryMonth,
		ExpiryYear:  expiryYear,
		CVC:         cvc,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := checkCard(card.NewForm(), flagInputs())

	switch outputFormat {
	case "json":
		if err := writeCheckJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	case "text":
		printCheck(ui.NewPrinter(cmd.OutOrStdout()), out)
	case "plain":
		writeCheckPlain(cmd.OutOrStdout(), out)
	default:
		return fmt.Errorf("unknown output format %q (expected text, plain or json)", outputFormat)
	}

	if !out.Valid {
		return fmt.Errorf("%w: %w", errCardInvalid, card.ErrorFromSet(out.Errors))
	}
	return nil
}

func printCheck(p *ui.Printer, out checkOutcome) {
	v := out.Values
	p.PrintHeader(ui.NewHeader("Card Check", "cardform check",
		ui.Param{Key: "Holder", Value: v.CardHolder},
		ui.Param{Key: "Number", Value: ui.MaskCardNumber(v.CardNumber)},
		ui.Param{Key: "Expiry", Value: v.ExpiryMonth + "/" + v.ExpiryYear},
	))
	p.PrintChecklist(ui.NewFieldChecklist("Validating card details...", out.Errors))

	if out.Valid {
		p.PrintResult(ui.NewSuccessResult(card.SuccessNotification.Message,
			ui.Param{Key: "Holder", Value: v.CardHolder},
			ui.Param{Key: "Number", Value: ui.MaskCardNumber(v.CardNumber)},
		).AddDetail("Expires", v.ExpiryMonth+"/"+v.ExpiryYear))
		return
	}

	var problems []string
	for _, f := range card.Fields() {
		if msg := out.Errors.Get(f); msg != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", f.Label(), msg))
		}
	}
	p.PrintResult(ui.NewFailureResult("Card rejected",
		fmt.Errorf("%d field(s) need attention", len(problems)), problems))
}

// writeCheckPlain prints an unstyled verdict for logs and pipes.
func writeCheckPlain(w io.Writer, out checkOutcome) {
	if out.Valid {
		fmt.Fprintln(w, card.SuccessNotification.Message)
		return
	}
	fmt.Fprint(w, card.FormatErrors(out.Errors))
}

// checkReport is the JSON form of a check.
type checkReport struct {
	Valid  bool          `json:"valid"`
	Number string        `json:"number,omitempty"`
	Holder string        `json:"holder,omitempty"`
	Expiry string        `json:"expiry,omitempty"`
	Errors []fieldReport `json:"errors,omitempty"`
}

type fieldReport struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeCheckJSON(w io.Writer, out checkOutcome) error {
	report := checkReport{
		Valid:  out.Valid,
		Number: ui.MaskCardNumber(out.Values.CardNumber),
		Holder: out.Values.CardHolder,
	}
	if out.Values.ExpiryMonth != "" || out.Values.ExpiryYear != "" {
		report.Expiry = out.Values.ExpiryMonth + "/" + out.Values.ExpiryYear
	}
	for _, f := range card.Fields() {
		msg := out.Errors.Get(f)
		if msg == "" {
			continue
		}
		kind := card.Classify(msg)
		if msg == msgNumberOverflow {
			kind = card.KindRejected
		}
		report.Errors = append(report.Errors, fieldReport{Field: f.String(), Kind: kind.String(), Message: msg})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// previewCmd prints the card preview for flag values
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the card preview",
	Long: `Print the card preview for the given values.

Empty fields show the same placeholders as the interactive form.`,
	Example: `  # Front of the card
  cardform preview --holder "Jane Doe" --number 4242424242424242 --month 9 --year 27

  # Back of the card
  cardform preview --cvc 123 --back`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	form := card.NewForm()
	for _, f := range card.Fields() {
		// Rejected edits leave the field empty, as in the form
		form.ChangeField(f, flagInputs().Get(f))
	}

	model := preview.ProjectWith(preview.FromFields(form.Values(), showBack), prefs.HolderPlaceholder)

	var rendered string
	if showBoth {
		rendered = preview.RenderBoth(model)
	} else {
		rendered = preview.Render(model)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
