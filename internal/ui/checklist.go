package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cardform/internal/card"
)

// CheckStatus represents the outcome of a single field check
type CheckStatus int

const (
	CheckPending CheckStatus = iota // Not evaluated
	CheckPassed
	CheckFailed
)

// Check is one row of a Checklist
type Check struct {
	Number  int         // 1-based
	Name    string      // Field label
	Status  CheckStatus // Current status
	Message string      // Validation message for failed checks
}

// Checklist renders a bar of passed checks followed by one line per check.
type Checklist struct {
	Label   string
	Checks  []Check
	Width   int
	ShowBar bool
	bar     progress.Model
}

// NewChecklist creates a checklist with every check pending.
func NewChecklist(label string, names []string) *Checklist {
	checks := make([]Check, len(names))
	for i, name := range names {
		checks[i] = Check{Number: i + 1, Name: name}
	}
	c := &Checklist{
		Label:   label,
		Checks:  checks,
		ShowBar: true,
	}
	return c.SetWidth(GetTerminalWidth())
}

// NewFieldChecklist builds a checklist with one row per card field in form
// order, passed or failed according to errs.
func NewFieldChecklist(label string, errs card.ErrorSet) *Checklist {
	fields := card.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Label()
	}
	c := NewChecklist(label, names)
	for i, f := range fields {
		if msg := errs.Get(f); msg != "" {
			c.Fail(i+1, msg)
		} else {
			c.Pass(i + 1)
		}
	}
	return c
}

// SetWidth sets the terminal width for responsive rendering
func (c *Checklist) SetWidth(width int) *Checklist {
	c.Width = width
	barWidth := width - 20 // Leave room for percentage and count
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	c.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
	)
	return c
}

// Pass marks a check as passed
func (c *Checklist) Pass(number int) {
	c.set(number, CheckPassed, "")
}

// Fail marks a check as failed with a message
func (c *Checklist) Fail(number int, message string) {
	c.set(number, CheckFailed, message)
}

func (c *Checklist) set(number int, status CheckStatus, message string) {
	if number < 1 || number > len(c.Checks) {
		return
	}
	c.Checks[number-1].Status = status
	c.Checks[number-1].Message = message
}

// Passed returns the number of passed checks
func (c *Checklist) Passed() int {
	n := 0
	for _, ch := range c.Checks {
		if ch.Status == CheckPassed {
			n++
		}
	}
	return n
}

// Percent returns the fraction of passed checks (0.0 - 1.0)
func (c *Checklist) Percent() float64 {
	if len(c.Checks) == 0 {
		return 0
	}
	return float64(c.Passed()) / float64(len(c.Checks))
}

// Render returns the styled checklist as a string
func (c *Checklist) Render() string {
	var b strings.Builder

	if c.Label != "" {
		b.WriteString(ChecklistLabelStyle.Render(c.Label))
		b.WriteString("\n\n")
	}

	if c.ShowBar {
		line := fmt.Sprintf("%s  %3.0f%%  [%d/%d]", c.bar.ViewAs(c.Percent()), c.Percent()*100, c.Passed(), len(c.Checks))
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(line))
		b.WriteString("\n\n")
	}

	lines := make([]string, 0, len(c.Checks))
	for _, ch := range c.Checks {
		lines = append(lines, c.renderLine(ch))
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

func (c *Checklist) renderLine(ch Check) string {
	var marker string
	var style lipgloss.Style
	switch ch.Status {
	case CheckPassed:
		marker, style = CheckMarkerPassed, CheckPassedStyle
	case CheckFailed:
		marker, style = FailureMarker, ErrorTitleStyle
	default:
		marker, style = CheckMarkerPending, CheckPendingStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", ch.Number, len(c.Checks)))
	b.WriteString(style.Render(ch.Name))

	// Markers line up in one column
	padding := 24 - lipgloss.Width(ch.Name)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(style.Render(marker))

	if ch.Message != "" {
		b.WriteString("  ")
		b.WriteString(CheckNoteStyle.Render("(" + ch.Message + ")"))
	}
	return b.String()
}

// String implements fmt.Stringer
func (c *Checklist) String() string {
	return c.Render()
}
