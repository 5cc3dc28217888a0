package tui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cardform/internal/card"
	"github.com/muurk/cardform/internal/logging"
	"github.com/muurk/cardform/internal/preview"
)

// errNoInput is returned by the focus restorer when a field has no input.
var errNoInput = errors.New("no input for field")

// cursorSyncMsg carries a deferred caret correction. It is delivered after
// the edited value has been drawn once.
type cursorSyncMsg struct {
	ticket card.CursorSync
}

// submitMsg reports a successful submit to the app model.
type submitMsg struct {
	notification card.Notification
}

// formKeyMap defines key bindings for the entry screen
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Quit},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		// Enter confirms from any field, like submitting an HTML form
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// FormModel is the card entry screen. It forwards keystrokes to one
// textinput per field and hands every edit to the card engine, which
// decides the stored value. The input then shows what the engine stored.
type FormModel struct {
	Form *card.Form

	// HolderPlaceholder is shown on the card preview while the name is empty.
	HolderPlaceholder string

	Width  int
	Height int

	order   []card.Field
	inputs  []textinput.Model
	focused int

	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the entry screen for form with the first field focused.
func NewFormModel(form *card.Form) FormModel {
	order := card.Fields()
	inputs := make([]textinput.Model, len(order))
	for i, f := range order {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Placeholder()
		in.CharLimit = card.MaxLength(f)
		in.Width = inputWidth(f)
		inputs[i] = in
	}

	m := FormModel{
		Form:   form,
		order:  order,
		inputs: inputs,
		Help:   help.New(),
		Keys:   newFormKeyMap(),
	}
	m.inputs[0].Focus()
	m.Form.FocusField(order[0], 0)
	return m
}

// inputWidth sizes each input to its mask so short fields sit on one row.
func inputWidth(f card.Field) int {
	switch f {
	case card.ExpiryMonth, card.ExpiryYear, card.CVC:
		return 6
	default:
		return 32
	}
}

// Init starts the cursor blink on the focused input
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// FocusedField returns the field whose input has focus.
func (m FormModel) FocusedField() card.Field {
	return m.order[m.focused]
}

// Input returns a copy of the textinput for field.
func (m FormModel) Input(field card.Field) textinput.Model {
	return m.inputs[m.indexOf(field)]
}

func (m FormModel) indexOf(field card.Field) int {
	for i, f := range m.order {
		if f == field {
			return i
		}
	}
	return -1
}

// Update handles key, resize and caret messages for the entry screen
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Form.RestoreFocus(card.FocusRestorerFunc(func(field card.Field, cursor int) error {
			i := m.indexOf(field)
			if i < 0 {
				return errNoInput
			}
			m.inputs[i].Focus()
			m.inputs[i].SetCursor(cursor)
			return nil
		}))
		return m, nil

	case cursorSyncMsg:
		if m.Form.ApplyCursorSync(msg.ticket) {
			if i := m.indexOf(msg.ticket.Field); i >= 0 {
				m.inputs[i].SetCursor(msg.ticket.Cursor)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Submit):
			return m.submit()
		case key.Matches(msg, m.Keys.Next):
			return m, m.focusIndex((m.focused + 1) % len(m.order))
		case key.Matches(msg, m.Keys.Prev):
			return m, m.focusIndex((m.focused + len(m.order) - 1) % len(m.order))
		}
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused input and reconciles the result
// with the engine.
func (m FormModel) updateInput(msg tea.Msg) (FormModel, tea.Cmd) {
	i := m.focused
	field := m.order[i]
	before := m.inputs[i].Value()
	beforeCursor := m.inputs[i].Position()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	raw := m.inputs[i].Value()
	if raw == before {
		m.Form.MoveCursor(field, m.inputs[i].Position())
		return m, cmd
	}

	rawCursor := m.inputs[i].Position()
	if !m.Form.ChangeField(field, raw) {
		logging.LogRejectedInput(field, utf8.RuneCountInString(raw))
		m.inputs[i].SetValue(before)
		m.inputs[i].SetCursor(beforeCursor)
		return m, cmd
	}

	stored := m.Form.Values().Get(field)
	logging.LogTransition("change", field, m.Form.Errors().Get(field))
	if stored == raw {
		m.Form.MoveCursor(field, rawCursor)
		return m, cmd
	}

	// Place the caret now so the next keystroke lands in the right spot.
	// The ticket re-applies it after the frame is drawn.
	caret := caretAfterEdit(field, raw, rawCursor, stored)
	m.inputs[i].SetValue(stored)
	m.inputs[i].SetCursor(caret)
	ticket := m.Form.ScheduleCursorSync(field, caret)
	return m, tea.Batch(cmd, func() tea.Msg { return cursorSyncMsg{ticket: ticket} })
}

// caretAfterEdit maps the caret in raw to the same logical spot in stored.
func caretAfterEdit(field card.Field, raw string, cursor int, stored string) int {
	if field == card.CardHolder {
		// Sanitizing only removes characters, so the caret can only move left.
		if n := utf8.RuneCountInString(stored); cursor > n {
			return n
		}
		return cursor
	}
	return card.RemapCursor(raw, cursor, stored)
}

// focusIndex blurs the current input and focuses input i.
func (m *FormModel) focusIndex(i int) tea.Cmd {
	if i < 0 || i >= len(m.order) {
		return nil
	}
	prev := m.order[m.focused]
	m.inputs[m.focused].Blur()
	m.Form.BlurField(prev)
	logging.LogTransition("blur", prev, m.Form.Errors().Get(prev))

	m.focused = i
	cmd := m.inputs[i].Focus()
	m.Form.FocusField(m.order[i], m.inputs[i].Position())
	logging.LogTransition("focus", m.order[i], "")
	return cmd
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	note, ok := m.Form.Submit()
	logging.LogSubmit(ok, m.Form.Errors())
	if !ok {
		return m, nil
	}
	return m, func() tea.Msg { return submitMsg{notification: note} }
}

// Reset clears the engine and every input, then focuses the first field.
func (m FormModel) Reset() (FormModel, tea.Cmd) {
	m.Form.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focused = 0
	cmd := m.inputs[0].Focus()
	m.Form.FocusField(m.order[0], 0)
	return m, cmd
}

// CardView renders the card preview for the current values.
func (m FormModel) CardView() string {
	in := preview.FromFields(m.Form.Values(), m.Form.CVCFocused())
	return preview.Render(preview.ProjectWith(in, m.HolderPlaceholder))
}

// View renders the entry screen content (without container)
func (m FormModel) View() string {
	fields := lipgloss.JoinVertical(lipgloss.Left,
		m.renderField(card.CardHolder),
		m.renderField(card.CardNumber),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderField(card.ExpiryMonth), "  ",
			m.renderField(card.ExpiryYear), "  ",
			m.renderField(card.CVC),
		),
		"",
		ButtonStyle.Render("Confirm"),
	)

	if m.Width >= SideBySideWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.CardView(), "    ", fields)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.CardView(), "", fields)
}

func (m FormModel) renderField(field card.Field) string {
	i := m.indexOf(field)
	focused := i == m.focused
	errMsg := m.Form.VisibleError(field)

	label := LabelStyle
	box := InputBoxStyle
	if focused {
		label = FocusedLabelStyle
		box = FocusedInputBoxStyle
	}
	if errMsg != "" {
		box = ErrorInputBoxStyle
	}

	var b strings.Builder
	b.WriteString(label.Render(field.Label()))
	b.WriteString("\n")
	b.WriteString(box.Render(m.inputs[i].View()))
	b.WriteString("\n")
	// Keep rows aligned whether or not a message is shown
	b.WriteString(FieldErrorStyle.Render(errMsg))
	return b.String()
}
