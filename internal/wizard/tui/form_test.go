package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/muurk/cardform/internal/card"
	"github.com/muurk/cardform/internal/preview"
)

var fixedNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

// newTestFormModel returns a form model with a fixed clock and non-blinking
// cursors, so commands returned by Update never sleep.
func newTestFormModel() FormModel {
	form := card.NewForm()
	form.Clock = func() time.Time { return fixedNow }
	m := NewFormModel(form)
	staticCursors(&m)
	return m
}

func staticCursors(m *FormModel) {
	for i := range m.inputs {
		m.inputs[i].Cursor.SetMode(cursor.CursorStatic)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// messages runs cmd and flattens any batch into its messages.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, messages(c)...)
	}
	return out
}

func cursorSync(t *testing.T, cmd tea.Cmd) cursorSyncMsg {
	t.Helper()
	for _, msg := range messages(cmd) {
		if sync, ok := msg.(cursorSyncMsg); ok {
			return sync
		}
	}
	t.Fatal("no cursor sync scheduled")
	return cursorSyncMsg{}
}

func hasCursorSync(cmd tea.Cmd) bool {
	for _, msg := range messages(cmd) {
		if _, ok := msg.(cursorSyncMsg); ok {
			return true
		}
	}
	return false
}

// typeInto focuses field with tab presses and types s into it.
func typeInto(t *testing.T, m FormModel, field card.Field, s string) (FormModel, tea.Cmd) {
	t.Helper()
	for i := 0; m.FocusedField() != field; i++ {
		require.Less(t, i, len(card.Fields()), "field %s never focused", field)
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	return m.Update(keyRunes(s))
}

func TestNewFormModelFocusesFirstField(t *testing.T) {
	m := newTestFormModel()

	require.Equal(t, card.CardHolder, m.FocusedField())
	require.True(t, m.Input(card.CardHolder).Focused())
	require.Equal(t, card.FocusState{Field: card.CardHolder, Active: true}, m.Form.Focus())
}

func TestFocusCycling(t *testing.T) {
	m := newTestFormModel()
	order := card.Fields()

	for i := 1; i <= len(order); i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		require.Equal(t, order[i%len(order)], m.FocusedField())
	}
	require.True(t, m.Form.Touched(card.CardHolder), "tabbing away marks the field touched")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, card.CVC, m.FocusedField(), "shift+tab wraps to the last field")
	require.False(t, m.Input(card.CardHolder).Focused())
	require.True(t, m.Input(card.CVC).Focused())
}

func TestTypingCardNumberFormatsAndSyncsCaret(t *testing.T) {
	m := newTestFormModel()

	m, cmd := typeInto(t, m, card.CardNumber, "4242424242424242")
	require.Equal(t, "4242 4242 4242 4242", m.Input(card.CardNumber).Value())
	require.Equal(t, "4242 4242 4242 4242", m.Form.Values().CardNumber)
	require.Equal(t, 19, m.Input(card.CardNumber).Position(), "input caret placed at once")
	require.Equal(t, 0, m.Form.Focus().Cursor, "engine caret not corrected until the sync runs")

	m, _ = m.Update(cursorSync(t, cmd))
	require.Equal(t, 19, m.Input(card.CardNumber).Position())
	require.Equal(t, 19, m.Form.Focus().Cursor)
}

func TestStaleCursorSyncIgnored(t *testing.T) {
	m := newTestFormModel()

	m, first := typeInto(t, m, card.CardNumber, "42424")
	require.Equal(t, "4242 4", m.Input(card.CardNumber).Value())
	stale := cursorSync(t, first)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, second := m.Update(keyRunes("4242"))
	require.Equal(t, "4242 4424 2", m.Input(card.CardNumber).Value())
	latest := cursorSync(t, second)

	m, _ = m.Update(stale)
	require.Equal(t, 6, m.Form.Focus().Cursor, "superseded ticket must not move the caret")

	m, _ = m.Update(latest)
	require.Equal(t, 11, m.Input(card.CardNumber).Position())
	require.Equal(t, 11, m.Form.Focus().Cursor)
}

func TestKeystrokesBeforeCursorSyncKeepOrder(t *testing.T) {
	m := newTestFormModel()

	m, _ = typeInto(t, m, card.CardNumber, "4242")
	m, first := m.Update(keyRunes("4"))
	require.Equal(t, "4242 4", m.Input(card.CardNumber).Value())
	pending := cursorSync(t, first)

	// The next key arrives before the correction is delivered
	m, second := m.Update(keyRunes("2"))
	require.Equal(t, "4242 42", m.Input(card.CardNumber).Value())
	require.Equal(t, 7, m.Input(card.CardNumber).Position())
	require.False(t, hasCursorSync(second))

	m, _ = m.Update(pending)
	require.Equal(t, 7, m.Form.Focus().Cursor, "superseded correction must not move the caret")
	require.Equal(t, 7, m.Input(card.CardNumber).Position())

	m, _ = m.Update(keyRunes("3"))
	require.Equal(t, "4242 423", m.Input(card.CardNumber).Value())
	require.Equal(t, "4242 423", m.Form.Values().CardNumber)
}

func TestUnchangedEditSchedulesNoSync(t *testing.T) {
	m := newTestFormModel()

	m, cmd := typeInto(t, m, card.CardNumber, "4242")
	require.Equal(t, "4242", m.Input(card.CardNumber).Value())
	require.False(t, hasCursorSync(cmd))
	require.Equal(t, 4, m.Form.Focus().Cursor)
}

func TestHolderSanitized(t *testing.T) {
	m := newTestFormModel()

	m, cmd := typeInto(t, m, card.CardHolder, "J0hn   O'Neil-Smith")
	require.Equal(t, "Jhn O'Neil-Smith", m.Input(card.CardHolder).Value())
	require.True(t, hasCursorSync(cmd))
}

func TestRejectedNumberKeepsValue(t *testing.T) {
	m := newTestFormModel()

	m, _ = typeInto(t, m, card.CardNumber, "4242")
	m, cmd := m.Update(keyRunes("4242424242424"))

	require.Equal(t, "4242", m.Input(card.CardNumber).Value(), "17 digits are refused")
	require.Equal(t, "4242", m.Form.Values().CardNumber)
	require.Equal(t, 4, m.Input(card.CardNumber).Position())
	require.False(t, hasCursorSync(cmd))
}

func TestErrorsHiddenUntilBlur(t *testing.T) {
	m := newTestFormModel()

	m, _ = typeInto(t, m, card.CardHolder, "Jo")
	require.Equal(t, card.MsgHolderTooShort, m.Form.Errors().Get(card.CardHolder))
	require.NotContains(t, m.View(), card.MsgHolderTooShort)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Contains(t, m.View(), card.MsgHolderTooShort)
}

func TestCardFlipsWhileCVCFocused(t *testing.T) {
	m := newTestFormModel()
	front := m.CardView()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, card.CVC, m.FocusedField())
	require.True(t, m.Form.CVCFocused())

	want := preview.RenderBack(preview.Project(preview.FromFields(m.Form.Values(), true)))
	require.Equal(t, want, m.CardView())
	require.NotEqual(t, front, m.CardView())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.Form.CVCFocused())
	require.Equal(t, front, m.CardView())
}

func TestEnterSubmitsFromAnyField(t *testing.T) {
	m := newTestFormModel()
	for _, s := range []string{"Jane Doe", "4242424242424242", "09", "27", "123"} {
		m, _ = m.Update(keyRunes(s))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, card.CardHolder, m.FocusedField())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, submitMsg{notification: card.SuccessNotification}, cmd())
	require.True(t, m.Form.Submitted())
	require.Equal(t, card.CardHolder, m.FocusedField(), "enter does not move focus")
}

func TestEnterOnInvalidFormShowsErrors(t *testing.T) {
	m := newTestFormModel()

	m, _ = typeInto(t, m, card.ExpiryMonth, "13")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.False(t, m.Form.Submitted())
	require.Equal(t, card.ExpiryMonth, m.FocusedField())
	require.Contains(t, m.View(), card.MsgInvalidMonth)
}

func TestSubmitInvalidShowsEveryError(t *testing.T) {
	m := newTestFormModel()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
	require.False(t, m.Form.Submitted())

	view := m.View()
	require.Contains(t, view, card.MsgHolderRequired)
	require.Contains(t, view, card.MsgBlank)
	require.Len(t, m.Form.Errors(), len(card.Fields()))
}

func TestResizeRestoresFocus(t *testing.T) {
	m := newTestFormModel()

	m, _ = m.Update(keyRunes("Jane"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 3, m.Form.Focus().Cursor)

	// Simulate the terminal dropping input focus
	m.inputs[0].Blur()
	m.inputs[0].SetCursor(0)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.Width)
	require.True(t, m.Input(card.CardHolder).Focused())
	require.Equal(t, 3, m.Input(card.CardHolder).Position())
}

func TestResetClearsInputs(t *testing.T) {
	m := newTestFormModel()
	m, _ = typeInto(t, m, card.ExpiryMonth, "09")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	m, _ = m.Reset()
	for _, f := range card.Fields() {
		require.Empty(t, m.Input(f).Value(), f.String())
		require.False(t, m.Form.Touched(f))
	}
	require.Equal(t, card.CardHolder, m.FocusedField())
}
