package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cardform/internal/card"
	"github.com/muurk/cardform/internal/logging"
	"github.com/muurk/cardform/internal/preview"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenEntry   Screen = "entry"
	ScreenSuccess Screen = "success"
)

// toastExpiredMsg hides the toast it was scheduled for.
type toastExpiredMsg struct {
	id int
}

// successKeyMap defines key bindings for the success screen
type successKeyMap struct {
	Continue key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k successKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Continue, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k successKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Continue, k.Quit}}
}

// Options configures the application model.
type Options struct {
	// ToastDuration overrides the notification's own duration when positive.
	ToastDuration time.Duration
	// HolderPlaceholder is shown on the card while the name is empty.
	HolderPlaceholder string
	// Clock replaces time.Now for the expiry rules.
	Clock func() time.Time
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen  Screen
	PreviousScreen Screen

	Form      *card.Form
	FormModel FormModel

	// Toast is the notification currently on screen, if any.
	Toast   *card.Notification
	toastID int

	Width  int
	Height int

	Help        help.Model
	SuccessKeys successKeyMap

	opts Options
}

// NewAppModel creates the application starting on the entry screen
func NewAppModel(opts Options) AppModel {
	form := card.NewForm()
	if opts.Clock != nil {
		form.Clock = opts.Clock
	}

	fm := NewFormModel(form)
	fm.HolderPlaceholder = opts.HolderPlaceholder

	return AppModel{
		CurrentScreen: ScreenEntry,
		Form:          form,
		FormModel:     fm,
		Help:          help.New(),
		SuccessKeys: successKeyMap{
			Continue: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "continue"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "quit"),
			),
		},
		opts: opts,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.FormModel.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case submitMsg:
		m.transitionTo(ScreenSuccess)
		return m, m.showToast(msg.notification)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.Toast = nil
		}
		return m, nil
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.CurrentScreen {
	case ScreenEntry:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.FormModel.Keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.FormModel, cmd = m.FormModel.Update(msg)
		return m, cmd

	case ScreenSuccess:
		return m.handleSuccessScreen(msg)
	}
	return m, nil
}

// handleSuccessScreen handles user input on the success screen
func (m AppModel) handleSuccessScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Keep the entry screen's size current for when we return
		m.FormModel, _ = m.FormModel.Update(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.SuccessKeys.Continue):
			logging.Info("Form reset after confirmation")
			var cmd tea.Cmd
			m.FormModel, cmd = m.FormModel.Reset()
			m.transitionTo(ScreenEntry)
			return m, cmd
		case key.Matches(msg, m.SuccessKeys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// transitionTo transitions to a new screen
func (m *AppModel) transitionTo(screen Screen) {
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen
}

// showToast puts n on screen and schedules its removal.
func (m *AppModel) showToast(n card.Notification) tea.Cmd {
	d := n.Duration
	if m.opts.ToastDuration > 0 {
		d = m.opts.ToastDuration
	}
	m.toastID++
	m.Toast = &n
	id := m.toastID
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// View renders the current screen
func (m AppModel) View() string {
	var overlay string
	if m.Toast != nil {
		overlay = RenderToast(m.Toast.Title, m.Toast.Message)
	}

	switch m.CurrentScreen {
	case ScreenSuccess:
		return RenderApplicationContainer(m.buildSuccessContent(), m.Help.View(m.SuccessKeys), overlay, m.Width, m.Height)
	default:
		content := lipgloss.JoinVertical(lipgloss.Left,
			RenderTitle("Add a payment card"),
			m.FormModel.View(),
		)
		return RenderApplicationContainer(content, m.Help.View(m.FormModel.Keys), overlay, m.Width, m.Height)
	}
}

// buildSuccessContent builds the success screen content
func (m AppModel) buildSuccessContent() string {
	var b strings.Builder

	// The card faces front once confirmed, whatever field had focus
	in := preview.FromFields(m.Form.Values(), false)
	b.WriteString(preview.Render(preview.ProjectWith(in, m.opts.HolderPlaceholder)))
	b.WriteString("\n\n")
	b.WriteString(RenderTitle("✓ THANK YOU!"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle("We've added your card details"))
	b.WriteString("\n\n")
	b.WriteString(ButtonStyle.Render("Continue"))
	b.WriteString("\n")

	return b.String()
}
