package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cardform/internal/version"
)

// Application branding constants
const (
	AppName   = "CARDFORM"
	GitHubURL = "github.com/muurk/cardform"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72 // Minimum supported terminal width
	// SideBySideWidth is the narrowest terminal that fits the card preview
	// next to the inputs.
	SideBySideWidth = 100
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field label (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(true)

	// Field label (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Input box (unfocused)
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	// Input box (focused)
	FocusedInputBoxStyle = InputBoxStyle.
				BorderForeground(PrimaryColor)

	// Input box with a visible error
	ErrorInputBoxStyle = InputBoxStyle.
				BorderForeground(ErrorColor)

	// Inline field error
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Submit button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 3)

	// Toast notification
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 2)

	ToastTitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderToast renders a transient notification box
func RenderToast(title, message string) string {
	return ToastStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, ToastTitleStyle.Render(title), message),
	)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps every screen in the same frame: header
// with name and version, the screen content, and a footer with help text.
// An optional overlay (the toast) is drawn at the top right of the content.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, helpText, "", m.Width, m.Height)
//	}
func RenderApplicationContainer(content, footerText, overlay string, terminalWidth, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	body := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Render(content)

	if overlay != "" {
		toast := lipgloss.PlaceHorizontal(terminalWidth-4, lipgloss.Right, overlay)
		body = lipgloss.JoinVertical(lipgloss.Left, toast, body)
	}

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		body,
		footerStyle.Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)),
	)

	outer := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2)
	if terminalHeight > 2 {
		outer = outer.Height(terminalHeight - 2).AlignVertical(lipgloss.Top)
	}

	if terminalHeight <= 0 {
		return outer.Render(inner)
	}
	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, outer.Render(inner))
}
