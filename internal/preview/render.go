package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card dimensions in terminal cells, border included.
const (
	CardWidth  = 40
	CardHeight = 11
)

var (
	frontColor   = lipgloss.Color("#7D56F4") // Purple
	backColor    = lipgloss.Color("#626262") // Gray
	textColor    = lipgloss.Color("#FFFFFF") // White
	stripeColor  = lipgloss.Color("#1A1A1A") // Dark gray
	cvcFieldFore = lipgloss.Color("#000000")
	cvcFieldBack = lipgloss.Color("#E0E0E0")
)

func faceStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(textColor).
		Width(CardWidth-2).
		Height(CardHeight-2).
		Padding(0, 2)
}

// RenderFront draws the number, holder and expiry face.
func RenderFront(m DisplayModel) string {
	inner := CardWidth - 6 // border + padding

	logo := lipgloss.NewStyle().Foreground(textColor).Bold(true).Render("● ○")
	number := lipgloss.NewStyle().Bold(true).Render(m.Number)

	holder := strings.ToUpper(m.Holder)
	gap := inner - lipgloss.Width(holder) - lipgloss.Width(m.Expiry)
	if gap < 1 {
		gap = 1
	}
	bottom := holder + strings.Repeat(" ", gap) + m.Expiry

	content := strings.Join([]string{
		"",
		logo,
		"",
		"",
		number,
		"",
		"",
		bottom,
	}, "\n")

	return faceStyle(frontColor).Render(content)
}

// RenderBack draws the magnetic stripe and the CVC box.
func RenderBack(m DisplayModel) string {
	inner := CardWidth - 6

	stripe := lipgloss.NewStyle().
		Background(stripeColor).
		Width(inner).
		Render("")

	cvc := lipgloss.NewStyle().
		Foreground(cvcFieldFore).
		Background(cvcFieldBack).
		Padding(0, 1).
		Render(m.CVC)

	cvcLine := lipgloss.PlaceHorizontal(inner, lipgloss.Right, cvc)

	content := strings.Join([]string{
		"",
		stripe,
		stripe,
		"",
		cvcLine,
		"",
		"",
	}, "\n")

	return faceStyle(backColor).Render(content)
}

// Render draws whichever face is in front.
func Render(m DisplayModel) string {
	if m.Flipped {
		return RenderBack(m)
	}
	return RenderFront(m)
}

// RenderBoth draws both faces, the foregrounded one first.
func RenderBoth(m DisplayModel) string {
	front, back := RenderFront(m), RenderBack(m)
	if m.Flipped {
		return lipgloss.JoinVertical(lipgloss.Left, back, front)
	}
	return lipgloss.JoinVertical(lipgloss.Left, front, back)
}
