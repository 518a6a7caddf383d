package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unowned-ai/moodlog/pkg/wellness"
)

// UI styles and layout settings
// Color palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray     = "#353b52"
	colorWhite    = "#ffffff"
	colorGreen    = "#acfab4"
	colorGreenDim = "#b4c4b4"
	colorRed      = "#e61f44"
	colorRedDim   = "#d06178"
	colorPurple   = "#b9a3eb"
	colorBlue     = "#89ddff"
	colorYellow   = "#ffcb6b"

	bordersAndPaddingWidth = 4
	barGlyph               = "█"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2).Align(lipgloss.Center)
	subtitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	textRedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPurple))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray))
)

// Category colors live here, never in the engine.
var categoryColors = map[wellness.Category]string{
	wellness.Happy:    colorGreen,
	wellness.Neutral:  colorBlue,
	wellness.Sad:      colorPurple,
	wellness.Anxious:  colorYellow,
	wellness.Stressed: colorRed,
}

// Function to colorize text based on its status
// 0 (default) - unknown, 1 - green, 2 - red
func TextStatusColorize(text string, status int) string {
	switch status {
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreenDim)).Render(text)
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorRedDim)).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Render(text)
	}
}

// Generates pointer symbol when line in focus
func generateLinePointer(isPoint bool, length int) string {
	if isPoint {
		return ">" + strings.Repeat(" ", length-1)
	}
	return strings.Repeat(" ", length)
}

// bar renders value/max as a horizontal bar at most width cells long.
func bar(value, max float64, width int, color string) string {
	if width <= 0 || max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n == 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(barGlyph, n))
}

func categoryColor(c wellness.Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return colorGray
}

// Column widths: 25% window form, 35% distributions, 40% trend and insights.
func (m model) columnWidths() (int, int, int) {
	leftWidth := m.width / 4
	middleWidth := (m.width * 35) / 100
	rightWidth := m.width - (leftWidth + middleWidth)
	return leftWidth, middleWidth, rightWidth
}
