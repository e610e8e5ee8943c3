package tui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"goplot/internal/graph"
)

// lipColor converts a plot colour for use in the surrounding chrome.
func lipColor(c color.Color) lipgloss.Color {
	cc, _ := colorful.MakeColor(c)
	return lipgloss.Color(cc.Hex())
}

// Chrome. Panel borders use the plot grid colour.
var (
	chrome = graph.DefaultStyle()

	textFg   = lipgloss.Color("#E6E6E6")
	mutedFg  = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"}
	accentFg = lipgloss.Color("#7C3AED")

	frameStyle  = lipgloss.NewStyle().Foreground(textFg)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipColor(chrome.Grid)).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedFg)
)

// hexColor parses a palette literal.
func hexColor(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("tui: bad palette colour " + s + ": " + err.Error())
	}
	return c
}

// Plot colours
var (
	polyFill   = hexColor("#1E3A5F")
	polyStroke = hexColor("#60A5FA")
	pointColor = hexColor("#F472B6")
	hoverColor = hexColor("#FFA500")
)
