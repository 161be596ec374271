package view

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	probeFg   = lipgloss.Color("#F59E0B")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	probeStyle = lipgloss.NewStyle().Foreground(probeFg)
	yesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	noStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// Fill shading ramps from edgeColor (one dot lit) to fillColor (all eight).
var (
	edgeColor, _ = colorful.Hex("#334155")
	fillColor, _ = colorful.Hex("#38BDF8")
)

// shadeStyles holds one style per cell coverage level, indexed 0..8.
var shadeStyles = buildShades()

func buildShades() [9]lipgloss.Style {
	var s [9]lipgloss.Style
	s[0] = lipgloss.NewStyle()
	for i := 1; i <= 8; i++ {
		c := edgeColor.BlendLab(fillColor, float64(i-1)/7).Clamped()
		s[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return s
}

func boolStyle(v bool) lipgloss.Style {
	if v {
		return yesStyle
	}
	return noStyle
}
