package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 34

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	if m.showHelp {
		footerHeight = 6
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" region ─ terminal region viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	panel := boxStyle.Width(panelWidth).Render(m.renderInfo())
	canvasWidth := max(8, contentWidth-lipgloss.Width(panel)-1)
	canvas := lipgloss.NewStyle().Width(canvasWidth).Height(contentHeight).
		Render(m.renderCanvas(canvasWidth, contentHeight))
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", panel)

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderInfo lists the normalized form of the current region and the
// results of the probe queries.
func (m Model) renderInfo() string {
	r := m.rgn
	b := r.Bounds()
	lines := []string{
		titleStyle.Render(m.entries[m.index].name),
		fmt.Sprintf("kind      %s", r.Kind()),
		fmt.Sprintf("bounds    %.1f, %.1f", b.X, b.Y),
		fmt.Sprintf("          %.1f x %.1f", b.Width, b.Height),
	}
	if t, ok := r.Transform(); ok {
		lines = append(lines,
			"transform residual",
			dimStyle.Render(fmt.Sprintf("  [%.2f %.2f %.1f]", t.A, t.B, t.C)),
			dimStyle.Render(fmt.Sprintf("  [%.2f %.2f %.1f]", t.D, t.E, t.F)),
		)
	} else {
		lines = append(lines, "transform folded")
	}
	lines = append(lines,
		fmt.Sprintf("contour   %d points", len(r.Points())),
		fmt.Sprintf("tolerance %.3g", r.Tolerance()),
		"",
		probeStyle.Render(m.probeStatus()),
		query("contains point", r.ContainsPoint(m.probe)),
		query("contains circle", r.ContainsCircle(m.probe, m.probeRadius)),
		query("intersects", r.IntersectsCircle(m.probe, m.probeRadius)),
	)
	return strings.Join(lines, "\n")
}

func query(label string, v bool) string {
	mark := "no"
	if v {
		mark = "yes"
	}
	return fmt.Sprintf("%-16s %s", label, boolStyle(v).Render(mark))
}
