package view

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.index = (m.index + 1) % len(m.entries)
		case key.Matches(msg, m.keys.Prev):
			m.index = (m.index + len(m.entries) - 1) % len(m.entries)
		case key.Matches(msg, m.keys.Up):
			m.probe.Y -= probeStep
		case key.Matches(msg, m.keys.Down):
			m.probe.Y += probeStep
		case key.Matches(msg, m.keys.Left):
			m.probe.X -= probeStep
		case key.Matches(msg, m.keys.Right):
			m.probe.X += probeStep
		case key.Matches(msg, m.keys.RotateCW):
			m.angle = math.Mod(m.angle+rotateStep, 2*math.Pi)
		case key.Matches(msg, m.keys.RotateCCW):
			m.angle = math.Mod(m.angle-rotateStep, 2*math.Pi)
		case key.Matches(msg, m.keys.ZoomIn):
			m.scale = math.Min(m.scale*scaleStep, maxScale)
		case key.Matches(msg, m.keys.ZoomOut):
			m.scale = math.Max(m.scale/scaleStep, minScale)
		case key.Matches(msg, m.keys.Shear):
			m.shear += shearStep
			if m.shear > 1+1e-9 {
				m.shear = -1
			}
		case key.Matches(msg, m.keys.Flip):
			m.flip = !m.flip
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		case key.Matches(msg, m.keys.GrowProbe):
			m.probeRadius += 1
		case key.Matches(msg, m.keys.ShrinkProbe):
			m.probeRadius = math.Max(m.probeRadius-1, 0)
		case key.Matches(msg, m.keys.Coarser):
			m.tolerance = math.Min(m.tolerance*2, 8)
		case key.Matches(msg, m.keys.Finer):
			m.tolerance = math.Max(m.tolerance/2, 1.0/64)
		default:
			return m, nil
		}
		m.rebuild()
		m.status = m.describe()
	}
	return m, nil
}

func (m Model) probeStatus() string {
	return fmt.Sprintf("probe (%.0f, %.0f) r=%.0f", m.probe.X, m.probe.Y, m.probeRadius)
}
