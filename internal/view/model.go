// Package view implements an interactive terminal viewer for regions.
//
// The current region is rasterized into braille micro-pixels by point
// containment; a probe circle can be moved around to exercise the circle
// queries.
package view

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/region"
)

// Fixed interaction steps.
const (
	rotateStep = math.Pi / 24
	scaleStep  = 1.15
	shearStep  = 0.1
	probeStep  = 2.0
	minScale   = 0.05
	maxScale   = 20
)

type entry struct {
	name  string
	shape region.Shape
}

func gallery() []entry {
	return []entry{
		{"rectangle", region.Rect(-30, -18, 60, 36)},
		{"rounded rectangle", region.RoundedRectangle{X: -32, Y: -20, Width: 64, Height: 40, Radius: 10}},
		{"circle", region.Circle{Radius: 24}},
		{"ellipse", region.Ellipse{RadiusX: 34, RadiusY: 16}},
		{"arrow", region.Poly(
			region.Pt(-30, -8), region.Pt(6, -8), region.Pt(6, -20),
			region.Pt(32, 0), region.Pt(6, 20), region.Pt(6, 8), region.Pt(-30, 8),
		)},
	}
}

type Model struct {
	width  int
	height int

	entries []entry
	index   int

	// transform parameters applied as flip, shear, scale, rotate
	angle float64
	scale float64
	shear float64
	flip  bool

	tolerance float64

	probe       region.Point
	probeRadius float64

	keys     keyMap
	help     help.Model
	showHelp bool

	status string

	// cached for the current parameters
	rgn *region.Region
}

func New() Model {
	m := Model{
		entries:     gallery(),
		keys:        defaultKeys(),
		help:        help.New(),
		probeRadius: 6,
	}
	m.reset()
	m.status = "region viewer ready"
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Region returns the region currently on screen.
func (m Model) Region() *region.Region { return m.rgn }

func (m *Model) reset() {
	m.angle = 0
	m.scale = 1
	m.shear = 0
	m.flip = false
	m.tolerance = region.DefaultTolerance
	m.probe = region.Point{}
	m.rebuild()
}

// transform composes the user transform. Applied to a point, the flip acts
// first and the rotation last.
func (m *Model) transform() region.Matrix {
	t := region.Rotate(m.angle).
		Multiply(region.Scale(m.scale, m.scale)).
		Multiply(region.Shear(m.shear, 0))
	if m.flip {
		t = t.Multiply(region.Scale(-1, 1))
	}
	return t
}

func (m *Model) rebuild() {
	e := m.entries[m.index]
	m.rgn = region.From(e.shape,
		region.WithTransform(m.transform()),
		region.WithTolerance(m.tolerance))
}

func (m *Model) describe() string {
	return fmt.Sprintf("%s  angle=%.0f° scale=%.2f shear=%.1f flip=%v",
		m.entries[m.index].name, m.angle*180/math.Pi, m.scale, m.shear, m.flip)
}
