package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/region"
)

func TestBrailleSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(3, 2)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	b.setPixel(0, 4)

	if b.m[0][0] != 0x81 {
		t.Errorf("cell 0 mask = %#x, want 0x81", b.m[0][0])
	}
	if b.m[0][1] != 0x20 {
		t.Errorf("cell 1 mask = %#x, want 0x20", b.m[0][1])
	}
	if got := b.coverage(0, 0); got != 2 {
		t.Errorf("coverage = %d, want 2", got)
	}
	if got := b.toLines()[0]; got != "⢁⠠" {
		t.Errorf("toLines() = %q", got)
	}
}

func TestBrailleLine(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.drawLineMicro(0, 0, 7, 0)
	for x := 0; x < 4; x++ {
		if b.m[0][x] != 0x09 {
			t.Errorf("cell %d mask = %#x, want 0x09", x, b.m[0][x])
		}
	}
}

func TestCanvasRasterize(t *testing.T) {
	c := newCanvas(4, 2)
	c.rasterize(region.From(region.Rect(0, 0, 4, 4)))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := 0
			if y == 1 && x >= 2 {
				want = 8
			}
			if got := c.fill.coverage(x, y); got != want {
				t.Errorf("cell (%d, %d) coverage = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestCanvasRasterizeClips(t *testing.T) {
	c := newCanvas(3, 2)
	c.rasterize(region.From(region.Circle{Radius: 500}))
	for _, line := range c.fill.toLines() {
		if line != strings.Repeat("⣿", 3) {
			t.Errorf("line = %q, want full cells", line)
		}
	}
}

func TestCanvasProbePoint(t *testing.T) {
	c := newCanvas(2, 1)
	c.traceProbe(region.Pt(0, 0), 0)
	// Origin maps to micro-pixel (2, 2): cell 1, left column, third row.
	if c.probe.m[0][1] != 0x04 {
		t.Errorf("probe mask = %#x, want 0x04", c.probe.m[0][1])
	}
}

func TestModelCyclesShapes(t *testing.T) {
	m := New()
	if got := m.Region().Kind(); got != region.KindRectangle {
		t.Fatalf("initial kind = %v", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Region().Kind(); got != region.KindRoundedRectangle {
		t.Errorf("after tab kind = %v, want rounded-rectangle", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.Region().Kind(); got != region.KindPolygon {
		t.Errorf("wrapped kind = %v, want polygon", got)
	}
}

func TestModelTransforms(t *testing.T) {
	m := New()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, runes("r"))
	if _, ok := m.Region().Transform(); !ok {
		t.Error("rotated rounded rectangle has no residual transform")
	}

	m = send(t, m, runes("0"))
	if _, ok := m.Region().Transform(); ok {
		t.Error("reset left a residual transform")
	}

	// A flipped circle is still a circle.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, runes("f"))
	if got := m.Region().Kind(); got != region.KindCircle {
		t.Errorf("flipped circle kind = %v", got)
	}
	if _, ok := m.Region().Transform(); ok {
		t.Error("flip was not folded")
	}

	before := m.Region().Bounds()
	m = send(t, m, runes("+"))
	if after := m.Region().Bounds(); after.Width <= before.Width {
		t.Errorf("scale up: width %v -> %v", before.Width, after.Width)
	}
}

func TestModelProbe(t *testing.T) {
	m := New()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.probe != region.Pt(probeStep, probeStep) {
		t.Errorf("probe = %+v", m.probe)
	}

	m = send(t, m, runes("["))
	if m.probeRadius != 5 {
		t.Errorf("probe radius = %v, want 5", m.probeRadius)
	}
	for range 10 {
		m = send(t, m, runes("["))
	}
	if m.probeRadius != 0 {
		t.Errorf("probe radius = %v, want 0", m.probeRadius)
	}
}

func TestModelTolerance(t *testing.T) {
	m := New()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	coarse := len(m.Region().Contour())
	m = send(t, m, runes("T"))
	m = send(t, m, runes("T"))
	if fine := len(m.Region().Contour()); fine <= coarse {
		t.Errorf("finer tolerance gave %d coordinates, was %d", fine, coarse)
	}
}

func TestModelQuit(t *testing.T) {
	_, cmd := New().Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestView(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("View() before sizing should be empty")
	}
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	for _, want := range []string{"rectangle", "contains point", "⣿"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
