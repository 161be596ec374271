package view

import (
	"math"
	"strings"

	"github.com/gogpu/region"
)

// canvas maps world coordinates to braille micro-pixels. One micro-pixel is
// one world unit and the world origin sits in the middle of the canvas.
type canvas struct {
	fill, outline, probe *brailleBuf
	ox, oy               float64
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		fill:    newBrailleBuf(w, h),
		outline: newBrailleBuf(w, h),
		probe:   newBrailleBuf(w, h),
		ox:      float64(2*w) / 2,
		oy:      float64(4*h) / 2,
	}
}

// world returns the center of micro-pixel (mx, my) in world coordinates.
func (c *canvas) world(mx, my int) region.Point {
	return region.Pt(float64(mx)+0.5-c.ox, float64(my)+0.5-c.oy)
}

func (c *canvas) micro(p region.Point) (int, int) {
	return int(math.Floor(p.X + c.ox)), int(math.Floor(p.Y + c.oy))
}

// rasterize sets every micro-pixel whose center lies inside r.
func (c *canvas) rasterize(r *region.Region) {
	b := r.Bounds()
	x0, y0 := c.micro(region.Pt(b.X, b.Y))
	x1, y1 := c.micro(region.Pt(b.Right(), b.Bottom()))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, 2*c.fill.w-1), min(y1, 4*c.fill.h-1)
	for my := y0; my <= y1; my++ {
		for mx := x0; mx <= x1; mx++ {
			if r.ContainsPoint(c.world(mx, my)) {
				c.fill.setPixel(mx, my)
			}
		}
	}
}

// traceBounds outlines the region's bounding box.
func (c *canvas) traceBounds(r *region.Region) {
	b := r.Bounds()
	x0, y0 := c.micro(region.Pt(b.X, b.Y))
	x1, y1 := c.micro(region.Pt(b.Right(), b.Bottom()))
	c.outline.drawLineMicro(x0, y0, x1, y0)
	c.outline.drawLineMicro(x1, y0, x1, y1)
	c.outline.drawLineMicro(x1, y1, x0, y1)
	c.outline.drawLineMicro(x0, y1, x0, y0)
}

// traceProbe draws the probe circle outline, or a single dot for a zero
// radius.
func (c *canvas) traceProbe(center region.Point, radius float64) {
	if radius <= 0 {
		c.probe.setPixel(c.micro(center))
		return
	}
	n := max(8, int(2*math.Pi*radius))
	px, py := c.micro(region.Pt(center.X+radius, center.Y))
	for i := 1; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := c.micro(region.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a)))
		c.probe.drawLineMicro(px, py, x, y)
		px, py = x, y
	}
}

// lines renders the canvas with coverage shading. Probe dots take
// precedence over the bounds outline, which takes precedence over fill.
func (c *canvas) lines() []string {
	out := make([]string, c.fill.h)
	var sb strings.Builder
	for y := 0; y < c.fill.h; y++ {
		sb.Reset()
		for x := 0; x < c.fill.w; x++ {
			switch {
			case c.probe.m[y][x] != 0:
				sb.WriteString(probeStyle.Render(string(c.probe.cell(x, y) | rune(c.fill.m[y][x]))))
			case c.fill.m[y][x] != 0:
				sb.WriteString(shadeStyles[c.fill.coverage(x, y)].Render(string(c.fill.cell(x, y) | rune(c.outline.m[y][x]))))
			case c.outline.m[y][x] != 0:
				sb.WriteString(dimStyle.Render(string(c.outline.cell(x, y))))
			default:
				sb.WriteByte(' ')
			}
		}
		out[y] = sb.String()
	}
	return out
}

func (m Model) renderCanvas(w, h int) string {
	c := newCanvas(w, h)
	c.rasterize(m.rgn)
	c.traceBounds(m.rgn)
	c.traceProbe(m.probe, m.probeRadius)
	return strings.Join(c.lines(), "\n")
}
