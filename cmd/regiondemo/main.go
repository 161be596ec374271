// Command regiondemo renders a gallery of regions with their bounds and
// containment probes to a PNG file.
package main

import (
	"flag"
	"image"
	"log"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/region"
)

const (
	columns = 3
	rows    = 2
)

type sample struct {
	name  string
	shape region.Shape
	m     region.Matrix
}

func main() {
	var (
		width     = flag.Int("width", 900, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "regions.png", "output file")
		tolerance = flag.Float64("tolerance", region.DefaultTolerance, "contour tolerance in pixels")
		probe     = flag.Float64("probe", 6, "probe circle radius")
	)
	flag.Parse()

	dc := gg.NewContext(*width, *height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.RGB(0.08, 0.09, 0.12))

	cellW := float64(*width) / columns
	cellH := float64(*height) / rows
	for i, s := range samples() {
		cx := cellW * (float64(i%columns) + 0.5)
		cy := cellH * (float64(i/columns) + 0.5)
		m := region.Translate(cx, cy).Multiply(s.m)
		r := region.From(s.shape, region.WithTransform(m), region.WithTolerance(*tolerance))

		drawRegion(dc, r, gg.HSL(float64(i)*60, 0.6, 0.45))
		drawBounds(dc, r.Bounds())
		drawProbes(dc, r, *probe)

		b := r.Bounds()
		_, residual := r.Transform()
		log.Printf("%-16s kind=%-17s bounds=(%.1f,%.1f %.1fx%.1f) residual=%v contour=%d coverage=%.0f%%",
			s.name, r.Kind(), b.X, b.Y, b.Width, b.Height, residual, len(r.Points()), coverage(r)*100)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Regions saved to %s (%dx%d)\n", *output, *width, *height)
}

func samples() []sample {
	return []sample{
		{"rectangle", region.Rect(-80, -50, 160, 100), region.Identity()},
		{"rotated rect", region.Rect(-80, -50, 160, 100), region.Rotate(math.Pi / 7)},
		{"rounded", region.RoundedRectangle{X: -90, Y: -55, Width: 180, Height: 110, Radius: 24}, region.Rotate(-0.3)},
		{"scaled circle", region.Circle{Radius: 50}, region.Scale(1.6, 0.9)},
		{"sheared ellipse", region.Ellipse{RadiusX: 80, RadiusY: 40}, region.Shear(0.6, 0).Multiply(region.Rotate(0.4))},
		{"star", star(5, 90, 38), region.Identity()},
	}
}

func star(points int, outer, inner float64) region.Polygon {
	pts := make([]region.Point, 0, 2*points)
	for i := 0; i < points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, region.Pt(r*math.Cos(angle-math.Pi/2), r*math.Sin(angle-math.Pi/2)))
	}
	return region.Poly(pts...)
}

func drawRegion(dc *gg.Context, r *region.Region, c gg.RGBA) {
	pts := r.Points()
	if len(pts) < 3 {
		return
	}
	dc.SetColor(c)
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	_ = dc.Fill()
}

func drawBounds(dc *gg.Context, b region.Rectangle) {
	dc.SetRGBA(1, 1, 1, 0.6)
	dc.SetLineWidth(1)
	dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	_ = dc.Stroke()
}

// drawProbes scatters probe circles over the padded bounds: green when the
// region contains the probe, amber when it only intersects, dim otherwise.
func drawProbes(dc *gg.Context, r *region.Region, radius float64) {
	b := r.Bounds().Pad(2 * radius)
	step := 3 * radius
	for y := b.Y; y <= b.Bottom(); y += step {
		for x := b.X; x <= b.Right(); x += step {
			p := region.Pt(x, y)
			switch {
			case r.ContainsCircle(p, radius):
				dc.SetRGBA(0.3, 1, 0.4, 0.9)
			case r.IntersectsCircle(p, radius):
				dc.SetRGBA(1, 0.75, 0.2, 0.9)
			default:
				dc.SetRGBA(0.5, 0.5, 0.6, 0.35)
			}
			dc.DrawCircle(x, y, radius/2)
			_ = dc.Fill()
		}
	}
}

// coverage returns the share of the bounding box covered by the region's
// alpha mask.
func coverage(r *region.Region) float64 {
	b := r.Bounds()
	rect := image.Rect(int(math.Floor(b.X)), int(math.Floor(b.Y)), int(math.Ceil(b.Right())), int(math.Ceil(b.Bottom())))
	mask := r.Mask(rect)
	if len(mask.Pix) == 0 {
		return 0
	}
	sum := 0
	for _, a := range mask.Pix {
		sum += int(a)
	}
	return float64(sum) / float64(255*len(mask.Pix))
}
