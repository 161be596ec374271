package region

import (
	"fmt"
	"math"
	"slices"
)

// Kind identifies the primitive behind a Shape.
type Kind int

const (
	// KindRectangle is an axis-aligned rectangle.
	KindRectangle Kind = iota

	// KindRoundedRectangle is an axis-aligned rectangle with circular corners.
	KindRoundedRectangle

	// KindCircle is a circle.
	KindCircle

	// KindEllipse is an axis-aligned ellipse.
	KindEllipse

	// KindPolygon is a closed polygon.
	KindPolygon
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindRoundedRectangle:
		return "rounded-rectangle"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a primitive that a Region can be built from.
//
// Shape is implemented by Rectangle, RoundedRectangle, Circle, Ellipse,
// Polygon and *Region. Contains reports the shape's native containment rule
// in its own untransformed coordinates.
type Shape interface {
	Kind() Kind
	Contains(p Point) bool

	// clone returns a copy that shares no memory with the receiver.
	clone() Shape
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
// It is also the type returned by Region.Bounds.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// Kind implements Shape.
func (Rectangle) Kind() Kind { return KindRectangle }

// Right returns the right edge x-coordinate.
func (r Rectangle) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge y-coordinate.
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle covers no area.
func (r Rectangle) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies in the half-open box [X, X+W) x [Y, Y+H).
// A rectangle without area contains nothing.
func (r Rectangle) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Pad returns the rectangle grown by d on every side. Negative d shrinks it.
func (r Rectangle) Pad(d float64) Rectangle {
	return Rectangle{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// encloses reports whether p lies in the closed box, including its edges.
func (r Rectangle) encloses(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

func (r Rectangle) clone() Shape { return r }

// corners returns the four corners as a flat polygon, top-left first.
func (r Rectangle) corners() []float64 {
	return []float64{
		r.X, r.Y,
		r.Right(), r.Y,
		r.Right(), r.Bottom(),
		r.X, r.Bottom(),
	}
}

// RoundedRectangle is an axis-aligned rectangle with circular corners of
// the given radius.
type RoundedRectangle struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
}

// Kind implements Shape.
func (RoundedRectangle) Kind() Kind { return KindRoundedRectangle }

// Contains reports whether p lies inside the rounded rectangle, edges
// included.
func (r RoundedRectangle) Contains(p Point) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	if p.X < x0 || p.X > x1 || p.Y < y0 || p.Y > y1 {
		return false
	}

	rad := math.Max(0, math.Min(r.Radius, math.Min(r.Width, r.Height)/2))
	if (p.Y >= y0+rad && p.Y <= y1-rad) || (p.X >= x0+rad && p.X <= x1-rad) {
		return true
	}

	// p is in one of the corner squares; test the matching corner circle.
	cx := x0 + rad
	if p.X > x1-rad {
		cx = x1 - rad
	}
	cy := y0 + rad
	if p.Y > y1-rad {
		cy = y1 - rad
	}
	dx, dy := p.X-cx, p.Y-cy
	return dx*dx+dy*dy <= rad*rad
}

func (r RoundedRectangle) clone() Shape { return r }

// Circle is a circle given by its center and radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Kind implements Shape.
func (Circle) Kind() Kind { return KindCircle }

// Contains reports whether p lies inside the circle, boundary included.
// A circle with non-positive radius contains nothing.
func (c Circle) Contains(p Point) bool {
	if c.Radius <= 0 {
		return false
	}
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (c Circle) clone() Shape { return c }

// Ellipse is an axis-aligned ellipse given by its center and radii.
type Ellipse struct {
	X, Y             float64
	RadiusX, RadiusY float64
}

// Kind implements Shape.
func (Ellipse) Kind() Kind { return KindEllipse }

// Contains reports whether p lies inside the ellipse, boundary included.
func (e Ellipse) Contains(p Point) bool {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return false
	}
	nx := (p.X - e.X) / e.RadiusX
	ny := (p.Y - e.Y) / e.RadiusY
	return nx*nx+ny*ny <= 1
}

func (e Ellipse) clone() Shape { return e }

// Polygon is a closed polygon stored as a flat x0, y0, x1, y1, ... sequence.
// The closing edge from the last vertex back to the first is implicit.
type Polygon struct {
	Points []float64
}

// Poly creates a Polygon from points. The coordinates are copied.
func Poly(points ...Point) Polygon {
	flat := make([]float64, 0, 2*len(points))
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return Polygon{Points: flat}
}

// Kind implements Shape.
func (Polygon) Kind() Kind { return KindPolygon }

// Contains reports whether p lies inside the polygon using the even-odd
// rule.
func (pg Polygon) Contains(p Point) bool {
	pts := pg.Points
	n := len(pts) / 2
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := pts[2*i], pts[2*i+1]
		xj, yj := pts[2*j], pts[2*j+1]
		if (yi > p.Y) != (yj > p.Y) && p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

func (pg Polygon) clone() Shape {
	return Polygon{Points: slices.Clone(pg.Points)}
}
