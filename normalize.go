package region

import (
	"log/slog"
	"math"
	"slices"
)

// foldEpsilon is the threshold below which a matrix term is treated as zero
// when deciding whether a transform can be folded into a shape.
const foldEpsilon = 1e-4

// startEpsilon is the coordinate tolerance used when picking the first
// contour vertex.
const startEpsilon = 1e-9

// normalize reduces shape under transform m to its canonical form and the
// smallest residual transform. The returned shape never aliases the input.
func normalize(shape Shape, m Matrix, hasM bool) (Shape, Matrix, bool) {
	s := canonicalize(shape)

	if hasM && m.IsIdentity() {
		hasM = false
	}
	if hasM {
		if folded, ok := foldAxisAligned(s, m); ok {
			Logger().Debug("region: folded axis-aligned transform", slog.String("kind", s.Kind().String()))
			s, hasM = canonicalize(folded), false
		} else if folded, ok := foldOrthogonal(s, m); ok {
			Logger().Debug("region: folded orthogonal transform", slog.String("kind", s.Kind().String()))
			s, hasM = canonicalize(folded), false
		}
	}

	// Rectangles and polygons take the transform point-wise. Their vertex
	// order then restarts at the lowest vertex, as curved contours do.
	mapped := false
	if hasM {
		switch v := s.(type) {
		case Rectangle:
			s, hasM, mapped = Polygon{Points: m.transformFlat(v.corners())}, false, true
		case Polygon:
			s, hasM, mapped = Polygon{Points: m.transformFlat(v.Points)}, false, true
		default:
			Logger().Debug("region: keeping residual transform", slog.String("kind", s.Kind().String()))
		}
	}

	if pg, ok := s.(Polygon); ok {
		pts := cleanPolygon(pg.Points)
		if mapped {
			pts = startAtLowest(pts)
		}
		s = Polygon{Points: pts}
	}
	if !hasM {
		m = Identity()
	}
	return s, m, hasM
}

// canonicalize sanitizes negative extents and returns the simplest kind that
// describes the same set of points. Boxes with a negative width or height
// are re-anchored so they cover the same area; negative radii are clamped to
// zero. The result is always a fresh value.
func canonicalize(shape Shape) Shape {
	switch v := shape.(type) {
	case Rectangle:
		return anchorRect(v.X, v.Y, v.Width, v.Height)

	case RoundedRectangle:
		box := anchorRect(v.X, v.Y, v.Width, v.Height)
		w, h := box.Width, box.Height
		r := math.Min(v.Radius, math.Min(w, h)/2)
		if !(r > 0) {
			return box
		}
		if w == h && r >= w/2 {
			return Circle{X: box.X + w/2, Y: box.Y + h/2, Radius: w / 2}
		}
		return RoundedRectangle{X: box.X, Y: box.Y, Width: w, Height: h, Radius: r}

	case Circle:
		return Circle{X: v.X, Y: v.Y, Radius: math.Max(v.Radius, 0)}

	case Ellipse:
		rx, ry := math.Max(v.RadiusX, 0), math.Max(v.RadiusY, 0)
		if rx == ry {
			return Circle{X: v.X, Y: v.Y, Radius: rx}
		}
		return Ellipse{X: v.X, Y: v.Y, RadiusX: rx, RadiusY: ry}

	case Polygon:
		return Polygon{Points: slices.Clone(v.Points)}

	default:
		// Foreign Shape implementations are not representable; treat them
		// as empty.
		return Polygon{}
	}
}

// foldAxisAligned bakes a scale+translate or swap+translate transform into
// the shape. In column-major terms (a=A, b=D, c=B, d=E) the first case has
// |b|, |c| ~ 0 and the second |a|, |d| ~ 0. Polygons are left to the
// point-wise path.
func foldAxisAligned(s Shape, m Matrix) (Shape, bool) {
	a, b, c, d := m.A, m.D, m.B, m.E
	tx, ty := m.C, m.F

	switch {
	case math.Abs(b) < foldEpsilon && math.Abs(c) < foldEpsilon:
		switch v := s.(type) {
		case Rectangle:
			return anchorRect(a*v.X+tx, d*v.Y+ty, a*v.Width, d*v.Height), true
		case RoundedRectangle:
			if math.Abs(math.Abs(a)-math.Abs(d)) >= foldEpsilon {
				return nil, false
			}
			box := anchorRect(a*v.X+tx, d*v.Y+ty, a*v.Width, d*v.Height)
			k := (math.Abs(a) + math.Abs(d)) / 2
			return RoundedRectangle{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height, Radius: v.Radius * k}, true
		case Circle:
			return Ellipse{X: a*v.X + tx, Y: d*v.Y + ty, RadiusX: math.Abs(a) * v.Radius, RadiusY: math.Abs(d) * v.Radius}, true
		case Ellipse:
			return Ellipse{X: a*v.X + tx, Y: d*v.Y + ty, RadiusX: math.Abs(a) * v.RadiusX, RadiusY: math.Abs(d) * v.RadiusY}, true
		}

	case math.Abs(a) < foldEpsilon && math.Abs(d) < foldEpsilon:
		// x' = c*y + tx, y' = b*x + ty
		switch v := s.(type) {
		case Rectangle:
			return anchorRect(c*v.Y+tx, b*v.X+ty, c*v.Height, b*v.Width), true
		case RoundedRectangle:
			if math.Abs(math.Abs(b)-math.Abs(c)) >= foldEpsilon {
				return nil, false
			}
			box := anchorRect(c*v.Y+tx, b*v.X+ty, c*v.Height, b*v.Width)
			k := (math.Abs(b) + math.Abs(c)) / 2
			return RoundedRectangle{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height, Radius: v.Radius * k}, true
		case Circle:
			return Ellipse{X: c*v.Y + tx, Y: b*v.X + ty, RadiusX: math.Abs(c) * v.Radius, RadiusY: math.Abs(b) * v.Radius}, true
		case Ellipse:
			return Ellipse{X: c*v.Y + tx, Y: b*v.X + ty, RadiusX: math.Abs(c) * v.RadiusY, RadiusY: math.Abs(b) * v.RadiusX}, true
		}
	}
	return nil, false
}

// foldOrthogonal handles transforms whose rows are orthogonal (rotation
// combined with per-axis scale). Only a circle maps to an axis-aligned
// ellipse under such a transform; canonicalize has already turned circular
// ellipses and rounded rectangles into circles.
func foldOrthogonal(s Shape, m Matrix) (Shape, bool) {
	v, ok := s.(Circle)
	if !ok {
		return nil, false
	}
	if math.Abs(m.A*m.D+m.B*m.E) >= foldEpsilon {
		return nil, false
	}
	center := m.TransformPoint(Point{X: v.X, Y: v.Y})
	return Ellipse{
		X:       center.X,
		Y:       center.Y,
		RadiusX: v.Radius * math.Hypot(m.A, m.B),
		RadiusY: v.Radius * math.Hypot(m.D, m.E),
	}, true
}

// anchorRect builds a rectangle from a possibly negative extent, moving the
// origin so that width and height are non-negative.
func anchorRect(x, y, w, h float64) Rectangle {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// cleanPolygon drops consecutive duplicate vertices, including a closing
// vertex equal to the first one, and rewinds the result counter-clockwise.
// A trailing odd coordinate is ignored. The input is not modified.
func cleanPolygon(pts []float64) []float64 {
	n := len(pts) &^ 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i += 2 {
		x, y := pts[i], pts[i+1]
		if k := len(out); k >= 2 && out[k-2] == x && out[k-1] == y {
			continue
		}
		out = append(out, x, y)
	}
	for k := len(out); k >= 4 && out[0] == out[k-2] && out[1] == out[k-1]; k = len(out) {
		out = out[:k-2]
	}

	if windingSum(out) > 0 {
		reversePairs(out)
		Logger().Debug("region: rewound polygon", slog.Int("vertices", len(out)/2))
	}
	if len(out) < 6 && n >= 6 {
		Logger().Debug("region: polygon collapsed", slog.Int("vertices", len(out)/2))
	}
	return out
}

// startAtLowest rotates a closed contour in place so that it starts at the
// vertex with the smallest y, ties broken by the smallest x. Coordinates
// within startEpsilon compare equal. Shapes that reach the same outline
// through different folds then produce the same vertex sequence.
func startAtLowest(pts []float64) []float64 {
	n := len(pts) / 2
	if n < 2 {
		return pts
	}
	best := 0
	for i := 1; i < n; i++ {
		x, y := pts[2*i], pts[2*i+1]
		bx, by := pts[2*best], pts[2*best+1]
		if y < by-startEpsilon || (math.Abs(y-by) <= startEpsilon && x < bx-startEpsilon) {
			best = i
		}
	}
	if best != 0 {
		head := slices.Clone(pts[:2*best])
		copy(pts, pts[2*best:2*n])
		copy(pts[2*(n-best):], head)
	}
	return pts
}

// windingSum returns the shoelace sum Σ(x2-x1)(y2+y1) over all edges,
// including the closing one. A positive sum means the vertices run the
// opposite way from the canonical order.
func windingSum(pts []float64) float64 {
	n := len(pts) / 2
	if n < 3 {
		return 0
	}
	sum := 0.0
	x1, y1 := pts[2*n-2], pts[2*n-1]
	for i := 0; i < n; i++ {
		x2, y2 := pts[2*i], pts[2*i+1]
		sum += (x2 - x1) * (y2 + y1)
		x1, y1 = x2, y2
	}
	return sum
}

// reversePairs reverses the order of the x,y pairs in place.
func reversePairs(pts []float64) {
	for i, j := 0, len(pts)-2; i < j; i, j = i+2, j-2 {
		pts[i], pts[j] = pts[j], pts[i]
		pts[i+1], pts[j+1] = pts[j+1], pts[i+1]
	}
}
