package region

import (
	"log/slog"
	"math"
	"slices"
)

// buildContour approximates the boundary of shape under m with a polygon.
// Curves are flattened so that the sagitta of each segment, measured after
// the transform, stays within tol.
func buildContour(shape Shape, m Matrix, hasM bool, tol float64) []float64 {
	switch v := shape.(type) {
	case Polygon:
		if hasM {
			return cleanPolygon(m.transformFlat(v.Points))
		}
		return slices.Clone(v.Points)

	case Rectangle:
		var pts []float64
		switch {
		case v.Width == 0 && v.Height == 0:
			pts = []float64{v.X, v.Y}
		case v.Width == 0 || v.Height == 0:
			pts = []float64{v.X, v.Y, v.Right(), v.Bottom()}
		default:
			pts = v.corners()
		}
		if hasM {
			return startAtLowest(cleanPolygon(m.transformFlat(pts)))
		}
		return pts

	case Circle:
		return arcContour(v.X, v.Y, v.Radius, v.Radius, 0, 0, m, hasM, tol)

	case Ellipse:
		return arcContour(v.X, v.Y, v.RadiusX, v.RadiusY, 0, 0, m, hasM, tol)

	case RoundedRectangle:
		r := v.Radius
		return arcContour(
			v.X+v.Width/2, v.Y+v.Height/2,
			r, r,
			v.Width/2-r, v.Height/2-r,
			m, hasM, tol,
		)
	}
	return nil
}

// arcSteps returns the number of segments per quadrant for an arc whose
// radii appear as sx, sy on screen.
func arcSteps(sx, sy, tol float64) int {
	dt := 2 * math.Acos(1-math.Min(tol/math.Max(sx, sy), 1))
	return max(int(math.Ceil(math.Pi/2/dt)), 1)
}

// arcContour traces the four quadrant arcs of radii rx, ry around the
// center (cx, cy). Each arc center is pushed outward by (dx, dy), which
// turns the ellipse into a rounded rectangle when the offsets are non-zero.
// Points run in increasing angle order, which is counter-clockwise in the
// canonical winding, starting from the topmost, then leftmost, vertex.
func arcContour(cx, cy, rx, ry, dx, dy float64, m Matrix, hasM bool, tol float64) []float64 {
	sx, sy := rx, ry
	if hasM {
		sx = rx * math.Hypot(m.A, m.D)
		sy = ry * math.Hypot(m.B, m.E)
	}
	n := arcSteps(sx, sy, tol)
	Logger().Debug("region: arc contour", slog.Int("steps", n), slog.Float64("sx", sx), slog.Float64("sy", sy))

	// Quarter-arc offsets; the end points are exact so that mirrored
	// quadrants meet on identical coordinates.
	ux := make([]float64, n+1)
	uy := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) * (math.Pi / 2) / float64(n)
		ux[i] = rx * math.Cos(t)
		uy[i] = ry * math.Sin(t)
	}
	ux[0], uy[0] = rx, 0
	ux[n], uy[n] = 0, ry

	pts := make([]float64, 0, 8*(n+1))
	for i := 0; i <= n; i++ {
		pts = append(pts, cx+dx+ux[i], cy+dy+uy[i])
	}
	for i := n; i >= 0; i-- {
		pts = append(pts, cx-dx-ux[i], cy+dy+uy[i])
	}
	for i := 0; i <= n; i++ {
		pts = append(pts, cx-dx-ux[i], cy-dy-uy[i])
	}
	for i := n; i >= 0; i-- {
		pts = append(pts, cx+dx+ux[i], cy-dy-uy[i])
	}

	if hasM {
		pts = m.transformFlat(pts)
	}
	return startAtLowest(cleanPolygon(pts))
}
