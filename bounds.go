package region

import "math"

// computeBounds returns the axis-aligned bounding box of shape placed under
// m. Polygons with fewer than three vertices have empty bounds.
func computeBounds(shape Shape, m Matrix, hasM bool) Rectangle {
	switch v := shape.(type) {
	case Polygon:
		return polygonBounds(v.Points)

	case Rectangle:
		if !hasM {
			return v
		}
		return polygonBounds(m.transformFlat(v.corners()))

	case RoundedRectangle:
		if !hasM {
			return Rectangle{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
		}
		// Inner rectangle through the corner-arc centers, expanded by the
		// image of a circle of the corner radius.
		r := v.Radius
		inner := Rectangle{X: v.X + r, Y: v.Y + r, Width: v.Width - 2*r, Height: v.Height - 2*r}
		box := polygonBounds(m.transformFlat(inner.corners()))
		ex, ey := ellipseExtent(m, r, r)
		return Rectangle{X: box.X - ex, Y: box.Y - ey, Width: box.Width + 2*ex, Height: box.Height + 2*ey}

	case Circle:
		return ellipseBounds(v.X, v.Y, v.Radius, v.Radius, m, hasM)

	case Ellipse:
		return ellipseBounds(v.X, v.Y, v.RadiusX, v.RadiusY, m, hasM)
	}
	return Rectangle{}
}

// ellipseBounds bounds the axis-aligned ellipse centered at (cx, cy) with
// radii rx, ry after applying m.
func ellipseBounds(cx, cy, rx, ry float64, m Matrix, hasM bool) Rectangle {
	if !hasM {
		return Rectangle{X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry}
	}
	c := m.TransformPoint(Point{X: cx, Y: cy})
	ex, ey := ellipseExtent(m, rx, ry)
	return Rectangle{X: c.X - ex, Y: c.Y - ey, Width: 2 * ex, Height: 2 * ey}
}

// ellipseExtent returns the half extents along x and y of the image of an
// axis-aligned ellipse with radii rx, ry under the linear part of m.
//
// The ellipse point at parameter t maps to
//
//	x(t) = A*rx*cos(t) + B*ry*sin(t)
//
// which peaks at t = atan2(B*ry, A*rx); y is handled the same way with the
// second row.
func ellipseExtent(m Matrix, rx, ry float64) (float64, float64) {
	support := func(p, q float64) float64 {
		t := math.Atan2(q, p)
		return math.Abs(p*math.Cos(t) + q*math.Sin(t))
	}
	return support(m.A*rx, m.B*ry), support(m.D*rx, m.E*ry)
}

// polygonBounds scans a flat point list for its extremes.
func polygonBounds(pts []float64) Rectangle {
	if len(pts) < 6 {
		return Rectangle{}
	}
	minX, minY := pts[0], pts[1]
	maxX, maxY := minX, minY
	for i := 2; i+1 < len(pts); i += 2 {
		x, y := pts[i], pts[i+1]
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
