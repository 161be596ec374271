package region

import "math"

// ContainsPoint reports whether p lies inside the region.
//
// Polygons are tested with the even-odd rule after a bounds check. Other
// shapes under a residual transform are tested in their own coordinates by
// mapping p through the inverse transform; a singular transform contains
// nothing.
func (r *Region) ContainsPoint(p Point) bool {
	if pg, ok := r.shape.(Polygon); ok {
		if !r.Bounds().encloses(p) {
			return false
		}
		return pg.Contains(p)
	}
	if r.hasTransform {
		if !r.invertible {
			return false
		}
		p = r.inverse.TransformPoint(p)
	}
	return r.shape.Contains(p)
}

// ContainsCircle reports whether the circle centered at p with the given
// radius lies entirely inside the region. A non-positive radius degrades to
// ContainsPoint.
func (r *Region) ContainsCircle(p Point, radius float64) bool {
	if radius <= 0 {
		return r.ContainsPoint(p)
	}

	b := r.Bounds()
	if p.X-radius < b.X || p.X+radius > b.Right() ||
		p.Y-radius < b.Y || p.Y+radius > b.Bottom() {
		return false
	}

	if !r.hasTransform {
		switch v := r.shape.(type) {
		case Rectangle:
			// The bounds of an untransformed rectangle are the rectangle.
			return true
		case Circle:
			if radius > v.Radius {
				return false
			}
			dx, dy := p.X-v.X, p.Y-v.Y
			d := v.Radius - radius
			return dx*dx+dy*dy <= d*d
		}
	}

	if !r.ContainsPoint(p) {
		return false
	}
	return !r.edgeWithin(p, radius*radius)
}

// IntersectsCircle reports whether the circle centered at p with the given
// radius overlaps the region. A non-positive radius degrades to
// ContainsPoint.
func (r *Region) IntersectsCircle(p Point, radius float64) bool {
	if radius <= 0 {
		return r.ContainsPoint(p)
	}

	b := r.Bounds()
	if p.X+radius < b.X || p.X-radius > b.Right() ||
		p.Y+radius < b.Y || p.Y-radius > b.Bottom() {
		return false
	}

	if !r.hasTransform {
		switch v := r.shape.(type) {
		case Rectangle:
			dx := p.X - math.Max(v.X, math.Min(p.X, v.Right()))
			dy := p.Y - math.Max(v.Y, math.Min(p.Y, v.Bottom()))
			return dx*dx+dy*dy < radius*radius
		case Circle:
			dx, dy := p.X-v.X, p.Y-v.Y
			d := v.Radius + radius
			return dx*dx+dy*dy < d*d
		}
	}

	if r.ContainsPoint(p) {
		return true
	}
	return r.edgeWithin(p, radius*radius)
}

// edgeWithin reports whether any contour edge, the closing edge included,
// passes closer than sqrt(r2) to p.
func (r *Region) edgeWithin(p Point, r2 float64) bool {
	pts := r.points()
	n := len(pts) / 2
	if n == 0 {
		return false
	}
	a := Point{X: pts[2*n-2], Y: pts[2*n-1]}
	for i := 0; i < n; i++ {
		b := Point{X: pts[2*i], Y: pts[2*i+1]}
		if segmentDistanceSquared(p, a, b) < r2 {
			return true
		}
		a = b
	}
	return false
}
