package region

import (
	"slices"
	"sync"
)

// Region is an immutable shape in canonical form, optionally placed under a
// residual affine transform that could not be folded into the shape.
//
// Bounds and contour are computed on first use and cached for the lifetime
// of the Region. A Region has no setters, so it is safe for concurrent use.
type Region struct {
	shape        Shape
	transform    Matrix
	hasTransform bool
	inverse      Matrix
	invertible   bool
	tolerance    float64

	boundsOnce sync.Once
	bounds     Rectangle

	contourOnce sync.Once
	contour     []float64
}

// From builds a Region from a shape.
//
// The shape is copied and reduced to its simplest equivalent form, and the
// transform given by WithTransform is folded into it whenever a closed form
// exists. If shape is already a *Region, the transform is composed with the
// region's residual transform instead of nesting; the region's tolerance is
// kept unless WithTolerance overrides it.
//
// From never fails: degenerate input yields a valid, possibly empty, Region.
func From(shape Shape, opts ...Option) *Region {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, hasM := o.transform, o.hasTransform
	tol := o.tolerance
	if src, ok := shape.(*Region); ok {
		shape = src.shape
		if src.hasTransform {
			m = m.Multiply(src.transform)
			hasM = true
		}
		if tol == 0 {
			tol = src.tolerance
		}
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if shape == nil {
		shape = Polygon{}
	}

	s, m, hasM := normalize(shape, m, hasM)
	r := &Region{
		shape:        s,
		transform:    m,
		hasTransform: hasM,
		tolerance:    tol,
	}
	if hasM {
		r.inverse, r.invertible = m.inverse()
	}
	return r
}

// Shape returns the normalized shape. Polygon points are copied.
func (r *Region) Shape() Shape {
	return r.shape.clone()
}

// Transform returns the residual transform and whether one is present.
// A Region whose transform was folded into its shape reports false.
func (r *Region) Transform() (Matrix, bool) {
	if !r.hasTransform {
		return Identity(), false
	}
	return r.transform, true
}

// Kind implements Shape. It reports the kind of the normalized shape.
func (r *Region) Kind() Kind {
	return r.shape.Kind()
}

// Contains implements Shape. It is equivalent to ContainsPoint.
func (r *Region) Contains(p Point) bool {
	return r.ContainsPoint(p)
}

// clone implements Shape. Regions are immutable, so the receiver is shared.
func (r *Region) clone() Shape { return r }

// Tolerance returns the contour flattening tolerance.
func (r *Region) Tolerance() float64 {
	return r.tolerance
}

// Bounds returns the smallest axis-aligned rectangle containing the region.
func (r *Region) Bounds() Rectangle {
	r.boundsOnce.Do(func() {
		r.bounds = computeBounds(r.shape, r.transform, r.hasTransform)
	})
	return r.bounds
}

// Contour returns a polygon approximation of the region boundary as a flat
// x0, y0, x1, y1, ... sequence in counter-clockwise order. The returned
// slice is a copy.
func (r *Region) Contour() []float64 {
	return slices.Clone(r.points())
}

// Points returns the contour as a slice of points.
func (r *Region) Points() []Point {
	flat := r.points()
	out := make([]Point, len(flat)/2)
	for i := range out {
		out[i] = Point{X: flat[2*i], Y: flat[2*i+1]}
	}
	return out
}

// points returns the cached contour without copying.
func (r *Region) points() []float64 {
	r.contourOnce.Do(func() {
		r.contour = buildContour(r.shape, r.transform, r.hasTransform, r.tolerance)
	})
	return r.contour
}
