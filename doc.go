// Package region provides normalized 2D shape regions for occlusion queries.
//
// # Overview
//
// A Region pairs a primitive shape (rectangle, rounded rectangle, circle,
// ellipse or polygon) with an optional affine transform. On construction the
// shape is reduced to its simplest equivalent form and the transform is
// folded into the shape parameters whenever a closed form exists, so most
// regions carry no transform at all.
//
// # Quick Start
//
//	import "github.com/gogpu/region"
//
//	r := region.From(region.Rect(0, 0, 10, 10))
//	r.Bounds()                                // {0 0 10 10}
//	r.ContainsPoint(region.Pt(5, 5))          // true
//	r.ContainsCircle(region.Pt(5, 5), 4)      // true
//	r.IntersectsCircle(region.Pt(15, 5), 6)   // true
//
//	// A scaled circle folds into an ellipse with no residual transform.
//	e := region.From(region.Circle{Radius: 10}, region.WithTransform(region.Scale(2, 1)))
//	e.Kind()                                  // ellipse
//
// # Normalization
//
// Boxes with a negative width or height are re-anchored so they cover the
// same area; negative radii are clamped to zero. Scale, flip and axis-swap
// transforms are folded into every shape kind; orthogonal transforms
// (rotation with per-axis scale) fold circles into axis-aligned ellipses.
// Rectangles and polygons never keep a transform: their points are mapped
// instead. Polygons lose consecutive duplicate vertices and are rewound to
// counter-clockwise order. Curved contours, and polygons that took a
// transform, start at their topmost, then leftmost, vertex.
//
// # Derived Data
//
// Bounds and Contour are computed on first use and cached. The contour
// flattens curves with a step count that adapts to the on-screen size of the
// shape, controlled by WithTolerance.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Regions are immutable after From returns and safe for concurrent use.
package region
