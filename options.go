package region

// DefaultTolerance is the maximum distance, in device units, between a curved
// boundary and its contour approximation.
const DefaultTolerance = 0.5

// Option configures a Region during creation.
//
// Example:
//
//	// Plain circle
//	r := region.From(region.Circle{X: 0, Y: 0, Radius: 10})
//
//	// Circle seen through a camera transform, with a finer contour
//	r := region.From(region.Circle{Radius: 10},
//	    region.WithTransform(view),
//	    region.WithTolerance(0.25))
type Option func(*options)

// options holds optional configuration for Region creation.
type options struct {
	transform    Matrix
	hasTransform bool
	tolerance    float64
}

// defaultOptions returns the default region options.
// A zero tolerance means "unset" and is resolved by From.
func defaultOptions() options {
	return options{
		transform: Identity(),
	}
}

// WithTransform places the shape under the affine transform m.
// When From is given an existing *Region, m is applied after the
// region's own transform.
func WithTransform(m Matrix) Option {
	return func(o *options) {
		o.transform = m
		o.hasTransform = true
	}
}

// WithTolerance sets the contour flattening tolerance in device units.
// Non-positive values keep the default.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}
