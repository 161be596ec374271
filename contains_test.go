package region

import (
	"math"
	"testing"
)

func TestRectangleExample(t *testing.T) {
	r := From(Rect(0, 0, 10, 10))

	if got, want := r.Bounds(), Rect(0, 0, 10, 10); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if !r.ContainsPoint(Pt(5, 5)) {
		t.Error("ContainsPoint(5, 5) = false, want true")
	}
	if r.ContainsPoint(Pt(15, 5)) {
		t.Error("ContainsPoint(15, 5) = true, want false")
	}
	if !r.ContainsCircle(Pt(5, 5), 4) {
		t.Error("ContainsCircle(5, 5, 4) = false, want true")
	}
	if r.ContainsCircle(Pt(5, 5), 6) {
		t.Error("ContainsCircle(5, 5, 6) = true, want false")
	}
}

func TestContainsPoint(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		m     *Matrix
		p     Point
		want  bool
	}{
		{"rect left edge", Rect(0, 0, 10, 10), nil, Pt(0, 5), true},
		{"rect right edge open", Rect(0, 0, 10, 10), nil, Pt(10, 5), false},
		{"rect zero width", Rect(0, 0, 0, 10), nil, Pt(0, 5), false},
		{"circle boundary", Circle{Radius: 10}, nil, Pt(10, 0), true},
		{"circle outside", Circle{Radius: 10}, nil, Pt(7.1, 7.1), false},
		{"circle zero radius", Circle{}, nil, Pt(0, 0), false},
		{"ellipse inside", Ellipse{RadiusX: 20, RadiusY: 10}, nil, Pt(19, 0), true},
		{"ellipse outside", Ellipse{RadiusX: 20, RadiusY: 10}, nil, Pt(0, 11), false},
		{"rounded center", RoundedRectangle{Width: 20, Height: 10, Radius: 4}, nil, Pt(10, 5), true},
		{"rounded edge band", RoundedRectangle{Width: 20, Height: 10, Radius: 4}, nil, Pt(0.5, 5), true},
		{"rounded cut corner", RoundedRectangle{Width: 20, Height: 10, Radius: 4}, nil, Pt(0.5, 0.5), false},
		{"rounded inside corner arc", RoundedRectangle{Width: 20, Height: 10, Radius: 4}, nil, Pt(18.5, 8.5), true},
		{"rounded outside corner arc", RoundedRectangle{Width: 20, Height: 10, Radius: 4}, nil, Pt(19, 9), false},
		{"triangle inside", Poly(Pt(0, 0), Pt(10, 0), Pt(0, 10)), nil, Pt(2, 2), true},
		{"triangle outside", Poly(Pt(0, 0), Pt(10, 0), Pt(0, 10)), nil, Pt(6, 6), false},
		{"concave notch", Poly(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(5, 5), Pt(0, 10)), nil, Pt(5, 8), false},
		{"sheared circle inside", Circle{Radius: 10}, ptr(Shear(0.5, 0)), Pt(5, 9.9), true},
		{"sheared circle outside", Circle{Radius: 10}, ptr(Shear(0.5, 0)), Pt(-5, 9.9), false},
		{"rotated ellipse along axis", Ellipse{RadiusX: 10, RadiusY: 2}, ptr(Rotate(math.Pi / 4)), Pt(6, 6), true},
		{"rotated ellipse across axis", Ellipse{RadiusX: 10, RadiusY: 2}, ptr(Rotate(math.Pi / 4)), Pt(6, -6), false},
		{"singular transform", Ellipse{RadiusX: 10, RadiusY: 2}, ptr(Matrix{A: 1, B: 1, D: 1, E: 1}), Pt(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.m != nil {
				opts = append(opts, WithTransform(*tt.m))
			}
			if got := From(tt.shape, opts...).ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContainsCircle(t *testing.T) {
	ellipse := From(Ellipse{RadiusX: 20, RadiusY: 10})
	rotated := From(RoundedRectangle{Width: 40, Height: 20, Radius: 5}, WithTransform(Rotate(0.5)))
	center := Rotate(0.5).TransformPoint(Pt(20, 10))

	tests := []struct {
		name   string
		r      *Region
		p      Point
		radius float64
		want   bool
	}{
		{"circle concentric fit", From(Circle{Radius: 10}), Pt(0, 0), 10, true},
		{"circle offset overflow", From(Circle{Radius: 10}), Pt(1, 0), 10, false},
		{"circle offset fit", From(Circle{Radius: 10}), Pt(3, 4), 5, true},
		{"rect touching edge", From(Rect(0, 0, 10, 10)), Pt(5, 5), 5, true},
		{"ellipse center", ellipse, Pt(0, 0), 5, true},
		{"ellipse taller than minor axis", ellipse, Pt(0, 0), 10.5, false},
		{"ellipse near flank", ellipse, Pt(10, 0), 9, false},
		{"ellipse outside bounds", ellipse, Pt(15, 0), 6, false},
		{"rotated rounded center", rotated, center, 8, true},
		{"rotated rounded too large", rotated, center, 11, false},
		{"zero radius is point test", ellipse, Pt(19, 0), 0, true},
		{"negative radius is point test", ellipse, Pt(25, 0), -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ContainsCircle(tt.p, tt.radius); got != tt.want {
				t.Errorf("ContainsCircle(%+v, %v) = %v, want %v", tt.p, tt.radius, got, tt.want)
			}
		})
	}
}

func TestIntersectsCircle(t *testing.T) {
	ellipse := From(Ellipse{RadiusX: 20, RadiusY: 10})
	triangle := From(Poly(Pt(0, 0), Pt(10, 0), Pt(0, 10)))

	tests := []struct {
		name   string
		r      *Region
		p      Point
		radius float64
		want   bool
	}{
		{"rect beside", From(Rect(0, 0, 10, 10)), Pt(15, 5), 6, true},
		{"rect beside short", From(Rect(0, 0, 10, 10)), Pt(15, 5), 4, false},
		{"rect corner diagonal", From(Rect(0, 0, 10, 10)), Pt(13, 14), 4.9, false},
		{"rect corner diagonal reach", From(Rect(0, 0, 10, 10)), Pt(13, 14), 5.1, true},
		{"circle apart", From(Circle{Radius: 10}), Pt(25, 0), 14, false},
		{"circle overlap", From(Circle{Radius: 10}), Pt(25, 0), 16, true},
		{"ellipse vertex reach", ellipse, Pt(25, 0), 6, true},
		{"ellipse outside bounds", ellipse, Pt(25, 0), 4, false},
		{"ellipse center inside", ellipse, Pt(1, 1), 0.5, true},
		{"triangle hypotenuse", triangle, Pt(6, 6), 1.5, true},
		{"triangle far", triangle, Pt(8, 8), 1.5, false},
		{"zero radius is point test", triangle, Pt(2, 2), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IntersectsCircle(tt.p, tt.radius); got != tt.want {
				t.Errorf("IntersectsCircle(%+v, %v) = %v, want %v", tt.p, tt.radius, got, tt.want)
			}
		})
	}
}

func TestSegmentDistanceSquared(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular foot", Pt(5, 3), Pt(0, 0), Pt(10, 0), 9},
		{"before start", Pt(-3, 4), Pt(0, 0), Pt(10, 0), 25},
		{"past end", Pt(13, 4), Pt(0, 0), Pt(10, 0), 25},
		{"zero length", Pt(3, 4), Pt(0, 0), Pt(0, 0), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentDistanceSquared(tt.p, tt.a, tt.b); !near(got, tt.want) {
				t.Errorf("segmentDistanceSquared = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryProperties(t *testing.T) {
	transforms := []*Matrix{
		nil,
		ptr(Rotate(0.6)),
		ptr(Shear(0.4, -0.2)),
		ptr(Translate(3, -2).Multiply(Scale(1.5, 0.75))),
	}
	radii := []float64{0, 0.5, 2, 5}

	for _, s := range sampleShapes() {
		for _, m := range transforms {
			var opts []Option
			if m != nil {
				opts = append(opts, WithTransform(*m))
			}
			r := From(s, opts...)
			b := r.Bounds()

			for x := b.X - 10; x <= b.Right()+10; x += 1.7 {
				for y := b.Y - 10; y <= b.Bottom()+10; y += 1.3 {
					p := Pt(x, y)
					inside := r.ContainsPoint(p)
					if r.IntersectsCircle(p, 0) != inside {
						t.Fatalf("%v %v: IntersectsCircle(%+v, 0) != ContainsPoint", s.Kind(), m, p)
					}
					for _, rad := range radii {
						if r.ContainsCircle(p, rad) && !inside {
							t.Fatalf("%v %v: ContainsCircle(%+v, %v) without ContainsPoint", s.Kind(), m, p, rad)
						}
						if r.ContainsCircle(p, rad) && !r.IntersectsCircle(p, rad) {
							t.Fatalf("%v %v: ContainsCircle(%+v, %v) without IntersectsCircle", s.Kind(), m, p, rad)
						}
					}
				}
			}

			far := Pt(b.Right()+1000, b.Bottom()+1000)
			if r.ContainsPoint(far) || r.IntersectsCircle(far, 5) {
				t.Errorf("%v %v: far point reported inside", s.Kind(), m)
			}
		}
	}
}

func ptr(m Matrix) *Matrix { return &m }
