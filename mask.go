package region

import (
	"image"

	"golang.org/x/image/vector"
)

// Mask rasterizes the region contour into an anti-aliased alpha mask
// covering bounds, in the same coordinate space as the region. Values range
// from 0 (outside) to 255 (fully covered).
//
// Regions whose contour has fewer than three vertices produce an empty mask.
func (r *Region) Mask(bounds image.Rectangle) *image.Alpha {
	dst := image.NewAlpha(bounds)
	pts := r.points()
	if bounds.Empty() || len(pts) < 6 {
		return dst
	}

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.MoveTo(float32(pts[0]-ox), float32(pts[1]-oy))
	for i := 2; i+1 < len(pts); i += 2 {
		z.LineTo(float32(pts[i]-ox), float32(pts[i+1]-oy))
	}
	z.ClosePath()
	z.Draw(dst, bounds, image.Opaque, image.Point{})
	return dst
}
