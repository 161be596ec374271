package stencil

import (
	"encoding/binary"
	"errors"
	"log/slog"
	"math"

	"github.com/gogpu/region"
)

// ErrEmptyContour is returned when a region contour has fewer than three
// vertices and therefore produces no triangles.
var ErrEmptyContour = errors.New("stencil: region contour has no area")

// coverPadding is the number of units added around the AABB when generating
// the cover quad, so that anti-aliased edges at the boundary are covered
// during the cover pass.
const coverPadding = 1.0

// initialVertexCapacity is the initial capacity of the vertex slice, measured
// in float32 values. 6 floats = 1 triangle.
const initialVertexCapacity = 256

// FanTessellator converts region contours into triangle fan vertices for
// stencil fill.
//
// The first contour vertex (v0) is the fan center and a triangle
// (v0, vi, vi+1) is emitted for every following edge. The stencil pass
// resolves winding, so concave polygons need no further triangulation.
//
// The tessellator is designed to be reused across frames via Reset().
type FanTessellator struct {
	// vertices holds x, y pairs for fan triangles.
	// Every 6 consecutive floats represent one triangle (3 vertices x 2 coords).
	vertices []float32

	// bounds is the axis-aligned bounding box: [minX, minY, maxX, maxY].
	bounds [4]float32

	// hasBounds tracks whether any vertex has been added to the bounds.
	hasBounds bool
}

// NewFanTessellator creates a new tessellator with pre-allocated capacity.
func NewFanTessellator() *FanTessellator {
	return &FanTessellator{
		vertices: make([]float32, 0, initialVertexCapacity),
	}
}

// Reset clears the tessellator state for reuse without releasing memory.
func (ft *FanTessellator) Reset() {
	ft.vertices = ft.vertices[:0]
	ft.bounds = [4]float32{}
	ft.hasBounds = false
}

// TessellateRegion appends the fan triangles of r's contour.
//
// Returns the number of vertices emitted by this call, or ErrEmptyContour
// if the contour cannot enclose any area.
func (ft *FanTessellator) TessellateRegion(r *region.Region) (int, error) {
	pts := r.Contour()
	if len(pts) < 6 {
		return 0, ErrEmptyContour
	}

	before := len(ft.vertices)
	ox, oy := pts[0], pts[1]
	ft.updateBounds(float32(ox), float32(oy))
	px, py := pts[2], pts[3]
	ft.updateBounds(float32(px), float32(py))
	for i := 4; i+1 < len(pts); i += 2 {
		x, y := pts[i], pts[i+1]
		ft.updateBounds(float32(x), float32(y))
		ft.emitFanTriangle(ox, oy, px, py, x, y)
		px, py = x, y
	}

	emitted := (len(ft.vertices) - before) / 2
	region.Logger().Debug("stencil: tessellated region",
		slog.String("kind", r.Kind().String()),
		slog.Int("vertices", emitted))
	return emitted, nil
}

// Vertices returns the raw vertex buffer data as x,y float32 pairs.
// Every 6 consecutive values represent one triangle (3 vertices).
func (ft *FanTessellator) Vertices() []float32 {
	return ft.vertices
}

// Bytes returns the vertex data encoded as little-endian float32 values,
// ready for upload into a buffer described by VertexLayout.
func (ft *FanTessellator) Bytes() []byte {
	buf := make([]byte, 4*len(ft.vertices))
	for i, v := range ft.vertices {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// Bounds returns the axis-aligned bounding box of all tessellated vertices.
// Format: [minX, minY, maxX, maxY]. Returns zeroes if nothing was tessellated.
func (ft *FanTessellator) Bounds() [4]float32 {
	return ft.bounds
}

// CoverQuad returns 6 vertices (2 triangles) forming a rectangle that covers
// the bounding box plus coverPadding units of padding.
//
// Triangle layout (counter-clockwise):
//
//	Triangle 1: (minX, minY), (maxX, minY), (maxX, maxY)
//	Triangle 2: (minX, minY), (maxX, maxY), (minX, maxY)
func (ft *FanTessellator) CoverQuad() [12]float32 {
	minX := ft.bounds[0] - coverPadding
	minY := ft.bounds[1] - coverPadding
	maxX := ft.bounds[2] + coverPadding
	maxY := ft.bounds[3] + coverPadding

	return [12]float32{
		minX, minY, maxX, minY, maxX, maxY,
		minX, minY, maxX, maxY, minX, maxY,
	}
}

// TriangleCount returns the number of triangles in the tessellated output.
func (ft *FanTessellator) TriangleCount() int {
	return len(ft.vertices) / 6
}

// emitFanTriangle appends a single triangle (v0, v1, v2) to the vertex buffer.
// Degenerate triangles (zero area) are skipped.
func (ft *FanTessellator) emitFanTriangle(v0x, v0y, v1x, v1y, v2x, v2y float64) {
	ax, ay := v1x-v0x, v1y-v0y
	bx, by := v2x-v0x, v2y-v0y
	if ax*by-ay*bx == 0 {
		return
	}

	ft.vertices = append(ft.vertices,
		float32(v0x), float32(v0y),
		float32(v1x), float32(v1y),
		float32(v2x), float32(v2y),
	)
}

// updateBounds expands the AABB to include the given point.
func (ft *FanTessellator) updateBounds(x, y float32) {
	if !ft.hasBounds {
		ft.bounds = [4]float32{x, y, x, y}
		ft.hasBounds = true
		return
	}
	ft.bounds[0] = min(ft.bounds[0], x)
	ft.bounds[1] = min(ft.bounds[1], y)
	ft.bounds[2] = max(ft.bounds[2], x)
	ft.bounds[3] = max(ft.bounds[3], y)
}
