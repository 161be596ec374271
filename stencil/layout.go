// Package stencil prepares region geometry for GPU stencil-then-cover
// rendering.
//
// A region contour is emitted as a triangle fan anchored at its first
// vertex. Drawn into a stencil buffer with a non-zero or even-odd rule, the
// fan marks exactly the pixels inside the region; a cover quad over the
// region bounds then shades them. This is how lighting masks built from
// regions are rendered on the GPU.
//
// The package produces vertex data and pipeline descriptors only; device and
// queue ownership stays with the caller.
package stencil

import "github.com/gogpu/gputypes"

// VertexStride is the byte stride per vertex: 2 x float32 (x, y) = 8 bytes.
const VertexStride = 8

// VertexLayout returns the vertex buffer layout matching the data produced
// by FanTessellator: float32x2 position at location(0).
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
			},
		},
	}
}

// Primitive returns the primitive state for fan and cover draws: triangle
// list, no culling, because fan triangles of concave regions face both ways.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}
