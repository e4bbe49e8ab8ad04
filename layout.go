package sweep

import "github.com/gogpu/gputypes"

// Byte sizes of the interleaved vertex produced by Mesh.Interleaved32.
const (
	positionSize = 3 * 4
	normalSize   = 3 * 4

	// VertexStride is the byte stride of one interleaved vertex.
	VertexStride = positionSize + normalSize
)

// MeshLayout describes how a renderer should bind the buffers of a Mesh:
// one interleaved vertex buffer (position at location 0, normal at
// location 1), uint32 indices, and a triangle list whose front face follows
// the winding of the swept cross sections.
type MeshLayout struct {
	VertexBuffers []gputypes.VertexBufferLayout
	IndexFormat   gputypes.IndexFormat
	Primitive     gputypes.PrimitiveState
}

// Layout returns the GPU binding description of m.
func (m *Mesh) Layout() MeshLayout {
	front := gputypes.FrontFaceCCW
	if m.Winding == Clockwise {
		front = gputypes.FrontFaceCW
	}
	return MeshLayout{
		VertexBuffers: []gputypes.VertexBufferLayout{
			{
				ArrayStride: VertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},            // position
					{Format: gputypes.VertexFormatFloat32x3, Offset: positionSize, ShaderLocation: 1}, // normal
				},
			},
		},
		IndexFormat: gputypes.IndexFormatUint32,
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: front,
			CullMode:  gputypes.CullModeBack,
		},
	}
}
