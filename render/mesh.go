package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/tspython/wcanvas/rough"
)

// VertexStride is the byte size of one rough.Vertex in a vertex buffer:
// float32x2 position + float32x4 color.
const VertexStride = 24

// IndexStride is the byte size of one mesh index (uint16).
const IndexStride = 2

// VertexLayout returns the vertex buffer layout for rough mesh fragments:
// position at shader location 0, color at location 1.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// EncodeVertices serializes the mesh's vertices little-endian for vertex
// buffer upload.
func EncodeVertices(m rough.Mesh) []byte {
	buf := make([]byte, len(m.Vertices)*VertexStride)
	offset := 0
	for i := range m.Vertices {
		writeVertex(buf[offset:], &m.Vertices[i])
		offset += VertexStride
	}
	return buf
}

// EncodeIndices serializes the mesh's indices little-endian for index
// buffer upload. The result is padded to a 4-byte boundary as required
// for buffer copies of uint16 index data.
func EncodeIndices(m rough.Mesh) []byte {
	size := len(m.Indices) * IndexStride
	size = (size + 3) &^ 3
	buf := make([]byte, size)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint16(buf[i*IndexStride:], idx)
	}
	return buf
}

// writeVertex writes a single vertex into the buffer at the current position.
func writeVertex(buf []byte, v *rough.Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color[2]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color[3]))
}
