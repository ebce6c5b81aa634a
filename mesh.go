package triangle

import (
	"fmt"
	"unsafe"
)

// componentsPerVertex is the size of the position attribute (x, y, z).
const componentsPerVertex = 3

// positionAttrib is the shader input slot of the vertex position.
const positionAttrib = 0

// Mesh is an immutable vertex buffer and the vertex array describing it.
type Mesh struct {
	vao, vbo uint32
	count    int32
}

// NewMesh uploads vertices, packed xyz positions, into a new vertex buffer
// and records the position layout at attribute slot 0 in a new vertex array.
// Both objects are left unbound.
func NewMesh(dev Device, vertices []float32) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%componentsPerVertex != 0 {
		return nil, fmt.Errorf("mesh: %d floats is not a whole number of xyz positions", len(vertices))
	}

	m := &Mesh{count: int32(len(vertices) / componentsPerVertex)}

	m.vao = dev.GenVertexArray()
	dev.BindVertexArray(m.vao)

	m.vbo = dev.GenBuffer()
	dev.BindArrayBuffer(m.vbo)
	dev.ArrayBufferData(vertices)

	stride := int32(componentsPerVertex * unsafe.Sizeof(float32(0)))
	dev.VertexAttribFloats(positionAttrib, componentsPerVertex, stride, 0)

	dev.BindArrayBuffer(0)
	dev.BindVertexArray(0)

	logger.Debug("mesh uploaded", "vao", m.vao, "vbo", m.vbo, "vertices", m.count)
	return m, nil
}

// VertexCount returns the number of vertices in the buffer.
func (m *Mesh) VertexCount() int32 {
	return m.count
}

// Delete releases the vertex array and buffer. Calling it again is a no-op.
func (m *Mesh) Delete(dev Device) {
	if m.vao != 0 {
		dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
}
