package resource

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Buffer is a vertex buffer plus its VAO, laid out as interleaved
// [x y z nx ny nz] vertices (location 0 position, location 1 normal).
type Buffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// CreateBuffer uploads interleaved position+normal vertex data, registers
// the buffer for managed release and returns it. On failure the partially
// created objects are released before the error propagates.
func (m *Manager) CreateBuffer(data []float32) (*Buffer, error) {
	b, err := newBuffer(data)
	if err != nil {
		return nil, &CreationError{Kind: "buffer", Err: err}
	}
	m.Track(b)
	return b, nil
}

func newBuffer(data []float32) (*Buffer, error) {
	if len(data) == 0 || len(data)%6 != 0 {
		return nil, fmt.Errorf("vertex data must be non-empty groups of 6 floats, got %d", len(data))
	}

	b := &Buffer{count: int32(len(data) / 6)}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*floatSize, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*floatSize, 3*floatSize)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		b.Release()
		return nil, fmt.Errorf("uploading vertex data: GL error 0x%x", errCode)
	}

	return b, nil
}

// Bind makes this buffer's VAO current.
func (b *Buffer) Bind() {
	gl.BindVertexArray(b.vao)
}

// Unbind clears the current VAO.
func (b *Buffer) Unbind() {
	gl.BindVertexArray(0)
}

// Draw issues one non-indexed triangle draw call over the whole buffer. The
// buffer must be bound.
func (b *Buffer) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
}

// Release deletes the GL objects. Safe to call more than once.
func (b *Buffer) Release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}
