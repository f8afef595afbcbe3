package resource

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tableview/internal/engine/shader"
	"github.com/Faultbox/tableview/pkg/math"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// CreateProgram compiles and links a shader program, registers it for
// managed release and returns it. Compile and link failures surface as
// CreationError; the driver releases intermediate shader objects itself.
func (m *Manager) CreateProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, &CreationError{Kind: "program", Err: err}
	}

	p := &Program{
		id:       id,
		uniforms: make(map[string]int32),
	}
	m.Track(p)
	return p, nil
}

// Use makes this program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// uniform returns the cached location for a uniform name.
func (p *Program) uniform(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = shader.UniformLocation(p.id, name)
		p.uniforms[name] = loc
	}
	return loc
}

// SetMat4 uploads a 4x4 matrix uniform. The program must be in use.
func (p *Program) SetMat4(name string, m *math.Mat4) {
	gl.UniformMatrix4fv(p.uniform(name), 1, false, m.Ptr())
}

// SetVec3 uploads a vec3 uniform. The program must be in use.
func (p *Program) SetVec3(name string, x, y, z float32) {
	gl.Uniform3f(p.uniform(name), x, y, z)
}

// Release deletes the program. Safe to call more than once.
func (p *Program) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
