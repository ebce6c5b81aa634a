package triangle

import "fmt"

// Scene owns every GPU object that lives for the duration of the render loop.
type Scene struct {
	dev     Device
	program Program
	mesh    *Mesh
}

// Setup builds the shader program from the configured files and uploads
// the triangle. On error nothing it created is left alive.
func Setup(dev Device, cfg Config) (*Scene, error) {
	program, err := BuildProgram(dev, cfg.VertexShaderPath, cfg.FragmentShaderPath)
	if err != nil {
		return nil, err
	}

	mesh, err := NewMesh(dev, TriangleVertices)
	if err != nil {
		dev.DeleteProgram(uint32(program))
		return nil, fmt.Errorf("upload triangle: %w", err)
	}

	return &Scene{dev: dev, program: program, mesh: mesh}, nil
}

// Program returns the linked shader program.
func (s *Scene) Program() Program {
	return s.program
}

// Mesh returns the triangle mesh.
func (s *Scene) Mesh() *Mesh {
	return s.mesh
}

// Release deletes the vertex array, the vertex buffer and the program.
// Calling it again is a no-op.
func (s *Scene) Release() {
	if s.mesh != nil {
		s.mesh.Delete(s.dev)
		s.mesh = nil
	}
	if s.program != 0 {
		s.dev.DeleteProgram(uint32(s.program))
		s.program = 0
	}
	logger.Debug("scene released")
}
