package triangle

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ShaderKind identifies a programmable pipeline stage.
type ShaderKind int

const (
	Vertex ShaderKind = iota
	Fragment
)

// String returns the upper-case stage name used in error tags.
func (k ShaderKind) String() string {
	switch k {
	case Vertex:
		return "VERTEX"
	case Fragment:
		return "FRAGMENT"
	default:
		return "UNKNOWN"
	}
}

// Shader is a compiled shader object.
// It is only valid until the program it was compiled for has been linked.
type Shader struct {
	ID   uint32
	Kind ShaderKind
}

// Program is a linked shader program object.
type Program uint32

// Key identifies a keyboard key the program reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

// TriangleVertices is the single triangle rendered by the program,
// three xyz positions in normalized device coordinates.
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}
