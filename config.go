package triangle

// InfoLogSize bounds the driver diagnostics copied into compile and link errors.
const InfoLogSize = 512

// Config holds the fixed startup parameters of the program.
type Config struct {
	Width, Height int
	Title         string

	// Requested OpenGL context version (core profile).
	GLMajor, GLMinor int

	VertexShaderPath   string
	FragmentShaderPath string

	ClearColor Color
}

// Option configures a Config.
type Option func(*Config)

// WithSize sets the initial window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithShaderPaths sets the vertex and fragment shader source files.
func WithShaderPaths(vertex, fragment string) Option {
	return func(c *Config) {
		c.VertexShaderPath = vertex
		c.FragmentShaderPath = fragment
	}
}

// WithClearColor sets the color the framebuffer is cleared to every frame.
func WithClearColor(color Color) Option {
	return func(c *Config) { c.ClearColor = color }
}

// DefaultConfig returns the program's built-in configuration with opts applied.
func DefaultConfig(opts ...Option) Config {
	c := Config{
		Width:              800,
		Height:             600,
		Title:              "LearnOpenGL",
		GLMajor:            3,
		GLMinor:            3,
		VertexShaderPath:   "vshader.vert",
		FragmentShaderPath: "fshader.frag",
		ClearColor:         Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0},
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}
