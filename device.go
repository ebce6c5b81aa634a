package triangle

// Device is the subset of a graphics API the program drives.
// Method names follow the OpenGL calls they stand for; handles are the
// driver's object names, with 0 meaning "none".
type Device interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	// CompileShader compiles the shader and reports the compile status.
	CompileShader(shader uint32) bool
	// ShaderInfoLog returns at most maxLen bytes of the shader's info log.
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// LinkProgram links the program and reports the link status.
	LinkProgram(program uint32) bool
	// ProgramInfoLog returns at most maxLen bytes of the program's info log.
	ProgramInfoLog(program uint32, maxLen int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// ArrayBufferData uploads data to the bound array buffer for static drawing.
	ArrayBufferData(data []float32)
	DeleteBuffer(vbo uint32)

	// VertexAttribFloats declares attribute index as size float32 components
	// read from the bound array buffer, and enables it.
	VertexAttribFloats(index uint32, size, stride int32, offset uintptr)

	Clear(c Color)
	DrawTriangles(first, count int32)
}

// Window is the platform surface the render loop presents to.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	KeyPressed(key Key) bool
	PollEvents()
	SwapBuffers()
}
