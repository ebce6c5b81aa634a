package triangle

import (
	"fmt"
	"testing"
)

// fakeDevice is a Device that tracks object lifetimes instead of rendering.
type fakeDevice struct {
	t      *testing.T
	nextID uint32

	shaders  map[uint32]ShaderKind
	programs map[uint32]bool
	vaos     map[uint32]bool
	buffers  map[uint32]bool
	created  map[string]int
	deleted  map[string]int

	attached map[uint32][]uint32
	sources  map[uint32]string

	failCompile map[ShaderKind]bool
	failLink    bool
	infoLog     string
	logMaxLen   int

	linkCalls int
	boundVAO  uint32
	boundVBO  uint32
	uploaded  []float32
	attribs   []string
	clears    []Color
	draws     int

	// onDraw runs after every draw call.
	onDraw func()
}

func newFakeDevice(t *testing.T) *fakeDevice {
	return &fakeDevice{
		t:           t,
		shaders:     make(map[uint32]ShaderKind),
		programs:    make(map[uint32]bool),
		vaos:        make(map[uint32]bool),
		buffers:     make(map[uint32]bool),
		created:     make(map[string]int),
		deleted:     make(map[string]int),
		attached:    make(map[uint32][]uint32),
		sources:     make(map[uint32]string),
		failCompile: make(map[ShaderKind]bool),
	}
}

// live returns the number of objects not yet deleted.
func (d *fakeDevice) live() int {
	return len(d.shaders) + len(d.programs) + len(d.vaos) + len(d.buffers)
}

func (d *fakeDevice) id(kind string) uint32 {
	d.nextID++
	d.created[kind]++
	return d.nextID
}

func (d *fakeDevice) release(kind string, live map[uint32]bool, id uint32) {
	if !live[id] {
		d.t.Errorf("%s %d deleted but not alive", kind, id)
		return
	}
	delete(live, id)
	d.deleted[kind]++
}

func (d *fakeDevice) truncate(maxLen int) string {
	d.logMaxLen = maxLen
	if len(d.infoLog) > maxLen {
		return d.infoLog[:maxLen]
	}
	return d.infoLog
}

func (d *fakeDevice) CreateShader(kind ShaderKind) uint32 {
	id := d.id("shader")
	d.shaders[id] = kind
	return id
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) { d.sources[shader] = source }

func (d *fakeDevice) CompileShader(shader uint32) bool {
	return !d.failCompile[d.shaders[shader]]
}

func (d *fakeDevice) ShaderInfoLog(_ uint32, maxLen int) string { return d.truncate(maxLen) }

func (d *fakeDevice) DeleteShader(shader uint32) {
	if _, ok := d.shaders[shader]; !ok {
		d.t.Errorf("shader %d deleted but not alive", shader)
		return
	}
	delete(d.shaders, shader)
	d.deleted["shader"]++
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.id("program")
	d.programs[id] = true
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) LinkProgram(uint32) bool {
	d.linkCalls++
	return !d.failLink
}

func (d *fakeDevice) ProgramInfoLog(_ uint32, maxLen int) string { return d.truncate(maxLen) }

func (d *fakeDevice) UseProgram(program uint32) {
	if !d.programs[program] {
		d.t.Errorf("use of dead program %d", program)
	}
}

func (d *fakeDevice) DeleteProgram(program uint32) { d.release("program", d.programs, program) }

func (d *fakeDevice) GenVertexArray() uint32 {
	id := d.id("vao")
	d.vaos[id] = true
	return id
}

func (d *fakeDevice) BindVertexArray(vao uint32) { d.boundVAO = vao }

func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.release("vao", d.vaos, vao) }

func (d *fakeDevice) GenBuffer() uint32 {
	id := d.id("buffer")
	d.buffers[id] = true
	return id
}

func (d *fakeDevice) BindArrayBuffer(vbo uint32) { d.boundVBO = vbo }

func (d *fakeDevice) ArrayBufferData(data []float32) {
	d.uploaded = append([]float32(nil), data...)
}

func (d *fakeDevice) DeleteBuffer(vbo uint32) { d.release("buffer", d.buffers, vbo) }

func (d *fakeDevice) VertexAttribFloats(index uint32, size, stride int32, offset uintptr) {
	d.attribs = append(d.attribs, fmt.Sprintf("%d:%dx%d+%d", index, size, stride, offset))
}

func (d *fakeDevice) Clear(c Color) { d.clears = append(d.clears, c) }

func (d *fakeDevice) DrawTriangles(_, count int32) {
	if count != 3 {
		d.t.Errorf("draw of %d vertices, want 3", count)
	}
	d.draws++
	if d.onDraw != nil {
		d.onDraw()
	}
}

// fakeWindow is a Window that presses Escape once escapeAt frames were swapped.
type fakeWindow struct {
	closed   bool
	escapeAt int

	polls, swaps int
}

func (w *fakeWindow) ShouldClose() bool     { return w.closed }
func (w *fakeWindow) SetShouldClose(v bool) { w.closed = v }
func (w *fakeWindow) PollEvents()           { w.polls++ }
func (w *fakeWindow) SwapBuffers()          { w.swaps++ }

// KeyPressed reports Escape as held from frame escapeAt on, counting from 1.
func (w *fakeWindow) KeyPressed(key Key) bool {
	return key == KeyEscape && w.swaps+1 >= w.escapeAt
}
