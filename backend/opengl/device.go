// Package opengl implements the triangle Device and Window on OpenGL 3.3
// core and GLFW.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// Device issues triangle.Device calls to the OpenGL context current on the
// calling thread.
type Device struct{}

// NewDevice returns a Device. gl.Init must have succeeded first.
func NewDevice() *Device {
	return &Device{}
}

var _ triangle.Device = (*Device)(nil)

func (d *Device) CreateShader(kind triangle.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

func (d *Device) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) bool {
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader uint32, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	log := make([]byte, maxLen)
	var length int32
	gl.GetShaderInfoLog(shader, int32(maxLen), &length, &log[0])
	return string(log[:length])
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) bool {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program uint32, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	log := make([]byte, maxLen)
	var length int32
	gl.GetProgramInfoLog(program, int32(maxLen), &length, &log[0])
	return string(log[:length])
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

// ArrayBufferData uploads data with GL_STATIC_DRAW: set once, drawn many times.
func (d *Device) ArrayBufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func (d *Device) VertexAttribFloats(index uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
	gl.EnableVertexAttribArray(index)
}

func (d *Device) Clear(c triangle.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// Viewport maps normalized device coordinates to a width×height framebuffer.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// shaderType maps a shader kind to its OpenGL shader type.
func shaderType(kind triangle.ShaderKind) uint32 {
	if kind == triangle.Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}
