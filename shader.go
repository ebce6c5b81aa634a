package triangle

import (
	"os"
)

// LoadShaderSource reads the whole shader source file at path.
// An unreadable or empty file yields "" and a *FileReadError.
func LoadShaderSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	if len(b) == 0 {
		return "", &FileReadError{Path: path, Err: errEmptySource}
	}
	return string(b), nil
}

// CompileShader creates and compiles a shader of the given kind.
// On failure the shader object is deleted and a *ShaderError holding the
// driver log is returned.
func CompileShader(dev Device, kind ShaderKind, source string) (Shader, error) {
	id := dev.CreateShader(kind)
	dev.ShaderSource(id, source)

	if !dev.CompileShader(id) {
		log := dev.ShaderInfoLog(id, InfoLogSize)
		dev.DeleteShader(id)
		return Shader{}, &ShaderError{Kind: kind, Stage: StageCompile, Log: log}
	}

	logger.Debug("shader compiled", "kind", kind, "id", id)
	return Shader{ID: id, Kind: kind}, nil
}

// LinkProgram links vertex and fragment into a new program.
// Both shaders are deleted whatever the outcome; on failure the program is
// deleted too and a *ShaderError holding the driver log is returned.
func LinkProgram(dev Device, vertex, fragment Shader) (Program, error) {
	id := dev.CreateProgram()
	dev.AttachShader(id, vertex.ID)
	dev.AttachShader(id, fragment.ID)
	ok := dev.LinkProgram(id)

	// Shaders are part of the program now, or useless.
	dev.DeleteShader(vertex.ID)
	dev.DeleteShader(fragment.ID)

	if !ok {
		log := dev.ProgramInfoLog(id, InfoLogSize)
		dev.DeleteProgram(id)
		return 0, &ShaderError{Stage: StageLink, Log: log}
	}

	logger.Debug("program linked", "id", id)
	return Program(id), nil
}

// BuildProgram loads, compiles and links the shader pair at the given paths.
// Both files are read before any GPU object is created. No shader or
// program object survives a failure.
func BuildProgram(dev Device, vertexPath, fragmentPath string) (Program, error) {
	vertexSource, err := LoadShaderSource(vertexPath)
	if err != nil {
		return 0, err
	}
	fragmentSource, err := LoadShaderSource(fragmentPath)
	if err != nil {
		return 0, err
	}

	vertex, err := CompileShader(dev, Vertex, vertexSource)
	if err != nil {
		return 0, err
	}
	fragment, err := CompileShader(dev, Fragment, fragmentSource)
	if err != nil {
		dev.DeleteShader(vertex.ID)
		return 0, err
	}

	return LinkProgram(dev, vertex, fragment)
}
