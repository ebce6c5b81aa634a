package triangle

import (
	"errors"
	"fmt"
)

// errEmptySource is reported when a shader file exists but has no content.
var errEmptySource = errors.New("file is empty")

// FileReadError reports a shader source file that could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("ERROR::SHADER::FILE_NOT_SUCCESSFULLY_READ: %s\n%v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// Stage is the step of the shader pipeline that failed.
type Stage int

const (
	StageCompile Stage = iota
	StageLink
)

// ShaderError carries the driver diagnostics of a failed compile or link.
// Log is truncated to InfoLogSize bytes.
type ShaderError struct {
	Kind  ShaderKind // unused for StageLink
	Stage Stage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == StageLink {
		return "ERROR::SHADER::PROGRAM::LINKING_FAILED\n" + e.Log
	}
	return "ERROR::SHADER::" + e.Kind.String() + "::COMPILATION_FAILED\n" + e.Log
}
