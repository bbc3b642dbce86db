package glshader

import "errors"

// CompileErrorPrefix starts every compile failure message.
const CompileErrorPrefix = "An error occurred compiling the shaders: "

// Package errors.
var (
	// ErrCreateShader is returned when the backend refuses to allocate a
	// shader object. No backend resources are held when it is returned.
	ErrCreateShader = errors.New("glshader: unable to create shader")

	// ErrCompile matches every *CompileError via errors.Is.
	ErrCompile = errors.New("glshader: shader compilation failed")

	// ErrInvalidStage is returned for a Stage outside the defined set.
	ErrInvalidStage = errors.New("glshader: invalid shader stage")

	// ErrNilContext is returned when Compile is called without a Context.
	ErrNilContext = errors.New("glshader: nil context")
)

// CompileError reports a shader the backend failed to compile.
// The object has already been deleted when the error is returned.
type CompileError struct {
	Stage Stage
	// Log is the backend info log, verbatim.
	Log string
}

// Error returns CompileErrorPrefix followed by the backend log.
func (e *CompileError) Error() string {
	return CompileErrorPrefix + e.Log
}

// Is reports whether target is ErrCompile.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}
