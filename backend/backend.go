package backend

import (
	"errors"

	"github.com/gogpu/glshader"
)

// Backend name constants.
const (
	// BackendOpenGL is desktop OpenGL through go-gl (requires cgo and a display).
	BackendOpenGL = "opengl"
	// BackendWGSL is the headless pure Go WGSL compiler (gogpu/naga).
	BackendWGSL = "wgsl"
	// BackendWebGL is the browser WebGL context (js/wasm only).
	BackendWebGL = "webgl"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// ShaderBackend is a glshader.Context with a lifecycle, as selected by name
// from the registry.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type ShaderBackend interface {
	glshader.Context
	glshader.LanguageReporter

	// Name returns the backend identifier (e.g., "wgsl", "opengl").
	Name() string

	// Init acquires the graphics context.
	// It must be called before any shader operation.
	Init() error

	// Close releases the graphics context and every shader object still
	// alive in it. The backend should not be used after Close is called.
	Close()
}
