//go:build cgo && !js

// Package opengl provides a glshader context for desktop OpenGL 2.1 using
// go-gl. Init opens a hidden 1x1 glfw window to own the GL context;
// Current wraps a context the application already made current.
//
// OpenGL calls must come from the thread that owns the context, so the
// package locks the main goroutine to its OS thread on import.
package opengl

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend"
)

func init() {
	runtime.LockOSThread()
	backend.Register(backend.BackendOpenGL, func() backend.ShaderBackend {
		return New()
	})
}

// Context is a glshader.Context over the current OpenGL context.
type Context struct {
	window      *glfw.Window
	ownsWindow  bool
	initialized bool
}

var _ backend.ShaderBackend = (*Context)(nil)

// New returns an uninitialized Context. Call Init before use.
func New() *Context {
	return &Context{}
}

// Current returns a Context for the OpenGL context already current on
// the calling thread. Close does not destroy anything.
func Current() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: gl init: %w", err)
	}
	return &Context{initialized: true}, nil
}

// Name implements backend.ShaderBackend.
func (c *Context) Name() string { return backend.BackendOpenGL }

// Language implements glshader.LanguageReporter.
func (c *Context) Language() glshader.Language { return glshader.GLSL }

// Init creates a hidden window with an OpenGL 2.1 context and loads the
// GL entry points.
func (c *Context) Init() error {
	if c.initialized {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("opengl: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(1, 1, "glshader", nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("opengl: create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("opengl: gl init: %w", err)
	}

	c.window = window
	c.ownsWindow = true
	c.initialized = true
	glshader.Logger().Debug("opengl: context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return nil
}

// Close destroys the window created by Init, which releases the GL
// context and every object in it.
func (c *Context) Close() {
	if c.ownsWindow && c.window != nil {
		c.window.Destroy()
		glfw.Terminate()
	}
	c.window = nil
	c.ownsWindow = false
	c.initialized = false
}

var errNotInitialized = fmt.Errorf("opengl: %w", backend.ErrNotInitialized)

func shaderType(stage glshader.Stage) uint32 {
	switch stage {
	case glshader.StageVertex:
		return gl.VERTEX_SHADER
	case glshader.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

// CreateShader implements glshader.Context.
func (c *Context) CreateShader(stage glshader.Stage) glshader.ShaderID {
	typ := shaderType(stage)
	if !c.initialized {
		glshader.Logger().Warn("opengl: CreateShader", "err", errNotInitialized)
		return glshader.InvalidShader
	}
	if typ == 0 {
		return glshader.InvalidShader
	}
	return glshader.ShaderID(gl.CreateShader(typ))
}

// ShaderSource implements glshader.Context.
func (c *Context) ShaderSource(id glshader.ShaderID, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(id), 1, csources, nil)
	free()
}

// CompileShader implements glshader.Context.
func (c *Context) CompileShader(id glshader.ShaderID) {
	gl.CompileShader(uint32(id))
}

// ShaderCompileStatus implements glshader.Context.
func (c *Context) ShaderCompileStatus(id glshader.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(id), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

// ShaderInfoLog implements glshader.Context.
func (c *Context) ShaderInfoLog(id glshader.ShaderID) string {
	var logLength int32
	gl.GetShaderiv(uint32(id), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength)
	gl.GetShaderInfoLog(uint32(id), logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

// DeleteShader implements glshader.Context.
func (c *Context) DeleteShader(id glshader.ShaderID) {
	if id == glshader.InvalidShader {
		return
	}
	gl.DeleteShader(uint32(id))
}
