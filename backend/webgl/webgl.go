//go:build js && wasm

// Package webgl provides a glshader context for a browser WebGL 1
// rendering context through syscall/js.
package webgl

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend"
)

var (
	errNoCanvas  = errors.New("webgl: no canvas element given")
	errNoContext = errors.New("webgl: unable to get webgl context")

	errNotInitialized = fmt.Errorf("webgl: %w", backend.ErrNotInitialized)
)

func init() {
	backend.Register(backend.BackendWebGL, func() backend.ShaderBackend {
		return &Context{}
	})
}

type glConsts struct {
	vertexShader   js.Value
	fragmentShader js.Value
	compileStatus  js.Value
}

// Context is a glshader.Context over a WebGLRenderingContext.
//
// WebGL hands out shader objects rather than integer names, so the
// context keeps a table from ShaderID to object.
type Context struct {
	gl      js.Value
	consts  glConsts
	next    glshader.ShaderID
	shaders map[glshader.ShaderID]js.Value
}

var _ backend.ShaderBackend = (*Context)(nil)

func getContext(canvas js.Value) js.Value {
	for _, contextType := range []string{"webgl", "experimental-webgl"} {
		gl := canvas.Call("getContext", contextType)
		if gl.Truthy() {
			return gl
		}
	}
	return js.Undefined()
}

// New obtains a WebGL context from a canvas element.
func New(canvas js.Value) (*Context, error) {
	if !canvas.Truthy() {
		return nil, errNoCanvas
	}
	gl := getContext(canvas)
	if !gl.Truthy() {
		return nil, errNoContext
	}
	return Wrap(gl), nil
}

// Wrap returns a Context for an existing WebGLRenderingContext.
func Wrap(gl js.Value) *Context {
	c := &Context{}
	c.bind(gl)
	return c
}

func (c *Context) bind(gl js.Value) {
	c.gl = gl
	c.consts = glConsts{
		vertexShader:   gl.Get("VERTEX_SHADER"),
		fragmentShader: gl.Get("FRAGMENT_SHADER"),
		compileStatus:  gl.Get("COMPILE_STATUS"),
	}
	c.shaders = make(map[glshader.ShaderID]js.Value)
}

// Name implements backend.ShaderBackend.
func (c *Context) Name() string { return backend.BackendWebGL }

// Init implements backend.ShaderBackend. A registry-created Context has no
// canvas, so Init creates a detached one.
func (c *Context) Init() error {
	if c.gl.Truthy() {
		return nil
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return errNoCanvas
	}
	gl := getContext(doc.Call("createElement", "canvas"))
	if !gl.Truthy() {
		return errNoContext
	}
	c.bind(gl)
	return nil
}

// Close deletes every shader object still held by the context.
func (c *Context) Close() {
	for id, sh := range c.shaders {
		c.gl.Call("deleteShader", sh)
		delete(c.shaders, id)
	}
}

// Language implements glshader.LanguageReporter.
func (c *Context) Language() glshader.Language { return glshader.GLSLES }

// CreateShader implements glshader.Context.
func (c *Context) CreateShader(stage glshader.Stage) glshader.ShaderID {
	if !c.gl.Truthy() {
		glshader.Logger().Warn("webgl: CreateShader", "err", errNotInitialized)
		return glshader.InvalidShader
	}
	var typ js.Value
	switch stage {
	case glshader.StageVertex:
		typ = c.consts.vertexShader
	case glshader.StageFragment:
		typ = c.consts.fragmentShader
	default:
		return glshader.InvalidShader
	}
	sh := c.gl.Call("createShader", typ)
	if !sh.Truthy() {
		return glshader.InvalidShader
	}
	c.next++
	c.shaders[c.next] = sh
	return c.next
}

// ShaderSource implements glshader.Context.
func (c *Context) ShaderSource(id glshader.ShaderID, source string) {
	if sh, ok := c.shaders[id]; ok {
		c.gl.Call("shaderSource", sh, source)
	}
}

// CompileShader implements glshader.Context.
func (c *Context) CompileShader(id glshader.ShaderID) {
	if sh, ok := c.shaders[id]; ok {
		c.gl.Call("compileShader", sh)
	}
}

// ShaderCompileStatus implements glshader.Context.
func (c *Context) ShaderCompileStatus(id glshader.ShaderID) bool {
	sh, ok := c.shaders[id]
	if !ok {
		return false
	}
	return c.gl.Call("getShaderParameter", sh, c.consts.compileStatus).Truthy()
}

// ShaderInfoLog implements glshader.Context.
func (c *Context) ShaderInfoLog(id glshader.ShaderID) string {
	sh, ok := c.shaders[id]
	if !ok {
		return ""
	}
	log := c.gl.Call("getShaderInfoLog", sh)
	if !log.Truthy() {
		return ""
	}
	return log.String()
}

// DeleteShader implements glshader.Context.
func (c *Context) DeleteShader(id glshader.ShaderID) {
	if sh, ok := c.shaders[id]; ok {
		c.gl.Call("deleteShader", sh)
		delete(c.shaders, id)
	}
}

// Object returns the WebGLShader for id, for linking into a program.
func (c *Context) Object(id glshader.ShaderID) (js.Value, bool) {
	sh, ok := c.shaders[id]
	return sh, ok
}

// AlertNotifier returns a glshader.Notifier that shows compile failures
// in a blocking window.alert dialog.
func AlertNotifier() glshader.Notifier {
	return glshader.NotifierFunc(func(message string) {
		js.Global().Call("alert", message)
	})
}
