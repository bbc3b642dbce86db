// Package wgsl provides a headless glshader context that compiles WGSL
// with the pure Go gogpu/naga compiler. It needs no GPU, no display and
// no cgo, which makes it the fallback backend and the one used in tests.
package wgsl

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
)

func init() {
	backend.Register(backend.BackendWGSL, func() backend.ShaderBackend {
		return New()
	})
}

// irStage maps the stages glshader knows to naga's IR stages.
var irStage = map[glshader.Stage]ir.ShaderStage{
	glshader.StageVertex:   ir.StageVertex,
	glshader.StageFragment: ir.StageFragment,
}

// lower parses and lowers source to naga IR.
func lower(source string) (*ir.Module, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("lowering error: %w", err)
	}
	return module, nil
}

func hasEntryPoint(module *ir.Module, stage glshader.Stage) bool {
	want, ok := irStage[stage]
	if !ok {
		return false
	}
	for i := range module.EntryPoints {
		if module.EntryPoints[i].Stage == want {
			return true
		}
	}
	return false
}

// HasEntryPoint reports whether source declares an entry point for stage.
// Source that does not parse has no entry points.
func HasEntryPoint(source string, stage glshader.Stage) bool {
	module, err := lower(source)
	return err == nil && hasEntryPoint(module, stage)
}

// DetectStage returns the stage of the single entry point kind declared
// in source. It fails when none or both are present, or when source does
// not parse.
func DetectStage(source string) (glshader.Stage, error) {
	module, err := lower(source)
	if err != nil {
		return 0, fmt.Errorf("wgsl: %w", err)
	}
	vs := hasEntryPoint(module, glshader.StageVertex)
	fs := hasEntryPoint(module, glshader.StageFragment)
	switch {
	case vs && !fs:
		return glshader.StageVertex, nil
	case fs && !vs:
		return glshader.StageFragment, nil
	case vs && fs:
		return 0, fmt.Errorf("wgsl: source declares both vertex and fragment entry points")
	default:
		return 0, fmt.Errorf("wgsl: source declares no vertex or fragment entry point")
	}
}

// Compile compiles WGSL source to SPIR-V words and checks that it declares
// an entry point for stage.
func Compile(source string, stage glshader.Stage) ([]uint32, error) {
	module, err := lower(source)
	if err != nil {
		return nil, err
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("validation failed: %w", &verrs[0])
	}
	if !hasEntryPoint(module, stage) {
		return nil, fmt.Errorf("no @%s entry point", stage)
	}
	spirvBytes, err := naga.GenerateSPIRV(module, spirv.Options{
		Version: naga.DefaultOptions().SPIRVVersion,
	})
	if err != nil {
		return nil, err
	}
	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}

type object struct {
	stage    glshader.Stage
	source   string
	compiled bool
	log      string
	spirv    []uint32
}

// Context is a glshader.Context backed by naga. It is not safe for
// concurrent use.
type Context struct {
	next    glshader.ShaderID
	objects map[glshader.ShaderID]*object
}

var _ backend.ShaderBackend = (*Context)(nil)

// New returns an empty Context. Init is optional.
func New() *Context {
	return &Context{objects: make(map[glshader.ShaderID]*object)}
}

// Name implements backend.ShaderBackend.
func (c *Context) Name() string { return backend.BackendWGSL }

// Init implements backend.ShaderBackend.
func (c *Context) Init() error {
	if c.objects == nil {
		c.objects = make(map[glshader.ShaderID]*object)
	}
	return nil
}

// Close drops every shader object.
func (c *Context) Close() {
	if n := len(c.objects); n > 0 {
		glshader.Logger().Debug("wgsl: closing context with live shaders", "count", n)
	}
	c.objects = make(map[glshader.ShaderID]*object)
}

// Language implements glshader.LanguageReporter.
func (c *Context) Language() glshader.Language { return glshader.WGSL }

// CreateShader implements glshader.Context.
func (c *Context) CreateShader(stage glshader.Stage) glshader.ShaderID {
	if !stage.Valid() {
		return glshader.InvalidShader
	}
	if c.objects == nil {
		c.objects = make(map[glshader.ShaderID]*object)
	}
	c.next++
	c.objects[c.next] = &object{stage: stage}
	return c.next
}

// ShaderSource implements glshader.Context.
func (c *Context) ShaderSource(id glshader.ShaderID, source string) {
	if obj, ok := c.objects[id]; ok {
		obj.source = source
	}
}

// CompileShader implements glshader.Context.
func (c *Context) CompileShader(id glshader.ShaderID) {
	obj, ok := c.objects[id]
	if !ok {
		return
	}
	words, err := Compile(obj.source, obj.stage)
	if err != nil {
		obj.compiled, obj.log, obj.spirv = false, err.Error(), nil
		return
	}
	obj.compiled, obj.log, obj.spirv = true, "", words
}

// ShaderCompileStatus implements glshader.Context.
func (c *Context) ShaderCompileStatus(id glshader.ShaderID) bool {
	obj, ok := c.objects[id]
	return ok && obj.compiled
}

// ShaderInfoLog implements glshader.Context.
func (c *Context) ShaderInfoLog(id glshader.ShaderID) string {
	if obj, ok := c.objects[id]; ok {
		return obj.log
	}
	return ""
}

// DeleteShader implements glshader.Context.
func (c *Context) DeleteShader(id glshader.ShaderID) {
	delete(c.objects, id)
}

// SPIRV returns the SPIR-V words of a compiled object, or nil.
func (c *Context) SPIRV(id glshader.ShaderID) []uint32 {
	if obj, ok := c.objects[id]; ok {
		return obj.spirv
	}
	return nil
}

// Live returns the number of shader objects that have not been deleted.
func (c *Context) Live() int {
	return len(c.objects)
}
