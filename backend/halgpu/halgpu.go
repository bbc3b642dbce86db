//go:build !nogpu

// Package halgpu provides a glshader context over a gogpu/wgpu HAL device.
//
// Source is WGSL. Compilation first runs gogpu/naga to produce SPIR-V,
// then creates a hal.ShaderModule on the device, so a shader that compiles
// here is ready to be used in a pipeline on the same device.
//
// The device is owned by the caller; Close only destroys the shader
// modules created through the context.
package halgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend/wgsl"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// ErrNoHALDevice is returned by FromProvider when the provider does not
// expose a hal.Device.
var ErrNoHALDevice = errors.New("halgpu: provider does not expose a hal.Device")

type module struct {
	stage  glshader.Stage
	source string
	module hal.ShaderModule
	log    string
}

// Context is a glshader.Context that creates shader modules on a
// hal.Device.
//
// Thread Safety: Context is safe for concurrent use. The object table and
// every object's state are guarded by a mutex, which is not held while naga
// or the device compile. glshader.Compile still expects exclusive use of
// one object id per call.
type Context struct {
	mu      sync.Mutex
	device  hal.Device
	label   string
	next    glshader.ShaderID
	modules map[glshader.ShaderID]*module
}

var (
	_ glshader.Context          = (*Context)(nil)
	_ glshader.LanguageReporter = (*Context)(nil)
)

// New wraps device. label prefixes the debug label of every module.
func New(device hal.Device, label string) *Context {
	if label == "" {
		label = "glshader"
	}
	return &Context{
		device:  device,
		label:   label,
		modules: make(map[glshader.ShaderID]*module),
	}
}

// FromProvider wraps the HAL device of a gpucontext provider such as a
// gogpu application. The provider must implement HalDevice() any.
func FromProvider(provider gpucontext.DeviceProvider, label string) (*Context, error) {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	return New(device, label), nil
}

// Device returns the wrapped device.
func (c *Context) Device() hal.Device { return c.device }

// Language implements glshader.LanguageReporter.
func (c *Context) Language() glshader.Language { return glshader.WGSL }

// CreateShader implements glshader.Context.
func (c *Context) CreateShader(stage glshader.Stage) glshader.ShaderID {
	if c.device == nil || !stage.Valid() {
		return glshader.InvalidShader
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	c.modules[c.next] = &module{stage: stage}
	return c.next
}

// ShaderSource implements glshader.Context.
func (c *Context) ShaderSource(id glshader.ShaderID, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.modules[id]; ok {
		m.source = source
	}
}

// CompileShader implements glshader.Context. A previously created module
// for the same id is destroyed first.
func (c *Context) CompileShader(id glshader.ShaderID) {
	c.mu.Lock()
	m, ok := c.modules[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	stage, source := m.stage, m.source
	old := m.module
	m.module, m.log = nil, ""
	c.mu.Unlock()

	if old != nil {
		c.device.DestroyShaderModule(old)
	}

	// naga and the device run without the lock; results are published
	// under it.
	var (
		mod hal.ShaderModule
		log string
	)
	spirv, err := wgsl.Compile(source, stage)
	if err != nil {
		log = err.Error()
	} else {
		mod, err = c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label: fmt.Sprintf("%s_%s_%d", c.label, stage, id),
			Source: hal.ShaderSource{
				SPIRV: spirv,
			},
		})
		if err != nil {
			mod, log = nil, fmt.Sprintf("failed to create shader module: %v", err)
		}
	}

	c.mu.Lock()
	var stale hal.ShaderModule
	if cur, ok := c.modules[id]; ok && cur == m {
		stale = m.module
		m.module, m.log = mod, log
	} else {
		// Deleted while compiling.
		stale = mod
	}
	c.mu.Unlock()

	if stale != nil {
		c.device.DestroyShaderModule(stale)
	}
}

// ShaderCompileStatus implements glshader.Context.
func (c *Context) ShaderCompileStatus(id glshader.ShaderID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.modules[id]
	return ok && m.module != nil
}

// ShaderInfoLog implements glshader.Context.
func (c *Context) ShaderInfoLog(id glshader.ShaderID) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.modules[id]; ok {
		return m.log
	}
	return ""
}

// DeleteShader implements glshader.Context.
func (c *Context) DeleteShader(id glshader.ShaderID) {
	c.mu.Lock()
	m, ok := c.modules[id]
	if ok {
		delete(c.modules, id)
	}
	c.mu.Unlock()

	if ok && m.module != nil {
		c.device.DestroyShaderModule(m.module)
	}
}

// Module returns the shader module of a compiled object, or nil.
func (c *Context) Module(id glshader.ShaderID) hal.ShaderModule {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.modules[id]; ok {
		return m.module
	}
	return nil
}

// Live returns the number of objects that have not been deleted.
func (c *Context) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.modules)
}

// Close destroys every remaining shader module. The device is left alive.
func (c *Context) Close() {
	c.mu.Lock()
	modules := c.modules
	c.modules = make(map[glshader.ShaderID]*module)
	c.mu.Unlock()

	for _, m := range modules {
		if m.module != nil {
			c.device.DestroyShaderModule(m.module)
		}
	}
}
