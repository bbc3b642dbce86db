package hover

import (
	"fmt"

	"github.com/gogpu/glshader"
)

// Attribute and uniform names used by the GLSL ES sources.
const (
	AttribVertexPosition = "aVertexPosition"
	UniformState         = "uState"
	UniformColorNormal   = "uColorNormal"
	UniformColorHovered  = "uColorHovered"
)

// Quad layout.
const (
	QuadVertexCount = 4
	QuadComponents  = 2
)

var quadVertices = [QuadVertexCount * QuadComponents]float32{
	-1.0, -1.0,
	1.0, -1.0,
	-1.0, 1.0,
	1.0, 1.0,
}

// QuadVertices returns the triangle strip covering normalized device
// coordinates [-1,1] on both axes. The result is a copy.
func QuadVertices() [QuadVertexCount * QuadComponents]float32 {
	return quadVertices
}

// VertexSource passes aVertexPosition through unchanged.
const VertexSource = `
attribute vec4 aVertexPosition;
void main() {
	gl_Position = aVertexPosition;
}
`

// FragmentSource mixes uColorNormal and uColorHovered by uState.x.
const FragmentSource = `
precision mediump float;

uniform vec4 uState;
uniform vec4 uColorNormal;
uniform vec4 uColorHovered;

void main() {
	gl_FragColor = mix(uColorNormal, uColorHovered, uState.x);
}
`

// VertexSourceWGSL is the WGSL counterpart of VertexSource.
const VertexSourceWGSL = `
@vertex
fn vs_main(@location(0) position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return position;
}
`

// FragmentSourceWGSL is the WGSL counterpart of FragmentSource. The three
// uniforms live in one buffer at group 0, binding 0, in the order
// state, color_normal, color_hovered.
const FragmentSourceWGSL = `
struct Uniforms {
    state: vec4<f32>,
    color_normal: vec4<f32>,
    color_hovered: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return mix(u.color_normal, u.color_hovered, vec4<f32>(u.state.x));
}
`

// Sources returns the vertex and fragment source for lang.
// Desktop GLSL accepts the GLSL ES text as long as the driver tolerates
// precision qualifiers, so GLSL and GLSLES share one pair.
func Sources(lang glshader.Language) (vertex, fragment string) {
	if lang == glshader.WGSL {
		return VertexSourceWGSL, FragmentSourceWGSL
	}
	return VertexSource, FragmentSource
}

// Shaders is the compiled effect pair.
type Shaders struct {
	Vertex   *glshader.Shader
	Fragment *glshader.Shader
}

// Release deletes both shader objects.
func (s *Shaders) Release() {
	if s == nil {
		return
	}
	s.Vertex.Release()
	s.Fragment.Release()
}

// Compile compiles the effect against ctx in the language it reports.
// If the fragment stage fails the already compiled vertex shader is
// released, so nothing is left allocated on error.
func Compile(ctx glshader.Context, opts ...glshader.Option) (*Shaders, error) {
	c := glshader.NewCompiler(opts...)
	vsrc, fsrc := Sources(glshader.LanguageOf(ctx))

	vs, err := c.Compile(ctx, glshader.StageVertex, vsrc)
	if err != nil {
		return nil, fmt.Errorf("hover: vertex shader: %w", err)
	}
	fs, err := c.Compile(ctx, glshader.StageFragment, fsrc)
	if err != nil {
		vs.Release()
		return nil, fmt.Errorf("hover: fragment shader: %w", err)
	}
	return &Shaders{Vertex: vs, Fragment: fs}, nil
}
