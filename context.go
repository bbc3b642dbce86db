package glshader

// ShaderID is a backend-native shader object name.
// The zero value is never a live object.
type ShaderID uint32

// InvalidShader is returned by Context.CreateShader when the backend
// could not allocate a shader object.
const InvalidShader ShaderID = 0

// Context is a graphics backend session owned by the caller.
//
// The methods mirror the shader object entry points shared by OpenGL,
// OpenGL ES and WebGL. Implementations are not required to be safe for
// concurrent use; Compile assumes exclusive access for the duration of
// one call.
type Context interface {
	// CreateShader allocates a shader object for the stage.
	// It returns InvalidShader if no object could be created.
	CreateShader(stage Stage) ShaderID

	// ShaderSource replaces the source text attached to the object.
	ShaderSource(id ShaderID, source string)

	// CompileShader compiles the attached source.
	CompileShader(id ShaderID)

	// ShaderCompileStatus reports the result of the last CompileShader.
	ShaderCompileStatus(id ShaderID) bool

	// ShaderInfoLog returns the diagnostics of the last CompileShader.
	ShaderInfoLog(id ShaderID) string

	// DeleteShader releases the object. Deleting InvalidShader or an
	// unknown object is a no-op.
	DeleteShader(id ShaderID)
}

// Language identifies the shading language a Context compiles.
type Language uint8

const (
	// GLSLES is the OpenGL ES / WebGL 1 dialect (GLSL ES 1.00).
	GLSLES Language = iota

	// GLSL is desktop OpenGL GLSL.
	GLSL

	// WGSL is the WebGPU shading language.
	WGSL
)

// String returns the conventional language name.
func (l Language) String() string {
	switch l {
	case GLSLES:
		return "GLSL ES"
	case GLSL:
		return "GLSL"
	case WGSL:
		return "WGSL"
	default:
		return "unknown"
	}
}

// LanguageReporter is implemented by contexts that know which shading
// language they accept.
type LanguageReporter interface {
	Language() Language
}

// LanguageOf returns the language ctx accepts. Contexts that do not
// implement LanguageReporter are assumed to be WebGL style (GLSLES).
func LanguageOf(ctx Context) Language {
	if lr, ok := ctx.(LanguageReporter); ok {
		return lr.Language()
	}
	return GLSLES
}
