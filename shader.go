package glshader

// Shader is a successfully compiled shader object.
//
// Ownership belongs to the caller of Compile, who must call Release once
// the object is no longer needed (typically after linking it into a
// program). A Shader is never returned for a failed compile.
type Shader struct {
	ctx   Context
	id    ShaderID
	stage Stage
}

// ID returns the backend-native object name, or InvalidShader after Release.
func (s *Shader) ID() ShaderID {
	if s == nil {
		return InvalidShader
	}
	return s.id
}

// Stage returns the stage the shader was compiled for.
func (s *Shader) Stage() Stage {
	if s == nil {
		return 0
	}
	return s.stage
}

// Compiled queries the backend compile status of the object.
// It returns false for a nil or released shader.
func (s *Shader) Compiled() bool {
	if s == nil || s.id == InvalidShader {
		return false
	}
	return s.ctx.ShaderCompileStatus(s.id)
}

// Release deletes the backend object. It is safe to call more than once.
func (s *Shader) Release() {
	if s == nil || s.id == InvalidShader {
		return
	}
	s.ctx.DeleteShader(s.id)
	Logger().Debug("glshader: shader deleted", "id", s.id, "stage", s.stage)
	s.id = InvalidShader
}
