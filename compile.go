package glshader

import "log/slog"

// Compiler compiles shader source against a caller-supplied Context.
// A Compiler holds no per-call state and may be shared; the Context it is
// given may not.
type Compiler struct {
	logger   *slog.Logger
	notifier Notifier
}

// NewCompiler creates a Compiler with the given options applied.
func NewCompiler(opts ...Option) *Compiler {
	var o compilerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Compiler{
		logger:   o.logger,
		notifier: o.notifier,
	}
}

var defaultCompiler = NewCompiler()

// Compile compiles source with the default Compiler, which logs through
// the package logger and has no Notifier. The package logger discards
// everything until SetLogger is called, so the "Unable to create shader"
// diagnostic is only visible after SetLogger; the returned error is not.
func Compile(ctx Context, stage Stage, source string) (*Shader, error) {
	return defaultCompiler.Compile(ctx, stage, source)
}

func (c *Compiler) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Compile creates a shader object for stage, attaches source and
// compiles it.
//
// On success the returned Shader is owned by the caller. On failure the
// result is nil and the error is one of:
//   - ErrNilContext or ErrInvalidStage, before any backend call
//   - ErrCreateShader, when the backend could not allocate an object
//   - *CompileError, when compilation failed; the object has been deleted
//     and the notifier, if any, has received the error message
//
// No retries are attempted.
func (c *Compiler) Compile(ctx Context, stage Stage, source string) (*Shader, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if !stage.Valid() {
		return nil, ErrInvalidStage
	}
	logger := c.log()

	id := ctx.CreateShader(stage)
	if id == InvalidShader {
		logger.Error("Unable to create shader", "stage", stage)
		return nil, ErrCreateShader
	}

	ctx.ShaderSource(id, source)
	ctx.CompileShader(id)

	if !ctx.ShaderCompileStatus(id) {
		err := &CompileError{Stage: stage, Log: ctx.ShaderInfoLog(id)}
		logger.Warn("glshader: compile failed", "stage", stage, "id", id, "log", err.Log)
		if c.notifier != nil {
			c.notifier.Notify(err.Error())
		}
		ctx.DeleteShader(id)
		return nil, err
	}

	logger.Debug("glshader: shader compiled", "stage", stage, "id", id)
	return &Shader{ctx: ctx, id: id, stage: stage}, nil
}
