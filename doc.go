// Package glshader compiles individual shader objects against a graphics
// context supplied by the caller.
//
// # Overview
//
// A Context is the small slice of a graphics API needed to build one
// shader object: create, attach source, compile, query status and log,
// delete. Backends live under backend/ and cover desktop OpenGL, WebGL,
// and WGSL through gogpu/naga and gogpu/wgpu.
//
//	sh, err := glshader.Compile(ctx, glshader.StageFragment, src)
//	if err != nil {
//		var ce *glshader.CompileError
//		if errors.As(err, &ce) {
//			log.Print(ce.Log)
//		}
//		return err
//	}
//	defer sh.Release()
//
// # Failures
//
// A failed call never returns a shader. The two backend failures are
// distinguishable: ErrCreateShader when the backend refused to allocate an
// object (nothing to clean up), and *CompileError when compilation failed
// (the object is deleted before Compile returns). Compile failures are
// additionally delivered to an optional Notifier, which is where an
// application puts its dialog or alert.
//
// # Effect data
//
// The hover subpackage holds the full-screen quad and the shader sources
// of the hover color mix effect.
package glshader
