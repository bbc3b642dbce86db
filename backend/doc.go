// Package backend provides a registry of named glshader contexts.
//
// Each backend package registers itself from init(), so importing it for
// side effects is enough to make it selectable:
//
//	import _ "github.com/gogpu/glshader/backend/wgsl"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name. Open does either and calls Init:
//
//	b, err := backend.Open("wgsl")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	sh, err := glshader.Compile(b, glshader.StageFragment, src)
//
// # Available Backends
//
//   - "wgsl": headless WGSL compiler built on gogpu/naga (always available)
//   - "opengl": desktop OpenGL 2.1 via go-gl (cgo, needs a display)
//   - "webgl": browser WebGL 1 (js/wasm)
//
// The halgpu package is not registered: it needs a device supplied by the
// application.
package backend
