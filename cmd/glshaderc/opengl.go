//go:build cgo && !js

package main

import _ "github.com/gogpu/glshader/backend/opengl"
