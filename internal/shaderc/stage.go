package shaderc

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend/wgsl"
)

var stageByExt = map[string]glshader.Stage{
	".vert": glshader.StageVertex,
	".vs":   glshader.StageVertex,
	".vsh":  glshader.StageVertex,
	".frag": glshader.StageFragment,
	".fs":   glshader.StageFragment,
	".fsh":  glshader.StageFragment,
}

// InferStage picks the stage of a shader file. A valid override wins;
// otherwise the extension decides, and WGSL files are inspected for
// their entry point attribute.
func InferStage(path, source string, override glshader.Stage) (glshader.Stage, error) {
	if override.Valid() {
		return override, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if stage, ok := stageByExt[ext]; ok {
		return stage, nil
	}
	if ext == ".wgsl" {
		stage, err := wgsl.DetectStage(source)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		return stage, nil
	}
	return 0, fmt.Errorf("%s: cannot infer shader stage, use -stage", path)
}
