package shaderc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration of glshaderc.
//
//	backend = "wgsl"
//	verbose = true
//
//	[[shader]]
//	path = "shaders/button.frag"
//
//	[[shader]]
//	path = "shaders/quad.wgsl"
//	stage = "vertex"
type Config struct {
	Backend string        `toml:"backend"`
	Verbose bool          `toml:"verbose"`
	NoColor bool          `toml:"no_color"`
	Effect  bool          `toml:"effect"`
	Shaders []ShaderEntry `toml:"shader"`
}

// ShaderEntry names one shader file. Stage may be empty to infer it.
type ShaderEntry struct {
	Path  string `toml:"path"`
	Stage string `toml:"stage"`
}

// LoadConfig reads a TOML config file. Unknown keys are an error.
// Relative shader paths are resolved against the config file directory.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shaderc: open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, fmt.Errorf("shaderc: parse config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range cfg.Shaders {
		if cfg.Shaders[i].Path == "" {
			return nil, fmt.Errorf("shaderc: config %s: shader %d has no path", path, i+1)
		}
		if !filepath.IsAbs(cfg.Shaders[i].Path) {
			cfg.Shaders[i].Path = filepath.Join(dir, cfg.Shaders[i].Path)
		}
	}
	return &cfg, nil
}
