package shaderc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend"
	"github.com/gogpu/glshader/backend/wgsl"
	"github.com/gogpu/glshader/hover"
	"github.com/gogpu/glshader/shadertest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "glshaderc.toml", `
backend = "wgsl"
verbose = true
effect = true

[[shader]]
path = "a.frag"

[[shader]]
path = "/abs/b.wgsl"
stage = "vertex"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Backend != "wgsl" || !cfg.Verbose || !cfg.Effect || cfg.NoColor {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Shaders) != 2 {
		t.Fatalf("len(Shaders) = %d, want 2", len(cfg.Shaders))
	}
	if cfg.Shaders[0].Path != filepath.Join(dir, "a.frag") {
		t.Errorf("relative path not resolved: %q", cfg.Shaders[0].Path)
	}
	if cfg.Shaders[1].Path != "/abs/b.wgsl" || cfg.Shaders[1].Stage != "vertex" {
		t.Errorf("Shaders[1] = %+v", cfg.Shaders[1])
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"unknown.toml": `backnd = "wgsl"`,
		"syntax.toml":  `backend = `,
		"nopath.toml":  "[[shader]]\nstage = \"vertex\"\n",
	}
	for name, content := range tests {
		if _, err := LoadConfig(writeFile(t, dir, name, content)); err == nil {
			t.Errorf("LoadConfig(%s) succeeded", name)
		}
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadConfig(missing) succeeded")
	}
}

func TestInferStage(t *testing.T) {
	tests := []struct {
		path     string
		source   string
		override glshader.Stage
		want     glshader.Stage
		wantErr  bool
	}{
		{"a.vert", "", 0, glshader.StageVertex, false},
		{"a.FS", "", 0, glshader.StageFragment, false},
		{"a.glsl", "", glshader.StageFragment, glshader.StageFragment, false},
		{"a.frag", "", glshader.StageVertex, glshader.StageVertex, false},
		{"a.wgsl", hover.FragmentSourceWGSL, 0, glshader.StageFragment, false},
		{"a.wgsl", "fn f() {}", 0, 0, true},
		{"a.glsl", "", 0, 0, true},
	}
	for _, tt := range tests {
		got, err := InferStage(tt.path, tt.source, tt.override)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("InferStage(%q, override=%v) = %v, %v", tt.path, tt.override, got, err)
		}
	}
}

func TestRunnerReport(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.frag", "void main() {}")
	bad := writeFile(t, dir, "bad.vert", "#error nope")

	ctx := shadertest.New()
	ctx.Reject = shadertest.RejectContaining("#error", "ERROR: 0:1: '#error' : nope")

	var out bytes.Buffer
	var results []Result
	r := &Runner{
		Ctx:      ctx,
		Out:      &out,
		Style:    NewStyle(&out, true),
		OnResult: func(res Result) { results = append(results, res) },
	}

	failed := r.Run([]Job{{Path: good}, {Path: bad}, {Path: filepath.Join(dir, "missing.fs")}}, true)
	if failed != 2 {
		t.Errorf("Run() failed = %d, want 2", failed)
	}
	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}
	if !results[0].OK() || results[0].Stage != glshader.StageFragment {
		t.Errorf("good result = %+v", results[0])
	}
	if !errors.Is(results[1].Err, glshader.ErrCompile) || len(results[1].Notes) != 1 {
		t.Errorf("bad result = %+v", results[1])
	}
	if !errors.Is(results[2].Err, os.ErrNotExist) {
		t.Errorf("missing result = %+v", results[2])
	}
	if results[3].Path != EffectPath || !results[3].OK() {
		t.Errorf("effect result = %+v", results[3])
	}

	report := out.String()
	for _, want := range []string{
		"ok   " + good + " (fragment)",
		"FAIL " + bad + " (vertex)",
		"    An error occurred compiling the shaders: ERROR: 0:1: '#error' : nope",
		"ok   " + EffectPath,
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if live := ctx.Live(); len(live) != 0 {
		t.Errorf("runner leaked shader objects %v", live)
	}
}

func TestRunnerWGSL(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "quad.wgsl", hover.VertexSourceWGSL)

	r := &Runner{Ctx: wgsl.New()}
	if res := r.CompileFile(Job{Path: vs}); !res.OK() || res.Stage != glshader.StageVertex {
		t.Errorf("CompileFile() = %+v", res)
	}
	if res := r.CompileEffect(); !res.OK() {
		t.Errorf("CompileEffect() = %+v", res)
	}
}

func TestOpenBackend(t *testing.T) {
	b, err := OpenBackend(backend.BackendWGSL)
	if err != nil {
		t.Fatalf("OpenBackend(wgsl) error = %v", err)
	}
	defer b.Close()
	if b.Name() != backend.BackendWGSL {
		t.Errorf("Name() = %q", b.Name())
	}
	if _, err := OpenBackend("nonexistent"); !errors.Is(err, backend.ErrBackendNotAvailable) {
		t.Errorf("OpenBackend(nonexistent) error = %v", err)
	}
	d, err := OpenBackend("")
	if err != nil {
		t.Fatalf("OpenBackend(\"\") error = %v", err)
	}
	d.Close()
}

func TestWatcherRecompiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "live.frag", "void main() {}")

	results := make(chan Result, 8)
	r := &Runner{
		Ctx:      shadertest.New(),
		OnResult: func(res Result) { results <- res },
	}
	w, err := NewWatcher(r, []Job{{Path: path}})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	writeFile(t, dir, "other.txt", "ignored")
	writeFile(t, dir, "live.frag", "void main() { }")

	select {
	case res := <-results:
		if res.Path != path || !res.OK() {
			t.Errorf("result = %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no recompile after write")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
