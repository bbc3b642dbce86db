// Command glshaderc compiles shader files against a glshader backend and
// reports which ones fail.
//
// Usage:
//
//	glshaderc [flags] files...
//
// The stage of each file is taken from -stage, its extension (.vert,
// .frag, ...) or, for .wgsl files, its entry point attribute.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend"
	_ "github.com/gogpu/glshader/backend/wgsl"
	"github.com/gogpu/glshader/internal/shaderc"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("glshaderc", flag.ContinueOnError)
	var (
		backendName = fs.String("backend", "", "backend name ("+strings.Join(backend.Available(), ", ")+"); default picks the best available")
		stageName   = fs.String("stage", "", "stage for every file: vertex or fragment (default: infer)")
		configPath  = fs.String("config", "", "TOML config file")
		watch       = fs.Bool("watch", false, "recompile files when they change")
		effect      = fs.Bool("effect", false, "also compile the built-in hover effect")
		verbose     = fs.Bool("v", false, "verbose logging")
		noColor     = fs.Bool("no-color", false, "disable colored output")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: glshaderc [flags] files...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := &shaderc.Config{}
	if *configPath != "" {
		var err error
		if cfg, err = shaderc.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}
	// Flags override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backendName
		case "v":
			cfg.Verbose = *verbose
		case "no-color":
			cfg.NoColor = *noColor
		case "effect":
			cfg.Effect = *effect
		}
	})

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	glshader.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var override glshader.Stage
	if *stageName != "" {
		var err error
		if override, err = glshader.ParseStage(*stageName); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}

	jobs, err := collectJobs(cfg, fs.Args(), override)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if len(jobs) == 0 && !cfg.Effect {
		fs.Usage()
		return 2
	}

	b, err := shaderc.OpenBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer b.Close()
	glshader.Logger().Debug("glshaderc: using backend", "name", b.Name(), "language", b.Language().String())

	r := &shaderc.Runner{
		Ctx:   b,
		Out:   os.Stdout,
		Style: shaderc.NewStyle(os.Stdout, cfg.NoColor),
	}
	failed := r.Run(jobs, cfg.Effect)

	if *watch && len(jobs) > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		w, err := shaderc.NewWatcher(r, jobs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		defer w.Close()
		if err := w.Run(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// collectJobs merges config entries and command line files.
func collectJobs(cfg *shaderc.Config, files []string, override glshader.Stage) ([]shaderc.Job, error) {
	jobs := make([]shaderc.Job, 0, len(cfg.Shaders)+len(files))
	for _, e := range cfg.Shaders {
		job := shaderc.Job{Path: e.Path, Stage: override}
		if e.Stage != "" && !override.Valid() {
			stage, err := glshader.ParseStage(e.Stage)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Path, err)
			}
			job.Stage = stage
		}
		jobs = append(jobs, job)
	}
	for _, f := range files {
		jobs = append(jobs, shaderc.Job{Path: f, Stage: override})
	}
	return jobs, nil
}
