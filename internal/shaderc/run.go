// Package shaderc implements the glshaderc command: compiling shader
// files against a registered backend and reporting the result.
package shaderc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/backend"
	"github.com/gogpu/glshader/hover"
)

// EffectPath is the pseudo path reported for the built-in hover effect.
const EffectPath = "<hover effect>"

// Job is one shader file to compile. A zero Stage is inferred.
type Job struct {
	Path  string
	Stage glshader.Stage
}

// Result is the outcome of one Job.
type Result struct {
	Path  string
	Stage glshader.Stage
	Err   error
	// Notes holds the notifications raised while compiling.
	Notes []string
}

// OK reports whether the job compiled.
func (r Result) OK() bool { return r.Err == nil }

// Runner compiles jobs against one context and writes a report.
type Runner struct {
	Ctx   glshader.Context
	Out   io.Writer
	Style *Style

	// OnResult, if set, is called after each result is reported.
	OnResult func(Result)
}

func (r *Runner) compiler(res *Result) *glshader.Compiler {
	return glshader.NewCompiler(glshader.WithNotifier(glshader.NotifierFunc(func(msg string) {
		res.Notes = append(res.Notes, msg)
	})))
}

// CompileFile reads, compiles and reports one job. The compiled shader
// is released immediately: the command only checks that it compiles.
func (r *Runner) CompileFile(job Job) Result {
	res := Result{Path: job.Path, Stage: job.Stage}
	defer func() { r.report(res) }()

	data, err := os.ReadFile(job.Path)
	if err != nil {
		res.Err = err
		return res
	}
	source := string(data)
	res.Stage, err = InferStage(job.Path, source, job.Stage)
	if err != nil {
		res.Err = err
		return res
	}

	sh, err := r.compiler(&res).Compile(r.Ctx, res.Stage, source)
	if err != nil {
		res.Err = err
		return res
	}
	sh.Release()
	return res
}

// CompileEffect compiles the built-in hover effect in the context language.
func (r *Runner) CompileEffect() Result {
	res := Result{Path: EffectPath}
	defer func() { r.report(res) }()

	var notes []string
	s, err := hover.Compile(r.Ctx, glshader.WithNotifier(glshader.NotifierFunc(func(msg string) {
		notes = append(notes, msg)
	})))
	res.Notes = notes
	if err != nil {
		res.Err = err
		return res
	}
	s.Release()
	return res
}

// Run compiles every job, then the effect if requested, and returns the
// number of failures.
func (r *Runner) Run(jobs []Job, effect bool) int {
	failed := 0
	for _, job := range jobs {
		if !r.CompileFile(job).OK() {
			failed++
		}
	}
	if effect && !r.CompileEffect().OK() {
		failed++
	}
	return failed
}

func (r *Runner) report(res Result) {
	if r.Out != nil {
		stage := ""
		if res.Stage.Valid() {
			stage = " " + r.Style.Note("("+res.Stage.String()+")")
		}
		if res.OK() {
			fmt.Fprintf(r.Out, "%s   %s%s\n", r.Style.OK("ok"), res.Path, stage)
		} else {
			fmt.Fprintf(r.Out, "%s %s%s\n", r.Style.Fail("FAIL"), res.Path, stage)
			for _, line := range failureLines(res) {
				fmt.Fprintf(r.Out, "    %s\n", line)
			}
		}
	}
	if r.OnResult != nil {
		r.OnResult(res)
	}
}

// failureLines returns the text shown under a FAIL line: the
// notifications when there are any, the error otherwise.
func failureLines(res Result) []string {
	text := res.Err.Error()
	var ce *glshader.CompileError
	if len(res.Notes) > 0 && errors.As(res.Err, &ce) {
		text = strings.Join(res.Notes, "\n")
	}
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}

// OpenBackend opens the named backend. With an empty name it opens the
// default backend and falls back to the headless WGSL backend when the
// default cannot be initialized (for example without a display).
func OpenBackend(name string) (backend.ShaderBackend, error) {
	b, err := backend.Open(name)
	if err == nil || name != "" {
		return b, err
	}
	if !backend.IsRegistered(backend.BackendWGSL) {
		return nil, err
	}
	glshader.Logger().Warn("shaderc: default backend unavailable, using wgsl", "err", err)
	return backend.Open(backend.BackendWGSL)
}
