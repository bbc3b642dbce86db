package shaderc

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/glshader"
)

// Watcher recompiles jobs whose file changes.
//
// Directories are watched rather than files so that editors which save
// by renaming a temporary file are still noticed.
type Watcher struct {
	runner  *Runner
	jobs    map[string]Job
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the directories of jobs. Call Run to
// process events and Close when done.
func NewWatcher(r *Runner, jobs []Job) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaderc: watch: %w", err)
	}
	w := &Watcher{runner: r, jobs: make(map[string]Job), watcher: fw}

	dirs := make(map[string]bool)
	for _, job := range jobs {
		abs, err := filepath.Abs(job.Path)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("shaderc: watch %s: %w", job.Path, err)
		}
		w.jobs[abs] = job
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shaderc: watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run recompiles changed files until ctx is done or the watcher fails.
// Compiles happen on the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			job, tracked := w.jobs[filepath.Clean(event.Name)]
			if !tracked {
				continue
			}
			glshader.Logger().Debug("shaderc: file changed", "path", event.Name, "op", event.Op.String())
			w.runner.CompileFile(job)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("shaderc: watch: %w", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
