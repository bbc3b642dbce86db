// Package shadertest provides a scriptable glshader.Context for tests.
package shadertest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/glshader"
)

// Object is the state of one shader object held by Context.
type Object struct {
	Stage    glshader.Stage
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

// Context is an in-memory glshader.Context.
//
// By default every create succeeds and every source compiles. Set
// FailCreate or Reject to script failures. All calls are recorded.
type Context struct {
	// FailCreate makes CreateShader return glshader.InvalidShader.
	FailCreate bool

	// Reject decides whether a compile fails and with which log.
	Reject func(stage glshader.Stage, source string) (log string, reject bool)

	// Lang is reported through glshader.LanguageReporter.
	Lang glshader.Language

	next    glshader.ShaderID
	objects map[glshader.ShaderID]*Object
	calls   []string
}

var (
	_ glshader.Context          = (*Context)(nil)
	_ glshader.LanguageReporter = (*Context)(nil)
)

// New returns a Context that accepts everything.
func New() *Context {
	return &Context{objects: make(map[glshader.ShaderID]*Object)}
}

// RejectAll returns a Reject func failing every compile with log.
func RejectAll(log string) func(glshader.Stage, string) (string, bool) {
	return func(glshader.Stage, string) (string, bool) { return log, true }
}

// RejectContaining returns a Reject func failing sources that contain substr.
func RejectContaining(substr, log string) func(glshader.Stage, string) (string, bool) {
	return func(_ glshader.Stage, source string) (string, bool) {
		return log, strings.Contains(source, substr)
	}
}

func (c *Context) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *Context) object(id glshader.ShaderID) *Object {
	obj, ok := c.objects[id]
	if !ok || obj.Deleted {
		return nil
	}
	return obj
}

// CreateShader implements glshader.Context.
func (c *Context) CreateShader(stage glshader.Stage) glshader.ShaderID {
	c.record("CreateShader(%s)", stage)
	if c.FailCreate || !stage.Valid() {
		return glshader.InvalidShader
	}
	if c.objects == nil {
		c.objects = make(map[glshader.ShaderID]*Object)
	}
	c.next++
	c.objects[c.next] = &Object{Stage: stage}
	return c.next
}

// ShaderSource implements glshader.Context.
func (c *Context) ShaderSource(id glshader.ShaderID, source string) {
	c.record("ShaderSource(%d)", id)
	if obj := c.object(id); obj != nil {
		obj.Source = source
	}
}

// CompileShader implements glshader.Context.
func (c *Context) CompileShader(id glshader.ShaderID) {
	c.record("CompileShader(%d)", id)
	obj := c.object(id)
	if obj == nil {
		return
	}
	obj.Compiled, obj.Log = true, ""
	if c.Reject != nil {
		if log, reject := c.Reject(obj.Stage, obj.Source); reject {
			obj.Compiled, obj.Log = false, log
		}
	}
}

// ShaderCompileStatus implements glshader.Context.
func (c *Context) ShaderCompileStatus(id glshader.ShaderID) bool {
	c.record("ShaderCompileStatus(%d)", id)
	obj := c.object(id)
	return obj != nil && obj.Compiled
}

// ShaderInfoLog implements glshader.Context.
func (c *Context) ShaderInfoLog(id glshader.ShaderID) string {
	c.record("ShaderInfoLog(%d)", id)
	if obj := c.object(id); obj != nil {
		return obj.Log
	}
	return ""
}

// DeleteShader implements glshader.Context.
func (c *Context) DeleteShader(id glshader.ShaderID) {
	c.record("DeleteShader(%d)", id)
	if obj := c.object(id); obj != nil {
		obj.Deleted = true
	}
}

// Language implements glshader.LanguageReporter.
func (c *Context) Language() glshader.Language { return c.Lang }

// Calls returns the recorded calls in order, e.g. "CompileShader(1)".
func (c *Context) Calls() []string {
	return append([]string(nil), c.calls...)
}

// Called reports whether method was called. method is a bare name such
// as "ShaderSource", without arguments.
func (c *Context) Called(method string) bool {
	for _, call := range c.calls {
		if strings.HasPrefix(call, method+"(") {
			return true
		}
	}
	return false
}

// Object returns the object with the given id, including deleted ones.
func (c *Context) Object(id glshader.ShaderID) (Object, bool) {
	obj, ok := c.objects[id]
	if !ok {
		return Object{}, false
	}
	return *obj, true
}

// Live returns the ids of objects that have not been deleted, sorted.
func (c *Context) Live() []glshader.ShaderID {
	var ids []glshader.ShaderID
	for id, obj := range c.objects {
		if !obj.Deleted {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Notifications is a glshader.Notifier that records every message.
type Notifications struct {
	Messages []string
}

// Notify implements glshader.Notifier.
func (n *Notifications) Notify(message string) {
	n.Messages = append(n.Messages, message)
}
