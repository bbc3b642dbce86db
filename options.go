package glshader

import "log/slog"

// Option configures a Compiler during creation.
//
// Example:
//
//	c := glshader.NewCompiler(
//		glshader.WithNotifier(webgl.AlertNotifier()),
//	)
type Option func(*compilerOptions)

// compilerOptions holds optional configuration for Compiler creation.
type compilerOptions struct {
	logger   *slog.Logger
	notifier Notifier
}

// WithLogger sets the logger used by the Compiler. Without it the
// package logger (see SetLogger) is read on every call.
func WithLogger(l *slog.Logger) Option {
	return func(o *compilerOptions) {
		o.logger = l
	}
}

// WithNotifier sets the channel that receives compile failure messages.
// The message is the same text returned by CompileError.Error.
func WithNotifier(n Notifier) Option {
	return func(o *compilerOptions) {
		o.notifier = n
	}
}

// Notifier surfaces compile failures to a user, for example as a dialog.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }
