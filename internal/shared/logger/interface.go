package logger

import "log/slog"

// Interface is the logging surface handed to application and
// infrastructure components. Both positional (slog-style) and
// keysAndValues (w-suffixed) forms forward to the same handler.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

type slogAdapter struct {
	l *slog.Logger
}

// NewLogger wraps the process-wide slog logger in the Interface.
func NewLogger() Interface {
	return &slogAdapter{l: Get()}
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }

func (a *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{l: a.l.With(args...)}
}

func (a *slogAdapter) Debugw(msg string, keysAndValues ...interface{}) {
	a.l.Debug(msg, keysAndValues...)
}

func (a *slogAdapter) Infow(msg string, keysAndValues ...interface{}) {
	a.l.Info(msg, keysAndValues...)
}

func (a *slogAdapter) Warnw(msg string, keysAndValues ...interface{}) {
	a.l.Warn(msg, keysAndValues...)
}

func (a *slogAdapter) Errorw(msg string, keysAndValues ...interface{}) {
	a.l.Error(msg, keysAndValues...)
}
