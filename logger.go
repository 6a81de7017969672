package evmgr

import (
	"log/slog"
	"os"
)

// Logger is the minimal structured-logging collaborator the manager depends
// on. It is satisfied directly by *slog.Logger and lets embedders supply
// another structured logger (see the zap adapter in package ambient)
// without the kernel importing it.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// slogLogger adapts *slog.Logger to Logger.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func defaultLogger() Logger {
	return slogLogger{l: slog.New(slog.NewTextHandler(os.Stderr, nil))}
}
