package ambient

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the evmgr.Logger interface, for
// embedders that already standardize on zap rather than log/slog. It
// converts evmgr's alternating key/value args into zap.Any fields, the same
// translation the teacher's root module performs when bridging its own
// go.uber.org/zap usage to a generic logging interface.
type ZapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps l.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l}
}

func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		out = append(out, zap.Any(key, args[i+1]))
	}
	return out
}

// Debug implements evmgr.Logger.
func (z *ZapLogger) Debug(msg string, args ...any) {
	z.l.Debug(msg, fields(args)...)
}

// Error implements evmgr.Logger.
func (z *ZapLogger) Error(msg string, args ...any) {
	z.l.Error(msg, fields(args)...)
}
