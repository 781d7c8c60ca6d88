// Package infrastructure provides reusable infrastructure components for Go applications.
package infrastructure

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// FxLogger adapts a zap.Logger to fxevent.Logger. Container wiring is
// logged at debug level, failures at error level.
type FxLogger struct {
	logger *zap.Logger
}

// NewFxLogger creates an fxevent.Logger backed by logger, tagged with
// component=fx.
func NewFxLogger(logger *zap.Logger) fxevent.Logger {
	return &FxLogger{logger: logger.With(zap.String("component", "fx"))}
}

// LogEvent implements fxevent.Logger.
func (l *FxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		l.hook("OnStart", e.CallerName, e.FunctionName, e.Err)
	case *fxevent.OnStopExecuted:
		l.hook("OnStop", e.CallerName, e.FunctionName, e.Err)
	case *fxevent.Supplied:
		l.result("supplied", e.Err, zap.String("type", e.TypeName))
	case *fxevent.Provided:
		l.result("provided", e.Err, zap.Strings("types", e.OutputTypeNames), zap.String("module", e.ModuleName))
	case *fxevent.Invoked:
		l.result("invoked", e.Err, zap.String("function", e.FunctionName))
	case *fxevent.Started:
		l.result("started", e.Err)
	case *fxevent.Stopped:
		l.result("stopped", e.Err)
	case *fxevent.RollingBack:
		l.logger.Error("rolling back", zap.Error(e.StartErr))
	case *fxevent.RolledBack:
		l.result("rolled back", e.Err)
	case *fxevent.LoggerInitialized:
		l.result("logger initialized", e.Err, zap.String("constructor", e.ConstructorName))
	default:
		l.logger.Debug("fx event", zap.String("type", typeName(event)))
	}
}

func (l *FxLogger) hook(kind, caller, function string, err error) {
	fields := []zap.Field{zap.String("caller", caller), zap.String("function", function)}
	if err != nil {
		l.logger.Error(kind+" hook failed", append(fields, zap.Error(err))...)
		return
	}
	l.logger.Debug(kind+" hook executed", fields...)
}

func (l *FxLogger) result(msg string, err error, fields ...zap.Field) {
	if err != nil {
		l.logger.Error(msg+" failed", append(fields, zap.Error(err))...)
		return
	}
	l.logger.Debug(msg, fields...)
}

func typeName(event fxevent.Event) string {
	switch event.(type) {
	case *fxevent.OnStartExecuting:
		return "OnStartExecuting"
	case *fxevent.OnStopExecuting:
		return "OnStopExecuting"
	case *fxevent.Invoking:
		return "Invoking"
	case *fxevent.Stopping:
		return "Stopping"
	default:
		return "unknown"
	}
}
