// Package logger provides structured diagnostic logging for apktool.
//
// The CLI output a user sees is plain fmt printing in internal/app; this
// logger only narrates what apktool does under the hood (adb invocations,
// index writes) and stays silent unless --verbose is set.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the minimal logging surface used across the codebase.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

func (l *zapLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// global defaults to a no-op logger so library code can log before Init.
var global Logger = &zapLogger{sugar: zap.NewNop().Sugar()}

// Init builds the process-wide logger. With verbose=false only warnings
// and errors reach stderr; verbose=true enables debug narration.
func Init(verbose bool) (Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	zapLog, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	l := &zapLogger{sugar: zapLog.Sugar()}
	global = l
	return l, nil
}

// Global returns the logger created by Init, or a no-op logger before it.
func Global() Logger {
	return global
}

// Cleanup flushes buffered log entries. Call at program exit.
func Cleanup() {
	if l, ok := global.(*zapLogger); ok {
		_ = l.sugar.Sync()
	}
}
