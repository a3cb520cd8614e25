// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for emitting structured diagnostics.
type Logger interface {
	// Fatal reports an unrecoverable failure. It never exits the process;
	// the caller decides how to unwind.
	Fatal(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Trace(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Verbo(msg string, fields ...zap.Field)

	// Stop flushes any buffered entries. No logging method may be called
	// after Stop returns.
	Stop()
}

var _ Logger = (*log)(nil)

type log struct {
	level          Level
	internalLogger *zap.Logger
}

// NewLogger returns a Logger writing console-encoded entries at or above
// [level] to [w]. Passing [Off] silences it entirely.
func NewLogger(prefix string, level Level, w io.Writer) Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(newEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	internal := zap.New(
		core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.WithFatalHook(zapcore.WriteThenNoop),
	)
	if prefix != "" {
		internal = internal.Named(prefix)
	}
	return &log{
		level:          level,
		internalLogger: internal,
	}
}

func newEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.ConsoleSeparator = " "
	return config
}

// Should only be called from [Level] functions. Verbosity filtering runs on
// [Level] rather than on the zap core so that Trace, Debug and Verbo stay
// distinguishable.
func (l *log) log(level Level, msg string, fields ...zap.Field) {
	if !l.level.Enabled(level) {
		return
	}
	if ce := l.internalLogger.Check(level.toZapLevel(), msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.log(Fatal, msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.log(Error, msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.log(Warn, msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.log(Info, msg, fields...)
}

func (l *log) Trace(msg string, fields ...zap.Field) {
	l.log(Trace, msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.log(Debug, msg, fields...)
}

func (l *log) Verbo(msg string, fields ...zap.Field) {
	l.log(Verbo, msg, fields...)
}

func (l *log) Stop() {
	// Sync is best-effort; some writers, stderr included, cannot be synced.
	_ = l.internalLogger.Sync()
}
