// Package logging builds the zap loggers used across the pipeline.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured log lines.
const (
	FieldFile    = "file"
	FieldLine    = "line"
	FieldItem    = "item"
	FieldBackend = "backend"
	FieldCount   = "count"
)

// New returns a logger writing to w. Console output is the default; json
// switches to zap's production encoder. Verbose lowers the level from warn
// to debug.
func New(w io.Writer, verbose, json bool) *zap.SugaredLogger {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}

	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNop returns log, or a no-op logger when log is nil.
func OrNop(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return Nop()
	}
	return log
}
