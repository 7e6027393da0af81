// Package logger provides leveled logging for the diffbot CLI.
//
// Logging is backed by zap and written to stderr so that command output on
// stdout stays machine readable. The package level helpers take printf
// style arguments:
//
//	logger.Info("Calling %s API for %s", kind, url)
//	logger.Debug("Using %s transport", backend)
package logger

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how the logger is built.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean warn.
	Level string

	// Encoding is "console" or "json".
	Encoding string
}

var (
	mu    sync.RWMutex
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	base  = zap.NewNop()
)

// New builds a zap logger writing to stderr.
func New(opts Options) (*zap.Logger, zap.AtomicLevel, error) {
	lvl := zapcore.WarnLevel
	if err := lvl.Set(strings.ToLower(opts.Level)); err != nil || opts.Level == "" {
		lvl = zapcore.WarnLevel
	}
	atom := zap.NewAtomicLevelAt(lvl)

	encoding := opts.Encoding
	if encoding != "json" {
		encoding = "console"
	}

	zc := zap.Config{
		Level:             atom,
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		EncoderConfig:     zap.NewProductionEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	if encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	l, err := zc.Build()
	if err != nil {
		return nil, atom, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, atom, nil
}

// Init replaces the package logger. Call once from main.
func Init(opts Options) error {
	l, atom, err := New(opts)
	if err != nil {
		return err
	}
	mu.Lock()
	base, level = l, atom
	mu.Unlock()
	return nil
}

// SetDebug switches debug output on or off.
func SetDebug(enabled bool) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.WarnLevel)
	}
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Sync flushes buffered entries.
func Sync() {
	_ = L().Sync()
}

func Debug(format string, args ...interface{}) { L().Sugar().Debugf(format, args...) }
func Info(format string, args ...interface{})  { L().Sugar().Infof(format, args...) }
func Warn(format string, args ...interface{})  { L().Sugar().Warnf(format, args...) }
func Error(format string, args ...interface{}) { L().Sugar().Errorf(format, args...) }
