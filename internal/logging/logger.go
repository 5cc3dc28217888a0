package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muurk/cardform/internal/card"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CARDFORM_LOG_LEVEL"

// Options controls logger construction.
type Options struct {
	// Level is one of debug, info, warn, error. Empty falls back to
	// CARDFORM_LOG_LEVEL, and to silent mode if that is empty too.
	Level string
	// File receives log output. Empty means stderr. The full-screen form
	// sets this so log lines never draw over the terminal UI.
	File string
}

// Initialize creates a new logger with the specified level writing to stderr.
// If level is empty, it checks CARDFORM_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWith(Options{Level: level})
}

// InitializeWith creates a new logger from opts.
func InitializeWith(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if opts.File == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// No ANSI colour codes in files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a form event for a field. Only the field name and the
// category of its current message are recorded, never the value.
func LogTransition(event string, field card.Field, errMsg string) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("field", field.String()),
	}
	if errMsg != "" {
		fields = append(fields, zap.String("error_kind", card.Classify(errMsg).String()))
	}
	Debug("Form transition", fields...)
}

// LogSubmit logs the outcome of a submit attempt.
func LogSubmit(valid bool, errs card.ErrorSet) {
	fields := []zap.Field{
		zap.Bool("valid", valid),
		zap.Int("error_count", len(errs)),
	}
	for _, f := range card.Fields() {
		if msg, ok := errs[f]; ok {
			fields = append(fields, zap.String(f.String(), card.Classify(msg).String()))
		}
	}
	Info("Form submitted", fields...)
}

// LogRejectedInput logs an edit the engine refused.
func LogRejectedInput(field card.Field, length int) {
	Warn("Input rejected",
		zap.String("field", field.String()),
		zap.Int("length", length),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
