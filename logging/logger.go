// Package logging wraps zap with the screening service's severity model
// and sink configuration. Its consumers are the search orchestrator and
// the cmd/screen-demo command, not a multi-tenant logging platform, so
// there is no middleware pipeline, policy enforcement, or throttling layer
// here — just level filtering and sink construction.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a configured zap.Logger.
type Logger struct {
	zap         *zap.Logger
	atomicLevel zap.AtomicLevel
}

// New builds a Logger from Config. A nil Config is an error: callers are
// expected to start from DefaultConfig and customize it, not build a
// Logger out of nothing.
func New(config *Config) (*Logger, error) {
	if config == nil {
		return nil, fmt.Errorf("logging: config cannot be nil")
	}
	if len(config.Sinks) == 0 {
		return nil, fmt.Errorf("logging: at least one sink is required")
	}

	level := ParseSeverity(config.DefaultLevel).ToZapLevel()
	atomicLevel := zap.NewAtomicLevelAt(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    severityEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := make([]zapcore.Core, 0, len(config.Sinks))
	for _, sink := range config.Sinks {
		core, err := buildCore(sink, encoderConfig, atomicLevel)
		if err != nil {
			return nil, fmt.Errorf("logging: build sink %s: %w", sink.Type, err)
		}
		cores = append(cores, core)
	}

	opts := []zap.Option{zap.AddCaller()}

	fields := []zap.Field{zap.String("service", config.Service)}
	if config.Environment != "" {
		fields = append(fields, zap.String("environment", config.Environment))
	}
	for k, v := range config.StaticFields {
		fields = append(fields, zap.Any(k, v))
	}
	opts = append(opts, zap.Fields(fields...))

	return &Logger{
		zap:         zap.New(zapcore.NewTee(cores...), opts...),
		atomicLevel: atomicLevel,
	}, nil
}

func buildCore(sink SinkConfig, encoderConfig zapcore.EncoderConfig, defaultLevel zap.AtomicLevel) (zapcore.Core, error) {
	var encoder zapcore.Encoder
	switch sink.Format {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	var writer zapcore.WriteSyncer
	switch sink.Type {
	case "console":
		writer = zapcore.AddSync(os.Stderr)
	case "file":
		if sink.File == nil {
			return nil, fmt.Errorf("file sink requires file configuration")
		}
		writer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   sink.File.Path,
			MaxSize:    sink.File.MaxSize,
			MaxAge:     sink.File.MaxAge,
			MaxBackups: sink.File.MaxBackups,
			Compress:   sink.File.Compress,
		})
	default:
		return nil, fmt.Errorf("unsupported sink type: %s", sink.Type)
	}

	level := defaultLevel
	if sink.Level != "" {
		level = zap.NewAtomicLevelAt(ParseSeverity(sink.Level).ToZapLevel())
	}

	return zapcore.NewCore(encoder, writer, level), nil
}

func severityEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("DEBUG")
	case zapcore.InfoLevel:
		enc.AppendString("INFO")
	case zapcore.WarnLevel:
		enc.AppendString("WARN")
	case zapcore.ErrorLevel:
		enc.AppendString("ERROR")
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		enc.AppendString("FATAL")
	default:
		enc.AppendString("INFO")
	}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// With returns a logger with additional structured fields attached to
// every subsequent record.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...), atomicLevel: l.atomicLevel}
}

// Named returns a logger scoped under the given name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{zap: l.zap.Named(name), atomicLevel: l.atomicLevel}
}

// SetLevel dynamically changes the minimum logged severity.
func (l *Logger) SetLevel(severity Severity) {
	l.atomicLevel.SetLevel(severity.ToZapLevel())
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
