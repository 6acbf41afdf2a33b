package bwprovider

import (
	"strings"

	"github.com/basewarphq/bwsls/bwhost"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceLevel is one step more verbose than zap's debug level.
const TraceLevel = zapcore.DebugLevel - 1

// Logger is the logging surface available to the adapter and the commands
// built on it.
type Logger interface {
	Trace(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Zap() *zap.Logger
}

// LogEnvironment holds the environment flags that control adapter logging.
type LogEnvironment struct {
	// Debug enables trace and debug output when set to any non-empty value.
	Debug    string        `env:"SLS_DEBUG"`
	LogLevel zapcore.Level `env:"BWSLS_LOG_LEVEL" envDefault:"warn"`
}

// Level returns the minimum level forwarded to the host.
func (e LogEnvironment) Level() zapcore.Level {
	if e.Debug != "" {
		return TraceLevel
	}
	return e.LogLevel
}

// ParseLogEnvironment reads LogEnvironment from the process environment.
func ParseLogEnvironment() (LogEnvironment, error) {
	var e LogEnvironment
	if err := env.Parse(&e); err != nil {
		return e, errors.Wrap(err, "failed to parse logging environment")
	}
	return e, nil
}

// NewLogger returns a Logger that forwards every entry at or above level to
// the host's log sink.
func NewLogger(sink bwhost.LogSink, level zapcore.Level) Logger {
	encCfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		EncodeLevel:      encodeLevel,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(sinkWriter{sink: sink}),
		zap.NewAtomicLevelAt(level),
	)
	return &zapLogger{l: zap.New(core).Named(ProviderName)}
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == TraceLevel {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(l, enc)
}

type sinkWriter struct {
	sink bwhost.LogSink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	w.sink.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

type zapLogger struct {
	l *zap.Logger
}

func (z *zapLogger) Trace(msg string, fields ...zap.Field) {
	if ce := z.l.Check(TraceLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (z *zapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }
func (z *zapLogger) Zap() *zap.Logger                       { return z.l }

// setupLogging builds the adapter logger from the environment flags. It never
// touches process-wide loggers.
func setupLogging(sink bwhost.LogSink) (Logger, error) {
	e, err := ParseLogEnvironment()
	if err != nil {
		return nil, err
	}
	return NewLogger(sink, e.Level()), nil
}
