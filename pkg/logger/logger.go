package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a printf-style leveled logger. Debug output is only emitted
// when verbose is set.
type Logger struct {
	verbose bool
	sugar   *zap.SugaredLogger
}

func New(verbose bool) *Logger {
	return NewWithWriter(os.Stdout, verbose)
}

// NewWithWriter writes console-encoded entries to w.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return NewWithCore(core, verbose)
}

// NewWithCore wraps an existing zap core.
func NewWithCore(core zapcore.Core, verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		sugar:   zap.New(core).Sugar(),
	}
}

// With returns a child logger that attaches the given key/value pairs to
// every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		verbose: l.verbose,
		sugar:   l.sugar.With(keysAndValues...),
	}
}

func (l *Logger) Verbose() bool {
	return l.verbose
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.sugar.Debugf(format, args...)
	}
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatal logs and exits the process with status 1.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
