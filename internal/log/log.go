package log

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelDebug // Default to DEBUG
	}
}

// zapLevel maps a Level onto the minimum zap level that is still written.
// Warnings sit between INFO and ERROR, so they show at Info level or lower.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel + 1
	}
}

type Logger struct {
	sugar *zap.SugaredLogger
	atom  zap.AtomicLevel
	level Level
}

func New(out io.Writer, level Level) *Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "" // No timestamps, the [TAG] prefix carries the context
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(out), atom)
	return &Logger{
		sugar: zap.New(core).Sugar(),
		atom:  atom,
		level: level,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar(), atom: zap.NewAtomicLevelAt(zapcore.FatalLevel + 1), level: LevelNone}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.atom.SetLevel(level.zapLevel())
}

func (l *Logger) Level() Level {
	return l.level
}

// Sync flushes buffered output. Call it before exiting.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
