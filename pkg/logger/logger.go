// Package logger provides structured logging for University Records.
// It supports log levels, structured fields and context propagation, and
// writes logfmt or JSON lines through go-kit/log.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general operational information.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown input maps to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Output formats.
const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors for convenience.
func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field       { return Field{Key: key, Value: value} }

// Err creates an error field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Any creates a field with any value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Logger is the main logger struct.
type Logger struct {
	base   gokitlog.Logger
	level  Level
	fields []Field
}

// Options configures the logger.
type Options struct {
	Output    io.Writer
	Level     Level
	Format    string // logfmt or json
	AddCaller bool
}

// DefaultOptions returns sensible defaults for the logger.
func DefaultOptions() Options {
	return Options{
		Output:    os.Stderr,
		Level:     LevelInfo,
		Format:    FormatLogfmt,
		AddCaller: true,
	}
}

// callerDepth skips go-kit's context plus Logger.log and the level method.
const callerDepth = 5

// New creates a new Logger with the given options.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	w := gokitlog.NewSyncWriter(opts.Output)
	var base gokitlog.Logger
	if opts.Format == FormatJSON {
		base = gokitlog.NewJSONLogger(w)
	} else {
		base = gokitlog.NewLogfmtLogger(w)
	}

	base = gokitlog.With(base, "ts", gokitlog.DefaultTimestampUTC)
	if opts.AddCaller {
		base = gokitlog.With(base, "caller", gokitlog.Caller(callerDepth))
	}

	return &Logger{
		base:  base,
		level: opts.Level,
	}
}

// Default creates a logger with default options.
func Default() *Logger {
	return New(DefaultOptions())
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: gokitlog.NewNopLogger(), level: LevelError + 1}
}

// With returns a new Logger with the given fields added.
func (l *Logger) With(fields ...Field) *Logger {
	merged := make([]Field, len(l.fields)+len(fields))
	copy(merged, l.fields)
	copy(merged[len(l.fields):], fields)
	return &Logger{
		base:   l.base,
		level:  l.level,
		fields: merged,
	}
}

// WithLevel returns a new Logger with the specified minimum log level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	return &Logger{
		base:   l.base,
		level:  lvl,
		fields: l.fields,
	}
}

// Enabled reports whether messages at lvl are written.
func (l *Logger) Enabled(lvl Level) bool {
	return lvl >= l.level
}

func (l *Logger) log(lvl Level, msg string, fields ...Field) {
	if !l.Enabled(lvl) {
		return
	}

	kvs := make([]any, 0, 2+2*(len(l.fields)+len(fields)))
	kvs = append(kvs, "msg", msg)
	for _, f := range l.fields {
		kvs = append(kvs, f.Key, f.Value)
	}
	for _, f := range fields {
		kvs = append(kvs, f.Key, f.Value)
	}

	var leveled gokitlog.Logger
	switch lvl {
	case LevelDebug:
		leveled = level.Debug(l.base)
	case LevelWarn:
		leveled = level.Warn(l.base)
	case LevelError:
		leveled = level.Error(l.base)
	default:
		leveled = level.Info(l.base)
	}

	if err := leveled.Log(kvs...); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Context key for logger.
type ctxKey struct{}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context, or returns a default logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Default()
}

// University-related logging helpers.
func StudentID(id string) Field     { return String("student_id", id) }
func TeacherID(id string) Field     { return String("teacher_id", id) }
func CourseCode(code string) Field  { return String("course_code", code) }
func Role(role string) Field        { return String("role", role) }
func Grade(g float64) Field         { return Float64("grade", g) }
func EventType(t string) Field      { return String("event_type", t) }
func Component(name string) Field   { return String("component", name) }
func Operation(name string) Field   { return String("operation", name) }
func Latency(d time.Duration) Field { return Duration("latency", d) }
