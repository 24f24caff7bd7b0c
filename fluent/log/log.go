package log

import "context"

// Logger receives check failures. Checkers built without one use NewNop.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	// Enabled lets callers skip rendering entries nobody will read.
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is an entry's severity. Smaller is more severe: a Logger at LevelInfo
// also emits LevelWarn and LevelError.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	// LevelDebug is where check failures are reported.
	LevelDebug
)

func (level Level) String() string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Field is a key/value attribute of an entry.
type Field struct {
	Key   string
	Value any
}

// String is a string attribute, e.g. the failing predicate's name.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Bool is a boolean attribute, e.g. whether the predicate was negated.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err attaches err under the "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
