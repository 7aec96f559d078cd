// Package monitoring provides the package-level diagnostic logger shared by
// the conversion and plotting pipelines. It defaults to the standard library
// logger but may be redirected or muted via SetLogger; tests capture output
// the same way.
package monitoring

import "log"

// Level classifies a log line by severity.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// String returns the fixed prefix used for the level.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

var (
	logf     func(format string, v ...interface{}) = log.Printf
	minLevel                                       = LevelInfo
)

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		logf = func(string, ...interface{}) {}
		return
	}
	logf = f
}

// SetMinLevel drops all lines below the given level.
func SetMinLevel(l Level) {
	minLevel = l
}

// Infof logs a progress or discovery line.
func Infof(format string, v ...interface{}) { emit(LevelInfo, format, v...) }

// Warnf logs a recoverable or suspicious condition.
func Warnf(format string, v ...interface{}) { emit(LevelWarn, format, v...) }

// Errorf logs a failure. It does not exit; fatal handling stays with callers.
func Errorf(format string, v ...interface{}) { emit(LevelError, format, v...) }

func emit(l Level, format string, v ...interface{}) {
	if l < minLevel {
		return
	}
	logf("["+l.String()+"] "+format, v...)
}
