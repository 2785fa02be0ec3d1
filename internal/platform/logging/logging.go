// Package logging provides leveled diagnostic logging for tomado.
// The engine swallows persistence, projection, and hook failures; this
// logger is the only place those failures surface.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

// Category groups related log messages.
type Category string

const (
	CatEngine   Category = "engine"   // session state machine transitions
	CatPersist  Category = "persist"  // state store reads/writes
	CatProject  Category = "project"  // sqlite record projection
	CatHook     Category = "hook"     // hook plugin dispatch
	CatNotify   Category = "notify"   // desktop notifications
	CatSettings Category = "settings" // duration policy resolution
)

type Logger struct {
	mu   sync.Mutex
	sink io.Writer
	min  Level
}

var (
	global     *Logger
	globalOnce sync.Once
)

// Init opens the log file and installs the package-level logger. Failures
// fall back to a discard sink: logging must never break the engine.
func Init(path string) *Logger {
	globalOnce.Do(func() {
		var sink io.Writer = io.Discard
		if path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
					sink = f
				}
			}
		}
		min := LevelInfo
		if os.Getenv("TOMADO_DEBUG") != "" {
			min = LevelDebug
		}
		global = &Logger{sink: sink, min: min}
	})
	return global
}

// Get returns the installed logger, initializing a discard logger if Init
// was never called (library consumers, tests).
func Get() *Logger {
	globalOnce.Do(func() {
		global = &Logger{sink: io.Discard, min: LevelError}
	})
	return global
}

func (l *Logger) log(level Level, cat Category, format string, args ...any) {
	if level < l.min {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	_, _ = fmt.Fprintf(l.sink, "%s [%s] %-8s %s\n", ts, level, cat, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(cat Category, format string, args ...any) {
	l.log(LevelDebug, cat, format, args...)
}

func (l *Logger) Info(cat Category, format string, args ...any) {
	l.log(LevelInfo, cat, format, args...)
}

func (l *Logger) Warn(cat Category, format string, args ...any) {
	l.log(LevelWarn, cat, format, args...)
}

func (l *Logger) Error(cat Category, format string, args ...any) {
	l.log(LevelError, cat, format, args...)
}
