package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines a minimal, printf-style logging contract.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

var (
	levelMu      sync.RWMutex
	defaultLevel = INFO
)

// SetLevel sets the minimum level emitted by component loggers.
func SetLevel(level LogLevel) {
	levelMu.Lock()
	defer levelMu.Unlock()
	defaultLevel = level
}

func currentLevel() LogLevel {
	levelMu.RLock()
	defer levelMu.RUnlock()
	return defaultLevel
}

type componentLogger struct {
	component string
	out       *log.Logger
}

// NewComponentLogger creates a logger scoped to a component, writing
// level-tagged lines to stderr.
func NewComponentLogger(component string) Logger {
	return &componentLogger{
		component: component,
		out:       log.New(os.Stderr, "", 0),
	}
}

func (l *componentLogger) logf(level LogLevel, format string, args ...any) {
	if level < currentLevel() {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	l.out.Printf("[%s] [%s] [%s] %s", timestamp, level, l.component, message)
}

func (l *componentLogger) Debug(format string, args ...any) { l.logf(DEBUG, format, args...) }
func (l *componentLogger) Info(format string, args ...any)  { l.logf(INFO, format, args...) }
func (l *componentLogger) Warn(format string, args ...any)  { l.logf(WARN, format, args...) }
func (l *componentLogger) Error(format string, args ...any) { l.logf(ERROR, format, args...) }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}
