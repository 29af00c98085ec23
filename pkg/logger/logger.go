package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Logger is a wrapper around charmbracelet/log.Logger
type Logger struct {
	*log.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// GetLogger returns the singleton logger instance
func GetLogger() *Logger {
	once.Do(func() {
		instance = New(os.Stderr)
	})
	return instance
}

// New builds a logger writing to w with the default options.
func New(w io.Writer) *Logger {
	return &Logger{
		Logger: log.NewWithOptions(w, log.Options{
			Level:           log.InfoLevel,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		}),
	}
}

// ParseLevel maps a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLogLevel sets the log level from a string
func (l *Logger) SetLogLevel(level string) {
	logLevel := ParseLevel(level)
	l.SetLevel(logLevel)
	log.SetLevel(logLevel) // keep the package-level logger in sync
	l.Debug("Log level set", "level", level)
}

// ConfigureFromEnv configures the logger from environment variables
func (l *Logger) ConfigureFromEnv() {
	if logLevelEnv := os.Getenv("HOSTPAGE_LOG_LEVEL"); logLevelEnv != "" {
		l.SetLogLevel(logLevelEnv)
	} else if os.Getenv("ENV") == "dev" {
		l.SetLevel(log.DebugLevel)
		log.SetLevel(log.DebugLevel)
		l.Debug("Debug logging enabled from ENV=dev")
	}
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	GetLogger().Debug(msg, keyvals...)
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	GetLogger().Info(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	GetLogger().Warn(msg, keyvals...)
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	GetLogger().Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, keyvals ...interface{}) {
	GetLogger().Fatal(msg, keyvals...)
}
