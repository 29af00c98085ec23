// Package logwriter forwards child process output to the application logger,
// optionally teeing it into a rotated log file.
package logwriter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the configuration for the log writer.
type Config struct {
	// File is the rotated log file path. Empty disables file output.
	File string
	// MaxSize is the maximum size in megabytes before rotation.
	MaxSize int
	// MaxBackups is the number of old log files to retain.
	MaxBackups int
	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int
}

// LogWriter hands out line writers for command output streams.
type LogWriter struct {
	log  *log.Logger
	file *lumberjack.Logger
	mu   sync.Mutex
}

// New creates a new LogWriter.
func New(logger *log.Logger, config Config) (*LogWriter, error) {
	w := &LogWriter{log: logger}
	if config.File == "" {
		return w, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.File), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	w.file = &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   true,
	}
	return w, nil
}

// Stream returns a writer that logs each complete line written to it,
// tagged with the command and stream name. Call Close to flush a trailing
// partial line.
func (w *LogWriter) Stream(command, stream string) io.WriteCloser {
	return &lineWriter{parent: w, command: command, stream: stream}
}

// Close releases the rotated log file, if any.
func (w *LogWriter) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}

func (w *LogWriter) emit(command, stream string, line []byte) {
	w.log.Info(string(line), "cmd", command, "stream", stream)
	if w.file == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.file, "[%s %s] %s\n", command, stream, line)
}

type lineWriter struct {
	parent  *LogWriter
	command string
	stream  string
	buf     bytes.Buffer
}

func (l *lineWriter) Write(p []byte) (int, error) {
	l.buf.Write(p)
	for {
		data := l.buf.Bytes()
		i := bytes.IndexAny(data, "\r\n")
		if i < 0 {
			break
		}
		line := bytes.TrimSpace(data[:i])
		if len(line) > 0 {
			l.parent.emit(l.command, l.stream, line)
		}
		l.buf.Next(i + 1)
	}
	return len(p), nil
}

func (l *lineWriter) Close() error {
	if line := bytes.TrimSpace(l.buf.Bytes()); len(line) > 0 {
		l.parent.emit(l.command, l.stream, line)
	}
	l.buf.Reset()
	return nil
}
