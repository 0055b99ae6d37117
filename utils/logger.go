package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps standard log with level-based output
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
	debug *log.Logger
}

// NewLogger creates a new structured logger
func NewLogger() *Logger {
	return newLogger(os.Stdout, os.Stderr)
}

// NewRotatingLogger logs to the terminal and also to a size-rotated file
func NewRotatingLogger(path string, maxSizeMB int) *Logger {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	return newLogger(io.MultiWriter(os.Stdout, file), io.MultiWriter(os.Stderr, file))
}

// NewNopLogger discards everything. Used in tests.
func NewNopLogger() *Logger {
	return newLogger(io.Discard, io.Discard)
}

func newLogger(out, errOut io.Writer) *Logger {
	flags := log.Lmsgprefix
	return &Logger{
		info:  log.New(out, "[INFO]  ", flags),
		warn:  log.New(out, "[WARN]  ", flags),
		error: log.New(errOut, "[ERROR] ", flags),
		debug: log.New(out, "[DEBUG] ", flags),
	}
}

func (l *Logger) prefix() string {
	return fmt.Sprintf(" %s ", time.Now().Format("15:04:05"))
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.info.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.warn.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.error.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.debug.Printf(l.prefix()+msg, args...)
}
