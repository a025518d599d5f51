package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	isDebug = false
	logger  = NewLogger(os.Stdout)
)

type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out}
}

func SetDebug(debug bool) {
	isDebug = debug
}

// SetOutput redirects the package logger, mainly so tests can capture it.
func SetOutput(out io.Writer) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.out = out
}

func Info(format string, args ...interface{}) {
	logger.log("INFO", format, args...)
}

// Debugf logs a formatted message when debug is enabled
func Debugf(format string, args ...interface{}) {
	if isDebug {
		logger.log("DEBUG", format, args...)
	}
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.log("ERROR", format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.log("WARN", format, args...)
}

func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s: %s\n", timestamp, level, msg)
}
