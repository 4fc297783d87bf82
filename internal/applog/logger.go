// Package applog holds the shared application logger. The CLI writes to
// stderr; the GUI redirects output into its debug console via SetOutput.
package applog

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var (
	mu     sync.RWMutex
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
)

// Init configures the logger level. When verbose is true debug messages
// are emitted as well.
func Init(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// SetOutput redirects log output, e.g. into the GUI debug console.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
	// Styled ANSI output is unreadable in a text widget
	logger.SetColorProfile(termenv.Ascii)
}

func Debug(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Error(msg, args...)
}
