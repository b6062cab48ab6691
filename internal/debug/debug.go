package debug

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GUI_DEBUG"

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	loggerPtr atomic.Pointer[slog.Logger]

	mu      sync.Mutex
	envOnce sync.Once
	logFile *os.File
)

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Logger returns the active logger. The first call honors GUI_DEBUG.
func Logger() *slog.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			if err := Init(path); err != nil {
				fmt.Fprintf(os.Stderr, "gui: %v\n", err)
			}
		}
	})
	return loggerPtr.Load()
}

// SetLogger replaces the active logger. Pass nil to restore silent logging.
// Any file opened by Init is closed.
func SetLogger(l *slog.Logger) {
	envOnce.Do(func() {})
	if l == nil {
		l = slog.New(nopHandler{})
	}
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loggerPtr.Store(l)
}

// Init directs debug logging to the file at path at debug level.
// If path is empty, uses "gui-debug.log" in the current directory.
func Init(path string) error {
	if path == "" {
		path = "gui-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logFile = f
	loggerPtr.Store(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// Close closes the debug log file, if any, and restores silent logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	loggerPtr.Store(slog.New(nopHandler{}))
	return err
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Log writes a printf-style message at debug level.
func Log(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}
