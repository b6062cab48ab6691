package gui

import (
	"log/slog"

	"github.com/grindlemire/go-gui/internal/debug"
)

// SetLogger routes the package's debug records to l. A nil logger silences
// them again. Without a call, records go to the file named by GUI_DEBUG when
// that variable is set.
func SetLogger(l *slog.Logger) {
	debug.SetLogger(l)
}

// Logger returns the logger debug records are written to.
func Logger() *slog.Logger {
	return debug.Logger()
}
