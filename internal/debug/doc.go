// Package debug provides the logger shared by every go-gui package.
//
// Logging is a no-op by default. When the GUI_DEBUG environment variable is
// set to a file path, records are appended to that file on first use.
// Callers may also install their own *slog.Logger with SetLogger.
package debug
