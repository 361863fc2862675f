//go:build !windows

// Package console attaches the launcher to a usable console window. Only
// Windows GUI builds need the dance; everywhere else there already is one.
package console

// Attach is a no-op outside Windows.
func Attach() bool {
	return true
}
