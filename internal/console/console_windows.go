//go:build windows

// Package console attaches the launcher to a usable console window. GUI
// subsystem builds started from Explorer have no console, so one is
// attached or created before anything is printed.
package console

import (
	"os"
	"syscall"
)

var (
	kernel32      = syscall.NewLazyDLL("kernel32.dll")
	user32        = syscall.NewLazyDLL("user32.dll")
	attachConsole = kernel32.NewProc("AttachConsole")
	allocConsole  = kernel32.NewProc("AllocConsole")
	getStdHandle  = kernel32.NewProc("GetStdHandle")
	getConsoleWnd = kernel32.NewProc("GetConsoleWindow")
	showWindow    = user32.NewProc("ShowWindow")
)

const (
	attachParentProcess = ^uint32(0) // -1 as uint32
	stdInputHandle      = ^uint32(0) - 10 + 1
	stdOutputHandle     = ^uint32(0) - 11 + 1
	stdErrorHandle      = ^uint32(0) - 12 + 1
	swShowNormal        = 1
)

// Attach makes sure stdout, stderr, and stdin point at a console. It first
// tries the parent process console and falls back to allocating a new one.
// Returns false when no console could be obtained.
func Attach() bool {
	handle, _, _ := getStdHandle.Call(uintptr(stdOutputHandle))
	if handle != 0 && handle != uintptr(syscall.InvalidHandle) {
		return true
	}

	attached, _, _ := attachConsole.Call(uintptr(attachParentProcess))
	allocated := false
	if attached == 0 {
		ok, _, _ := allocConsole.Call()
		if ok == 0 {
			return false
		}
		allocated = true
	}

	if h, _, _ := getStdHandle.Call(uintptr(stdOutputHandle)); h != 0 && h != uintptr(syscall.InvalidHandle) {
		os.Stdout = os.NewFile(h, "/dev/stdout")
	}
	if h, _, _ := getStdHandle.Call(uintptr(stdErrorHandle)); h != 0 && h != uintptr(syscall.InvalidHandle) {
		os.Stderr = os.NewFile(h, "/dev/stderr")
	}
	if h, _, _ := getStdHandle.Call(uintptr(stdInputHandle)); h != 0 && h != uintptr(syscall.InvalidHandle) {
		os.Stdin = os.NewFile(h, "/dev/stdin")
	}

	if allocated {
		if wnd, _, _ := getConsoleWnd.Call(); wnd != 0 {
			showWindow.Call(wnd, swShowNormal)
		}
	}
	return true
}
