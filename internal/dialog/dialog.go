// Package dialog prompts the user for a folder path. On Windows it shows
// the native shell folder picker; elsewhere the path is typed in.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Options controls how the picker behaves.
type Options struct {
	// Title is shown in the dialog (or printed before the text prompt).
	Title string
	// Default is returned when running non-interactively or when the user
	// submits an empty answer.
	Default string
	// NonInteractive skips the dialog entirely.
	NonInteractive bool
	// Input overrides stdin. Used by tests.
	Input io.Reader
}

// SelectFolder asks the user to pick a folder and returns its path.
func SelectFolder(opts Options) (string, error) {
	if opts.NonInteractive {
		return opts.Default, nil
	}
	if runtime.GOOS == "windows" {
		path, err := browseForFolder(opts.Title)
		if err == nil {
			return path, nil
		}
		// Shell dialog unavailable (e.g. no desktop session); type it in.
	}
	return readFolder(opts)
}

func readFolder(opts Options) (string, error) {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	if opts.Title != "" {
		fmt.Println(opts.Title)
	}
	if opts.Default != "" {
		fmt.Printf("Folder [%s]: ", opts.Default)
	} else {
		fmt.Print("Folder: ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return opts.Default, nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return opts.Default, nil
	}
	if _, err := os.Stat(line); err != nil {
		return "", fmt.Errorf("folder %s does not exist", line)
	}
	return line, nil
}
