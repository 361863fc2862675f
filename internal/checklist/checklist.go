// Package checklist reads the on-disk checklist library and tracks which
// items a pilot has checked off during the session.
//
// The library layout is Lists/<Aircraft>/<NN Name>.txt: one directory per
// aircraft, one plain-text file per checklist, one item per line. Files are
// presented in lexical order, so the numeric prefix controls the flow
// (01 Cold and Dark, 02 Before Start, ...).
package checklist

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Fir3Fly1995/FlightListChk/internal/paths"
)

// Extension is the only file type recognized as a checklist.
const Extension = ".txt"

// File is a single checklist file within an aircraft directory.
type File struct {
	Name string // base name, e.g. "01Cold_and_Dark.txt"
	Path string // absolute path
}

// Aircraft is one aircraft directory and its ordered checklist files.
type Aircraft struct {
	Name  string
	Files []File
}

var digitPrefix = regexp.MustCompile(`^(\d+)([A-Za-z])`)

// DisplayName converts a raw filename into a readable title: the extension
// is stripped, underscores become spaces, and a space is inserted between a
// leading number and the first letter ("01Cold_and_Dark.txt" -> "01 Cold and
// Dark").
func DisplayName(filename string) string {
	base := strings.TrimSuffix(filename, Extension)
	base = strings.ReplaceAll(base, "_", " ")
	if m := digitPrefix.FindStringSubmatch(base); m != nil {
		return m[1] + " " + base[len(m[1]):]
	}
	return base
}

// DisplayName returns the file's readable title.
func (f File) DisplayName() string {
	return DisplayName(f.Name)
}

// Scan walks the library directory and returns every aircraft that contains
// at least one checklist file. Aircraft and files are sorted lexically.
// Hidden entries and non-checklist files are skipped. A missing or empty
// library returns an empty slice, not an error.
func Scan(dir string) ([]Aircraft, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading checklist library %s: %w", dir, err)
	}

	var aircraft []Aircraft
	for _, entry := range entries {
		if !entry.IsDir() || paths.IsHidden(entry.Name()) {
			continue
		}
		files, err := scanAircraft(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			continue
		}
		aircraft = append(aircraft, Aircraft{Name: entry.Name(), Files: files})
	}
	sort.Slice(aircraft, func(i, j int) bool { return aircraft[i].Name < aircraft[j].Name })
	return aircraft, nil
}

func scanAircraft(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading aircraft directory %s: %w", dir, err)
	}
	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || paths.IsHidden(name) {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), Extension) {
			continue
		}
		files = append(files, File{Name: name, Path: filepath.Join(dir, name)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// LoadItems reads a checklist file and returns its non-blank lines, trimmed.
func LoadItems(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading checklist %s: %w", path, err)
	}
	var items []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items, nil
}

// Next returns the file that follows current in the aircraft's sequence.
// The second return is false when current is the last file or not part of
// the sequence.
func Next(files []File, current string) (File, bool) {
	for i, f := range files {
		if f.Name == current {
			if i+1 < len(files) {
				return files[i+1], true
			}
			return File{}, false
		}
	}
	return File{}, false
}
