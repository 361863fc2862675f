package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func writeLibrary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	lists := map[string]string{
		"Cessna 172/01Cold_and_Dark.txt": "Parking Brake - SET\nAvionics - OFF",
		"Cessna 172/02Before_Start.txt":  "Beacon - ON\nMixture - RICH\nThrottle - OPEN 1/4",
		"Boeing 737/01Preflight.txt":     "IRS - NAV",
	}
	for name, content := range lists {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// loaded builds a model with the library scanned and applied.
func loaded(t *testing.T, dir string, opts ...Option) Model {
	t.Helper()
	m := New(dir, opts...)
	msg := m.scanCmd()()
	lib, ok := msg.(libraryLoadedMsg)
	if !ok {
		t.Fatalf("scanCmd() returned %T", msg)
	}
	if lib.err != nil {
		t.Fatalf("scan error: %v", lib.err)
	}
	next, _ := m.Update(lib)
	return next.(Model)
}

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	return next.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelLoadsLibrary(t *testing.T) {
	m := loaded(t, writeLibrary(t))

	if len(m.aircraft) != 2 {
		t.Fatalf("loaded %d aircraft, want 2", len(m.aircraft))
	}
	if m.currentAircraftName() != "Boeing 737" {
		t.Errorf("first aircraft = %q, want Boeing 737", m.currentAircraftName())
	}
	if m.current.Name != "01Preflight.txt" {
		t.Errorf("opened file = %q, want 01Preflight.txt", m.current.Name)
	}
	if len(m.items) != 1 {
		t.Errorf("loaded %d items, want 1", len(m.items))
	}
}

func TestModelEmptyLibrary(t *testing.T) {
	m := loaded(t, t.TempDir())
	if len(m.aircraft) != 0 {
		t.Fatalf("expected no aircraft")
	}
	if !strings.Contains(m.status, "No checklists found") {
		t.Errorf("status = %q, want empty-library hint", m.status)
	}
}

func TestSwitchAircraft(t *testing.T) {
	m := loaded(t, writeLibrary(t))

	m, _ = press(t, m, keyRune(']'))
	if m.currentAircraftName() != "Cessna 172" {
		t.Errorf("after ]: aircraft = %q, want Cessna 172", m.currentAircraftName())
	}
	if m.current.Name != "01Cold_and_Dark.txt" {
		t.Errorf("after ]: file = %q, want 01Cold_and_Dark.txt", m.current.Name)
	}

	m, _ = press(t, m, keyRune('['))
	if m.currentAircraftName() != "Boeing 737" {
		t.Errorf("after [: aircraft = %q, want Boeing 737", m.currentAircraftName())
	}
}

func TestToggleTracksProgress(t *testing.T) {
	m := loaded(t, writeLibrary(t))
	m, _ = press(t, m, keyRune(']')) // Cessna 172, 01 Cold and Dark (2 items)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.session.Progress(m.current.Path, len(m.items)); got != 1 {
		t.Errorf("progress after one toggle = %d, want 1", got)
	}
	if !strings.Contains(m.status, "1/2") {
		t.Errorf("status = %q, want progress 1/2", m.status)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (advances after checking)", m.cursor)
	}
}

func TestCompletionAdvancesToNextList(t *testing.T) {
	var chimed int
	m := loaded(t, writeLibrary(t), WithCompletionSound(func() { chimed++ }))
	m, _ = press(t, m, keyRune(']'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("completing a checklist should schedule the advance")
	}
	if chimed != 1 {
		t.Errorf("completion sound played %d times, want 1", chimed)
	}
	if !strings.Contains(m.status, "02 Before Start") {
		t.Errorf("status = %q, want next-list announcement", m.status)
	}

	msg := cmd() // tea.Tick blocks for the advance delay, then fires
	adv, ok := msg.(advanceMsg)
	if !ok {
		t.Fatalf("scheduled cmd produced %T, want advanceMsg", msg)
	}
	next, _ := m.Update(adv)
	m = next.(Model)
	if m.current.Name != "02Before_Start.txt" {
		t.Errorf("after advance: file = %q, want 02Before_Start.txt", m.current.Name)
	}
	if m.cursor != 0 {
		t.Errorf("after advance: cursor = %d, want 0", m.cursor)
	}
}

func TestSequenceComplete(t *testing.T) {
	m := loaded(t, writeLibrary(t)) // Boeing 737 has a single one-item list
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd != nil {
		t.Error("last list in the sequence must not schedule an advance")
	}
	if !strings.Contains(m.status, "Sequence complete") {
		t.Errorf("status = %q, want sequence-complete message", m.status)
	}
}

func TestUncheckAll(t *testing.T) {
	m := loaded(t, writeLibrary(t))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, _ = press(t, m, keyRune('u'))
	if got := m.session.Progress(m.current.Path, len(m.items)); got != 0 {
		t.Errorf("progress after uncheck all = %d, want 0", got)
	}
	if !strings.Contains(m.status, "unchecked") {
		t.Errorf("status = %q", m.status)
	}
}

func TestRescanKeepsSelection(t *testing.T) {
	dir := writeLibrary(t)
	m := loaded(t, dir)
	m, _ = press(t, m, keyRune(']')) // Cessna 172

	// A new aircraft appears; rescan must keep the Cessna selected.
	p := filepath.Join(dir, "Airbus A320", "01Safety.txt")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("item"), 0o644); err != nil {
		t.Fatal(err)
	}

	msg := m.scanCmd()()
	next, _ := m.Update(msg)
	m = next.(Model)

	if len(m.aircraft) != 3 {
		t.Fatalf("rescan found %d aircraft, want 3", len(m.aircraft))
	}
	if m.currentAircraftName() != "Cessna 172" {
		t.Errorf("rescan lost aircraft selection: %q", m.currentAircraftName())
	}
}

func TestRescanDropsDeletedFileState(t *testing.T) {
	dir := writeLibrary(t)
	m := loaded(t, dir)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	deleted := m.current.Path

	if err := os.Remove(deleted); err != nil {
		t.Fatal(err)
	}
	msg := m.scanCmd()()
	next, _ := m.Update(msg)
	m = next.(Model)

	if m.current.Path == deleted {
		t.Error("rescan kept a deleted file open")
	}
	if got := m.session.Progress(deleted, 1); got != 0 {
		t.Errorf("deleted file kept state: %d", got)
	}
}

func TestViewRendersChecklist(t *testing.T) {
	m := loaded(t, writeLibrary(t))
	m.setSize(100, 30)

	view := m.View()
	if !strings.Contains(view, "Boeing 737") {
		t.Error("view missing aircraft tab")
	}
	if !strings.Contains(view, "01 Preflight") {
		t.Error("view missing checklist title")
	}
	if !strings.Contains(view, "[ ] IRS - NAV") {
		t.Error("view missing unchecked item")
	}
}
