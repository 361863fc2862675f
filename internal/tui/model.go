// Package tui renders the interactive checklist viewer: aircraft tabs, a
// file sidebar, and the active checklist with toggleable items.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Fir3Fly1995/FlightListChk/internal/checklist"
)

// advanceDelay is how long a completed checklist stays on screen before the
// viewer moves to the next file in the sequence.
const advanceDelay = 500 * time.Millisecond

const sidebarWidth = 34

type focusArea int

const (
	focusFiles focusArea = iota
	focusItems
)

// fileItem adapts checklist.File to list.Item.
type fileItem struct {
	file checklist.File
}

func (i fileItem) Title() string       { return i.file.DisplayName() }
func (i fileItem) Description() string { return i.file.Name }
func (i fileItem) FilterValue() string { return i.file.DisplayName() }

type libraryLoadedMsg struct {
	aircraft []checklist.Aircraft
	err      error
}

type libraryChangedMsg struct{}

type advanceMsg struct {
	file checklist.File
}

// Model is the viewer's bubbletea model.
type Model struct {
	listsDir string
	session  *checklist.Session
	watcher  *checklist.Watcher

	aircraft []checklist.Aircraft
	acIdx    int

	files    list.Model
	viewport viewport.Model

	current checklist.File
	items   []string
	cursor  int

	focus  focusArea
	width  int
	height int
	status string
	err    error

	// onComplete plays the completion chime. No-op unless configured.
	onComplete func()

	styles Styles
}

// Option adjusts a Model during construction.
type Option func(*Model)

// WithSession shares checked state with the caller. Used by tests.
func WithSession(s *checklist.Session) Option {
	return func(m *Model) { m.session = s }
}

// WithWatcher rescans the library whenever the watcher signals a change.
func WithWatcher(w *checklist.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithCompletionSound plays fn when a checklist is fully checked.
func WithCompletionSound(fn func()) Option {
	return func(m *Model) { m.onComplete = fn }
}

// New builds the viewer model for the given library directory.
func New(listsDir string, opts ...Option) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Checklists"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))

	m := Model{
		listsDir:   listsDir,
		session:    checklist.NewSession(),
		files:      l,
		viewport:   viewport.New(0, 0),
		onComplete: func() {},
		styles:     DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init kicks off the first library scan and, when configured, the watcher
// listen loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scanCmd()}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m Model) scanCmd() tea.Cmd {
	dir := m.listsDir
	return func() tea.Msg {
		aircraft, err := checklist.Scan(dir)
		return libraryLoadedMsg{aircraft: aircraft, err: err}
	}
}

func watchCmd(w *checklist.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changed; !ok {
			return nil
		}
		return libraryChangedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case libraryLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		return m.applyLibrary(msg.aircraft), nil

	case libraryChangedMsg:
		cmds = append(cmds, m.scanCmd())
		if m.watcher != nil {
			cmds = append(cmds, watchCmd(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case advanceMsg:
		m = m.openFile(msg.file)
		m.selectInSidebar(msg.file)
		return m, nil

	case tea.KeyMsg:
		if m.files.FilterState() != list.Filtering {
			switch msg.String() {
			case "ctrl+c", "q":
				if m.watcher != nil {
					m.watcher.Close()
				}
				return m, tea.Quit
			case "tab":
				if m.focus == focusFiles {
					m.focus = focusItems
				} else {
					m.focus = focusFiles
				}
				return m, nil
			case "[":
				return m.switchAircraft(-1), nil
			case "]":
				return m.switchAircraft(1), nil
			case "r":
				m.status = "Rescanning checklist library..."
				return m, m.scanCmd()
			case "u":
				if m.current.Path != "" {
					m.session.UncheckAll(m.current.Path)
					m.status = "All items unchecked."
					m.refreshChecklist()
				}
				return m, nil
			}
			if m.focus == focusItems {
				return m.updateItems(msg)
			}
		}
	}

	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)
	cmds = append(cmds, cmd)

	// Navigating the sidebar opens the highlighted checklist.
	if sel, ok := m.files.SelectedItem().(fileItem); ok && sel.file.Path != m.current.Path {
		m = m.openFile(sel.file)
	}

	return m, tea.Batch(cmds...)
}

// updateItems handles keys while the checklist pane has focus.
func (m Model) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ", "enter":
		return m.toggleCurrent()
	}
	m.refreshChecklist()
	return m, nil
}

// toggleCurrent flips the item under the cursor. Completing the last open
// item schedules the auto-advance to the next checklist in the sequence.
func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	if m.current.Path == "" || len(m.items) == 0 {
		return m, nil
	}
	m.session.Toggle(m.current.Path, m.cursor, len(m.items))

	if m.session.Complete(m.current.Path, len(m.items)) {
		m.onComplete()
		next, ok := checklist.Next(m.currentFiles(), m.current.Name)
		if ok {
			m.status = fmt.Sprintf("Checklist complete. Loading next list: %s", next.DisplayName())
			m.refreshChecklist()
			return m, tea.Tick(advanceDelay, func(time.Time) tea.Msg {
				return advanceMsg{file: next}
			})
		}
		m.status = fmt.Sprintf("Sequence complete for %s! All checklists finished.", m.currentAircraftName())
		m.refreshChecklist()
		return m, nil
	}

	done := m.session.Progress(m.current.Path, len(m.items))
	m.status = fmt.Sprintf("Progress: %d/%d items checked.", done, len(m.items))
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
	m.refreshChecklist()
	return m, nil
}

// applyLibrary swaps in a freshly scanned library, keeping the current
// aircraft and file selected when they still exist.
func (m Model) applyLibrary(aircraft []checklist.Aircraft) Model {
	prevAircraft := m.currentAircraftName()
	m.aircraft = aircraft

	keep := make(map[string]bool)
	for _, ac := range aircraft {
		for _, f := range ac.Files {
			keep[f.Path] = true
		}
	}
	m.session.Forget(keep)

	m.acIdx = 0
	for i, ac := range aircraft {
		if ac.Name == prevAircraft {
			m.acIdx = i
			break
		}
	}
	m = m.populateSidebar()

	if m.current.Path != "" && !keep[m.current.Path] {
		m.current = checklist.File{}
		m.items = nil
		m.cursor = 0
		m.viewport.SetContent("")
	}
	if m.current.Path == "" {
		if files := m.currentFiles(); len(files) > 0 {
			m = m.openFile(files[0])
		}
	} else {
		m.selectInSidebar(m.current)
		m.refreshChecklist()
	}
	if len(aircraft) == 0 {
		m.status = "No checklists found. Add aircraft folders with numbered .txt files to the library."
	}
	return m
}

func (m Model) switchAircraft(delta int) Model {
	if len(m.aircraft) == 0 {
		return m
	}
	m.acIdx = (m.acIdx + delta + len(m.aircraft)) % len(m.aircraft)
	m = m.populateSidebar()
	if files := m.currentFiles(); len(files) > 0 {
		m = m.openFile(files[0])
	} else {
		m.current = checklist.File{}
		m.items = nil
		m.viewport.SetContent("")
	}
	return m
}

func (m *Model) populateSidebar() Model {
	items := make([]list.Item, 0, len(m.currentFiles()))
	for _, f := range m.currentFiles() {
		items = append(items, fileItem{file: f})
	}
	m.files.SetItems(items)
	m.files.ResetSelected()
	return *m
}

func (m *Model) selectInSidebar(f checklist.File) {
	for i, it := range m.files.Items() {
		if fi, ok := it.(fileItem); ok && fi.file.Path == f.Path {
			m.files.Select(i)
			return
		}
	}
}

// openFile loads a checklist into the content pane.
func (m Model) openFile(f checklist.File) Model {
	items, err := checklist.LoadItems(f.Path)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.current = f
	m.items = items
	m.cursor = 0
	done := m.session.Progress(f.Path, len(items))
	m.status = fmt.Sprintf("Progress: %d/%d items checked.", done, len(items))
	m.refreshChecklist()
	m.viewport.GotoTop()
	return m
}

// refreshChecklist re-renders the checklist pane and keeps the cursor line
// inside the viewport.
func (m *Model) refreshChecklist() {
	if m.current.Path == "" {
		m.viewport.SetContent(m.styles.Muted.Render("Select a checklist from the sidebar."))
		return
	}
	checked := m.session.Checked(m.current.Path, len(m.items))

	var b strings.Builder
	for i, item := range m.items {
		box := "[ ]"
		style := m.styles.Item
		if checked[i] {
			box = "[x]"
			style = m.styles.ItemChecked
		}
		line := fmt.Sprintf("%s %s", box, item)
		if i == m.cursor && m.focus == focusItems {
			line = m.styles.ItemCursor.Render(line)
		} else {
			line = style.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	m.viewport.SetContent(b.String())

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if h := m.viewport.Height; h > 0 && m.cursor >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(m.cursor - h + 1)
	}
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	contentHeight := height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.files.SetSize(sidebarWidth, contentHeight)
	m.viewport.Width = width - sidebarWidth - 8
	if m.viewport.Width < 20 {
		m.viewport.Width = 20
	}
	m.viewport.Height = contentHeight - 2
	m.refreshChecklist()
}

func (m Model) currentFiles() []checklist.File {
	if m.acIdx < 0 || m.acIdx >= len(m.aircraft) {
		return nil
	}
	return m.aircraft[m.acIdx].Files
}

func (m Model) currentAircraftName() string {
	if m.acIdx < 0 || m.acIdx >= len(m.aircraft) {
		return ""
	}
	return m.aircraft[m.acIdx].Name
}

// View renders the whole screen.
func (m Model) View() string {
	if m.err != nil {
		return m.styles.App.Render(m.styles.Error.Render("Error: " + m.err.Error()))
	}

	var tabs []string
	for i, ac := range m.aircraft {
		style := m.styles.Tab
		if i == m.acIdx {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(ac.Name))
	}
	tabBar := m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	title := ""
	if m.current.Path != "" {
		title = m.styles.Title.Render(fmt.Sprintf("%s - %s", m.currentAircraftName(), m.current.DisplayName()))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Sidebar.Render(m.files.View()),
		m.styles.Content.Render(content),
	)

	help := "tab focus · space check · u uncheck all · [/] aircraft · r rescan · q quit"
	footer := m.styles.Footer.Render(m.styles.Status.Render(m.status) + "\n" + m.styles.Muted.Render(help))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, tabBar, body, footer))
}

// Run starts the viewer in the alternate screen and blocks until quit.
func Run(listsDir string, opts ...Option) error {
	m := New(listsDir, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
