// Package threadview renders one story's comment tree and drives the
// tree state: pagination, collapse and expand, and the scroll side
// effect after a whole-thread collapse.
package threadview

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"terminalhn/app"
	"terminalhn/domain"
	"terminalhn/thread"
	"terminalhn/tui/common"
)

// PageLoadedMsg is sent when a comment page fetch completes.
type PageLoadedMsg struct {
	StoryID int
	Res     app.PartialTree
}

// PageErrorMsg is sent when a comment page fetch fails.
type PageErrorMsg struct {
	StoryID int
	Err     error
}

// ScrollToRootMsg fires one tick after a thread collapse and moves the
// view to the collapsed thread's root.
type ScrollToRootMsg struct {
	RootID int
}

// BackMsg asks the root model to return to the stories view.
type BackMsg struct{}

// row is one visible line-group in the flattened tree.
type row struct {
	comment *domain.Comment
}

// Model holds the state for the thread view.
type Model struct {
	state  *thread.State
	loader app.CommentLoader

	keys    common.KeyMap
	spinner spinner.Model

	cursor    int // index into visible rows
	start     int // first visible row
	err       error
	showHints bool

	width  int
	height int
}

// New creates a thread view over a fresh tree state.
func New(state *thread.State, loader app.CommentLoader) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))
	return Model{
		state:   state,
		loader:  loader,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init kicks off the first page load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadMore(), m.spinner.Tick)
}

// State exposes the underlying tree state, mainly for the root model.
func (m Model) State() *thread.State { return m.state }

// visibleRows flattens the forest into the rows currently on screen:
// children of a collapsed comment are skipped.
func (m Model) visibleRows() []row {
	var rows []row
	var walk func(cs []domain.Comment)
	walk = func(cs []domain.Comment) {
		for i := range cs {
			c := &cs[i]
			rows = append(rows, row{comment: c})
			if !m.state.IsCollapsed(c.ID) {
				walk(c.Children)
			}
		}
	}
	walk(m.state.Comments())
	return rows
}

// selectedComment returns the comment under the cursor, nil when the
// tree is empty.
func (m Model) selectedComment() *domain.Comment {
	rows := m.visibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor].comment
}

// setCursorByID moves the cursor to a comment id if it is visible.
func (m *Model) setCursorByID(id int) {
	for i, r := range m.visibleRows() {
		if r.comment.ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

func (m *Model) clampCursor() {
	n := len(m.visibleRows())
	if n == 0 {
		m.cursor = 0
		m.start = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	slots := m.rowSlots()
	if m.cursor < m.start {
		m.start = m.cursor
	}
	if m.cursor >= m.start+slots {
		m.start = m.cursor - slots + 1
	}
	if m.start < 0 {
		m.start = 0
	}
}

// rowSlots estimates how many comment cards fit under the header.
func (m Model) rowSlots() int {
	h := m.height - 9
	if h < 12 {
		h = 12
	}
	return h / 3
}
