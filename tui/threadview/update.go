package threadview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PageLoadedMsg:
		// Ignore stale async responses from an abandoned story view.
		if msg.StoryID != m.state.Story().ID {
			return m, nil
		}
		m.state.ApplyPage(msg.Res)
		m.err = nil
		m.clampCursor()
		return m, nil

	case PageErrorMsg:
		if msg.StoryID != m.state.Story().ID {
			return m, nil
		}
		m.state.FailLoadMore()
		m.err = msg.Err
		return m, nil

	case ScrollToRootMsg:
		m.setCursorByID(msg.RootID)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.LoadMore):
		if cmd := m.loadMore(); cmd != nil {
			return m, tea.Batch(cmd, m.spinner.Tick)
		}
		return m, nil

	case key.Matches(msg, m.keys.Collapse):
		if c := m.selectedComment(); c != nil {
			m.state.CollapseComment(c.ID, c.Level)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.CollapseThread):
		if c := m.selectedComment(); c != nil {
			if rootID, ok := m.state.CollapseThread(c.ID); ok {
				m.clampCursor()
				return m, scrollToRoot(rootID)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.ExpandThread):
		if c := m.selectedComment(); c != nil {
			m.state.ExpandThread(c.ID)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.TopLevelOnly):
		m.state.ToggleTopLevelOnly()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = !m.showHints
		return m, nil
	}

	return m, nil
}
