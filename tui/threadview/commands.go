package threadview

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadMore begins a page load if the tree state allows one. The guard
// decisions (in-flight, exhausted, ratchet) live in thread.State; this
// only turns an accepted request into an async fetch.
func (m Model) loadMore() tea.Cmd {
	req, ok := m.state.BeginLoadMore()
	if !ok {
		return nil
	}
	loader := m.loader
	return func() tea.Msg {
		res, err := loader.FetchPage(context.Background(), req)
		if err != nil {
			return PageErrorMsg{StoryID: req.StoryID, Err: err}
		}
		return PageLoadedMsg{StoryID: req.StoryID, Res: res}
	}
}

// scrollToRoot schedules the jump to a collapsed thread's root for the
// next render tick, so the collapse is drawn before the view moves.
func scrollToRoot(rootID int) tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg {
		return ScrollToRootMsg{RootID: rootID}
	})
}
