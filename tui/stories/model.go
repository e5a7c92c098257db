// Package stories is the front-page entry view: one window of top
// stories, no listing pagination.
package stories

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"terminalhn/app"
	"terminalhn/domain"
	"terminalhn/tui/common"
)

// StoriesLoadedMsg is sent when the front-page fetch completes.
type StoriesLoadedMsg struct {
	Stories []domain.Story
}

// StoriesErrorMsg is sent when the front-page fetch fails.
type StoriesErrorMsg struct {
	Err error
}

// OpenThreadMsg asks the root model to open a story's comment thread.
type OpenThreadMsg struct {
	Story domain.Story
}

// Model holds the state for the stories view.
type Model struct {
	svc   app.StoryService
	limit int

	keys    common.KeyMap
	spinner spinner.Model

	stories []domain.Story
	cursor  int
	start   int
	loading bool
	err     error

	width  int
	height int
}

// New creates a stories model with injected dependencies.
func New(svc app.StoryService, limit int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))
	return Model{
		svc:     svc,
		limit:   limit,
		keys:    common.DefaultKeyMap(),
		spinner: s,
		loading: true,
	}
}

// Init starts the initial front-page fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchStories(), m.spinner.Tick)
}

func (m Model) fetchStories() tea.Cmd {
	svc := m.svc
	limit := m.limit
	return func() tea.Msg {
		stories, err := svc.FetchTopStories(context.Background(), limit)
		if err != nil {
			return StoriesErrorMsg{Err: err}
		}
		return StoriesLoadedMsg{Stories: stories}
	}
}

// Update handles messages for the stories view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StoriesLoadedMsg:
		m.stories = msg.Stories
		m.loading = false
		m.err = nil
		if m.cursor >= len(m.stories) {
			m.cursor = 0
		}
		return m, nil

	case StoriesErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.stories)-1 {
				m.cursor++
				m.ensureCursorVisible()
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.ensureCursorVisible()
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.fetchStories(), m.spinner.Tick)
		case key.Matches(msg, m.keys.Open):
			if m.cursor < len(m.stories) {
				story := m.stories[m.cursor]
				return m, func() tea.Msg { return OpenThreadMsg{Story: story} }
			}
		case key.Matches(msg, m.keys.OpenURL):
			if m.cursor < len(m.stories) && m.stories[m.cursor].URL != "" {
				return m, openInBrowser(m.stories[m.cursor].URL)
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) ensureCursorVisible() {
	slots := m.storySlots()
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

func (m Model) storySlots() int {
	h := m.height - 6
	if h < 9 {
		h = 9
	}
	return h / 3
}
