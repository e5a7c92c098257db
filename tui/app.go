package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"terminalhn/app"
	"terminalhn/domain"
	"terminalhn/thread"
	"terminalhn/tui/common"
	"terminalhn/tui/stories"
	"terminalhn/tui/threadview"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Stories app.StoryService
	Shallow app.CommentLoader
	Bulk    app.CommentLoader

	UseBulk    bool // default loader strategy for opened threads
	PageSize   int
	StoryLimit int

	// Deep link, pre-resolved in main: when set the app opens directly
	// on this story's thread with the target's ancestry materialized.
	InitialStory *domain.Story
	InitialPath  []int // branch ids from the target up to the story
}

type activeView int

const (
	storiesView activeView = iota
	threadView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps    Deps
	active  activeView
	stories stories.Model
	thread  threadview.Model
	keys    common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	a := App{
		deps:    deps,
		active:  storiesView,
		stories: stories.New(deps.Stories, deps.StoryLimit),
		keys:    common.DefaultKeyMap(),
	}
	if deps.InitialStory != nil {
		a.active = threadView
		// A deep link needs the whole ancestor chain, so it always uses
		// the exhaustive loader.
		state := thread.NewDeepLink(*deps.InitialStory, deps.PageSize, deps.InitialPath)
		a.thread = threadview.New(state, deps.Bulk)
	}
	return a
}

// Init delegates to the initially active sub-model.
func (a App) Init() tea.Cmd {
	if a.active == threadView {
		return a.thread.Init()
	}
	return a.stories.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) || key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.stories, cmd = a.stories.Update(msg)
		cmds = append(cmds, cmd)
		if a.active == threadView {
			a.thread, cmd = a.thread.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case stories.OpenThreadMsg:
		a.active = threadView
		loader := a.deps.Shallow
		if a.deps.UseBulk {
			loader = a.deps.Bulk
		}
		a.thread = threadview.New(thread.New(msg.Story, a.deps.PageSize), loader)
		return a, a.thread.Init()

	case threadview.BackMsg:
		// The abandoned thread state is simply dropped; any in-flight
		// fetch resolves into an unreferenced model.
		a.active = storiesView
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		switch a.active {
		case storiesView:
			a.stories, cmd = a.stories.Update(msg)
		case threadView:
			a.thread, cmd = a.thread.Update(msg)
		}
		return a, cmd
	}

	// Delegate to the active sub-model.
	switch a.active {
	case storiesView:
		updated, cmd := a.stories.Update(msg)
		a.stories = updated
		return a, cmd
	case threadView:
		updated, cmd := a.thread.Update(msg)
		a.thread = updated
		return a, cmd
	}

	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	switch a.active {
	case threadView:
		return a.thread.View()
	default:
		return a.stories.View()
	}
}
