// Package thread holds the in-memory state of one story's comment tree:
// the materialized forest, pagination progress, and collapse state.
// One State is owned by exactly one view and discarded on navigation.
package thread

import (
	"terminalhn/domain"
)

// State is the comment-tree state for a single story view.
type State struct {
	story    domain.Story
	pageSize int

	comments []domain.Comment
	hasMore  bool
	loading  bool

	// nextKid indexes the first top-level id in story.Kids not yet
	// requested. Tracked separately from len(comments) because dropped
	// nodes consume ids without materializing.
	nextKid int

	// lastTotal is the recursive node count observed when the previous
	// load began. -1 until the first load.
	lastTotal int

	// required ids whose ancestor chains must be materialized past the
	// shallow depth cutoff (deep links).
	required map[int]struct{}

	topLevelOnly    bool
	collapsed       map[int]struct{}
	threadCollapsed map[int]struct{} // always a subset of collapsed
	collapseOption  map[int]struct{}
}

// New creates a fresh tree state for a story.
func New(story domain.Story, pageSize int) *State {
	return &State{
		story:           story,
		pageSize:        pageSize,
		hasMore:         true,
		lastTotal:       -1,
		collapsed:       make(map[int]struct{}),
		threadCollapsed: make(map[int]struct{}),
		collapseOption:  make(map[int]struct{}),
	}
}

// NewDeepLink creates a tree state that guarantees the target comment's
// branch is materialized regardless of depth. ids is the full chain
// from the target up to the story root; every id must be present so a
// depth-limited loader can follow the branch hop by hop.
func NewDeepLink(story domain.Story, pageSize int, ids []int) *State {
	s := New(story, pageSize)
	s.required = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s.required[id] = struct{}{}
	}
	return s
}

// Story returns the story this tree belongs to.
func (s *State) Story() domain.Story { return s.story }

// Comments returns the materialized root forest in source order.
func (s *State) Comments() []domain.Comment { return s.comments }

// LoadedCount returns the number of materialized root comments.
func (s *State) LoadedCount() int { return len(s.comments) }

// LoadedTotal returns the recursive node count across the forest.
// Always recomputed; never cached.
func (s *State) LoadedTotal() int { return domain.CountComments(s.comments) }

// HasMore reports whether further pages may exist. Once false it stays
// false for the lifetime of this State.
func (s *State) HasMore() bool { return s.hasMore }

// Loading reports whether a page load is in flight.
func (s *State) Loading() bool { return s.loading }

// TopLevelOnly reports whether the global roots-only view is active.
func (s *State) TopLevelOnly() bool { return s.topLevelOnly }

func findComment(forest []domain.Comment, id int) *domain.Comment {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
		if c := findComment(forest[i].Children, id); c != nil {
			return c
		}
	}
	return nil
}

func subtreeContains(c *domain.Comment, id int) bool {
	if c.ID == id {
		return true
	}
	for i := range c.Children {
		if subtreeContains(&c.Children[i], id) {
			return true
		}
	}
	return false
}

func collectSubtreeIDs(c *domain.Comment, out []int) []int {
	out = append(out, c.ID)
	for i := range c.Children {
		out = collectSubtreeIDs(&c.Children[i], out)
	}
	return out
}

func walkForest(forest []domain.Comment, fn func(*domain.Comment)) {
	for i := range forest {
		fn(&forest[i])
		walkForest(forest[i].Children, fn)
	}
}
