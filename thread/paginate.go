package thread

import (
	"context"
	"fmt"

	"terminalhn/app"
)

// BeginLoadMore decides whether another page should be fetched and, if
// so, marks the load in flight and returns the request to execute.
//
// It is a no-op (ok=false) when a load is already in flight, no story is
// set, pagination is exhausted, the next root-id slice is empty, or the
// loaded total has not advanced since the previous load (stale-state
// ratchet — the ratchet also forces HasMore false, since a stalled tree
// will not grow on retry).
func (s *State) BeginLoadMore() (req app.PageRequest, ok bool) {
	if s.loading || s.story.ID == 0 || !s.hasMore {
		return app.PageRequest{}, false
	}

	total := s.LoadedTotal()
	if s.lastTotal >= 0 && total <= s.lastTotal {
		s.hasMore = false
		return app.PageRequest{}, false
	}

	next := s.nextRootIDs()
	if len(next) == 0 && len(s.story.Kids) > 0 {
		s.hasMore = false
		return app.PageRequest{}, false
	}

	s.lastTotal = total
	s.nextKid += len(next)
	s.loading = true
	return app.PageRequest{
		StoryID:  s.story.ID,
		IDs:      next,
		Required: s.required,
	}, true
}

// ApplyPage merges a fetched page into the forest and re-evaluates
// exhaustion. An exhaustive page replaces the forest outright and ends
// pagination. Otherwise pagination ends when the recursive total reaches
// the story's descendant count, or when the page yielded zero net new
// materialized nodes (stagnation guard).
func (s *State) ApplyPage(res app.PartialTree) {
	s.loading = false

	if res.Exhaustive {
		s.comments = res.Comments
		s.hasMore = false
		return
	}

	s.comments = append(s.comments, res.Comments...)

	total := s.LoadedTotal()
	switch {
	case total <= s.lastTotal:
		s.hasMore = false
	case s.story.Descendants > 0 && total >= s.story.Descendants:
		s.hasMore = false
	case s.nextKid >= len(s.story.Kids):
		s.hasMore = false
	}
}

// FailLoadMore records a failed page fetch: the partial tree is kept,
// nothing is rolled back, and pagination ends.
func (s *State) FailLoadMore() {
	s.loading = false
	s.hasMore = false
}

// LoadMore runs one full load cycle against the loader. It returns nil
// without fetching when BeginLoadMore declines.
func (s *State) LoadMore(ctx context.Context, loader app.CommentLoader) error {
	req, ok := s.BeginLoadMore()
	if !ok {
		return nil
	}
	res, err := loader.FetchPage(ctx, req)
	if err != nil {
		s.FailLoadMore()
		return fmt.Errorf("loading comments for story %d: %w", req.StoryID, err)
	}
	s.ApplyPage(res)
	return nil
}

// nextRootIDs returns the next page-sized slice of unmaterialized
// top-level comment ids.
func (s *State) nextRootIDs() []int {
	if s.nextKid >= len(s.story.Kids) {
		return nil
	}
	end := s.nextKid + s.pageSize
	if end > len(s.story.Kids) {
		end = len(s.story.Kids)
	}
	return s.story.Kids[s.nextKid:end]
}
