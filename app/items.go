package app

import (
	"context"

	"terminalhn/domain"
)

// StoryService fetches stories from the news backend.
type StoryService interface {
	// FetchTopStories returns up to limit front-page stories, rank order preserved.
	FetchTopStories(ctx context.Context, limit int) ([]domain.Story, error)

	// FetchStory returns a single story by id.
	FetchStory(ctx context.Context, id int) (domain.Story, error)
}

// ItemService resolves arbitrary item ids, used for deep links.
type ItemService interface {
	// FindRootStoryID walks an item's parent chain up to its owning
	// story. The returned ancestry holds every comment id on the walk,
	// the starting item first, so callers can require the whole branch
	// when materializing the tree.
	FindRootStoryID(ctx context.Context, id int) (storyID int, ancestry []int, err error)
}
