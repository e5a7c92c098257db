package hackernews

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"terminalhn/app"
	"terminalhn/domain"
)

// storyService implements app.StoryService using the Firebase API.
type storyService struct {
	client *Client
	log    app.Logger
}

// NewStoryService creates a StoryService backed by the Firebase API.
func NewStoryService(client *Client, log app.Logger) *storyService {
	return &storyService{client: client, log: log}
}

// FetchTopStories returns the current front page, rank order preserved.
// Stories that fail to resolve are dropped and logged.
func (s *storyService) FetchTopStories(ctx context.Context, limit int) ([]domain.Story, error) {
	data, err := s.client.Get(ctx, "/v0/topstories.json")
	if err != nil {
		return nil, fmt.Errorf("fetching top stories: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parsing top stories: %w", err)
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	results := make([]*domain.Story, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			st, err := s.FetchStory(gctx, id)
			if err != nil {
				s.log.Printf("dropping story %d: %v", id, err)
				return nil
			}
			results[i] = &st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Story, 0, len(ids))
	for _, st := range results {
		if st != nil {
			out = append(out, *st)
		}
	}
	return out, nil
}

// FetchStory returns a single story by id.
func (s *storyService) FetchStory(ctx context.Context, id int) (domain.Story, error) {
	it, err := fetchItem(ctx, s.client, id)
	if err != nil {
		return domain.Story{}, err
	}
	if it.Type != "story" {
		return domain.Story{}, fmt.Errorf("item %d has type %q: %w", id, it.Type, domain.ErrNotStory)
	}
	return newStory(it), nil
}
