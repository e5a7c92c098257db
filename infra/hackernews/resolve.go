package hackernews

import (
	"context"
	"fmt"

	"terminalhn/domain"
)

// maxParentHops caps the parent-chain walk. HN threads never approach
// this depth; tripping it means the chain is malformed.
const maxParentHops = 32

// itemService implements app.ItemService using the Firebase API.
type itemService struct {
	client *Client
}

// NewItemService creates an ItemService backed by the Firebase API.
func NewItemService(client *Client) *itemService {
	return &itemService{client: client}
}

// FindRootStoryID walks an item's parent chain until it reaches the
// owning story, collecting the comment ids it passes through. A visited
// set and a hop cap guard against cyclic or pathologically deep chains.
func (s *itemService) FindRootStoryID(ctx context.Context, id int) (int, []int, error) {
	visited := make(map[int]struct{}, 8)
	var ancestry []int
	for hops := 0; hops < maxParentHops; hops++ {
		if _, ok := visited[id]; ok {
			return 0, nil, fmt.Errorf("resolving item %d: %w", id, domain.ErrParentCycle)
		}
		visited[id] = struct{}{}

		it, err := fetchItem(ctx, s.client, id)
		if err != nil {
			return 0, nil, fmt.Errorf("resolving item %d: %w", id, err)
		}
		if it.Type == "story" {
			return it.ID, ancestry, nil
		}
		ancestry = append(ancestry, it.ID)
		if it.Parent == 0 {
			return 0, nil, fmt.Errorf("resolving item %d: %w", id, domain.ErrNotStory)
		}
		id = it.Parent
	}
	return 0, nil, fmt.Errorf("parent chain longer than %d hops: %w", maxParentHops, domain.ErrParentCycle)
}
