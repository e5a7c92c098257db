package hackernews

import (
	"context"
	"encoding/json"
	"fmt"

	"terminalhn/app"
	"terminalhn/domain"
)

// algoliaItem is the Algolia bulk shape: one response carries the whole
// subtree, recursively nested to leaf depth.
type algoliaItem struct {
	ID        int           `json:"id"`
	Author    string        `json:"author"`
	Text      string        `json:"text"`
	CreatedAt int64         `json:"created_at_i"`
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Points    int           `json:"points"`
	Children  []algoliaItem `json:"children"`
}

// BulkLoader fetches a story's entire comment forest in one request.
type BulkLoader struct {
	client *Client
}

// NewBulkLoader creates an exhaustive CommentLoader against the Algolia API.
func NewBulkLoader(client *Client) *BulkLoader {
	return &BulkLoader{client: client}
}

// FetchPage ignores the id slice: the one response is always the full
// forest, so the result is marked exhaustive.
func (l *BulkLoader) FetchPage(ctx context.Context, req app.PageRequest) (app.PartialTree, error) {
	data, err := l.client.Get(ctx, fmt.Sprintf("/api/v1/items/%d", req.StoryID))
	if err != nil {
		return app.PartialTree{}, fmt.Errorf("fetching story tree %d: %w", req.StoryID, err)
	}

	var root algoliaItem
	if err := json.Unmarshal(data, &root); err != nil {
		return app.PartialTree{}, fmt.Errorf("parsing story tree %d: %w", req.StoryID, err)
	}

	return app.PartialTree{
		Comments:   mapBulkChildren(root.Children, 0),
		Exhaustive: true,
	}, nil
}

// mapBulkChildren maps nested children to Comment nodes at increasing
// depth, dropping only explicitly deleted nodes (Algolia nulls out both
// author and text for those). HasDeepReplies is always false here: the
// bulk response is exhaustive by construction.
func mapBulkChildren(items []algoliaItem, level int) []domain.Comment {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.Comment, 0, len(items))
	for _, it := range items {
		if it.Author == "" && it.Text == "" {
			continue
		}
		author := it.Author
		if author == "" {
			author = domain.DeletedAuthor
		}
		children := mapBulkChildren(it.Children, level+1)
		childIDs := make([]int, 0, len(it.Children))
		for _, child := range it.Children {
			childIDs = append(childIDs, child.ID)
		}
		out = append(out, domain.Comment{
			ID:       it.ID,
			Text:     it.Text,
			Author:   author,
			Time:     it.CreatedAt,
			Level:    level,
			Children: children,
			ChildIDs: childIDs,
		})
	}
	return out
}
