package hackernews

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"terminalhn/domain"
)

// rawItem is the Firebase item shape shared by stories and comments.
type rawItem struct {
	ID          int    `json:"id"`
	Type        string `json:"type"` // "story" or "comment"
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Text        string `json:"text"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Kids        []int  `json:"kids"`
	Parent      int    `json:"parent"`
	Dead        bool   `json:"dead"`
	Deleted     bool   `json:"deleted"`
}

// fetchItem loads one item from the Firebase API. Missing ids come back
// as a literal "null" body, mapped to domain.ErrItemNotFound.
func fetchItem(ctx context.Context, c *Client, id int) (rawItem, error) {
	data, err := c.Get(ctx, fmt.Sprintf("/v0/item/%d.json", id))
	if err != nil {
		return rawItem{}, fmt.Errorf("fetching item %d: %w", id, err)
	}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return rawItem{}, fmt.Errorf("item %d: %w", id, domain.ErrItemNotFound)
	}

	var it rawItem
	if err := json.Unmarshal(data, &it); err != nil {
		return rawItem{}, fmt.Errorf("parsing item %d: %w", id, err)
	}
	return it, nil
}

// newComment maps a raw item plus its materialized children into a
// Comment node. HasDeepReplies records that the backend knows about more
// replies than were materialized at this depth.
func newComment(it rawItem, level int, children []domain.Comment) domain.Comment {
	author := it.By
	if author == "" {
		author = domain.DeletedAuthor
	}
	return domain.Comment{
		ID:             it.ID,
		Text:           it.Text,
		Author:         author,
		Time:           it.Time,
		Level:          level,
		Children:       children,
		ChildIDs:       it.Kids,
		HasDeepReplies: len(it.Kids) > len(children),
	}
}

func newStory(it rawItem) domain.Story {
	return domain.Story{
		ID:          it.ID,
		Title:       it.Title,
		URL:         it.URL,
		Author:      it.By,
		Time:        it.Time,
		Kids:        it.Kids,
		Descendants: it.Descendants,
		Score:       it.Score,
	}
}
