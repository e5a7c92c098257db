package hackernews

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"terminalhn/app"
	"terminalhn/domain"
	"terminalhn/thread"
)

func discardLogger() app.Logger {
	return log.New(io.Discard, "", 0)
}

// newItemServer serves Firebase-style /v0/item/{id}.json responses from a
// fixture map. Unknown ids answer "null", like the real API.
func newItemServer(t *testing.T, items map[int]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/v0/item/")
		id, err := strconv.Atoi(strings.TrimSuffix(path, ".json"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		body, ok := items[id]
		if !ok {
			fmt.Fprint(w, "null")
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestShallowLoader_DeletedSiblingDropped(t *testing.T) {
	// Parent 1 has five kids; kid 3 is deleted. Materialized children
	// must be the four survivors in source order, and HasDeepReplies must
	// reflect 5 raw vs 4 materialized.
	items := map[int]string{
		1: `{"id":1,"type":"comment","by":"alice","time":100,"text":"parent","kids":[10,11,12,13,14]}`,
		10: `{"id":10,"type":"comment","by":"b","time":101,"text":"r1"}`,
		11: `{"id":11,"type":"comment","by":"c","time":102,"text":"r2"}`,
		12: `{"id":12,"type":"comment","deleted":true}`,
		13: `{"id":13,"type":"comment","by":"d","time":103,"text":"r3"}`,
		14: `{"id":14,"type":"comment","by":"e","time":104,"text":"r4"}`,
	}
	loader := NewShallowLoader(newItemServer(t, items), discardLogger())

	tree, err := loader.FetchPage(context.Background(), app.PageRequest{StoryID: 99, IDs: []int{1}})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if len(tree.Comments) != 1 {
		t.Fatalf("expected 1 root, got %d", len(tree.Comments))
	}

	parent := tree.Comments[0]
	if len(parent.Children) != 4 {
		t.Fatalf("expected 4 materialized children, got %d", len(parent.Children))
	}
	if !parent.HasDeepReplies {
		t.Fatalf("HasDeepReplies should be true: 5 raw kid ids vs 4 materialized")
	}
	want := []int{10, 11, 13, 14}
	for i, c := range parent.Children {
		if c.ID != want[i] {
			t.Fatalf("source order not preserved: got %d at %d, want %d", c.ID, i, want[i])
		}
		if c.Level != 1 {
			t.Fatalf("child %d: level = %d, want 1", c.ID, c.Level)
		}
	}
}

func TestShallowLoader_DeadAndFailedNodesDropped(t *testing.T) {
	items := map[int]string{
		1: `{"id":1,"type":"comment","by":"alice","time":100,"text":"ok"}`,
		2: `{"id":2,"type":"comment","by":"bob","time":100,"text":"gone","dead":true}`,
		// 3 is missing entirely: the server answers null.
	}
	loader := NewShallowLoader(newItemServer(t, items), discardLogger())

	tree, err := loader.FetchPage(context.Background(), app.PageRequest{IDs: []int{1, 2, 3}})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if len(tree.Comments) != 1 || tree.Comments[0].ID != 1 {
		t.Fatalf("expected only comment 1 to survive, got %+v", tree.Comments)
	}
	if tree.Exhaustive {
		t.Fatalf("shallow pages are never exhaustive")
	}
}

func TestShallowLoader_MissingAuthorGetsDeletedSentinel(t *testing.T) {
	items := map[int]string{
		1: `{"id":1,"type":"comment","time":100,"text":"orphaned"}`,
	}
	loader := NewShallowLoader(newItemServer(t, items), discardLogger())

	tree, err := loader.FetchPage(context.Background(), app.PageRequest{IDs: []int{1}})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if got := tree.Comments[0].Author; got != domain.DeletedAuthor {
		t.Fatalf("author = %q, want %q", got, domain.DeletedAuthor)
	}
}

// deepChain builds a strict single-child chain of comments with the
// given ids, the first id being the root.
func deepChain(ids []int) map[int]string {
	items := make(map[int]string, len(ids))
	for i, id := range ids {
		kids := ""
		if i+1 < len(ids) {
			kids = fmt.Sprintf(`,"kids":[%d]`, ids[i+1])
		}
		items[id] = fmt.Sprintf(`{"id":%d,"type":"comment","by":"u","time":1,"text":"t"%s}`, id, kids)
	}
	return items
}

func TestShallowLoader_DepthCutoff(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8}
	loader := NewShallowLoader(newItemServer(t, deepChain(ids)), discardLogger())

	tree, err := loader.FetchPage(context.Background(), app.PageRequest{IDs: []int{1}})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}

	// Levels 0..4 materialize; the level-5 child is skipped.
	if got := domain.CountComments(tree.Comments); got != 5 {
		t.Fatalf("expected 5 materialized nodes at the cutoff, got %d", got)
	}
	deepest := &tree.Comments[0]
	for len(deepest.Children) > 0 {
		deepest = &deepest.Children[0]
	}
	if deepest.Level != 4 {
		t.Fatalf("deepest level = %d, want 4", deepest.Level)
	}
	if !deepest.HasDeepReplies {
		t.Fatalf("the cutoff node should report deeper replies")
	}
}

func TestShallowLoader_RequiredIDPiercesCutoff(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8}
	loader := NewShallowLoader(newItemServer(t, deepChain(ids)), discardLogger())

	// Requiring the whole ancestor chain of the leaf materializes it.
	required := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		required[id] = struct{}{}
	}
	tree, err := loader.FetchPage(context.Background(), app.PageRequest{IDs: []int{1}, Required: required})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if got := domain.CountComments(tree.Comments); got != len(ids) {
		t.Fatalf("expected full chain of %d nodes, got %d", len(ids), got)
	}
}

func TestShallowLoader_DeepLinkChainMaterializesTarget(t *testing.T) {
	// Story 100 carries a single-child comment chain 1→…→8; the
	// deep-link target is the leaf, three levels past the cutoff. The
	// required set is seeded from the resolved ancestry, not hand-built.
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8}
	items := map[int]string{
		100: `{"id":100,"type":"story","title":"s","by":"op","time":1,"kids":[1],"descendants":8}`,
	}
	for i, id := range ids {
		kids := ""
		if i+1 < len(ids) {
			kids = fmt.Sprintf(`,"kids":[%d]`, ids[i+1])
		}
		parent := 100
		if i > 0 {
			parent = ids[i-1]
		}
		items[id] = fmt.Sprintf(`{"id":%d,"type":"comment","by":"u","time":1,"text":"t","parent":%d%s}`, id, parent, kids)
	}
	client := newItemServer(t, items)

	storyID, ancestry, err := NewItemService(client).FindRootStoryID(context.Background(), 8)
	if err != nil {
		t.Fatalf("FindRootStoryID: %v", err)
	}
	if storyID != 100 {
		t.Fatalf("got story %d, want 100", storyID)
	}

	story, err := NewStoryService(client, discardLogger()).FetchStory(context.Background(), storyID)
	if err != nil {
		t.Fatalf("FetchStory: %v", err)
	}

	s := thread.NewDeepLink(story, 10, ancestry)
	if err := s.LoadMore(context.Background(), NewShallowLoader(client, discardLogger())); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if got := domain.CountComments(s.Comments()); got != len(ids) {
		t.Fatalf("expected the whole branch of %d nodes materialized, got %d", len(ids), got)
	}
}

func TestShallowLoader_ForceDeepIgnoresCutoff(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7}
	loader := NewShallowLoader(newItemServer(t, deepChain(ids)), discardLogger())

	tree, err := loader.FetchPage(context.Background(), app.PageRequest{IDs: []int{1}, ForceDeep: true})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if got := domain.CountComments(tree.Comments); got != len(ids) {
		t.Fatalf("expected full chain of %d nodes, got %d", len(ids), got)
	}
}
