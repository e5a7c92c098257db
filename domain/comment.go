package domain

// DeletedAuthor is the placeholder shown for comments whose author is gone.
const DeletedAuthor = "[deleted]"

// Comment is a single comment in a story's discussion tree.
type Comment struct {
	ID       int
	Text     string // Raw markup; empty for deleted comments
	Author   string // DeletedAuthor if missing
	Time     int64  // Unix seconds
	Level    int    // Depth from the thread root, 0-based
	Children []Comment
	ChildIDs []int // Raw kid ids in source order; may exceed len(Children)

	// HasDeepReplies is true when the backend reports more replies than
	// were materialized at this depth.
	HasDeepReplies bool
}

// Story is the item a comment forest hangs off.
type Story struct {
	ID          int
	Title       string
	URL         string
	Author      string
	Time        int64 // Unix seconds
	Kids        []int // Top-level comment ids in source order
	Descendants int   // Authoritative total comment count
	Score       int
}

// CountComments returns the recursive node count of a forest.
func CountComments(forest []Comment) int {
	n := 0
	for i := range forest {
		n += 1 + CountComments(forest[i].Children)
	}
	return n
}
