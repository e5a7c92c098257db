package app

import (
	"context"

	"terminalhn/domain"
)

// PageRequest describes one slice of a story's comment forest to materialize.
type PageRequest struct {
	StoryID int
	IDs     []int // Top-level comment ids to fetch; ignored by exhaustive loaders

	// Required ids whose ancestor chain must be materialized even past
	// the loader's depth cutoff (deep links).
	Required map[int]struct{}

	// ForceDeep disables the depth cutoff entirely.
	ForceDeep bool
}

// PartialTree is the materialized result of one page fetch.
type PartialTree struct {
	Comments []domain.Comment

	// Exhaustive is true when the loader returned the complete forest
	// for the story, so no further pages exist.
	Exhaustive bool
}

// CommentLoader turns comment ids into populated Comment nodes.
// Implementations differ in strategy (per-node vs. one bulk request)
// but produce the same Comment shape.
type CommentLoader interface {
	FetchPage(ctx context.Context, req PageRequest) (PartialTree, error)
}

// Logger is the sink for swallowed per-node fetch failures.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}
