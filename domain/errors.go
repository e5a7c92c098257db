package domain

import "errors"

var (
	// ErrItemNotFound indicates the backend has no item for the given id.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotStory indicates a parent chain ended on something that is not a story.
	ErrNotStory = errors.New("item chain does not lead to a story")

	// ErrParentCycle indicates a cyclic or pathologically deep parent chain.
	ErrParentCycle = errors.New("cyclic parent chain")
)
