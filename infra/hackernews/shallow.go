package hackernews

import (
	"context"

	"golang.org/x/sync/errgroup"

	"terminalhn/app"
	"terminalhn/domain"
)

const (
	// maxShallowDepth is the level past which the shallow strategy stops
	// recursing unless a required id or the force flag overrides it.
	maxShallowDepth = 5

	// fetchConcurrency bounds sibling fan-out per depth level.
	fetchConcurrency = 8
)

// ShallowLoader materializes comments one item fetch at a time: siblings
// at a depth are requested concurrently, depths sequentially (children
// ids are unknown until the parent resolves). Dead, deleted, and failed
// nodes are dropped silently and logged.
type ShallowLoader struct {
	client *Client
	log    app.Logger
}

// NewShallowLoader creates a per-node CommentLoader against the Firebase API.
func NewShallowLoader(client *Client, log app.Logger) *ShallowLoader {
	return &ShallowLoader{client: client, log: log}
}

// FetchPage fetches the requested top-level ids and their subtrees.
func (l *ShallowLoader) FetchPage(ctx context.Context, req app.PageRequest) (app.PartialTree, error) {
	comments, err := l.fetchLevel(ctx, req.IDs, 0, req.Required, req.ForceDeep)
	if err != nil {
		return app.PartialTree{}, err
	}
	return app.PartialTree{Comments: comments}, nil
}

// fetchLevel fetches one sibling batch, preserving input order in the
// result regardless of completion order.
func (l *ShallowLoader) fetchLevel(ctx context.Context, ids []int, level int, required map[int]struct{}, force bool) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	results := make([]*domain.Comment, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			it, err := fetchItem(gctx, l.client, id)
			if err != nil {
				l.log.Printf("dropping comment %d: %v", id, err)
				return nil
			}
			if it.Dead || it.Deleted {
				l.log.Printf("dropping comment %d: dead or deleted", id)
				return nil
			}

			var children []domain.Comment
			if len(it.Kids) > 0 && l.shouldDescend(level+1, it.Kids, required, force) {
				children, err = l.fetchLevel(gctx, it.Kids, level+1, required, force)
				if err != nil {
					return err
				}
			}

			c := newComment(it, level, children)
			results[i] = &c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Comment, 0, len(ids))
	for _, c := range results {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

// shouldDescend decides whether children at childLevel are materialized.
// Past the depth cutoff, only branches holding a required id (deep-link
// ancestor chains) or a force-load keep going.
func (l *ShallowLoader) shouldDescend(childLevel int, kids []int, required map[int]struct{}, force bool) bool {
	if force || childLevel < maxShallowDepth {
		return true
	}
	for _, kid := range kids {
		if _, ok := required[kid]; ok {
			return true
		}
	}
	return false
}
