package thread

import "terminalhn/domain"

// IsCollapsed reports whether a comment is collapsed (manually or as part
// of a collapsed thread).
func (s *State) IsCollapsed(id int) bool {
	_, ok := s.collapsed[id]
	return ok
}

// IsThreadCollapsed reports whether a comment was collapsed by a
// whole-thread collapse.
func (s *State) IsThreadCollapsed(id int) bool {
	_, ok := s.threadCollapsed[id]
	return ok
}

// OffersCollapseThread reports whether the "collapse thread" affordance
// should be shown for a comment. Only manually-collapsed non-root nodes
// offer it.
func (s *State) OffersCollapseThread(id int) bool {
	if !s.IsCollapsed(id) {
		return false
	}
	_, ok := s.collapseOption[id]
	return ok
}

// CollapseComment toggles a single comment's collapsed state. An id not
// present in the forest is ignored.
//
// Un-collapsing a node that is (or contains) a thread-collapsed node
// cascades: the whole subtree under the first thread-collapsed node is
// expanded and cleared from both sets. Collapsing a root-level node never
// offers the thread affordance.
func (s *State) CollapseComment(id, level int) {
	if s.IsCollapsed(id) {
		delete(s.collapsed, id)
		delete(s.collapseOption, id)
		if c := findComment(s.comments, id); c != nil {
			if tc := s.firstThreadCollapsed(c); tc != nil {
				for _, sid := range collectSubtreeIDs(tc, nil) {
					delete(s.collapsed, sid)
					delete(s.threadCollapsed, sid)
				}
			}
		}
		return
	}

	if findComment(s.comments, id) == nil {
		return
	}
	s.collapsed[id] = struct{}{}
	if level > 0 {
		s.collapseOption[id] = struct{}{}
	}
}

// firstThreadCollapsed returns the first node in c's subtree (c included,
// depth-first) that is thread-collapsed.
func (s *State) firstThreadCollapsed(c *domain.Comment) *domain.Comment {
	if s.IsThreadCollapsed(c.ID) {
		return c
	}
	for i := range c.Children {
		if tc := s.firstThreadCollapsed(&c.Children[i]); tc != nil {
			return tc
		}
	}
	return nil
}

// CollapseThread collapses the entire level-0 thread containing id: the
// root and every descendant join both the collapsed and thread-collapsed
// sets, and the collapse affordance is cleared everywhere. It returns the
// root's id so the caller can scroll to it; ok is false when id is not in
// the forest (the state is left untouched).
func (s *State) CollapseThread(id int) (rootID int, ok bool) {
	var root *domain.Comment
	for i := range s.comments {
		if subtreeContains(&s.comments[i], id) {
			root = &s.comments[i]
			break
		}
	}
	if root == nil {
		return 0, false
	}

	for _, sid := range collectSubtreeIDs(root, nil) {
		s.collapsed[sid] = struct{}{}
		s.threadCollapsed[sid] = struct{}{}
	}
	s.collapseOption = make(map[int]struct{})
	return root.ID, true
}

// ExpandThread expands id's subtree: every node in it (id included)
// leaves the collapsed set, and the thread-collapsed set is pruned back
// to a subset of what remains collapsed.
func (s *State) ExpandThread(id int) {
	c := findComment(s.comments, id)
	if c == nil {
		return
	}
	for _, sid := range collectSubtreeIDs(c, nil) {
		delete(s.collapsed, sid)
	}
	s.pruneThreadCollapsed()
}

// ToggleTopLevelOnly switches the global roots-only view. Turning it on
// collapses every non-root node; turning it off clears the collapsed set
// entirely. Both directions reset per-node thread state, which the global
// view invalidates.
func (s *State) ToggleTopLevelOnly() {
	s.topLevelOnly = !s.topLevelOnly
	if s.topLevelOnly {
		walkForest(s.comments, func(c *domain.Comment) {
			if c.Level > 0 {
				s.collapsed[c.ID] = struct{}{}
			}
		})
	} else {
		s.collapsed = make(map[int]struct{})
	}
	s.collapseOption = make(map[int]struct{})
	s.threadCollapsed = make(map[int]struct{})
}

func (s *State) pruneThreadCollapsed() {
	for sid := range s.threadCollapsed {
		if _, ok := s.collapsed[sid]; !ok {
			delete(s.threadCollapsed, sid)
		}
	}
}
