package thread

import (
	"testing"

	"terminalhn/domain"
)

// testForest builds:
//
//	100 (level 0)
//	├── 101
//	│   └── 103
//	└── 102
//	200 (level 0)
//	└── 201
func testForest() []domain.Comment {
	return []domain.Comment{
		{
			ID: 100, Level: 0, ChildIDs: []int{101, 102},
			Children: []domain.Comment{
				{
					ID: 101, Level: 1, ChildIDs: []int{103},
					Children: []domain.Comment{
						{ID: 103, Level: 2},
					},
				},
				{ID: 102, Level: 1},
			},
		},
		{
			ID: 200, Level: 0, ChildIDs: []int{201},
			Children: []domain.Comment{
				{ID: 201, Level: 1},
			},
		},
	}
}

func newTestState() *State {
	s := New(domain.Story{ID: 1, Kids: []int{100, 200}, Descendants: 6}, 10)
	s.comments = testForest()
	return s
}

func TestCollapseComment_ToggleRoundTrips(t *testing.T) {
	s := newTestState()

	s.CollapseComment(101, 1)
	if !s.IsCollapsed(101) {
		t.Fatalf("expected 101 collapsed after first toggle")
	}
	if !s.OffersCollapseThread(101) {
		t.Fatalf("non-root collapsed node should offer collapse-thread")
	}

	s.CollapseComment(101, 1)
	if s.IsCollapsed(101) {
		t.Fatalf("expected 101 expanded after second toggle")
	}
	if len(s.collapsed) != 0 || len(s.collapseOption) != 0 {
		t.Fatalf("sets should be back to empty, got collapsed=%v option=%v", s.collapsed, s.collapseOption)
	}
}

func TestCollapseComment_RootNeverOffersThreadOption(t *testing.T) {
	s := newTestState()

	s.CollapseComment(100, 0)
	if !s.IsCollapsed(100) {
		t.Fatalf("expected root 100 collapsed")
	}
	if s.OffersCollapseThread(100) {
		t.Fatalf("root-level collapse must not offer the thread affordance")
	}
}

func TestCollapseComment_UncollapseThreadCollapsedCascades(t *testing.T) {
	s := newTestState()

	if _, ok := s.CollapseThread(103); !ok {
		t.Fatalf("CollapseThread(103) should find the enclosing root")
	}

	// Un-collapsing the thread-collapsed root expands the whole subtree.
	s.CollapseComment(100, 0)
	for _, id := range []int{100, 101, 102, 103} {
		if s.IsCollapsed(id) || s.IsThreadCollapsed(id) {
			t.Fatalf("id %d should be fully expanded after cascade, collapsed=%v threadCollapsed=%v",
				id, s.IsCollapsed(id), s.IsThreadCollapsed(id))
		}
	}

	// Documented asymmetry: the next toggle is a plain single-node
	// collapse, not a restore of the thread collapse.
	s.CollapseComment(100, 0)
	if !s.IsCollapsed(100) {
		t.Fatalf("expected 100 collapsed")
	}
	if s.IsCollapsed(101) || s.IsThreadCollapsed(100) {
		t.Fatalf("second toggle must be a single-node collapse, not a thread collapse")
	}
}

func TestCollapseThread_CollapsesLevelZeroAncestorSubtree(t *testing.T) {
	s := newTestState()
	s.CollapseComment(103, 2) // populate the option set so we can see it cleared

	rootID, ok := s.CollapseThread(103)
	if !ok {
		t.Fatalf("expected CollapseThread to locate the enclosing root")
	}
	if rootID != 100 {
		t.Fatalf("expected root 100, got %d", rootID)
	}
	for _, id := range []int{100, 101, 102, 103} {
		if !s.IsCollapsed(id) || !s.IsThreadCollapsed(id) {
			t.Fatalf("id %d should be in both collapse sets", id)
		}
	}
	if len(s.collapseOption) != 0 {
		t.Fatalf("collapse-option set should be cleared, got %v", s.collapseOption)
	}
	// The sibling thread is untouched.
	if s.IsCollapsed(200) || s.IsCollapsed(201) {
		t.Fatalf("thread under 200 should be unaffected")
	}
}

func TestCollapseComment_UnknownIDIsNoOp(t *testing.T) {
	s := newTestState()

	s.CollapseComment(999, 1)
	if len(s.collapsed) != 0 || len(s.collapseOption) != 0 {
		t.Fatalf("unknown ids must not enter the collapse sets, got collapsed=%v option=%v", s.collapsed, s.collapseOption)
	}
}

func TestCollapseThread_UnknownIDIsNoOp(t *testing.T) {
	s := newTestState()

	if _, ok := s.CollapseThread(999); ok {
		t.Fatalf("unknown id should not match any thread")
	}
	if len(s.collapsed) != 0 || len(s.threadCollapsed) != 0 {
		t.Fatalf("state should be untouched for unknown ids")
	}
}

func TestExpandThread_RestoresSubtree(t *testing.T) {
	s := newTestState()

	if _, ok := s.CollapseThread(101); !ok {
		t.Fatalf("CollapseThread(101) should succeed")
	}
	s.ExpandThread(100)

	for _, id := range []int{100, 101, 102, 103} {
		if s.IsCollapsed(id) {
			t.Fatalf("id %d should be expanded", id)
		}
		if s.IsThreadCollapsed(id) {
			t.Fatalf("id %d should have left the thread-collapsed set", id)
		}
	}
}

func TestExpandThread_KeepsThreadStateOutsideSubtree(t *testing.T) {
	s := newTestState()

	s.CollapseThread(103) // collapses thread under 100
	s.CollapseThread(201) // collapses thread under 200
	s.ExpandThread(200)

	if s.IsCollapsed(200) || s.IsCollapsed(201) || s.IsThreadCollapsed(201) {
		t.Fatalf("thread under 200 should be fully expanded")
	}
	if !s.IsCollapsed(100) || !s.IsThreadCollapsed(103) {
		t.Fatalf("thread under 100 should remain collapsed")
	}
}

func TestToggleTopLevelOnly_TwiceReturnsToEmpty(t *testing.T) {
	s := newTestState()

	s.ToggleTopLevelOnly()
	if !s.TopLevelOnly() {
		t.Fatalf("expected roots-only view on")
	}
	for _, id := range []int{101, 102, 103, 201} {
		if !s.IsCollapsed(id) {
			t.Fatalf("non-root %d should be collapsed", id)
		}
	}
	if s.IsCollapsed(100) || s.IsCollapsed(200) {
		t.Fatalf("roots must stay expanded")
	}

	s.ToggleTopLevelOnly()
	if s.TopLevelOnly() {
		t.Fatalf("expected roots-only view off")
	}
	if len(s.collapsed) != 0 || len(s.threadCollapsed) != 0 || len(s.collapseOption) != 0 {
		t.Fatalf("all collapse sets should be empty after toggling back")
	}
}

func TestToggleTopLevelOnly_ClearsThreadState(t *testing.T) {
	s := newTestState()

	s.CollapseThread(103)
	s.ToggleTopLevelOnly()

	if len(s.threadCollapsed) != 0 || len(s.collapseOption) != 0 {
		t.Fatalf("global view must invalidate per-node thread state")
	}
}

func TestThreadCollapsedInvariant_SubsetOfCollapsed(t *testing.T) {
	s := newTestState()

	s.CollapseThread(103)
	s.CollapseComment(102, 1) // un-collapse a single node out of the thread

	for id := range s.threadCollapsed {
		if !s.IsCollapsed(id) {
			t.Fatalf("invariant broken: %d thread-collapsed but not collapsed", id)
		}
	}
}
