package consumer

import (
	"testing"

	"accesstree/pkg/schema"
)

func collectForward(next func() (Node, bool)) []schema.NodeID {
	var ids []schema.NodeID
	for {
		node, ok := next()
		if !ok {
			return ids
		}
		ids = append(ids, node.ID())
	}
}

func TestChildrenIterator(t *testing.T) {
	navTestTree().Read(func(state *TreeState) {
		root := state.Root()

		it := root.Children()
		if got := it.Len(); got != 4 {
			t.Fatalf("Len() = %d, want 4", got)
		}
		got := collectForward(it.Next)
		want := []schema.NodeID{navParagraph0ID, navContainerID, navHiddenID, navParagraph3ID}
		if !idsEqual(got, want) {
			t.Errorf("forward children = %v, want %v", got, want)
		}
		if _, ok := it.Next(); ok {
			t.Error("exhausted iterator yielded a node")
		}

		it = root.Children()
		got = collectForward(it.NextBack)
		want = []schema.NodeID{navParagraph3ID, navHiddenID, navContainerID, navParagraph0ID}
		if !idsEqual(got, want) {
			t.Errorf("backward children = %v, want %v", got, want)
		}

		// Ends must meet without overlapping.
		it = root.Children()
		front, _ := it.Next()
		back, _ := it.NextBack()
		if front.ID() != navParagraph0ID || back.ID() != navParagraph3ID {
			t.Fatalf("interleaved ends = %v, %v", front.ID(), back.ID())
		}
		if got := it.Len(); got != 2 {
			t.Errorf("Len() after one step each = %d, want 2", got)
		}
		middle := collectForward(it.Next)
		if !idsEqual(middle, []schema.NodeID{navContainerID, navHiddenID}) {
			t.Errorf("middle = %v", middle)
		}
		if _, ok := it.NextBack(); ok {
			t.Error("iterator yielded past the meeting point")
		}
	})
}

func TestSiblingIterators(t *testing.T) {
	navTestTree().Read(func(state *TreeState) {
		paragraph0 := state.mustNode(navParagraph0ID)
		paragraph3 := state.mustNode(navParagraph3ID)

		got := collectForward(paragraph0.FollowingSiblings().Next)
		want := []schema.NodeID{navContainerID, navHiddenID, navParagraph3ID}
		if !idsEqual(got, want) {
			t.Errorf("following siblings = %v, want %v", got, want)
		}

		got = collectForward(paragraph3.PrecedingSiblings().Next)
		want = []schema.NodeID{navHiddenID, navContainerID, navParagraph0ID}
		if !idsEqual(got, want) {
			t.Errorf("preceding siblings = %v, want %v", got, want)
		}

		got = collectForward(paragraph0.PrecedingSiblings().Next)
		if len(got) != 0 {
			t.Errorf("preceding siblings of first child = %v, want none", got)
		}

		got = collectForward(state.Root().FollowingSiblings().Next)
		if len(got) != 0 {
			t.Errorf("following siblings of root = %v, want none", got)
		}

		it := paragraph0.FollowingSiblings()
		if got := it.Len(); got != 3 {
			t.Errorf("Len() = %d, want 3", got)
		}
		got = collectForward(it.NextBack)
		want = []schema.NodeID{navParagraph3ID, navHiddenID, navContainerID}
		if !idsEqual(got, want) {
			t.Errorf("following siblings from the back = %v, want %v", got, want)
		}
	})
}

func TestFilteredChildren(t *testing.T) {
	navTestTree().Read(func(state *TreeState) {
		root := state.Root()

		got := collectForward(root.FilteredChildren(CommonFilter).Next)
		want := []schema.NodeID{navParagraph0ID, navButton1ID, navButton2ID, navParagraph3ID}
		if !idsEqual(got, want) {
			t.Errorf("filtered children = %v, want %v", got, want)
		}

		got = collectForward(root.FilteredChildren(CommonFilter).NextBack)
		want = []schema.NodeID{navParagraph3ID, navButton2ID, navButton1ID, navParagraph0ID}
		if !idsEqual(got, want) {
			t.Errorf("backward filtered children = %v, want %v", got, want)
		}

		it := root.FilteredChildren(CommonFilter)
		front, _ := it.Next()
		back, _ := it.NextBack()
		if front.ID() != navParagraph0ID || back.ID() != navParagraph3ID {
			t.Fatalf("interleaved ends = %v, %v", front.ID(), back.ID())
		}
		middle := collectForward(it.Next)
		if !idsEqual(middle, []schema.NodeID{navButton1ID, navButton2ID}) {
			t.Errorf("middle = %v", middle)
		}

		hidden := state.mustNode(navHiddenID)
		if got := collectForward(hidden.FilteredChildren(CommonFilter).Next); len(got) != 0 {
			t.Errorf("filtered children of hidden container = %v, want none", got)
		}
	})
}

func TestFilteredSiblings(t *testing.T) {
	navTestTree().Read(func(state *TreeState) {
		paragraph0 := state.mustNode(navParagraph0ID)
		button1 := state.mustNode(navButton1ID)
		paragraph3 := state.mustNode(navParagraph3ID)

		got := collectForward(paragraph0.FollowingFilteredSiblings(CommonFilter).Next)
		want := []schema.NodeID{navButton1ID, navButton2ID, navParagraph3ID}
		if !idsEqual(got, want) {
			t.Errorf("following filtered siblings = %v, want %v", got, want)
		}

		// The buttons sit inside a spliced-out container, so their filtered
		// siblings come from the window level.
		got = collectForward(button1.FollowingFilteredSiblings(CommonFilter).Next)
		want = []schema.NodeID{navButton2ID, navParagraph3ID}
		if !idsEqual(got, want) {
			t.Errorf("following filtered siblings of button = %v, want %v", got, want)
		}

		got = collectForward(button1.PrecedingFilteredSiblings(CommonFilter).Next)
		want = []schema.NodeID{navParagraph0ID}
		if !idsEqual(got, want) {
			t.Errorf("preceding filtered siblings of button = %v, want %v", got, want)
		}

		got = collectForward(paragraph3.PrecedingFilteredSiblings(CommonFilter).Next)
		want = []schema.NodeID{navButton2ID, navButton1ID, navParagraph0ID}
		if !idsEqual(got, want) {
			t.Errorf("preceding filtered siblings = %v, want %v", got, want)
		}

		got = collectForward(paragraph3.FollowingFilteredSiblings(CommonFilter).Next)
		if len(got) != 0 {
			t.Errorf("following filtered siblings of last = %v, want none", got)
		}

		it := paragraph0.FollowingFilteredSiblings(CommonFilter)
		got = collectForward(it.NextBack)
		want = []schema.NodeID{navParagraph3ID, navButton2ID, navButton1ID}
		if !idsEqual(got, want) {
			t.Errorf("following filtered siblings from the back = %v, want %v", got, want)
		}
	})
}
