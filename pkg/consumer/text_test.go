package consumer

import (
	"testing"

	"accesstree/pkg/schema"
)

// Text fixture: a multiline text field holding two lines of text in three
// inline text boxes. Character widths are a uniform 10 pixels.
//
//	box 1 "This is a "    line 1
//	box 2 "line.\n"       line 1 (continues box 1)
//	box 3 "Another line." line 2
var (
	textRootID  = nid(1)
	textFieldID = nid(2)
	textBox1ID  = nid(3)
	textBox2ID  = nid(4)
	textBox3ID  = nid(5)
)

func ones(n int) []uint8 {
	lengths := make([]uint8, n)
	for i := range lengths {
		lengths[i] = 1
	}
	return lengths
}

func tenths(n int) ([]float32, []float32) {
	positions := make([]float32, n)
	widths := make([]float32, n)
	for i := range positions {
		positions[i] = float32(i * 10)
		widths[i] = 10
	}
	return positions, widths
}

func textBox(value string, wordLengths []uint8, bounds schema.Rect) *schema.Node {
	node := schema.NewNode(schema.RoleInlineTextBox)
	node.SetValue(value)
	node.SetCharacterLengths(ones(len(value)))
	node.SetWordLengths(wordLengths)
	positions, widths := tenths(len(value))
	node.SetCharacterPositions(positions)
	node.SetCharacterWidths(widths)
	node.SetBounds(bounds)
	node.SetTextDirection(schema.TextDirectionLeftToRight)
	return node
}

func textTestTree() *Tree {
	root := schema.NewNode(schema.RoleWindow)
	root.SetChildren([]schema.NodeID{textFieldID})

	field := schema.NewNode(schema.RoleMultilineTextField)
	field.SetChildren([]schema.NodeID{textBox1ID, textBox2ID, textBox3ID})

	box1 := textBox("This is a ", []uint8{5, 3, 2}, schema.Rect{X0: 0, Y0: 0, X1: 100, Y1: 20})
	box1.SetNextOnLine(textBox2ID)
	box2 := textBox("line.\n", []uint8{6}, schema.Rect{X0: 100, Y0: 0, X1: 160, Y1: 20})
	box2.SetPreviousOnLine(textBox1ID)
	box3 := textBox("Another line.", []uint8{8, 5}, schema.Rect{X0: 0, Y0: 20, X1: 130, Y1: 40})

	return New(schema.TreeUpdate{
		Nodes: []schema.NodeEntry{
			entry(textRootID, root),
			entry(textFieldID, field),
			entry(textBox1ID, box1),
			entry(textBox2ID, box2),
			entry(textBox3ID, box3),
		},
		Tree:  schema.NewTree(textRootID),
		Focus: textFieldID,
	}, true, nil, nil)
}

func wantPos(t *testing.T, name string, pos TextPosition, node schema.NodeID, index int) {
	t.Helper()
	got := pos.Downgrade()
	if got.Node != node || got.CharacterIndex != index {
		t.Errorf("%s = (%v, %d), want (%v, %d)", name, got.Node, got.CharacterIndex, node, index)
	}
}

func TestDocumentRangeText(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)
		if !field.SupportsTextRanges() {
			t.Fatal("SupportsTextRanges() = false")
		}
		if got := field.DocumentRange().Text(); got != "This is a line.\nAnother line." {
			t.Errorf("Text() = %q", got)
		}
		if value, ok := field.Data().Value(); ok {
			t.Errorf("field has a raw value %q, fixture should not set one", value)
		}
		if state.Root().SupportsTextRanges() {
			t.Error("window claims text range support")
		}
	})
}

func TestPositionPredicates(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)

		start := field.DocumentStart()
		for name, got := range map[string]bool{
			"IsDocumentStart":  start.IsDocumentStart(),
			"IsLineStart":      start.IsLineStart(),
			"IsWordStart":      start.IsWordStart(),
			"IsParagraphStart": start.IsParagraphStart(),
		} {
			if !got {
				t.Errorf("document start: %s = false", name)
			}
		}
		if start.IsDocumentEnd() {
			t.Error("document start: IsDocumentEnd = true")
		}

		end := field.DocumentEnd()
		if !end.IsDocumentEnd() || !end.IsLineEnd() {
			t.Error("document end predicates failed")
		}
		// The last box has no trailing newline.
		if end.IsParagraphEnd() {
			t.Error("document end: IsParagraphEnd = true")
		}
	})
}

func TestCharacterMovement(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)
		pos := field.DocumentStart()

		for i := 0; i < 10; i++ {
			pos = pos.ForwardByCharacter()
		}
		// Crossing a box boundary normalizes to the start of the next box.
		wantPos(t, "after 10 characters", pos, textBox2ID, 0)

		for i := 0; i < 6; i++ {
			pos = pos.ForwardByCharacter()
		}
		// The end of box 2 is a paragraph end, so it normalizes onto line 2.
		wantPos(t, "after 16 characters", pos, textBox3ID, 0)

		pos = pos.BackwardByCharacter()
		wantPos(t, "one character back", pos, textBox2ID, 5)

		end := field.DocumentEnd()
		if got := end.ForwardByCharacter(); !got.Equal(end) {
			t.Error("ForwardByCharacter moved past the document end")
		}
	})
}

func TestWordMovement(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)
		pos := field.DocumentStart()

		pos = pos.ForwardByWord()
		wantPos(t, "word 1", pos, textBox1ID, 5)
		if !pos.IsWordStart() {
			t.Error("IsWordStart() = false at a word boundary")
		}
		pos = pos.ForwardByWord()
		wantPos(t, "word 2", pos, textBox1ID, 8)
		pos = pos.ForwardByWord()
		wantPos(t, "word 3", pos, textBox2ID, 0)

		pos = pos.BackwardByWord()
		wantPos(t, "word back", pos, textBox1ID, 8)
	})
}

func TestLineMovement(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)

		pos := field.DocumentStart()
		for i := 0; i < 11; i++ {
			pos = pos.ForwardByCharacter()
		}
		wantPos(t, "start position", pos, textBox2ID, 1)

		// The line start walks back through the on-line links into box 1.
		wantPos(t, "LineStart", pos.LineStart(), textBox1ID, 0)
		wantPos(t, "LineEnd", pos.LineEnd(), textBox2ID, 6)
		if !pos.LineEnd().IsLineEnd() || !pos.LineStart().IsLineStart() {
			t.Error("line boundary predicates failed")
		}

		next := field.DocumentStart().ForwardByLine()
		wantPos(t, "ForwardByLine", next, textBox3ID, 0)
		wantPos(t, "BackwardByLine", field.DocumentEnd().BackwardByLine(), textBox3ID, 0)
	})
}

func TestParagraphMovement(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)

		next := field.DocumentStart().ForwardByParagraph()
		wantPos(t, "ForwardByParagraph", next, textBox3ID, 0)
		if !next.IsParagraphStart() {
			t.Error("IsParagraphStart() = false at the second paragraph")
		}

		back := field.DocumentEnd().BackwardByParagraph()
		wantPos(t, "BackwardByParagraph", back, textBox3ID, 0)
		wantPos(t, "BackwardByParagraph twice", back.BackwardByParagraph(), textBox1ID, 0)

		last := field.DocumentStart().ForwardByParagraph().ForwardByParagraph()
		wantPos(t, "ForwardByParagraph to end", last, textBox3ID, 13)
	})
}

func TestPositionCompare(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)
		start := field.DocumentStart()
		end := field.DocumentEnd()

		if c, ok := start.Compare(end); !ok || c >= 0 {
			t.Errorf("start.Compare(end) = %d, %v; want negative", c, ok)
		}
		if c, ok := end.Compare(start); !ok || c <= 0 {
			t.Errorf("end.Compare(start) = %d, %v; want positive", c, ok)
		}
		// The end of box 1 and the start of box 2 are the same place, even
		// though they are distinct representations.
		box1End := TextPosition{root: field, inner: innerPosition{
			node: state.mustNode(textBox1ID), characterIndex: 10,
		}}
		box2Start := TextPosition{root: field, inner: innerPosition{
			node: state.mustNode(textBox2ID), characterIndex: 0,
		}}
		if c, ok := box1End.Compare(box2Start); !ok || c != 0 {
			t.Errorf("boundary Compare = %d, %v; want 0, true", c, ok)
		}
	})
}

func TestCompareAcrossContainers(t *testing.T) {
	// Two text fields side by side; positions in different containers have
	// no relative order.
	field1ID, field2ID := nid(2), nid(3)
	boxAID, boxBID := nid(4), nid(5)

	root := schema.NewNode(schema.RoleWindow)
	root.SetChildren([]schema.NodeID{field1ID, field2ID})
	field1 := schema.NewNode(schema.RoleTextField)
	field1.SetChildren([]schema.NodeID{boxAID})
	field2 := schema.NewNode(schema.RoleTextField)
	field2.SetChildren([]schema.NodeID{boxBID})

	tree := New(schema.TreeUpdate{
		Nodes: []schema.NodeEntry{
			entry(nid(1), root),
			entry(field1ID, field1),
			entry(field2ID, field2),
			entry(boxAID, textBox("one", []uint8{3}, schema.Rect{X0: 0, Y0: 0, X1: 30, Y1: 20})),
			entry(boxBID, textBox("two", []uint8{3}, schema.Rect{X0: 0, Y0: 20, X1: 30, Y1: 40})),
		},
		Tree:  schema.NewTree(nid(1)),
		Focus: field1ID,
	}, true, nil, nil)

	tree.Read(func(state *TreeState) {
		pos1 := state.mustNode(field1ID).DocumentStart()
		pos2 := state.mustNode(field2ID).DocumentStart()

		if _, ok := pos1.Compare(pos2); ok {
			t.Error("Compare across containers reported an order")
		}
		if _, ok := pos2.Compare(pos1); ok {
			t.Error("reverse Compare across containers reported an order")
		}
		if c, ok := pos1.Compare(pos1); !ok || c != 0 {
			t.Errorf("self Compare = %d, %v; want 0, true", c, ok)
		}
	})
}

func TestRangeTextAndEdit(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)
		r := field.DocumentRange()

		start := field.DocumentStart()
		for i := 0; i < 5; i++ {
			start = start.ForwardByCharacter()
		}
		end := field.DocumentStart()
		for i := 0; i < 14; i++ {
			end = end.ForwardByCharacter()
		}
		r.SetStart(start)
		r.SetEnd(end)
		if got := r.Text(); got != "is a line" {
			t.Errorf("Text() = %q, want %q", got, "is a line")
		}

		// Moving the start past the end collapses the range.
		r.SetStart(field.DocumentEnd())
		if !r.IsDegenerate() {
			t.Error("IsDegenerate() = false after collapse")
		}
		if got := r.Text(); got != "" {
			t.Errorf("collapsed Text() = %q", got)
		}
	})
}

func TestRangeExpansion(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)

		pos := field.DocumentStart()
		for i := 0; i < 6; i++ {
			pos = pos.ForwardByCharacter()
		}
		r := pos.ToDegenerateRange()

		if got := r.ExpandToWord().Text(); got != "is " {
			t.Errorf("ExpandToWord().Text() = %q, want %q", got, "is ")
		}
		if got := r.ExpandToLine().Text(); got != "This is a line.\n" {
			t.Errorf("ExpandToLine().Text() = %q", got)
		}
		if got := r.ExpandToParagraph().Text(); got != "This is a line.\n" {
			t.Errorf("ExpandToParagraph().Text() = %q", got)
		}
		if got := r.ExpandToDocument().Text(); got != "This is a line.\nAnother line." {
			t.Errorf("ExpandToDocument().Text() = %q", got)
		}
	})
}

func TestRangeBoundingBoxes(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)

		boxes := field.DocumentRange().BoundingBoxes()
		want := []schema.Rect{
			{X0: 0, Y0: 0, X1: 100, Y1: 20},
			{X0: 100, Y0: 0, X1: 160, Y1: 20},
			{X0: 0, Y0: 20, X1: 130, Y1: 40},
		}
		if len(boxes) != len(want) {
			t.Fatalf("BoundingBoxes() returned %d rects, want %d", len(boxes), len(want))
		}
		for i := range want {
			if boxes[i] != want[i] {
				t.Errorf("box %d = %+v, want %+v", i, boxes[i], want[i])
			}
		}

		// Partial coverage of one box trims it by character geometry.
		start := field.DocumentStart().ForwardByCharacter().ForwardByCharacter()
		r := start.ToDegenerateRange()
		end := start
		for i := 0; i < 3; i++ {
			end = end.ForwardByCharacter()
		}
		r.SetEnd(end)
		boxes = r.BoundingBoxes()
		if len(boxes) != 1 {
			t.Fatalf("partial BoundingBoxes() returned %d rects", len(boxes))
		}
		if wantRect := (schema.Rect{X0: 20, Y0: 0, X1: 50, Y1: 20}); boxes[0] != wantRect {
			t.Errorf("partial box = %+v, want %+v", boxes[0], wantRect)
		}

		// A degenerate range yields a single zero-width box.
		boxes = start.ToDegenerateRange().BoundingBoxes()
		if len(boxes) != 1 || boxes[0].Width() != 0 {
			t.Errorf("degenerate boxes = %+v", boxes)
		}
	})
}

func TestRangeAttribute(t *testing.T) {
	textTestTree().Read(func(state *TreeState) {
		field := state.mustNode(textFieldID)
		r := field.DocumentRange()

		value, mixed := r.Attribute(func(node Node) any {
			direction, _ := node.Data().TextDirection()
			return direction
		})
		if mixed || value != schema.TextDirectionLeftToRight {
			t.Errorf("Attribute(direction) = %v, mixed=%v", value, mixed)
		}

		_, mixed = r.Attribute(func(node Node) any { return node.ID() })
		if !mixed {
			t.Error("Attribute over distinct per-box values not reported as mixed")
		}
	})
}

func TestWeakRange(t *testing.T) {
	tree := textTestTree()

	var weak WeakTextRange
	tree.Read(func(state *TreeState) {
		weak = state.mustNode(textFieldID).DocumentRange().Downgrade()
	})
	if weak.NodeID() != textFieldID {
		t.Errorf("NodeID() = %v, want %v", weak.NodeID(), textFieldID)
	}

	tree.Read(func(state *TreeState) {
		r, ok := weak.Upgrade(state)
		if !ok {
			t.Fatal("Upgrade failed against an unchanged state")
		}
		if got := r.Text(); got != "This is a line.\nAnother line." {
			t.Errorf("upgraded Text() = %q", got)
		}
	})

	// Dropping the box holding the range's end makes the weak range stale.
	field := schema.NewNode(schema.RoleMultilineTextField)
	field.SetChildren([]schema.NodeID{textBox1ID, textBox2ID})
	tree.Update(schema.TreeUpdate{
		Nodes: []schema.NodeEntry{entry(textFieldID, field)},
		Focus: textFieldID,
	})
	tree.Read(func(state *TreeState) {
		if _, ok := weak.Upgrade(state); ok {
			t.Error("Upgrade succeeded after the end box was removed")
		}
	})
}

func TestTextSelectionRange(t *testing.T) {
	tree := textTestTree()

	field := schema.NewNode(schema.RoleMultilineTextField)
	field.SetChildren([]schema.NodeID{textBox1ID, textBox2ID, textBox3ID})
	field.SetTextSelection(schema.TextSelection{
		Anchor: schema.TextPosition{Node: textBox3ID, CharacterIndex: 7},
		Focus:  schema.TextPosition{Node: textBox1ID, CharacterIndex: 5},
	})
	tree.Update(schema.TreeUpdate{
		Nodes: []schema.NodeEntry{entry(textFieldID, field)},
		Focus: textFieldID,
	})

	tree.Read(func(state *TreeState) {
		node := state.mustNode(textFieldID)
		if !node.HasTextSelection() {
			t.Fatal("HasTextSelection() = false")
		}
		r, ok := node.TextSelectionRange()
		if !ok {
			t.Fatal("TextSelectionRange() failed")
		}
		// The focus precedes the anchor, so the range is swapped into order.
		wantPos(t, "selection start", r.Start(), textBox1ID, 5)
		wantPos(t, "selection end", r.End(), textBox3ID, 7)
		if got := r.Text(); got != "is a line.\nAnother" {
			t.Errorf("selection Text() = %q", got)
		}
	})
}

func TestValueFromTextContent(t *testing.T) {
	rootID, fieldID, boxID := nid(1), nid(2), nid(3)
	root := schema.NewNode(schema.RoleWindow)
	root.SetChildren([]schema.NodeID{fieldID})
	field := schema.NewNode(schema.RoleTextField)
	field.SetChildren([]schema.NodeID{boxID})
	box := textBox("hello", []uint8{5}, schema.Rect{X0: 0, Y0: 0, X1: 50, Y1: 20})

	tree := New(schema.TreeUpdate{
		Nodes: []schema.NodeEntry{
			entry(rootID, root),
			entry(fieldID, field),
			entry(boxID, box),
		},
		Tree:  schema.NewTree(rootID),
		Focus: rootID,
	}, true, nil, nil)

	tree.Read(func(state *TreeState) {
		value, ok := state.mustNode(fieldID).Value()
		if !ok || value != "hello" {
			t.Errorf(`Value() = %q, %v; want "hello"`, value, ok)
		}
	})
}
