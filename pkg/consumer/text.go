package consumer

import (
	"fmt"

	"accesstree/pkg/schema"
)

// The text engine models positions and ranges over the inline text boxes
// beneath a text container (a text field, static text or document node).
// Positions are (box, character index) pairs; a boundary between two boxes
// has two representations, one at the end of the earlier box and one at the
// start of the later box. The canonical form is the start of the later box,
// except at a line end that is not a paragraph end, where the end-of-line
// representation is kept so that positions do not silently jump to the next
// line.

type innerPosition struct {
	node           Node
	characterIndex int
}

func upgradePosition(state *TreeState, weak schema.TextPosition) (innerPosition, bool) {
	node, ok := state.NodeByID(weak.Node)
	if !ok {
		return innerPosition{}, false
	}
	if node.Role() != schema.RoleInlineTextBox {
		return innerPosition{}, false
	}
	if weak.CharacterIndex < 0 || weak.CharacterIndex > len(node.Data().CharacterLengths()) {
		return innerPosition{}, false
	}
	return innerPosition{node: node, characterIndex: weak.CharacterIndex}, true
}

func (p innerPosition) equal(other innerPosition) bool {
	return p.node.ID() == other.node.ID() && p.characterIndex == other.characterIndex
}

func (p innerPosition) isWordStart() bool {
	totalLength := 0
	for _, length := range p.node.Data().WordLengths() {
		if totalLength == p.characterIndex {
			return true
		}
		totalLength += int(length)
	}
	return false
}

func (p innerPosition) isBoxStart() bool {
	return p.characterIndex == 0
}

func (p innerPosition) isLineStart() bool {
	if !p.isBoxStart() {
		return false
	}
	_, ok := p.node.Data().PreviousOnLine()
	return !ok
}

func (p innerPosition) isBoxEnd() bool {
	return p.characterIndex == len(p.node.Data().CharacterLengths())
}

func (p innerPosition) isLineEnd() bool {
	if !p.isBoxEnd() {
		return false
	}
	_, ok := p.node.Data().NextOnLine()
	return !ok
}

func (p innerPosition) isParagraphEnd() bool {
	if !p.isLineEnd() {
		return false
	}
	value, _ := p.node.Data().Value()
	return len(value) > 0 && value[len(value)-1] == '\n'
}

func (p innerPosition) isDocumentStart(root Node) bool {
	if !p.isBoxStart() {
		return false
	}
	_, ok := p.node.precedingInlineTextBoxes(root).Next()
	return !ok
}

func (p innerPosition) isDocumentEnd(root Node) bool {
	if !p.isBoxEnd() {
		return false
	}
	_, ok := p.node.followingInlineTextBoxes(root).Next()
	return !ok
}

func (p innerPosition) biasedToStart(root Node) innerPosition {
	if p.isBoxEnd() {
		if node, ok := p.node.followingInlineTextBoxes(root).Next(); ok {
			return innerPosition{node: node, characterIndex: 0}
		}
	}
	return p
}

func (p innerPosition) biasedToEnd(root Node) innerPosition {
	if p.isBoxStart() {
		if node, ok := p.node.precedingInlineTextBoxes(root).Next(); ok {
			return innerPosition{
				node:           node,
				characterIndex: len(node.Data().CharacterLengths()),
			}
		}
	}
	return p
}

func (p innerPosition) normalized(root Node) innerPosition {
	if p.isLineEnd() && !p.isParagraphEnd() {
		return p
	}
	return p.biasedToStart(root)
}

type comparablePosition struct {
	path  []int
	index int
}

func (p innerPosition) comparable(root Node) comparablePosition {
	normalized := p.biasedToStart(root)
	return comparablePosition{
		path:  normalized.node.RelativeIndexPath(root.ID()),
		index: normalized.characterIndex,
	}
}

func (a comparablePosition) compare(b comparablePosition) int {
	for i := 0; i < len(a.path) && i < len(b.path); i++ {
		if a.path[i] != b.path[i] {
			if a.path[i] < b.path[i] {
				return -1
			}
			return 1
		}
	}
	if len(a.path) != len(b.path) {
		if len(a.path) < len(b.path) {
			return -1
		}
		return 1
	}
	if a.index != b.index {
		if a.index < b.index {
			return -1
		}
		return 1
	}
	return 0
}

func (p innerPosition) previousWordStart() innerPosition {
	totalLengthBefore := 0
	for _, length := range p.node.Data().WordLengths() {
		newTotal := totalLengthBefore + int(length)
		if newTotal >= p.characterIndex {
			break
		}
		totalLengthBefore = newTotal
	}
	return innerPosition{node: p.node, characterIndex: totalLengthBefore}
}

func (p innerPosition) wordEnd() innerPosition {
	totalLength := 0
	for _, length := range p.node.Data().WordLengths() {
		totalLength += int(length)
		if totalLength > p.characterIndex {
			break
		}
	}
	return innerPosition{node: p.node, characterIndex: totalLength}
}

func (p innerPosition) lineStart() innerPosition {
	node := p.node
	for {
		id, ok := node.Data().PreviousOnLine()
		if !ok {
			return innerPosition{node: node, characterIndex: 0}
		}
		node = node.tree.mustNode(id)
	}
}

func (p innerPosition) lineEnd() innerPosition {
	node := p.node
	for {
		id, ok := node.Data().NextOnLine()
		if !ok {
			return innerPosition{
				node:           node,
				characterIndex: len(node.Data().CharacterLengths()),
			}
		}
		node = node.tree.mustNode(id)
	}
}

func (p innerPosition) downgrade() schema.TextPosition {
	return schema.TextPosition{Node: p.node.ID(), CharacterIndex: p.characterIndex}
}

// TextPosition is a position within the text of a container node, anchored
// to a specific inline text box. Like Node views, positions are only valid
// within the Read scope that produced them.
type TextPosition struct {
	root  Node
	inner innerPosition
}

func (p TextPosition) Equal(other TextPosition) bool {
	return p.root.ID() == other.root.ID() && p.inner.equal(other.inner)
}

// Compare orders two positions in the same container; ok is false when they
// belong to different containers.
func (p TextPosition) Compare(other TextPosition) (int, bool) {
	if p.root.ID() != other.root.ID() {
		return 0, false
	}
	return p.inner.comparable(p.root).compare(other.inner.comparable(other.root)), true
}

func (p TextPosition) IsWordStart() bool { return p.inner.isWordStart() }

func (p TextPosition) IsLineStart() bool { return p.inner.isLineStart() }

func (p TextPosition) IsLineEnd() bool { return p.inner.isLineEnd() }

func (p TextPosition) IsParagraphStart() bool {
	return p.IsDocumentStart() ||
		(p.IsLineStart() && p.inner.biasedToEnd(p.root).isParagraphEnd())
}

func (p TextPosition) IsParagraphEnd() bool { return p.inner.isParagraphEnd() }

// Formatting runs are not modeled yet, so format boundaries degenerate to
// document boundaries.
func (p TextPosition) IsFormatStart() bool { return p.IsDocumentStart() }

func (p TextPosition) IsPageStart() bool { return p.IsDocumentStart() }

func (p TextPosition) IsDocumentStart() bool { return p.inner.isDocumentStart(p.root) }

func (p TextPosition) IsDocumentEnd() bool { return p.inner.isDocumentEnd(p.root) }

func (p TextPosition) ForwardByCharacter() TextPosition {
	if p.IsDocumentEnd() {
		return p
	}
	pos := p.inner.biasedToStart(p.root)
	next := innerPosition{node: pos.node, characterIndex: pos.characterIndex + 1}
	return TextPosition{root: p.root, inner: next.normalized(p.root)}
}

func (p TextPosition) BackwardByCharacter() TextPosition {
	if p.IsDocumentStart() {
		return p
	}
	pos := p.inner.biasedToEnd(p.root)
	prev := innerPosition{node: pos.node, characterIndex: pos.characterIndex - 1}
	return TextPosition{root: p.root, inner: prev.normalized(p.root)}
}

func (p TextPosition) ForwardByWord() TextPosition {
	pos := p.inner.biasedToStart(p.root)
	return TextPosition{root: p.root, inner: pos.wordEnd().normalized(p.root)}
}

func (p TextPosition) BackwardByWord() TextPosition {
	pos := p.inner.biasedToEnd(p.root)
	return TextPosition{root: p.root, inner: pos.previousWordStart().normalized(p.root)}
}

func (p TextPosition) ForwardByLine() TextPosition {
	pos := p.inner.biasedToStart(p.root)
	return TextPosition{root: p.root, inner: pos.lineEnd().normalized(p.root)}
}

func (p TextPosition) BackwardByLine() TextPosition {
	pos := p.inner.biasedToEnd(p.root)
	return TextPosition{root: p.root, inner: pos.lineStart().normalized(p.root)}
}

// LineStart is the start of the line containing this position.
func (p TextPosition) LineStart() TextPosition {
	pos := p.inner.biasedToEnd(p.root)
	if p.inner.isLineStart() {
		pos = p.inner
	}
	return TextPosition{root: p.root, inner: pos.lineStart()}
}

// LineEnd is the end of the line containing this position.
func (p TextPosition) LineEnd() TextPosition {
	pos := p.inner.biasedToStart(p.root)
	if p.inner.isLineEnd() {
		pos = p.inner
	}
	return TextPosition{root: p.root, inner: pos.lineEnd()}
}

func (p TextPosition) ForwardByParagraph() TextPosition {
	// Paragraph ends must be detected before normalization: normalizing a
	// paragraph end biases it to the start of the next paragraph.
	pos := p.inner.biasedToStart(p.root)
	for {
		pos = pos.lineEnd()
		if pos.isParagraphEnd() || pos.isDocumentEnd(p.root) {
			return TextPosition{root: p.root, inner: pos.normalized(p.root)}
		}
		pos = pos.biasedToStart(p.root)
	}
}

func (p TextPosition) BackwardByParagraph() TextPosition {
	current := p
	for {
		current = current.BackwardByLine()
		if current.IsParagraphStart() {
			return current
		}
	}
}

func (p TextPosition) ForwardByFormat() TextPosition { return p.ForwardByDocument() }

func (p TextPosition) BackwardByFormat() TextPosition { return p.BackwardByDocument() }

func (p TextPosition) ForwardByPage() TextPosition { return p.ForwardByDocument() }

func (p TextPosition) BackwardByPage() TextPosition { return p.BackwardByDocument() }

func (p TextPosition) ForwardByDocument() TextPosition {
	return TextPosition{root: p.root, inner: p.root.documentEnd()}
}

func (p TextPosition) BackwardByDocument() TextPosition {
	return TextPosition{root: p.root, inner: p.root.documentStart()}
}

// ToDegenerateRange is the empty range at this position.
func (p TextPosition) ToDegenerateRange() TextRange {
	return newTextRange(p.root, p.inner, p.inner)
}

// Downgrade detaches the position from the read scope so it can be stored
// and later resolved against a newer state.
func (p TextPosition) Downgrade() schema.TextPosition {
	return p.inner.downgrade()
}

// TextRange is a span of text within one container node. The start never
// follows the end: constructors and setters swap or collapse as needed.
type TextRange struct {
	node  Node
	start innerPosition
	end   innerPosition
}

func newTextRange(node Node, start, end innerPosition) TextRange {
	if start.comparable(node).compare(end.comparable(node)) > 0 {
		start, end = end, start
	}
	return TextRange{node: node, start: start, end: end}
}

// Node is the container the range belongs to.
func (r TextRange) Node() Node { return r.node }

func (r TextRange) Start() TextPosition {
	return TextPosition{root: r.node, inner: r.start}
}

func (r TextRange) End() TextPosition {
	return TextPosition{root: r.node, inner: r.end}
}

func (r TextRange) IsDegenerate() bool {
	return r.start.comparable(r.node).compare(r.end.comparable(r.node)) == 0
}

// walk visits the inline text boxes covered by the range in order, stopping
// early when f returns true. It reports whether f stopped the walk.
func (r TextRange) walk(f func(Node) bool) bool {
	start := r.start.biasedToStart(r.node)
	// For a degenerate range, reusing start avoids end coming before start.
	end := start
	if !r.IsDegenerate() {
		end = r.end.biasedToEnd(r.node)
	}
	if f(start.node) {
		return true
	}
	if start.node.ID() == end.node.ID() {
		return false
	}
	it := start.node.followingInlineTextBoxes(r.node)
	for {
		node, ok := it.Next()
		if !ok {
			return false
		}
		if f(node) {
			return true
		}
		if node.ID() == end.node.ID() {
			return false
		}
	}
}

func (r TextRange) indexesIn(node Node) (startIndex, endIndex int) {
	startIndex = 0
	if node.ID() == r.start.node.ID() {
		startIndex = r.start.characterIndex
	}
	endIndex = len(node.Data().CharacterLengths())
	if node.ID() == r.end.node.ID() {
		endIndex = r.end.characterIndex
	}
	return startIndex, endIndex
}

// Text is the concatenated text covered by the range.
func (r TextRange) Text() string {
	var b []byte
	r.walk(func(node Node) bool {
		characterLengths := node.Data().CharacterLengths()
		startIndex, endIndex := r.indexesIn(node)
		value, _ := node.Data().Value()
		switch {
		case startIndex == endIndex:
		case startIndex == 0 && endIndex == len(characterLengths):
			b = append(b, value...)
		default:
			sliceStart := 0
			for _, l := range characterLengths[:startIndex] {
				sliceStart += int(l)
			}
			sliceEnd := sliceStart
			for _, l := range characterLengths[startIndex:endIndex] {
				sliceEnd += int(l)
			}
			b = append(b, value[sliceStart:sliceEnd]...)
		}
		return false
	})
	return string(b)
}

// BoundingBoxes returns the range's transformed bounding boxes relative to
// the tree's container, one per (partial) text box. An empty result means
// the producer didn't supply enough geometry; otherwise there is at least
// one box, possibly zero-width for a degenerate range.
func (r TextRange) BoundingBoxes() []schema.Rect {
	var result []schema.Rect
	insufficient := r.walk(func(node Node) bool {
		rect, ok := node.Data().Bounds()
		if !ok {
			return true
		}
		positions, ok := node.Data().CharacterPositions()
		if !ok {
			return true
		}
		widths, ok := node.Data().CharacterWidths()
		if !ok {
			return true
		}
		direction, ok := node.Data().TextDirection()
		if !ok {
			return true
		}
		characterLengths := node.Data().CharacterLengths()
		startIndex, endIndex := r.indexesIn(node)
		if startIndex != 0 || endIndex != len(characterLengths) {
			var pixelStart float64
			if startIndex < len(characterLengths) {
				pixelStart = float64(positions[startIndex])
			} else {
				pixelStart = float64(positions[startIndex-1] + widths[startIndex-1])
			}
			pixelEnd := pixelStart
			if endIndex != startIndex {
				pixelEnd = float64(positions[endIndex-1] + widths[endIndex-1])
			}
			switch direction {
			case schema.TextDirectionLeftToRight:
				origLeft := rect.X0
				rect.X0 = origLeft + pixelStart
				rect.X1 = origLeft + pixelEnd
			case schema.TextDirectionRightToLeft:
				origRight := rect.X1
				rect.X1 = origRight - pixelStart
				rect.X0 = origRight - pixelEnd
			// The rectangle, before being transformed, is y-down.
			case schema.TextDirectionTopToBottom:
				origTop := rect.Y0
				rect.Y0 = origTop + pixelStart
				rect.Y1 = origTop + pixelEnd
			case schema.TextDirectionBottomToTop:
				origBottom := rect.Y1
				rect.Y1 = origBottom - pixelStart
				rect.Y0 = origBottom - pixelEnd
			}
		}
		result = append(result, node.Transform().TransformRect(rect))
		return false
	})
	if insufficient {
		return nil
	}
	return result
}

// Attribute evaluates f on every text box in the range; mixed reports
// whether the boxes disagree.
func (r TextRange) Attribute(f func(Node) any) (value any, mixed bool) {
	first := true
	mixed = r.walk(func(node Node) bool {
		current := f(node)
		if first {
			value = current
			first = false
			return false
		}
		return value != current
	})
	if mixed {
		return nil, true
	}
	return value, false
}

// SetStart moves the start; if it lands at or after the end, the range
// collapses to it. The >= comparison also normalizes bias when the two
// endpoints are equivalent.
func (r *TextRange) SetStart(pos TextPosition) {
	if pos.root.ID() != r.node.ID() {
		panic(fmt.Sprintf("consumer: position belongs to container %v, range to %v",
			pos.root.ID(), r.node.ID()))
	}
	r.start = pos.inner
	if r.start.comparable(r.node).compare(r.end.comparable(r.node)) >= 0 {
		r.end = r.start
	}
}

// SetEnd moves the end; if it lands at or before the start, the range
// collapses to it.
func (r *TextRange) SetEnd(pos TextPosition) {
	if pos.root.ID() != r.node.ID() {
		panic(fmt.Sprintf("consumer: position belongs to container %v, range to %v",
			pos.root.ID(), r.node.ID()))
	}
	r.end = pos.inner
	if r.start.comparable(r.node).compare(r.end.comparable(r.node)) >= 0 {
		r.start = r.end
	}
}

// ExpandToWord is the word range containing the start position.
func (r TextRange) ExpandToWord() TextRange {
	start := r.Start()
	if !start.IsWordStart() {
		start = start.BackwardByWord()
	}
	end := start.ForwardByWord()
	return newTextRange(r.node, start.inner, end.inner)
}

// ExpandToLine is the line range containing the start position.
func (r TextRange) ExpandToLine() TextRange {
	start := r.Start()
	return newTextRange(r.node, start.LineStart().inner, start.LineEnd().inner)
}

// ExpandToParagraph is the paragraph range containing the start position.
func (r TextRange) ExpandToParagraph() TextRange {
	start := r.Start()
	if !start.IsParagraphStart() {
		start = start.BackwardByParagraph()
	}
	end := start.ForwardByParagraph()
	return newTextRange(r.node, start.inner, end.inner)
}

// ExpandToDocument is the whole container.
func (r TextRange) ExpandToDocument() TextRange {
	return r.node.DocumentRange()
}

// ExpandToFormat degenerates to the document until formatting runs are
// modeled.
func (r TextRange) ExpandToFormat() TextRange { return r.ExpandToDocument() }

// ExpandToPage degenerates to the document; pagination is not modeled.
func (r TextRange) ExpandToPage() TextRange { return r.ExpandToDocument() }

// Downgrade detaches the range so it can be stored across updates.
func (r TextRange) Downgrade() WeakTextRange {
	return WeakTextRange{
		nodeID: r.node.ID(),
		start:  r.start.downgrade(),
		end:    r.end.downgrade(),
	}
}

// WeakTextRange survives outside a read scope. Upgrading it against a later
// state fails if the container or either endpoint no longer exists.
type WeakTextRange struct {
	nodeID schema.NodeID
	start  schema.TextPosition
	end    schema.TextPosition
}

func (w WeakTextRange) NodeID() schema.NodeID { return w.nodeID }

func (w WeakTextRange) Upgrade(state *TreeState) (TextRange, bool) {
	node, ok := state.NodeByID(w.nodeID)
	if !ok {
		return TextRange{}, false
	}
	start, ok := upgradePosition(state, w.start)
	if !ok {
		return TextRange{}, false
	}
	end, ok := upgradePosition(state, w.end)
	if !ok {
		return TextRange{}, false
	}
	return TextRange{node: node, start: start, end: end}, true
}

func textNodeFilter(rootID schema.NodeID) Filter {
	return func(node Node) FilterResult {
		if node.ID() == rootID || node.Role() == schema.RoleInlineTextBox {
			return FilterInclude
		}
		return FilterExcludeNode
	}
}

func (n Node) inlineTextBoxes() *FilteredChildren {
	return n.FilteredChildren(textNodeFilter(n.ID()))
}

func (n Node) followingInlineTextBoxes(root Node) *FollowingFilteredSiblings {
	return n.FollowingFilteredSiblings(textNodeFilter(root.ID()))
}

func (n Node) precedingInlineTextBoxes(root Node) *PrecedingFilteredSiblings {
	return n.PrecedingFilteredSiblings(textNodeFilter(root.ID()))
}

// SupportsTextRanges reports whether the node is a text container with at
// least one inline text box, so positions and ranges can be formed under
// it.
func (n Node) SupportsTextRanges() bool {
	switch n.Role() {
	case schema.RoleStaticText, schema.RoleTextField, schema.RoleMultilineTextField,
		schema.RoleDocument, schema.RoleTerminal:
	default:
		return false
	}
	_, ok := n.inlineTextBoxes().Next()
	return ok
}

func (n Node) documentStart() innerPosition {
	node, ok := n.inlineTextBoxes().Next()
	if !ok {
		panic(fmt.Sprintf("consumer: node %v has no inline text boxes", n.ID()))
	}
	return innerPosition{node: node, characterIndex: 0}
}

func (n Node) documentEnd() innerPosition {
	node, ok := n.inlineTextBoxes().NextBack()
	if !ok {
		panic(fmt.Sprintf("consumer: node %v has no inline text boxes", n.ID()))
	}
	return innerPosition{
		node:           node,
		characterIndex: len(node.Data().CharacterLengths()),
	}
}

// DocumentStart is the position before the first character under this
// container.
func (n Node) DocumentStart() TextPosition {
	return TextPosition{root: n, inner: n.documentStart()}
}

// DocumentEnd is the position after the last character under this
// container.
func (n Node) DocumentEnd() TextPosition {
	return TextPosition{root: n, inner: n.documentEnd()}
}

// DocumentRange spans all text under this container. The node must support
// text ranges.
func (n Node) DocumentRange() TextRange {
	return newTextRange(n, n.documentStart(), n.documentEnd())
}

func (n Node) HasTextSelection() bool {
	_, ok := n.Data().TextSelection()
	return ok
}

// TextSelectionRange is the node's reported text selection as a range
// under this container; ok is false when there is no selection or an
// endpoint is stale.
func (n Node) TextSelectionRange() (TextRange, bool) {
	selection, ok := n.Data().TextSelection()
	if !ok {
		return TextRange{}, false
	}
	anchor, ok := upgradePosition(n.tree, selection.Anchor)
	if !ok {
		return TextRange{}, false
	}
	focus, ok := upgradePosition(n.tree, selection.Focus)
	if !ok {
		return TextRange{}, false
	}
	return newTextRange(n, anchor, focus), true
}
