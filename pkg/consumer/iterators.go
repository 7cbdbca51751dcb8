package consumer

// Double-ended iterators over siblings and children. The index-based ones
// are O(1) per step with an exact length; the filtered ones walk the
// structure, hoisting children of nodes the filter excludes.
//
// All iterators are fused: once exhausted they keep returning ok == false.

// Children iterates the direct children of a node from both ends.
type Children struct {
	node  Node
	front int
	back  int
	done  bool
}

func newChildren(node Node) *Children {
	count := node.ChildCount()
	return &Children{node: node, front: 0, back: count - 1, done: count == 0}
}

func (it *Children) Len() int {
	if it.done {
		return 0
	}
	return it.back + 1 - it.front
}

func (it *Children) Next() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	it.done = it.front == it.back
	child, _ := it.node.ChildAt(it.front)
	it.front++
	return child, true
}

func (it *Children) NextBack() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	it.done = it.back == it.front
	child, _ := it.node.ChildAt(it.back)
	it.back--
	return child, true
}

// FollowingSiblings iterates the siblings after a node, in document order.
type FollowingSiblings struct {
	parent Node
	front  int
	back   int
	done   bool
}

func newFollowingSiblings(node Node) *FollowingSiblings {
	parent, index, ok := node.ParentAndIndex()
	if !ok {
		return &FollowingSiblings{done: true}
	}
	back := parent.ChildCount() - 1
	front := index + 1
	return &FollowingSiblings{
		parent: parent,
		front:  front,
		back:   back,
		done:   front > back,
	}
}

func (it *FollowingSiblings) Len() int {
	if it.done {
		return 0
	}
	return it.back + 1 - it.front
}

func (it *FollowingSiblings) Next() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	it.done = it.front == it.back
	sibling, _ := it.parent.ChildAt(it.front)
	it.front++
	return sibling, true
}

func (it *FollowingSiblings) NextBack() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	it.done = it.back == it.front
	sibling, _ := it.parent.ChildAt(it.back)
	it.back--
	return sibling, true
}

// PrecedingSiblings iterates the siblings before a node, nearest first.
type PrecedingSiblings struct {
	parent Node
	front  int
	back   int
	done   bool
}

func newPrecedingSiblings(node Node) *PrecedingSiblings {
	parent, index, ok := node.ParentAndIndex()
	if !ok {
		return &PrecedingSiblings{done: true}
	}
	front := index - 1
	if front < 0 {
		front = 0
	}
	return &PrecedingSiblings{
		parent: parent,
		front:  front,
		back:   0,
		done:   index == 0,
	}
}

func (it *PrecedingSiblings) Len() int {
	if it.done {
		return 0
	}
	return it.front + 1 - it.back
}

func (it *PrecedingSiblings) Next() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	it.done = it.front == it.back
	sibling, _ := it.parent.ChildAt(it.front)
	if !it.done {
		it.front--
	}
	return sibling, true
}

func (it *PrecedingSiblings) NextBack() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	it.done = it.back == it.front
	sibling, _ := it.parent.ChildAt(it.back)
	if !it.done {
		it.back++
	}
	return sibling, true
}

// nextFilteredSibling finds the next node after node at its filtered level:
// siblings first, descending into filter-excluded siblings, and climbing
// out of filter-excluded parents.
func nextFilteredSibling(node Node, filter Filter) (Node, bool) {
	current := node
	considerChildren := false
	for {
		if considerChildren {
			if child, ok := current.firstChild(); ok {
				result := filter(child)
				current = child
				if result == FilterInclude {
					return child, true
				}
				if result == FilterExcludeSubtree {
					considerChildren = false
				}
				continue
			}
		}
		if sibling, ok := nextDirectSibling(current); ok {
			result := filter(sibling)
			current = sibling
			if result == FilterInclude {
				return sibling, true
			}
			considerChildren = result == FilterExcludeNode
			continue
		}
		parent, ok := current.Parent()
		if !ok || filter(parent) != FilterExcludeNode {
			return Node{}, false
		}
		current = parent
		considerChildren = false
	}
}

// previousFilteredSibling is the mirror image of nextFilteredSibling.
func previousFilteredSibling(node Node, filter Filter) (Node, bool) {
	current := node
	considerChildren := false
	for {
		if considerChildren {
			if child, ok := current.lastChild(); ok {
				result := filter(child)
				current = child
				if result == FilterInclude {
					return child, true
				}
				if result == FilterExcludeSubtree {
					considerChildren = false
				}
				continue
			}
		}
		if sibling, ok := previousDirectSibling(current); ok {
			result := filter(sibling)
			current = sibling
			if result == FilterInclude {
				return sibling, true
			}
			considerChildren = result == FilterExcludeNode
			continue
		}
		parent, ok := current.Parent()
		if !ok || filter(parent) != FilterExcludeNode {
			return Node{}, false
		}
		current = parent
		considerChildren = false
	}
}

func nextDirectSibling(node Node) (Node, bool) {
	parent, index, ok := node.ParentAndIndex()
	if !ok {
		return Node{}, false
	}
	return parent.ChildAt(index + 1)
}

func previousDirectSibling(node Node) (Node, bool) {
	parent, index, ok := node.ParentAndIndex()
	if !ok {
		return Node{}, false
	}
	return parent.ChildAt(index - 1)
}

// FollowingFilteredSiblings iterates the filtered siblings after a node.
type FollowingFilteredSiblings struct {
	filter  Filter
	front   Node
	back    Node
	hasBoth bool
}

func newFollowingFilteredSiblings(node Node, filter Filter) *FollowingFilteredSiblings {
	front, frontOK := nextFilteredSibling(node, filter)
	var back Node
	backOK := false
	if parent, ok := node.FilteredParent(filter); ok {
		back, backOK = parent.lastFilteredChild(filter)
	}
	return &FollowingFilteredSiblings{
		filter:  filter,
		front:   front,
		back:    back,
		hasBoth: frontOK && backOK,
	}
}

func (it *FollowingFilteredSiblings) Next() (Node, bool) {
	if !it.hasBoth {
		return Node{}, false
	}
	current := it.front
	if current.ID() == it.back.ID() {
		it.hasBoth = false
	} else {
		it.front, it.hasBoth = nextFilteredSibling(it.front, it.filter)
	}
	return current, true
}

func (it *FollowingFilteredSiblings) NextBack() (Node, bool) {
	if !it.hasBoth {
		return Node{}, false
	}
	current := it.back
	if current.ID() == it.front.ID() {
		it.hasBoth = false
	} else {
		it.back, it.hasBoth = previousFilteredSibling(it.back, it.filter)
	}
	return current, true
}

// PrecedingFilteredSiblings iterates the filtered siblings before a node,
// nearest first.
type PrecedingFilteredSiblings struct {
	filter  Filter
	front   Node
	back    Node
	hasBoth bool
}

func newPrecedingFilteredSiblings(node Node, filter Filter) *PrecedingFilteredSiblings {
	front, frontOK := previousFilteredSibling(node, filter)
	var back Node
	backOK := false
	if parent, ok := node.FilteredParent(filter); ok {
		back, backOK = parent.firstFilteredChild(filter)
	}
	return &PrecedingFilteredSiblings{
		filter:  filter,
		front:   front,
		back:    back,
		hasBoth: frontOK && backOK,
	}
}

func (it *PrecedingFilteredSiblings) Next() (Node, bool) {
	if !it.hasBoth {
		return Node{}, false
	}
	current := it.front
	if current.ID() == it.back.ID() {
		it.hasBoth = false
	} else {
		it.front, it.hasBoth = previousFilteredSibling(it.front, it.filter)
	}
	return current, true
}

func (it *PrecedingFilteredSiblings) NextBack() (Node, bool) {
	if !it.hasBoth {
		return Node{}, false
	}
	current := it.back
	if current.ID() == it.front.ID() {
		it.hasBoth = false
	} else {
		it.back, it.hasBoth = nextFilteredSibling(it.back, it.filter)
	}
	return current, true
}

// FilteredChildren iterates the filtered children of a node.
type FilteredChildren struct {
	filter  Filter
	front   Node
	back    Node
	hasBoth bool
}

func newFilteredChildren(node Node, filter Filter) *FilteredChildren {
	front, frontOK := node.firstFilteredChild(filter)
	back, backOK := node.lastFilteredChild(filter)
	return &FilteredChildren{
		filter:  filter,
		front:   front,
		back:    back,
		hasBoth: frontOK && backOK,
	}
}

func (it *FilteredChildren) Next() (Node, bool) {
	if !it.hasBoth {
		return Node{}, false
	}
	current := it.front
	if current.ID() == it.back.ID() {
		it.hasBoth = false
	} else {
		it.front, it.hasBoth = nextFilteredSibling(it.front, it.filter)
	}
	return current, true
}

func (it *FilteredChildren) NextBack() (Node, bool) {
	if !it.hasBoth {
		return Node{}, false
	}
	current := it.back
	if current.ID() == it.front.ID() {
		it.hasBoth = false
	} else {
		it.back, it.hasBoth = previousFilteredSibling(it.back, it.filter)
	}
	return current, true
}
