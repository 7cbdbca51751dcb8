package consumer

import (
	"fmt"
	"sync"

	"accesstree/pkg/schema"
)

type parentAndIndex struct {
	parent schema.NodeID
	index  int
}

type nodeState struct {
	id             schema.NodeID
	parentAndIndex *parentAndIndex
	data           *schema.Node
}

// TreeState is the consumer's materialized view of a tree: every reachable
// node with its parent link, the tree metadata, the producer-reported focus,
// and whether the host window currently has focus. It is only ever mutated
// by Tree while holding the write lock; Node views borrow it read-only.
type TreeState struct {
	nodes       map[schema.NodeID]*nodeState
	data        schema.Tree
	focus       schema.NodeID
	hostFocused bool
	filter      Filter
}

// DetachedNode is a snapshot of a node that is no longer (or not yet) part
// of the current state: the node data plus the focus and root status it had
// when the snapshot was taken.
type DetachedNode struct {
	id      schema.NodeID
	data    *schema.Node
	focused bool
	root    bool
}

func (d *DetachedNode) ID() schema.NodeID  { return d.id }
func (d *DetachedNode) Data() *schema.Node { return d.data }
func (d *DetachedNode) IsFocused() bool    { return d.focused }
func (d *DetachedNode) IsRoot() bool       { return d.root }

// ChangeHandler receives the differences produced by applying one update.
// Methods are called synchronously while the tree's lock is held for
// reading; handlers must not call back into Tree methods that write.
type ChangeHandler interface {
	NodeAdded(node Node)
	NodeUpdated(oldNode *DetachedNode, newNode Node)
	// FocusMoved reports a change of the resolved focus: the producer focus
	// run through the filter and the host focus state. Either side may be
	// nil (no focus).
	FocusMoved(oldNode *DetachedNode, newNode *Node)
	NodeRemoved(node *DetachedNode)
}

type internalChanges struct {
	added   map[schema.NodeID]struct{}
	updated map[schema.NodeID]*DetachedNode
	removed map[schema.NodeID]*DetachedNode

	focusChanged bool
	oldFocus     *DetachedNode
}

func newInternalChanges() *internalChanges {
	return &internalChanges{
		added:   make(map[schema.NodeID]struct{}),
		updated: make(map[schema.NodeID]*DetachedNode),
		removed: make(map[schema.NodeID]*DetachedNode),
	}
}

func (s *TreeState) validate() {
	if _, ok := s.nodes[s.data.Root]; !ok {
		panic(fmt.Sprintf("consumer: root %v missing from tree", s.data.Root))
	}
	if _, ok := s.nodes[s.focus]; !ok {
		panic(fmt.Sprintf("consumer: focus %v missing from tree", s.focus))
	}
}

func (s *TreeState) detached(state *nodeState, focusedID schema.NodeID, hadFocus bool, rootID schema.NodeID) *DetachedNode {
	return &DetachedNode{
		id:      state.id,
		data:    state.data,
		focused: hadFocus && state.id == focusedID,
		root:    state.id == rootID,
	}
}

// apply folds one update into the state. changes may be nil when the caller
// does not need a diff. Malformed updates (duplicate children, nodes with no
// parent, children never defined, missing root or focus) are fatal.
func (s *TreeState) apply(update schema.TreeUpdate, changes *internalChanges) {
	oldRootID := s.data.Root
	oldFocusID, oldHadFocus := s.resolvedFocusID()
	var oldFocus *DetachedNode
	if oldHadFocus {
		oldFocus = s.detached(s.nodes[oldFocusID], oldFocusID, true, oldRootID)
	}

	if changes != nil {
		for _, entry := range update.Nodes {
			if state, ok := s.nodes[entry.ID]; ok {
				changes.updated[entry.ID] = s.detached(state, oldFocusID, oldHadFocus, oldRootID)
			}
		}
	}

	orphans := make(map[schema.NodeID]struct{})

	if update.Tree != nil {
		if update.Tree.Root != s.data.Root {
			orphans[s.data.Root] = struct{}{}
		}
		s.data = *update.Tree
	}

	root := s.data.Root
	pendingNodes := make(map[schema.NodeID]*schema.Node)
	pendingChildren := make(map[schema.NodeID]parentAndIndex)

	addNode := func(pi *parentAndIndex, id schema.NodeID, data *schema.Node) {
		s.nodes[id] = &nodeState{id: id, parentAndIndex: pi, data: data}
		if changes != nil {
			changes.added[id] = struct{}{}
		}
	}

	for _, entry := range update.Nodes {
		id, data := entry.ID, entry.Node
		delete(orphans, id)

		seenChildIDs := make(map[schema.NodeID]struct{})
		for childIndex, childID := range data.Children() {
			if _, dup := seenChildIDs[childID]; dup {
				panic(fmt.Sprintf("consumer: duplicate child %v in node %v", childID, id))
			}
			delete(orphans, childID)
			pi := parentAndIndex{parent: id, index: childIndex}
			if childState, ok := s.nodes[childID]; ok {
				if childState.parentAndIndex == nil || *childState.parentAndIndex != pi {
					childState.parentAndIndex = &pi
				}
			} else if childData, ok := pendingNodes[childID]; ok {
				delete(pendingNodes, childID)
				addNode(&pi, childID, childData)
			} else {
				pendingChildren[childID] = pi
			}
			seenChildIDs[childID] = struct{}{}
		}

		if state, ok := s.nodes[id]; ok {
			if id == root {
				state.parentAndIndex = nil
			}
			for _, childID := range state.data.Children() {
				if _, seen := seenChildIDs[childID]; !seen {
					orphans[childID] = struct{}{}
				}
			}
			state.data = data
		} else if pi, ok := pendingChildren[id]; ok {
			delete(pendingChildren, id)
			addNode(&pi, id, data)
		} else if id == root {
			addNode(nil, id, data)
		} else {
			pendingNodes[id] = data
		}
	}

	if len(pendingNodes) != 0 || len(pendingChildren) != 0 {
		panic(fmt.Sprintf(
			"consumer: incomplete update: %d nodes not claimed by a parent, %d children never defined",
			len(pendingNodes), len(pendingChildren)))
	}

	s.focus = update.Focus

	if len(orphans) > 0 {
		toRemove := make(map[schema.NodeID]struct{})
		var traverse func(id schema.NodeID)
		traverse = func(id schema.NodeID) {
			toRemove[id] = struct{}{}
			state, ok := s.nodes[id]
			if !ok {
				return
			}
			for _, childID := range state.data.Children() {
				child, ok := s.nodes[childID]
				if !ok {
					continue
				}
				// Skip children that were reparented under a live node by
				// this same update.
				if child.parentAndIndex != nil && child.parentAndIndex.parent != id {
					continue
				}
				traverse(childID)
			}
		}
		for id := range orphans {
			traverse(id)
		}
		for id := range toRemove {
			state, ok := s.nodes[id]
			if !ok {
				continue
			}
			delete(s.nodes, id)
			if changes != nil {
				changes.removed[id] = &DetachedNode{
					id:      id,
					data:    state.data,
					focused: oldHadFocus && id == oldFocusID,
					root:    id == oldRootID,
				}
			}
		}
	}

	s.validate()

	if changes != nil {
		newFocusID, newHasFocus := s.resolvedFocusID()
		if newFocusID != oldFocusID || newHasFocus != oldHadFocus {
			changes.focusChanged = true
			changes.oldFocus = oldFocus
		}
	}
}

// resolvedFocusID is the producer focus resolved through the filter: the
// nearest filter-included self-or-ancestor of the focused node, or nothing
// when the host window is unfocused.
func (s *TreeState) resolvedFocusID() (schema.NodeID, bool) {
	node, ok := s.resolvedFocus()
	if !ok {
		return schema.NodeID{}, false
	}
	return node.ID(), true
}

func (s *TreeState) resolvedFocus() (Node, bool) {
	if !s.hostFocused {
		return Node{}, false
	}
	node, ok := s.NodeByID(s.focus)
	if !ok {
		return Node{}, false
	}
	if s.filter(node) == FilterInclude {
		return node, true
	}
	return node.FilteredParent(s.filter)
}

// HasNode reports whether id is currently in the tree.
func (s *TreeState) HasNode(id schema.NodeID) bool {
	_, ok := s.nodes[id]
	return ok
}

// NodeByID returns a view of the node, valid only within the current read
// scope.
func (s *TreeState) NodeByID(id schema.NodeID) (Node, bool) {
	state, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return Node{tree: s, state: state}, true
}

func (s *TreeState) mustNode(id schema.NodeID) Node {
	node, ok := s.NodeByID(id)
	if !ok {
		panic(fmt.Sprintf("consumer: node %v missing from tree", id))
	}
	return node
}

func (s *TreeState) RootID() schema.NodeID { return s.data.Root }

func (s *TreeState) Root() Node { return s.mustNode(s.data.Root) }

// FocusID is the resolved focus id; ok is false when the host window is
// unfocused.
func (s *TreeState) FocusID() (schema.NodeID, bool) { return s.resolvedFocusID() }

// Focus is the resolved focused node.
func (s *TreeState) Focus() (Node, bool) { return s.resolvedFocus() }

// FocusIDInTree is the producer-reported focus, regardless of host focus
// and filtering.
func (s *TreeState) FocusIDInTree() schema.NodeID { return s.focus }

// IsHostFocused reports the host window focus overlay.
func (s *TreeState) IsHostFocused() bool { return s.hostFocused }

// Tree metadata from the most recent update that carried it.
func (s *TreeState) Tree() schema.Tree { return s.data }

// Serialize renders the current state as a full update: every node in
// depth-first order, the tree metadata, and the focus. Applying the result
// to an empty tree reproduces this state.
func (s *TreeState) Serialize() schema.TreeUpdate {
	var nodes []schema.NodeEntry
	var traverse func(id schema.NodeID)
	traverse = func(id schema.NodeID) {
		state := s.nodes[id]
		nodes = append(nodes, schema.NodeEntry{ID: id, Node: state.data})
		for _, childID := range state.data.Children() {
			traverse(childID)
		}
	}
	traverse(s.data.Root)
	if len(nodes) != len(s.nodes) {
		panic(fmt.Sprintf("consumer: %d nodes reachable from root but %d in tree", len(nodes), len(s.nodes)))
	}
	data := s.data
	return schema.TreeUpdate{
		Nodes: nodes,
		Tree:  &data,
		Focus: s.focus,
	}
}

// Tree owns a TreeState behind a single-writer lock and routes action
// requests back to the producer.
type Tree struct {
	mu            sync.RWMutex
	state         TreeState
	actionHandler schema.ActionHandler
}

// New builds a tree from the initial update, which must carry tree
// metadata. filter shapes navigation and focus resolution for the lifetime
// of the tree; nil includes every node. hostFocused is the initial host
// window focus state.
func New(initial schema.TreeUpdate, hostFocused bool, actionHandler schema.ActionHandler, filter Filter) *Tree {
	if initial.Tree == nil {
		panic("consumer: initial update must include tree metadata")
	}
	if filter == nil {
		filter = includeAll
	}
	t := &Tree{
		state: TreeState{
			nodes:       make(map[schema.NodeID]*nodeState),
			data:        *initial.Tree,
			hostFocused: hostFocused,
			filter:      filter,
		},
		actionHandler: actionHandler,
	}
	t.state.focus = initial.Focus
	t.state.apply(initial, nil)
	return t
}

// Update applies an update without reporting changes.
func (t *Tree) Update(update schema.TreeUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.apply(update, nil)
}

// UpdateAndProcessChanges applies an update and reports the differences to
// handler: nodes added, nodes whose data or focus status changed, focus
// movement, then removals.
func (t *Tree) UpdateAndProcessChanges(update schema.TreeUpdate, handler ChangeHandler) {
	changes := newInternalChanges()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.apply(update, changes)
	t.processChanges(changes, handler)
}

// SetHostFocus records a host window focus change and synthesizes the
// resulting focus movement without touching any node.
func (t *Tree) SetHostFocus(focused bool, handler ChangeHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.hostFocused == focused {
		return
	}
	oldFocusID, oldHadFocus := t.state.resolvedFocusID()
	var oldFocus *DetachedNode
	if oldHadFocus {
		oldFocus = t.state.detached(t.state.nodes[oldFocusID], oldFocusID, true, t.state.data.Root)
	}
	t.state.hostFocused = focused
	newFocusID, newHasFocus := t.state.resolvedFocusID()
	if oldFocusID == newFocusID && oldHadFocus == newHasFocus {
		return
	}
	if handler == nil {
		return
	}
	var newNode *Node
	if newHasFocus {
		node := t.state.mustNode(newFocusID)
		newNode = &node
	}
	handler.FocusMoved(oldFocus, newNode)
}

func (t *Tree) processChanges(changes *internalChanges, handler ChangeHandler) {
	if handler == nil {
		return
	}
	for id := range changes.added {
		if node, ok := t.state.NodeByID(id); ok {
			handler.NodeAdded(node)
		}
	}
	for id, oldNode := range changes.updated {
		newNode, ok := t.state.NodeByID(id)
		if !ok {
			continue // removed in the same update
		}
		if !oldNode.data.Equal(newNode.Data()) || oldNode.focused != newNode.IsFocused() {
			handler.NodeUpdated(oldNode, newNode)
		}
	}
	if changes.focusChanged {
		newFocus, newHasFocus := t.state.resolvedFocus()

		// A node that gained or lost focused status without a data change
		// still needs a node-updated event so consumers re-render it.
		if old := changes.oldFocus; old != nil {
			_, wasUpdated := changes.updated[old.id]
			_, wasRemoved := changes.removed[old.id]
			if !wasUpdated && !wasRemoved {
				if node, ok := t.state.NodeByID(old.id); ok {
					handler.NodeUpdated(old, node)
				}
			}
		}
		if newHasFocus {
			id := newFocus.ID()
			_, wasAdded := changes.added[id]
			_, wasUpdated := changes.updated[id]
			if !wasAdded && !wasUpdated {
				old := &DetachedNode{
					id:      id,
					data:    newFocus.Data(),
					focused: false,
					root:    newFocus.IsRoot(),
				}
				handler.NodeUpdated(old, newFocus)
			}
		}

		var newNode *Node
		if newHasFocus {
			newNode = &newFocus
		}
		handler.FocusMoved(changes.oldFocus, newNode)
	}
	for _, node := range changes.removed {
		handler.NodeRemoved(node)
	}
}

// Read runs fn with shared access to the current state. The TreeState and
// any Node views derived from it must not escape fn.
func (t *Tree) Read(fn func(state *TreeState)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn(&t.state)
}

func (t *Tree) doAction(req schema.ActionRequest) {
	if t.actionHandler != nil {
		t.actionHandler.DoAction(req)
	}
}

// Focus asks the producer to move focus to target.
func (t *Tree) Focus(target schema.NodeID) {
	t.doAction(schema.ActionRequest{Action: schema.ActionFocus, Target: target})
}

// Click asks the producer to activate target.
func (t *Tree) Click(target schema.NodeID) {
	t.doAction(schema.ActionRequest{Action: schema.ActionClick, Target: target})
}

func (t *Tree) SetValue(target schema.NodeID, value string) {
	t.doAction(schema.ActionRequest{
		Action: schema.ActionSetValue,
		Target: target,
		Data:   schema.ValueData(value),
	})
}

func (t *Tree) SetNumericValue(target schema.NodeID, value float64) {
	t.doAction(schema.ActionRequest{
		Action: schema.ActionSetValue,
		Target: target,
		Data:   schema.NumericValueData(value),
	})
}

func (t *Tree) Increment(target schema.NodeID) {
	t.doAction(schema.ActionRequest{Action: schema.ActionIncrement, Target: target})
}

func (t *Tree) Decrement(target schema.NodeID) {
	t.doAction(schema.ActionRequest{Action: schema.ActionDecrement, Target: target})
}

func (t *Tree) ScrollIntoView(target schema.NodeID) {
	t.doAction(schema.ActionRequest{Action: schema.ActionScrollIntoView, Target: target})
}

func (t *Tree) ScrollToPoint(target schema.NodeID, point schema.Point) {
	t.doAction(schema.ActionRequest{
		Action: schema.ActionScrollToPoint,
		Target: target,
		Data:   schema.ScrollToPointData(point),
	})
}

// SelectTextRange asks the producer to set the text selection to range_.
func (t *Tree) SelectTextRange(range_ TextRange) {
	t.doAction(schema.ActionRequest{
		Action: schema.ActionSetTextSelection,
		Target: range_.node.ID(),
		Data: schema.SetTextSelectionData(schema.TextSelection{
			Anchor: range_.start.downgrade(),
			Focus:  range_.end.downgrade(),
		}),
	})
}
