package consumer

import (
	"strings"

	"accesstree/pkg/schema"
)

// Node is a read-scoped view of one node in a TreeState. It is a small
// value; copy it freely, but never let it outlive the Read scope it was
// obtained in.
type Node struct {
	tree  *TreeState
	state *nodeState
}

func (n Node) ID() schema.NodeID { return n.state.id }

// Data is the node's raw schema data. Callers must not mutate it.
func (n Node) Data() *schema.Node { return n.state.data }

func (n Node) Role() schema.Role { return n.state.data.Role() }

// IsFocused reports whether this node is the resolved focus (producer focus
// plus filtering plus host focus).
func (n Node) IsFocused() bool {
	id, ok := n.tree.resolvedFocusID()
	return ok && id == n.ID()
}

// IsFocusedInTree reports whether the producer says this node has focus,
// regardless of host focus and filtering.
func (n Node) IsFocusedInTree() bool {
	return n.tree.focus == n.ID()
}

func (n Node) IsFocusable() bool {
	return n.state.data.SupportsAction(schema.ActionFocus) || n.IsFocusedInTree()
}

// IsRoot checks identity against the tree's root id rather than absence of
// a parent, in case a node is somehow detached.
func (n Node) IsRoot() bool {
	return n.ID() == n.tree.RootID()
}

func (n Node) IsHidden() bool { return n.state.data.IsHidden() }

func (n Node) ParentID() (schema.NodeID, bool) {
	if pi := n.state.parentAndIndex; pi != nil {
		return pi.parent, true
	}
	return schema.NodeID{}, false
}

func (n Node) Parent() (Node, bool) {
	id, ok := n.ParentID()
	if !ok {
		return Node{}, false
	}
	return n.tree.mustNode(id), true
}

// FilteredParent is the nearest ancestor the filter includes.
func (n Node) FilteredParent(filter Filter) (Node, bool) {
	parent, ok := n.Parent()
	if !ok {
		return Node{}, false
	}
	if filter(parent) == FilterInclude {
		return parent, true
	}
	return parent.FilteredParent(filter)
}

// ParentAndIndex returns the parent and this node's index in its children.
func (n Node) ParentAndIndex() (Node, int, bool) {
	pi := n.state.parentAndIndex
	if pi == nil {
		return Node{}, 0, false
	}
	return n.tree.mustNode(pi.parent), pi.index, true
}

// ChildIDs is the node's children in order. The slice is shared with the
// node data; callers must not mutate it.
func (n Node) ChildIDs() []schema.NodeID { return n.state.data.Children() }

func (n Node) ChildCount() int { return len(n.state.data.Children()) }

func (n Node) ChildAt(index int) (Node, bool) {
	ids := n.state.data.Children()
	if index < 0 || index >= len(ids) {
		return Node{}, false
	}
	return n.tree.mustNode(ids[index]), true
}

func (n Node) firstChild() (Node, bool) { return n.ChildAt(0) }

func (n Node) lastChild() (Node, bool) { return n.ChildAt(n.ChildCount() - 1) }

// Children returns a forward iterator over the direct children.
func (n Node) Children() *Children { return newChildren(n) }

// FollowingSiblings iterates the siblings after this node, front to back.
func (n Node) FollowingSiblings() *FollowingSiblings { return newFollowingSiblings(n) }

// PrecedingSiblings iterates the siblings before this node, nearest first.
func (n Node) PrecedingSiblings() *PrecedingSiblings { return newPrecedingSiblings(n) }

// FilteredChildren iterates the children as seen through filter: included
// nodes are yielded, excluded nodes are replaced by their own filtered
// children, excluded subtrees are skipped.
func (n Node) FilteredChildren(filter Filter) *FilteredChildren {
	return newFilteredChildren(n, filter)
}

// FollowingFilteredSiblings iterates filtered siblings after this node.
func (n Node) FollowingFilteredSiblings(filter Filter) *FollowingFilteredSiblings {
	return newFollowingFilteredSiblings(n, filter)
}

// PrecedingFilteredSiblings iterates filtered siblings before this node,
// nearest first.
func (n Node) PrecedingFilteredSiblings(filter Filter) *PrecedingFilteredSiblings {
	return newPrecedingFilteredSiblings(n, filter)
}

func (n Node) firstFilteredChild(filter Filter) (Node, bool) {
	for _, id := range n.ChildIDs() {
		child := n.tree.mustNode(id)
		switch filter(child) {
		case FilterInclude:
			return child, true
		case FilterExcludeNode:
			if descendant, ok := child.firstFilteredChild(filter); ok {
				return descendant, true
			}
		}
	}
	return Node{}, false
}

func (n Node) lastFilteredChild(filter Filter) (Node, bool) {
	ids := n.ChildIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		child := n.tree.mustNode(ids[i])
		switch filter(child) {
		case FilterInclude:
			return child, true
		case FilterExcludeNode:
			if descendant, ok := child.lastFilteredChild(filter); ok {
				return descendant, true
			}
		}
	}
	return Node{}, false
}

func (n Node) DeepestFirstChild() (Node, bool) {
	deepest, ok := n.firstChild()
	if !ok {
		return Node{}, false
	}
	for {
		child, ok := deepest.firstChild()
		if !ok {
			return deepest, true
		}
		deepest = child
	}
}

func (n Node) DeepestLastChild() (Node, bool) {
	deepest, ok := n.lastChild()
	if !ok {
		return Node{}, false
	}
	for {
		child, ok := deepest.lastChild()
		if !ok {
			return deepest, true
		}
		deepest = child
	}
}

func (n Node) DeepestFirstFilteredChild(filter Filter) (Node, bool) {
	deepest, ok := n.firstFilteredChild(filter)
	if !ok {
		return Node{}, false
	}
	for {
		child, ok := deepest.firstFilteredChild(filter)
		if !ok {
			return deepest, true
		}
		deepest = child
	}
}

func (n Node) DeepestLastFilteredChild(filter Filter) (Node, bool) {
	deepest, ok := n.lastFilteredChild(filter)
	if !ok {
		return Node{}, false
	}
	for {
		child, ok := deepest.lastFilteredChild(filter)
		if !ok {
			return deepest, true
		}
		deepest = child
	}
}

func (n Node) IsDescendantOf(ancestor Node) bool {
	if n.ID() == ancestor.ID() {
		return true
	}
	if parent, ok := n.Parent(); ok {
		return parent.IsDescendantOf(ancestor)
	}
	return false
}

// IndexPath is the child-index path from the root down to this node.
func (n Node) IndexPath() []int {
	return n.RelativeIndexPath(n.tree.RootID())
}

// RelativeIndexPath is the child-index path from ancestorID down to this
// node, which must be a descendant of it.
func (n Node) RelativeIndexPath(ancestorID schema.NodeID) []int {
	var result []int
	current := n
	for current.ID() != ancestorID {
		parent, index, ok := current.ParentAndIndex()
		if !ok {
			panic("consumer: node is not a descendant of the given ancestor")
		}
		result = append(result, index)
		current = parent
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// Transforms and geometry.

func (n Node) directTransform() schema.Affine {
	if t, ok := n.state.data.Transform(); ok {
		return t
	}
	return schema.IdentityTransform
}

// Transform is the combined affine transform of this node and its
// ancestors, up to the root.
func (n Node) Transform() schema.Affine {
	parent, ok := n.Parent()
	if !ok {
		return n.directTransform()
	}
	return parent.Transform().Mul(n.directTransform())
}

func (n Node) relativeTransform(stopAt Node) schema.Affine {
	parentTransform := schema.IdentityTransform
	if parent, ok := n.Parent(); ok && parent.ID() != stopAt.ID() {
		parentTransform = parent.relativeTransform(stopAt)
	}
	return parentTransform.Mul(n.directTransform())
}

func (n Node) RawBounds() (schema.Rect, bool) { return n.state.data.Bounds() }

// BoundingBox is the node's transformed bounds in the coordinate space of
// the tree's container (e.g. the window).
func (n Node) BoundingBox() (schema.Rect, bool) {
	rect, ok := n.RawBounds()
	if !ok {
		return schema.Rect{}, false
	}
	return n.Transform().TransformRect(rect), true
}

func (n Node) boundingBoxInCoordinateSpace(other Node) (schema.Rect, bool) {
	rect, ok := n.RawBounds()
	if !ok {
		return schema.Rect{}, false
	}
	return n.relativeTransform(other).TransformRect(rect), true
}

func (n Node) hitTest(point schema.Point, filter Filter) (Node, schema.Point, bool) {
	result := filter(n)
	if result == FilterExcludeSubtree {
		return Node{}, schema.Point{}, false
	}
	ids := n.ChildIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		child := n.tree.mustNode(ids[i])
		childPoint := child.directTransform().Inverse().Transform(point)
		if hit, p, ok := child.hitTest(childPoint, filter); ok {
			return hit, p, ok
		}
	}
	if result == FilterInclude {
		if rect, ok := n.RawBounds(); ok && rect.ContainsPoint(point) {
			return n, point, true
		}
	}
	return Node{}, schema.Point{}, false
}

// NodeAtPoint returns the deepest filtered node at the given point in this
// node's coordinate space.
func (n Node) NodeAtPoint(point schema.Point, filter Filter) (Node, bool) {
	hit, _, ok := n.hitTest(point, filter)
	return hit, ok
}

// Text input classification; per-role rather than per-action because the
// producer's action advertisement governs behavior, not classification.

func (n Node) IsTextInput() bool {
	switch n.Role() {
	case schema.RoleTextField, schema.RoleMultilineTextField, schema.RoleSearchInput,
		schema.RoleDateInput, schema.RoleDateTimeInput, schema.RoleWeekInput,
		schema.RoleMonthInput, schema.RoleTimeInput, schema.RoleEmailInput,
		schema.RoleNumberInput, schema.RolePasswordInput, schema.RolePhoneNumberInput,
		schema.RoleURLInput, schema.RoleEditableComboBox, schema.RoleSpinButton:
		return true
	}
	return false
}

func (n Node) IsMultiline() bool { return n.Role() == schema.RoleMultilineTextField }

// Labels.

func descendantLabelFilter(node Node) FilterResult {
	switch node.Role() {
	case schema.RoleStaticText, schema.RoleImage:
		return FilterInclude
	case schema.RoleGenericContainer:
		return FilterExcludeNode
	}
	return FilterExcludeSubtree
}

func (n Node) labelComesFromValue() bool {
	return n.Role() == schema.RoleStaticText
}

// labelledBy yields the nodes whose labels compose this node's label: the
// explicit labelledBy targets, or for unlabelled control roles, the
// labelling descendants (static text and images).
func (n Node) labelledBy() []Node {
	explicit := n.state.data.LabelledBy()
	if len(explicit) > 0 {
		nodes := make([]Node, 0, len(explicit))
		for _, id := range explicit {
			if node, ok := n.tree.NodeByID(id); ok {
				nodes = append(nodes, node)
			}
		}
		return nodes
	}
	switch n.Role() {
	case schema.RoleButton, schema.RoleCheckBox, schema.RoleDefaultButton,
		schema.RoleLink, schema.RoleMenuItem, schema.RoleMenuItemCheckBox,
		schema.RoleMenuItemRadio, schema.RoleRadioButton:
		var nodes []Node
		it := n.FilteredChildren(descendantLabelFilter)
		for {
			child, ok := it.Next()
			if !ok {
				return nodes
			}
			nodes = append(nodes, child)
		}
	}
	return nil
}

// Label is the node's own label, or the joined labels of its labelling
// nodes.
func (n Node) Label() (string, bool) {
	if label, ok := n.state.data.Label(); ok {
		return label, true
	}
	var labels []string
	for _, node := range n.labelledBy() {
		var label string
		var ok bool
		if node.labelComesFromValue() {
			label, ok = node.Value()
		} else {
			label, ok = node.Label()
		}
		if ok {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return "", false
	}
	return strings.Join(labels, " "), true
}

func (n Node) Description() (string, bool) { return n.state.data.Description() }

func (n Node) Placeholder() (string, bool) { return n.state.data.Placeholder() }

// Value is the node's value property, or for single-line text containers,
// the text content of the document range.
func (n Node) Value() (string, bool) {
	if value, ok := n.state.data.Value(); ok {
		return value, true
	}
	if n.SupportsTextRanges() && !n.IsMultiline() {
		return n.DocumentRange().Text(), true
	}
	return "", false
}

// Live is the node's live region politeness, inherited from the nearest
// ancestor that sets it.
func (n Node) Live() schema.Live {
	if live, ok := n.state.data.Live(); ok {
		return live
	}
	if parent, ok := n.Parent(); ok {
		return parent.Live()
	}
	return schema.LiveOff
}

// Capability probes follow the producer's explicit action advertisement.

func (n Node) IsClickable() bool { return n.state.data.SupportsAction(schema.ActionClick) }

func (n Node) SupportsToggle() bool {
	_, ok := n.state.data.Toggled()
	return ok
}

func (n Node) SupportsExpandCollapse() bool {
	_, ok := n.state.data.Expanded()
	return ok
}

func (n Node) SupportsIncrement() bool {
	return n.state.data.SupportsAction(schema.ActionIncrement)
}

func (n Node) SupportsDecrement() bool {
	return n.state.data.SupportsAction(schema.ActionDecrement)
}
