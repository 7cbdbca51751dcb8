package schema

import "reflect"

// TextPosition addresses a character boundary inside a text run node. The
// index is in characters as segmented by the producer (characterLengths),
// not bytes; an index equal to the run length addresses the end of the run.
type TextPosition struct {
	Node           NodeID `json:"node"`
	CharacterIndex int    `json:"characterIndex"`
}

// TextSelection is a possibly reversed range between two text positions.
// Anchor is where the selection started, Focus where it ends; Focus may
// precede Anchor in document order.
type TextSelection struct {
	Anchor TextPosition `json:"anchor"`
	Focus  TextPosition `json:"focus"`
}

// Node is a single element of an accessibility tree: a role, a mask of
// supported actions, a mask of boolean state flags, and a sparse set of
// typed properties.
//
// Nodes have whole-value replacement semantics: a TreeUpdate carries
// complete nodes, never partial edits, and a node handed to a consumer in
// an update must not be mutated afterwards.
type Node struct {
	role    Role
	actions uint32
	flags   uint32
	props   properties
}

// NewNode returns a node with the given role and no other state.
func NewNode(role Role) *Node {
	return &Node{role: role}
}

func (n *Node) Role() Role        { return n.role }
func (n *Node) SetRole(role Role) { n.role = role }

// SupportsAction reports whether the producer advertised the action on this
// node.
func (n *Node) SupportsAction(a Action) bool { return n.actions&a.mask() != 0 }
func (n *Node) AddAction(a Action)           { n.actions |= a.mask() }
func (n *Node) RemoveAction(a Action)        { n.actions &^= a.mask() }
func (n *Node) ClearActions()                { n.actions = 0 }

// Actions lists the advertised actions in enum order.
func (n *Node) Actions() []Action { return actionMaskToSlice(n.actions) }

// Equal reports whether two nodes carry the same role, actions, flags and
// property values. Property slot layout (set/clear history) is ignored.
func (n *Node) Equal(other *Node) bool {
	if n.role != other.role || n.actions != other.actions || n.flags != other.flags {
		return false
	}
	for id := propertyID(0); id < numProperties; id++ {
		a, b := n.props.get(id), other.props.get(id)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && !reflect.DeepEqual(a, b) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy; mutating the copy never affects the original.
func (n *Node) Clone() *Node {
	c := &Node{role: n.role, actions: n.actions, flags: n.flags}
	c.props.indices = n.props.indices
	if n.props.values != nil {
		c.props.values = make([]any, len(n.props.values))
		for i, v := range n.props.values {
			switch v := v.(type) {
			case []NodeID:
				c.props.values[i] = append([]NodeID(nil), v...)
			case []uint8:
				c.props.values[i] = append([]uint8(nil), v...)
			case []float32:
				c.props.values[i] = append([]float32(nil), v...)
			case []CustomAction:
				c.props.values[i] = append([]CustomAction(nil), v...)
			default:
				c.props.values[i] = v
			}
		}
	}
	return c
}

var idListProperties = []propertyID{
	propChildren, propControls, propDetails, propDescribedBy,
	propFlowTo, propLabelledBy, propOwns, propRadioGroup,
}

var idProperties = []propertyID{
	propActiveDescendant, propErrorMessage, propInPageLinkTarget,
	propMemberOf, propNextOnLine, propPreviousOnLine, propPopupFor,
}

// WalkIDs calls f with every node id referenced by this node's properties,
// including the anchor and focus of a text selection.
func (n *Node) WalkIDs(f func(NodeID)) {
	for _, id := range idListProperties {
		for _, ref := range propSlice[NodeID](n, id) {
			f(ref)
		}
	}
	for _, id := range idProperties {
		if ref, ok := propGet[NodeID](n, id); ok {
			f(ref)
		}
	}
	if sel, ok := propGet[TextSelection](n, propTextSelection); ok {
		f(sel.Anchor.Node)
		f(sel.Focus.Node)
	}
}

// MapIDs rewrites every node id referenced by this node's properties through
// f, in place.
func (n *Node) MapIDs(f func(NodeID) NodeID) {
	for _, id := range idListProperties {
		refs := propSlice[NodeID](n, id)
		for i, ref := range refs {
			refs[i] = f(ref)
		}
	}
	for _, id := range idProperties {
		if ref, ok := propGet[NodeID](n, id); ok {
			n.props.set(id, f(ref))
		}
	}
	if sel, ok := propGet[TextSelection](n, propTextSelection); ok {
		sel.Anchor.Node = f(sel.Anchor.Node)
		sel.Focus.Node = f(sel.Focus.Node)
		n.props.set(propTextSelection, sel)
	}
}

// Node id list properties.

func (n *Node) Children() []NodeID        { return propSlice[NodeID](n, propChildren) }
func (n *Node) SetChildren(ids []NodeID)  { n.props.set(propChildren, ids) }
func (n *Node) PushChild(id NodeID)       { propPush(n, propChildren, id) }
func (n *Node) ClearChildren()            { n.props.clear(propChildren) }

func (n *Node) Controls() []NodeID       { return propSlice[NodeID](n, propControls) }
func (n *Node) SetControls(ids []NodeID) { n.props.set(propControls, ids) }
func (n *Node) PushControlled(id NodeID) { propPush(n, propControls, id) }
func (n *Node) ClearControls()           { n.props.clear(propControls) }

func (n *Node) Details() []NodeID       { return propSlice[NodeID](n, propDetails) }
func (n *Node) SetDetails(ids []NodeID) { n.props.set(propDetails, ids) }
func (n *Node) PushDetail(id NodeID)    { propPush(n, propDetails, id) }
func (n *Node) ClearDetails()           { n.props.clear(propDetails) }

func (n *Node) DescribedBy() []NodeID       { return propSlice[NodeID](n, propDescribedBy) }
func (n *Node) SetDescribedBy(ids []NodeID) { n.props.set(propDescribedBy, ids) }
func (n *Node) PushDescribedBy(id NodeID)   { propPush(n, propDescribedBy, id) }
func (n *Node) ClearDescribedBy()           { n.props.clear(propDescribedBy) }

func (n *Node) FlowTo() []NodeID       { return propSlice[NodeID](n, propFlowTo) }
func (n *Node) SetFlowTo(ids []NodeID) { n.props.set(propFlowTo, ids) }
func (n *Node) PushFlowTo(id NodeID)   { propPush(n, propFlowTo, id) }
func (n *Node) ClearFlowTo()           { n.props.clear(propFlowTo) }

func (n *Node) LabelledBy() []NodeID       { return propSlice[NodeID](n, propLabelledBy) }
func (n *Node) SetLabelledBy(ids []NodeID) { n.props.set(propLabelledBy, ids) }
func (n *Node) PushLabelledBy(id NodeID)   { propPush(n, propLabelledBy, id) }
func (n *Node) ClearLabelledBy()           { n.props.clear(propLabelledBy) }

func (n *Node) Owns() []NodeID       { return propSlice[NodeID](n, propOwns) }
func (n *Node) SetOwns(ids []NodeID) { n.props.set(propOwns, ids) }
func (n *Node) PushOwned(id NodeID)  { propPush(n, propOwns, id) }
func (n *Node) ClearOwns()           { n.props.clear(propOwns) }

func (n *Node) RadioGroup() []NodeID          { return propSlice[NodeID](n, propRadioGroup) }
func (n *Node) SetRadioGroup(ids []NodeID)    { n.props.set(propRadioGroup, ids) }
func (n *Node) PushRadioGroupMember(id NodeID) { propPush(n, propRadioGroup, id) }
func (n *Node) ClearRadioGroup()              { n.props.clear(propRadioGroup) }

// Single node id properties.

func (n *Node) ActiveDescendant() (NodeID, bool) { return propGet[NodeID](n, propActiveDescendant) }
func (n *Node) SetActiveDescendant(id NodeID)    { n.props.set(propActiveDescendant, id) }
func (n *Node) ClearActiveDescendant()           { n.props.clear(propActiveDescendant) }

func (n *Node) ErrorMessage() (NodeID, bool) { return propGet[NodeID](n, propErrorMessage) }
func (n *Node) SetErrorMessage(id NodeID)    { n.props.set(propErrorMessage, id) }
func (n *Node) ClearErrorMessage()           { n.props.clear(propErrorMessage) }

func (n *Node) InPageLinkTarget() (NodeID, bool) { return propGet[NodeID](n, propInPageLinkTarget) }
func (n *Node) SetInPageLinkTarget(id NodeID)    { n.props.set(propInPageLinkTarget, id) }
func (n *Node) ClearInPageLinkTarget()           { n.props.clear(propInPageLinkTarget) }

func (n *Node) MemberOf() (NodeID, bool) { return propGet[NodeID](n, propMemberOf) }
func (n *Node) SetMemberOf(id NodeID)    { n.props.set(propMemberOf, id) }
func (n *Node) ClearMemberOf()           { n.props.clear(propMemberOf) }

func (n *Node) NextOnLine() (NodeID, bool) { return propGet[NodeID](n, propNextOnLine) }
func (n *Node) SetNextOnLine(id NodeID)    { n.props.set(propNextOnLine, id) }
func (n *Node) ClearNextOnLine()           { n.props.clear(propNextOnLine) }

func (n *Node) PreviousOnLine() (NodeID, bool) { return propGet[NodeID](n, propPreviousOnLine) }
func (n *Node) SetPreviousOnLine(id NodeID)    { n.props.set(propPreviousOnLine, id) }
func (n *Node) ClearPreviousOnLine()           { n.props.clear(propPreviousOnLine) }

func (n *Node) PopupFor() (NodeID, bool) { return propGet[NodeID](n, propPopupFor) }
func (n *Node) SetPopupFor(id NodeID)    { n.props.set(propPopupFor, id) }
func (n *Node) ClearPopupFor()           { n.props.clear(propPopupFor) }

// String properties.

func (n *Node) Label() (string, bool) { return propGet[string](n, propLabel) }
func (n *Node) SetLabel(v string)     { n.props.set(propLabel, v) }
func (n *Node) ClearLabel()           { n.props.clear(propLabel) }

func (n *Node) Description() (string, bool) { return propGet[string](n, propDescription) }
func (n *Node) SetDescription(v string)     { n.props.set(propDescription, v) }
func (n *Node) ClearDescription()           { n.props.clear(propDescription) }

func (n *Node) Value() (string, bool) { return propGet[string](n, propValue) }
func (n *Node) SetValue(v string)     { n.props.set(propValue, v) }
func (n *Node) ClearValue()           { n.props.clear(propValue) }

func (n *Node) AccessKey() (string, bool) { return propGet[string](n, propAccessKey) }
func (n *Node) SetAccessKey(v string)     { n.props.set(propAccessKey, v) }
func (n *Node) ClearAccessKey()           { n.props.clear(propAccessKey) }

func (n *Node) AuthorID() (string, bool) { return propGet[string](n, propAuthorID) }
func (n *Node) SetAuthorID(v string)     { n.props.set(propAuthorID, v) }
func (n *Node) ClearAuthorID()           { n.props.clear(propAuthorID) }

func (n *Node) ClassName() (string, bool) { return propGet[string](n, propClassName) }
func (n *Node) SetClassName(v string)     { n.props.set(propClassName, v) }
func (n *Node) ClearClassName()           { n.props.clear(propClassName) }

func (n *Node) FontFamily() (string, bool) { return propGet[string](n, propFontFamily) }
func (n *Node) SetFontFamily(v string)     { n.props.set(propFontFamily, v) }
func (n *Node) ClearFontFamily()           { n.props.clear(propFontFamily) }

func (n *Node) HTMLTag() (string, bool) { return propGet[string](n, propHTMLTag) }
func (n *Node) SetHTMLTag(v string)     { n.props.set(propHTMLTag, v) }
func (n *Node) ClearHTMLTag()           { n.props.clear(propHTMLTag) }

func (n *Node) InnerHTML() (string, bool) { return propGet[string](n, propInnerHTML) }
func (n *Node) SetInnerHTML(v string)     { n.props.set(propInnerHTML, v) }
func (n *Node) ClearInnerHTML()           { n.props.clear(propInnerHTML) }

func (n *Node) KeyboardShortcut() (string, bool) { return propGet[string](n, propKeyboardShortcut) }
func (n *Node) SetKeyboardShortcut(v string)     { n.props.set(propKeyboardShortcut, v) }
func (n *Node) ClearKeyboardShortcut()           { n.props.clear(propKeyboardShortcut) }

func (n *Node) Language() (string, bool) { return propGet[string](n, propLanguage) }
func (n *Node) SetLanguage(v string)     { n.props.set(propLanguage, v) }
func (n *Node) ClearLanguage()           { n.props.clear(propLanguage) }

func (n *Node) Placeholder() (string, bool) { return propGet[string](n, propPlaceholder) }
func (n *Node) SetPlaceholder(v string)     { n.props.set(propPlaceholder, v) }
func (n *Node) ClearPlaceholder()           { n.props.clear(propPlaceholder) }

func (n *Node) RoleDescription() (string, bool) { return propGet[string](n, propRoleDescription) }
func (n *Node) SetRoleDescription(v string)     { n.props.set(propRoleDescription, v) }
func (n *Node) ClearRoleDescription()           { n.props.clear(propRoleDescription) }

func (n *Node) StateDescription() (string, bool) { return propGet[string](n, propStateDescription) }
func (n *Node) SetStateDescription(v string)     { n.props.set(propStateDescription, v) }
func (n *Node) ClearStateDescription()           { n.props.clear(propStateDescription) }

func (n *Node) Tooltip() (string, bool) { return propGet[string](n, propTooltip) }
func (n *Node) SetTooltip(v string)     { n.props.set(propTooltip, v) }
func (n *Node) ClearTooltip()           { n.props.clear(propTooltip) }

func (n *Node) URL() (string, bool) { return propGet[string](n, propURL) }
func (n *Node) SetURL(v string)     { n.props.set(propURL, v) }
func (n *Node) ClearURL()           { n.props.clear(propURL) }

func (n *Node) RowIndexText() (string, bool) { return propGet[string](n, propRowIndexText) }
func (n *Node) SetRowIndexText(v string)     { n.props.set(propRowIndexText, v) }
func (n *Node) ClearRowIndexText()           { n.props.clear(propRowIndexText) }

func (n *Node) ColumnIndexText() (string, bool) { return propGet[string](n, propColumnIndexText) }
func (n *Node) SetColumnIndexText(v string)     { n.props.set(propColumnIndexText, v) }
func (n *Node) ClearColumnIndexText()           { n.props.clear(propColumnIndexText) }

// Float properties.

func (n *Node) ScrollX() (float64, bool) { return propGet[float64](n, propScrollX) }
func (n *Node) SetScrollX(v float64)     { n.props.set(propScrollX, v) }
func (n *Node) ClearScrollX()            { n.props.clear(propScrollX) }

func (n *Node) ScrollXMin() (float64, bool) { return propGet[float64](n, propScrollXMin) }
func (n *Node) SetScrollXMin(v float64)     { n.props.set(propScrollXMin, v) }
func (n *Node) ClearScrollXMin()            { n.props.clear(propScrollXMin) }

func (n *Node) ScrollXMax() (float64, bool) { return propGet[float64](n, propScrollXMax) }
func (n *Node) SetScrollXMax(v float64)     { n.props.set(propScrollXMax, v) }
func (n *Node) ClearScrollXMax()            { n.props.clear(propScrollXMax) }

func (n *Node) ScrollY() (float64, bool) { return propGet[float64](n, propScrollY) }
func (n *Node) SetScrollY(v float64)     { n.props.set(propScrollY, v) }
func (n *Node) ClearScrollY()            { n.props.clear(propScrollY) }

func (n *Node) ScrollYMin() (float64, bool) { return propGet[float64](n, propScrollYMin) }
func (n *Node) SetScrollYMin(v float64)     { n.props.set(propScrollYMin, v) }
func (n *Node) ClearScrollYMin()            { n.props.clear(propScrollYMin) }

func (n *Node) ScrollYMax() (float64, bool) { return propGet[float64](n, propScrollYMax) }
func (n *Node) SetScrollYMax(v float64)     { n.props.set(propScrollYMax, v) }
func (n *Node) ClearScrollYMax()            { n.props.clear(propScrollYMax) }

func (n *Node) NumericValue() (float64, bool) { return propGet[float64](n, propNumericValue) }
func (n *Node) SetNumericValue(v float64)     { n.props.set(propNumericValue, v) }
func (n *Node) ClearNumericValue()            { n.props.clear(propNumericValue) }

func (n *Node) MinNumericValue() (float64, bool) { return propGet[float64](n, propMinNumericValue) }
func (n *Node) SetMinNumericValue(v float64)     { n.props.set(propMinNumericValue, v) }
func (n *Node) ClearMinNumericValue()            { n.props.clear(propMinNumericValue) }

func (n *Node) MaxNumericValue() (float64, bool) { return propGet[float64](n, propMaxNumericValue) }
func (n *Node) SetMaxNumericValue(v float64)     { n.props.set(propMaxNumericValue, v) }
func (n *Node) ClearMaxNumericValue()            { n.props.clear(propMaxNumericValue) }

func (n *Node) NumericValueStep() (float64, bool) { return propGet[float64](n, propNumericValueStep) }
func (n *Node) SetNumericValueStep(v float64)     { n.props.set(propNumericValueStep, v) }
func (n *Node) ClearNumericValueStep()            { n.props.clear(propNumericValueStep) }

func (n *Node) NumericValueJump() (float64, bool) { return propGet[float64](n, propNumericValueJump) }
func (n *Node) SetNumericValueJump(v float64)     { n.props.set(propNumericValueJump, v) }
func (n *Node) ClearNumericValueJump()            { n.props.clear(propNumericValueJump) }

func (n *Node) FontSize() (float64, bool) { return propGet[float64](n, propFontSize) }
func (n *Node) SetFontSize(v float64)     { n.props.set(propFontSize, v) }
func (n *Node) ClearFontSize()            { n.props.clear(propFontSize) }

func (n *Node) FontWeight() (float64, bool) { return propGet[float64](n, propFontWeight) }
func (n *Node) SetFontWeight(v float64)     { n.props.set(propFontWeight, v) }
func (n *Node) ClearFontWeight()            { n.props.clear(propFontWeight) }

// Integer properties.

func (n *Node) RowCount() (int, bool) { return propGet[int](n, propRowCount) }
func (n *Node) SetRowCount(v int)     { n.props.set(propRowCount, v) }
func (n *Node) ClearRowCount()        { n.props.clear(propRowCount) }

func (n *Node) ColumnCount() (int, bool) { return propGet[int](n, propColumnCount) }
func (n *Node) SetColumnCount(v int)     { n.props.set(propColumnCount, v) }
func (n *Node) ClearColumnCount()        { n.props.clear(propColumnCount) }

func (n *Node) RowIndex() (int, bool) { return propGet[int](n, propRowIndex) }
func (n *Node) SetRowIndex(v int)     { n.props.set(propRowIndex, v) }
func (n *Node) ClearRowIndex()        { n.props.clear(propRowIndex) }

func (n *Node) ColumnIndex() (int, bool) { return propGet[int](n, propColumnIndex) }
func (n *Node) SetColumnIndex(v int)     { n.props.set(propColumnIndex, v) }
func (n *Node) ClearColumnIndex()        { n.props.clear(propColumnIndex) }

func (n *Node) RowSpan() (int, bool) { return propGet[int](n, propRowSpan) }
func (n *Node) SetRowSpan(v int)     { n.props.set(propRowSpan, v) }
func (n *Node) ClearRowSpan()        { n.props.clear(propRowSpan) }

func (n *Node) ColumnSpan() (int, bool) { return propGet[int](n, propColumnSpan) }
func (n *Node) SetColumnSpan(v int)     { n.props.set(propColumnSpan, v) }
func (n *Node) ClearColumnSpan()        { n.props.clear(propColumnSpan) }

func (n *Node) Level() (int, bool) { return propGet[int](n, propLevel) }
func (n *Node) SetLevel(v int)     { n.props.set(propLevel, v) }
func (n *Node) ClearLevel()        { n.props.clear(propLevel) }

func (n *Node) SizeOfSet() (int, bool) { return propGet[int](n, propSizeOfSet) }
func (n *Node) SetSizeOfSet(v int)     { n.props.set(propSizeOfSet, v) }
func (n *Node) ClearSizeOfSet()        { n.props.clear(propSizeOfSet) }

func (n *Node) PositionInSet() (int, bool) { return propGet[int](n, propPositionInSet) }
func (n *Node) SetPositionInSet(v int)     { n.props.set(propPositionInSet, v) }
func (n *Node) ClearPositionInSet()        { n.props.clear(propPositionInSet) }

// Color properties, packed as 0xAARRGGBB.

func (n *Node) ColorValue() (uint32, bool) { return propGet[uint32](n, propColorValue) }
func (n *Node) SetColorValue(v uint32)     { n.props.set(propColorValue, v) }
func (n *Node) ClearColorValue()           { n.props.clear(propColorValue) }

func (n *Node) BackgroundColor() (uint32, bool) { return propGet[uint32](n, propBackgroundColor) }
func (n *Node) SetBackgroundColor(v uint32)     { n.props.set(propBackgroundColor, v) }
func (n *Node) ClearBackgroundColor()           { n.props.clear(propBackgroundColor) }

func (n *Node) ForegroundColor() (uint32, bool) { return propGet[uint32](n, propForegroundColor) }
func (n *Node) SetForegroundColor(v uint32)     { n.props.set(propForegroundColor, v) }
func (n *Node) ClearForegroundColor()           { n.props.clear(propForegroundColor) }

// Text decoration properties.

func (n *Node) Overline() (TextDecoration, bool) {
	return propGet[TextDecoration](n, propOverline)
}
func (n *Node) SetOverline(v TextDecoration) { n.props.set(propOverline, v) }
func (n *Node) ClearOverline()               { n.props.clear(propOverline) }

func (n *Node) Strikethrough() (TextDecoration, bool) {
	return propGet[TextDecoration](n, propStrikethrough)
}
func (n *Node) SetStrikethrough(v TextDecoration) { n.props.set(propStrikethrough, v) }
func (n *Node) ClearStrikethrough()               { n.props.clear(propStrikethrough) }

func (n *Node) Underline() (TextDecoration, bool) {
	return propGet[TextDecoration](n, propUnderline)
}
func (n *Node) SetUnderline(v TextDecoration) { n.props.set(propUnderline, v) }
func (n *Node) ClearUnderline()               { n.props.clear(propUnderline) }

// CharacterLengths gives the length in UTF-8 bytes of each character of a
// text run's value, in order. The producer decides what counts as a
// character (usually a grapheme cluster).
func (n *Node) CharacterLengths() []uint8     { return propSlice[uint8](n, propCharacterLengths) }
func (n *Node) SetCharacterLengths(v []uint8) { n.props.set(propCharacterLengths, v) }
func (n *Node) ClearCharacterLengths()        { n.props.clear(propCharacterLengths) }

// WordLengths gives the length in characters of each word of a text run's
// value. Every character belongs to exactly one word; trailing whitespace
// is counted with the word it follows.
func (n *Node) WordLengths() []uint8     { return propSlice[uint8](n, propWordLengths) }
func (n *Node) SetWordLengths(v []uint8) { n.props.set(propWordLengths, v) }
func (n *Node) ClearWordLengths()        { n.props.clear(propWordLengths) }

// CharacterPositions gives the offset of each character along the text
// run's primary axis, relative to the run's bounds.
func (n *Node) CharacterPositions() ([]float32, bool) {
	return propGet[[]float32](n, propCharacterPositions)
}
func (n *Node) SetCharacterPositions(v []float32) { n.props.set(propCharacterPositions, v) }
func (n *Node) ClearCharacterPositions()          { n.props.clear(propCharacterPositions) }

// CharacterWidths gives the advance of each character along the text run's
// primary axis.
func (n *Node) CharacterWidths() ([]float32, bool) {
	return propGet[[]float32](n, propCharacterWidths)
}
func (n *Node) SetCharacterWidths(v []float32) { n.props.set(propCharacterWidths, v) }
func (n *Node) ClearCharacterWidths()          { n.props.clear(propCharacterWidths) }

// Optional boolean properties; distinct from flags because "unset" is
// meaningful (e.g. a non-expandable node has no expanded state at all).

func (n *Node) Expanded() (bool, bool) { return propGet[bool](n, propExpanded) }
func (n *Node) SetExpanded(v bool)     { n.props.set(propExpanded, v) }
func (n *Node) ClearExpanded()         { n.props.clear(propExpanded) }

func (n *Node) Selected() (bool, bool) { return propGet[bool](n, propSelected) }
func (n *Node) SetSelected(v bool)     { n.props.set(propSelected, v) }
func (n *Node) ClearSelected()         { n.props.clear(propSelected) }

// Enum properties.

func (n *Node) Invalid() (Invalid, bool) { return propGet[Invalid](n, propInvalid) }
func (n *Node) SetInvalid(v Invalid)     { n.props.set(propInvalid, v) }
func (n *Node) ClearInvalid()            { n.props.clear(propInvalid) }

func (n *Node) Toggled() (Toggled, bool) { return propGet[Toggled](n, propToggled) }
func (n *Node) SetToggled(v Toggled)     { n.props.set(propToggled, v) }
func (n *Node) ClearToggled()            { n.props.clear(propToggled) }

func (n *Node) Live() (Live, bool) { return propGet[Live](n, propLive) }
func (n *Node) SetLive(v Live)     { n.props.set(propLive, v) }
func (n *Node) ClearLive()         { n.props.clear(propLive) }

func (n *Node) TextDirection() (TextDirection, bool) {
	return propGet[TextDirection](n, propTextDirection)
}
func (n *Node) SetTextDirection(v TextDirection) { n.props.set(propTextDirection, v) }
func (n *Node) ClearTextDirection()              { n.props.clear(propTextDirection) }

func (n *Node) Orientation() (Orientation, bool) {
	return propGet[Orientation](n, propOrientation)
}
func (n *Node) SetOrientation(v Orientation) { n.props.set(propOrientation, v) }
func (n *Node) ClearOrientation()            { n.props.clear(propOrientation) }

func (n *Node) SortDirection() (SortDirection, bool) {
	return propGet[SortDirection](n, propSortDirection)
}
func (n *Node) SetSortDirection(v SortDirection) { n.props.set(propSortDirection, v) }
func (n *Node) ClearSortDirection()              { n.props.clear(propSortDirection) }

func (n *Node) AriaCurrent() (AriaCurrent, bool) {
	return propGet[AriaCurrent](n, propAriaCurrent)
}
func (n *Node) SetAriaCurrent(v AriaCurrent) { n.props.set(propAriaCurrent, v) }
func (n *Node) ClearAriaCurrent()            { n.props.clear(propAriaCurrent) }

func (n *Node) AutoComplete() (AutoComplete, bool) {
	return propGet[AutoComplete](n, propAutoComplete)
}
func (n *Node) SetAutoComplete(v AutoComplete) { n.props.set(propAutoComplete, v) }
func (n *Node) ClearAutoComplete()             { n.props.clear(propAutoComplete) }

func (n *Node) HasPopup() (HasPopup, bool) { return propGet[HasPopup](n, propHasPopup) }
func (n *Node) SetHasPopup(v HasPopup)     { n.props.set(propHasPopup, v) }
func (n *Node) ClearHasPopup()             { n.props.clear(propHasPopup) }

func (n *Node) ListStyle() (ListStyle, bool) { return propGet[ListStyle](n, propListStyle) }
func (n *Node) SetListStyle(v ListStyle)     { n.props.set(propListStyle, v) }
func (n *Node) ClearListStyle()              { n.props.clear(propListStyle) }

func (n *Node) TextAlign() (TextAlign, bool) { return propGet[TextAlign](n, propTextAlign) }
func (n *Node) SetTextAlign(v TextAlign)     { n.props.set(propTextAlign, v) }
func (n *Node) ClearTextAlign()              { n.props.clear(propTextAlign) }

func (n *Node) VerticalOffset() (VerticalOffset, bool) {
	return propGet[VerticalOffset](n, propVerticalOffset)
}
func (n *Node) SetVerticalOffset(v VerticalOffset) { n.props.set(propVerticalOffset, v) }
func (n *Node) ClearVerticalOffset()               { n.props.clear(propVerticalOffset) }

// Structured properties.

// Transform maps this node's coordinate space (and its descendants') into
// the parent's.
func (n *Node) Transform() (Affine, bool) { return propGet[Affine](n, propTransform) }
func (n *Node) SetTransform(v Affine)     { n.props.set(propTransform, v) }
func (n *Node) ClearTransform()           { n.props.clear(propTransform) }

// Bounds is the node's bounding box in its own coordinate space.
func (n *Node) Bounds() (Rect, bool) { return propGet[Rect](n, propBounds) }
func (n *Node) SetBounds(v Rect)     { n.props.set(propBounds, v) }
func (n *Node) ClearBounds()         { n.props.clear(propBounds) }

func (n *Node) TextSelection() (TextSelection, bool) {
	return propGet[TextSelection](n, propTextSelection)
}
func (n *Node) SetTextSelection(v TextSelection) { n.props.set(propTextSelection, v) }
func (n *Node) ClearTextSelection()              { n.props.clear(propTextSelection) }

func (n *Node) CustomActions() []CustomAction {
	return propSlice[CustomAction](n, propCustomActions)
}
func (n *Node) SetCustomActions(v []CustomAction) { n.props.set(propCustomActions, v) }
func (n *Node) PushCustomAction(v CustomAction)   { propPush(n, propCustomActions, v) }
func (n *Node) ClearCustomActions()               { n.props.clear(propCustomActions) }
