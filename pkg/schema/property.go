package schema

import "fmt"

// propertyID indexes the fixed table of optional node properties. IDs are
// grouped by payload shape so the serialization code can dispatch on ranges.
type propertyID uint8

const (
	// node id lists
	propChildren propertyID = iota
	propControls
	propDetails
	propDescribedBy
	propFlowTo
	propLabelledBy
	propOwns
	propRadioGroup

	// node ids
	propActiveDescendant
	propErrorMessage
	propInPageLinkTarget
	propMemberOf
	propNextOnLine
	propPreviousOnLine
	propPopupFor

	// strings
	propLabel
	propDescription
	propValue
	propAccessKey
	propAuthorID
	propClassName
	propFontFamily
	propHTMLTag
	propInnerHTML
	propKeyboardShortcut
	propLanguage
	propPlaceholder
	propRoleDescription
	propStateDescription
	propTooltip
	propURL
	propRowIndexText
	propColumnIndexText

	// float64
	propScrollX
	propScrollXMin
	propScrollXMax
	propScrollY
	propScrollYMin
	propScrollYMax
	propNumericValue
	propMinNumericValue
	propMaxNumericValue
	propNumericValueStep
	propNumericValueJump
	propFontSize
	propFontWeight

	// int
	propRowCount
	propColumnCount
	propRowIndex
	propColumnIndex
	propRowSpan
	propColumnSpan
	propLevel
	propSizeOfSet
	propPositionInSet

	// color
	propColorValue
	propBackgroundColor
	propForegroundColor

	// text decoration
	propOverline
	propStrikethrough
	propUnderline

	// length slices
	propCharacterLengths
	propWordLengths

	// coordinate slices
	propCharacterPositions
	propCharacterWidths

	// bools
	propExpanded
	propSelected

	// unique enums
	propInvalid
	propToggled
	propLive
	propTextDirection
	propOrientation
	propSortDirection
	propAriaCurrent
	propAutoComplete
	propHasPopup
	propListStyle
	propTextAlign
	propVerticalOffset

	// other
	propTransform
	propBounds
	propTextSelection
	propCustomActions

	numProperties
)

var propertyNames = [numProperties]string{
	"children",
	"controls",
	"details",
	"describedBy",
	"flowTo",
	"labelledBy",
	"owns",
	"radioGroup",
	"activeDescendant",
	"errorMessage",
	"inPageLinkTarget",
	"memberOf",
	"nextOnLine",
	"previousOnLine",
	"popupFor",
	"label",
	"description",
	"value",
	"accessKey",
	"authorId",
	"className",
	"fontFamily",
	"htmlTag",
	"innerHtml",
	"keyboardShortcut",
	"language",
	"placeholder",
	"roleDescription",
	"stateDescription",
	"tooltip",
	"url",
	"rowIndexText",
	"columnIndexText",
	"scrollX",
	"scrollXMin",
	"scrollXMax",
	"scrollY",
	"scrollYMin",
	"scrollYMax",
	"numericValue",
	"minNumericValue",
	"maxNumericValue",
	"numericValueStep",
	"numericValueJump",
	"fontSize",
	"fontWeight",
	"rowCount",
	"columnCount",
	"rowIndex",
	"columnIndex",
	"rowSpan",
	"columnSpan",
	"level",
	"sizeOfSet",
	"positionInSet",
	"colorValue",
	"backgroundColor",
	"foregroundColor",
	"overline",
	"strikethrough",
	"underline",
	"characterLengths",
	"wordLengths",
	"characterPositions",
	"characterWidths",
	"expanded",
	"selected",
	"invalid",
	"toggled",
	"live",
	"textDirection",
	"orientation",
	"sortDirection",
	"ariaCurrent",
	"autoComplete",
	"hasPopup",
	"listStyle",
	"textAlign",
	"verticalOffset",
	"transform",
	"bounds",
	"textSelection",
	"customActions",
}

var propertiesByName = func() map[string]propertyID {
	m := make(map[string]propertyID, numProperties)
	for i, name := range propertyNames {
		m[name] = propertyID(i)
	}
	return m
}()

// properties is a compact optional-property store. indices maps a property
// id to a 1-based slot in values; 0 means the property was never set.
// Clearing tombstones the slot (nil) rather than shifting values, so slots
// stay stable and a later set of the same property reuses its slot. The
// common case of a node with few properties costs one small array plus the
// occupied slots.
type properties struct {
	indices [numProperties]uint8
	values  []any
}

func (p *properties) get(id propertyID) any {
	slot := p.indices[id]
	if slot == 0 {
		return nil
	}
	return p.values[slot-1]
}

func (p *properties) set(id propertyID, value any) {
	if slot := p.indices[id]; slot != 0 {
		p.values[slot-1] = value
		return
	}
	p.values = append(p.values, value)
	p.indices[id] = uint8(len(p.values))
}

func (p *properties) clear(id propertyID) {
	if slot := p.indices[id]; slot != 0 {
		p.values[slot-1] = nil
	}
}

// propGet reads a property with its expected concrete type. A value of a
// different type can only mean corruption of the store and is fatal.
func propGet[T any](n *Node, id propertyID) (T, bool) {
	v := n.props.get(id)
	if v == nil {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("schema: property %s holds %T", propertyNames[id], v))
	}
	return t, true
}

func propSlice[T any](n *Node, id propertyID) []T {
	v, _ := propGet[[]T](n, id)
	return v
}

func propPush[T any](n *Node, id propertyID, item T) {
	n.props.set(id, append(propSlice[T](n, id), item))
}
