package schema

import (
	"encoding/json"
	"fmt"
)

// The closed sub-enums below refine particular properties. Each serializes
// as its camelCase name.

func marshalEnumName(name string) ([]byte, error) {
	return json.Marshal(name)
}

func unmarshalEnumName(data []byte) (string, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return "", err
	}
	return name, nil
}

func errUnknownEnumValue(kind, name string) error {
	return fmt.Errorf("schema: unknown %s %q", kind, name)
}

func enumIndex(kind string, names []string, name string) (uint8, error) {
	for i, n := range names {
		if n == name {
			return uint8(i), nil
		}
	}
	return 0, errUnknownEnumValue(kind, name)
}

func enumString(names []string, v uint8) string {
	if int(v) >= len(names) {
		return names[0]
	}
	return names[v]
}

func unmarshalEnum(kind string, names []string, data []byte) (uint8, error) {
	name, err := unmarshalEnumName(data)
	if err != nil {
		return 0, err
	}
	return enumIndex(kind, names, name)
}

// Orientation of a scrollbar, slider, splitter or similar control.
type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

var orientationNames = []string{"horizontal", "vertical"}

func (v Orientation) String() string { return enumString(orientationNames, uint8(v)) }

func (v Orientation) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *Orientation) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("orientation", orientationNames, data)
	*v = Orientation(i)
	return err
}

// TextDirection is the layout direction of a text run.
type TextDirection uint8

const (
	TextDirectionLeftToRight TextDirection = iota
	TextDirectionRightToLeft
	TextDirectionTopToBottom
	TextDirectionBottomToTop
)

var textDirectionNames = []string{"leftToRight", "rightToLeft", "topToBottom", "bottomToTop"}

func (v TextDirection) String() string { return enumString(textDirectionNames, uint8(v)) }

func (v TextDirection) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *TextDirection) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("text direction", textDirectionNames, data)
	*v = TextDirection(i)
	return err
}

// Invalid indicates that a node's value is invalid, and how.
type Invalid uint8

const (
	InvalidTrue Invalid = iota
	InvalidGrammar
	InvalidSpelling
)

var invalidNames = []string{"true", "grammar", "spelling"}

func (v Invalid) String() string { return enumString(invalidNames, uint8(v)) }

func (v Invalid) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *Invalid) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("invalid state", invalidNames, data)
	*v = Invalid(i)
	return err
}

// Toggled is the state of a check box, switch, toggle button or similar.
type Toggled uint8

const (
	ToggledFalse Toggled = iota
	ToggledTrue
	ToggledMixed
)

var toggledNames = []string{"false", "true", "mixed"}

func (v Toggled) String() string { return enumString(toggledNames, uint8(v)) }

func (v Toggled) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *Toggled) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("toggled state", toggledNames, data)
	*v = Toggled(i)
	return err
}

// SortDirection of a table column or row header.
type SortDirection uint8

const (
	SortDirectionAscending SortDirection = iota
	SortDirectionDescending
	SortDirectionOther
)

var sortDirectionNames = []string{"ascending", "descending", "other"}

func (v SortDirection) String() string { return enumString(sortDirectionNames, uint8(v)) }

func (v SortDirection) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *SortDirection) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("sort direction", sortDirectionNames, data)
	*v = SortDirection(i)
	return err
}

// AriaCurrent mirrors the aria-current attribute.
type AriaCurrent uint8

const (
	AriaCurrentFalse AriaCurrent = iota
	AriaCurrentTrue
	AriaCurrentPage
	AriaCurrentStep
	AriaCurrentLocation
	AriaCurrentDate
	AriaCurrentTime
)

var ariaCurrentNames = []string{"false", "true", "page", "step", "location", "date", "time"}

func (v AriaCurrent) String() string { return enumString(ariaCurrentNames, uint8(v)) }

func (v AriaCurrent) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *AriaCurrent) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("aria-current", ariaCurrentNames, data)
	*v = AriaCurrent(i)
	return err
}

// AutoComplete describes the completion behavior of an editable control.
type AutoComplete uint8

const (
	AutoCompleteInline AutoComplete = iota
	AutoCompleteList
	AutoCompleteBoth
)

var autoCompleteNames = []string{"inline", "list", "both"}

func (v AutoComplete) String() string { return enumString(autoCompleteNames, uint8(v)) }

func (v AutoComplete) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *AutoComplete) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("auto-complete", autoCompleteNames, data)
	*v = AutoComplete(i)
	return err
}

// Live is the politeness level of a live region.
type Live uint8

const (
	LiveOff Live = iota
	LivePolite
	LiveAssertive
)

var liveNames = []string{"off", "polite", "assertive"}

func (v Live) String() string { return enumString(liveNames, uint8(v)) }

func (v Live) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *Live) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("live setting", liveNames, data)
	*v = Live(i)
	return err
}

// HasPopup describes the kind of popup a node triggers.
type HasPopup uint8

const (
	HasPopupMenu HasPopup = iota
	HasPopupListbox
	HasPopupTree
	HasPopupGrid
	HasPopupDialog
)

var hasPopupNames = []string{"menu", "listbox", "tree", "grid", "dialog"}

func (v HasPopup) String() string { return enumString(hasPopupNames, uint8(v)) }

func (v HasPopup) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *HasPopup) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("popup kind", hasPopupNames, data)
	*v = HasPopup(i)
	return err
}

// ListStyle is the marker style of a list.
type ListStyle uint8

const (
	ListStyleCircle ListStyle = iota
	ListStyleDisc
	ListStyleImage
	ListStyleNumeric
	ListStyleSquare
	ListStyleOther
)

var listStyleNames = []string{"circle", "disc", "image", "numeric", "square", "other"}

func (v ListStyle) String() string { return enumString(listStyleNames, uint8(v)) }

func (v ListStyle) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *ListStyle) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("list style", listStyleNames, data)
	*v = ListStyle(i)
	return err
}

// TextAlign is the horizontal alignment of a block of text.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

var textAlignNames = []string{"left", "right", "center", "justify"}

func (v TextAlign) String() string { return enumString(textAlignNames, uint8(v)) }

func (v TextAlign) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *TextAlign) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("text align", textAlignNames, data)
	*v = TextAlign(i)
	return err
}

// VerticalOffset marks subscript or superscript text.
type VerticalOffset uint8

const (
	VerticalOffsetSubscript VerticalOffset = iota
	VerticalOffsetSuperscript
)

var verticalOffsetNames = []string{"subscript", "superscript"}

func (v VerticalOffset) String() string { return enumString(verticalOffsetNames, uint8(v)) }

func (v VerticalOffset) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *VerticalOffset) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("vertical offset", verticalOffsetNames, data)
	*v = VerticalOffset(i)
	return err
}

// TextDecoration is the stroke style of an underline, overline or
// strikethrough.
type TextDecoration uint8

const (
	TextDecorationSolid TextDecoration = iota
	TextDecorationDotted
	TextDecorationDashed
	TextDecorationDouble
	TextDecorationWavy
)

var textDecorationNames = []string{"solid", "dotted", "dashed", "double", "wavy"}

func (v TextDecoration) String() string { return enumString(textDecorationNames, uint8(v)) }

func (v TextDecoration) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *TextDecoration) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("text decoration", textDecorationNames, data)
	*v = TextDecoration(i)
	return err
}

// ScrollUnit is the granularity of a directional scroll action.
type ScrollUnit uint8

const (
	ScrollUnitItem ScrollUnit = iota
	ScrollUnitPage
)

var scrollUnitNames = []string{"item", "page"}

func (v ScrollUnit) String() string { return enumString(scrollUnitNames, uint8(v)) }

func (v ScrollUnit) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *ScrollUnit) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("scroll unit", scrollUnitNames, data)
	*v = ScrollUnit(i)
	return err
}

// ScrollHint suggests where the target should end up after a scroll-into-view
// action.
type ScrollHint uint8

const (
	ScrollHintTopLeft ScrollHint = iota
	ScrollHintBottomRight
	ScrollHintTopEdge
	ScrollHintBottomEdge
	ScrollHintLeftEdge
	ScrollHintRightEdge
)

var scrollHintNames = []string{"topLeft", "bottomRight", "topEdge", "bottomEdge", "leftEdge", "rightEdge"}

func (v ScrollHint) String() string { return enumString(scrollHintNames, uint8(v)) }

func (v ScrollHint) MarshalJSON() ([]byte, error) { return marshalEnumName(v.String()) }

func (v *ScrollHint) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum("scroll hint", scrollHintNames, data)
	*v = ScrollHint(i)
	return err
}
