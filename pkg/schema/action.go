package schema

// Action is an operation that can be requested on a node. A node advertises
// the actions it supports; consumers route requests back to the producer
// through an ActionHandler. The set is closed and fits in a 32-bit mask.
type Action uint8

const (
	ActionClick Action = iota
	ActionFocus
	ActionBlur
	ActionCollapse
	ActionExpand
	ActionCustomAction
	ActionDecrement
	ActionIncrement
	ActionHideTooltip
	ActionShowTooltip
	ActionReplaceSelectedText
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionScrollUp
	ActionScrollIntoView
	ActionScrollToPoint
	ActionSetScrollOffset
	ActionSetTextSelection
	ActionSetSequentialFocusNavigationStartingPoint
	ActionSetValue
	ActionShowContextMenu

	numActions
)

var actionNames = [numActions]string{
	"click",
	"focus",
	"blur",
	"collapse",
	"expand",
	"customAction",
	"decrement",
	"increment",
	"hideTooltip",
	"showTooltip",
	"replaceSelectedText",
	"scrollDown",
	"scrollLeft",
	"scrollRight",
	"scrollUp",
	"scrollIntoView",
	"scrollToPoint",
	"setScrollOffset",
	"setTextSelection",
	"setSequentialFocusNavigationStartingPoint",
	"setValue",
	"showContextMenu",
}

func (a Action) mask() uint32 {
	return 1 << a
}

func (a Action) String() string {
	if a >= numActions {
		return "click"
	}
	return actionNames[a]
}

func (a Action) MarshalJSON() ([]byte, error) {
	return marshalEnumName(a.String())
}

func (a *Action) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnumName(data)
	if err != nil {
		return err
	}
	for i := Action(0); i < numActions; i++ {
		if actionNames[i] == name {
			*a = i
			return nil
		}
	}
	return errUnknownEnumValue("action", name)
}

func actionMaskToSlice(mask uint32) []Action {
	if mask == 0 {
		return nil
	}
	actions := make([]Action, 0, numActions)
	for a := Action(0); a < numActions; a++ {
		if mask&a.mask() != 0 {
			actions = append(actions, a)
		}
	}
	return actions
}

// CustomAction is an application-defined action advertised alongside the
// built-in set. The id round-trips through ActionRequest data.
type CustomAction struct {
	ID          int32  `json:"id"`
	Description string `json:"description"`
}
