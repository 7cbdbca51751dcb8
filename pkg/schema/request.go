package schema

import (
	"encoding/json"
	"fmt"
)

// ActionData is the payload accompanying an ActionRequest; which concrete
// type is meaningful depends on the action. The JSON form is a single-key
// object naming the variant, e.g. {"numericValue": 42}.
type ActionData interface {
	isActionData()
}

// CustomActionData selects one of the node's advertised custom actions.
type CustomActionData int32

// ValueData is the new value for a set-value request.
type ValueData string

// NumericValueData is the new value for a numeric set-value request.
type NumericValueData float64

// ScrollUnitData is the granularity of a directional scroll request.
type ScrollUnitData ScrollUnit

// ScrollHintData refines a scroll-into-view request.
type ScrollHintData ScrollHint

// ScrollToPointData is the target point, in the coordinate space of the
// target node's parent.
type ScrollToPointData Point

// SetScrollOffsetData is the requested scroll offset of the target node.
type SetScrollOffsetData Point

// SetTextSelectionData is the requested selection for a set-text-selection
// request.
type SetTextSelectionData TextSelection

func (CustomActionData) isActionData()     {}
func (ValueData) isActionData()            {}
func (NumericValueData) isActionData()     {}
func (ScrollUnitData) isActionData()       {}
func (ScrollHintData) isActionData()       {}
func (ScrollToPointData) isActionData()    {}
func (SetScrollOffsetData) isActionData()  {}
func (SetTextSelectionData) isActionData() {}

// ActionRequest asks the producer to perform an action on a node. Requests
// flow from the consumer back to the producer through an ActionHandler; the
// producer responds by pushing a TreeUpdate reflecting whatever changed.
type ActionRequest struct {
	Action Action
	Target NodeID
	Data   ActionData
}

func (r ActionRequest) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"action": r.Action,
		"target": r.Target,
	}
	if r.Data != nil {
		key, value := actionDataVariant(r.Data)
		m["data"] = map[string]any{key: value}
	}
	return json.Marshal(m)
}

func actionDataVariant(data ActionData) (string, any) {
	switch data := data.(type) {
	case CustomActionData:
		return "customAction", int32(data)
	case ValueData:
		return "value", string(data)
	case NumericValueData:
		return "numericValue", float64(data)
	case ScrollUnitData:
		return "scrollUnit", ScrollUnit(data)
	case ScrollHintData:
		return "scrollHint", ScrollHint(data)
	case ScrollToPointData:
		return "scrollToPoint", Point(data)
	case SetScrollOffsetData:
		return "setScrollOffset", Point(data)
	case SetTextSelectionData:
		return "setTextSelection", TextSelection(data)
	}
	panic(fmt.Sprintf("schema: unknown action data type %T", data))
}

func (r *ActionRequest) UnmarshalJSON(data []byte) error {
	var aux struct {
		Action Action                     `json:"action"`
		Target NodeID                     `json:"target"`
		Data   map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Action = aux.Action
	r.Target = aux.Target
	r.Data = nil
	if aux.Data == nil {
		return nil
	}
	if len(aux.Data) != 1 {
		return fmt.Errorf("schema: action data must have exactly one variant, got %d", len(aux.Data))
	}
	for key, raw := range aux.Data {
		parsed, err := parseActionData(key, raw)
		if err != nil {
			return err
		}
		r.Data = parsed
	}
	return nil
}

func parseActionData(key string, raw json.RawMessage) (ActionData, error) {
	switch key {
	case "customAction":
		var v int32
		err := json.Unmarshal(raw, &v)
		return CustomActionData(v), err
	case "value":
		var v string
		err := json.Unmarshal(raw, &v)
		return ValueData(v), err
	case "numericValue":
		var v float64
		err := json.Unmarshal(raw, &v)
		return NumericValueData(v), err
	case "scrollUnit":
		var v ScrollUnit
		err := json.Unmarshal(raw, &v)
		return ScrollUnitData(v), err
	case "scrollHint":
		var v ScrollHint
		err := json.Unmarshal(raw, &v)
		return ScrollHintData(v), err
	case "scrollToPoint":
		var v Point
		err := json.Unmarshal(raw, &v)
		return ScrollToPointData(v), err
	case "setScrollOffset":
		var v Point
		err := json.Unmarshal(raw, &v)
		return SetScrollOffsetData(v), err
	case "setTextSelection":
		var v TextSelection
		err := json.Unmarshal(raw, &v)
		return SetTextSelectionData(v), err
	}
	return nil, fmt.Errorf("schema: unknown action data variant %q", key)
}

// ActionHandler receives action requests routed back from a consumer. It
// may be called from any thread; implementations typically queue the
// request for the producer's main loop rather than act inline.
type ActionHandler interface {
	DoAction(request ActionRequest)
}

// ActivationHandler provides the initial tree when a consumer first
// attaches. Returning nil means the tree is not yet available; the producer
// must push it later.
type ActivationHandler interface {
	RequestInitialTree() *TreeUpdate
}

// DeactivationHandler is told when the consumer detaches and updates are no
// longer wanted.
type DeactivationHandler interface {
	DeactivateAccessibility()
}
