package schema

import (
	"encoding/json"
	"fmt"
)

// JSON form of a node: role, an actions array, one boolean field per set
// flag, and one field per set property, all camelCase. Length slices are
// arrays of numbers, node ids decimal strings, transforms 6-element arrays.
// Cleared (tombstoned) properties do not serialize, so the wire form of a
// node is independent of its mutation history.

func (n *Node) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 8)
	m["role"] = n.role
	if n.actions != 0 {
		m["actions"] = actionMaskToSlice(n.actions)
	}
	for f := flag(0); f < numFlags; f++ {
		if n.hasFlag(f) {
			m[flagNames[f]] = true
		}
	}
	for id := propertyID(0); id < numProperties; id++ {
		v := n.props.get(id)
		if v == nil {
			continue
		}
		if lengths, ok := v.([]uint8); ok {
			// []uint8 would otherwise serialize as base64.
			counts := make([]uint32, len(lengths))
			for i, l := range lengths {
				counts[i] = uint32(l)
			}
			v = counts
		}
		m[propertyNames[id]] = v
	}
	return json.Marshal(m)
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	roleData, ok := fields["role"]
	if !ok {
		return fmt.Errorf("schema: node missing role")
	}
	var role Role
	if err := json.Unmarshal(roleData, &role); err != nil {
		return err
	}
	*n = Node{role: role}
	for name, raw := range fields {
		switch name {
		case "role":
		case "actions":
			var actions []Action
			if err := json.Unmarshal(raw, &actions); err != nil {
				return err
			}
			for _, a := range actions {
				n.AddAction(a)
			}
		default:
			if f, ok := flagsByName[name]; ok {
				var set bool
				if err := json.Unmarshal(raw, &set); err != nil {
					return err
				}
				if set {
					n.setFlag(f)
				}
				continue
			}
			id, ok := propertiesByName[name]
			if !ok {
				return fmt.Errorf("schema: unknown node field %q", name)
			}
			value, err := unmarshalProperty(id, raw)
			if err != nil {
				return fmt.Errorf("schema: property %s: %w", name, err)
			}
			n.props.set(id, value)
		}
	}
	return nil
}

func decodeInto[T any](raw json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func unmarshalProperty(id propertyID, raw json.RawMessage) (any, error) {
	switch {
	case id <= propRadioGroup:
		return decodeInto[[]NodeID](raw)
	case id <= propPopupFor:
		return decodeInto[NodeID](raw)
	case id <= propColumnIndexText:
		return decodeInto[string](raw)
	case id <= propFontWeight:
		return decodeInto[float64](raw)
	case id <= propPositionInSet:
		return decodeInto[int](raw)
	case id <= propForegroundColor:
		return decodeInto[uint32](raw)
	case id <= propUnderline:
		return decodeInto[TextDecoration](raw)
	case id <= propWordLengths:
		var counts []uint32
		if err := json.Unmarshal(raw, &counts); err != nil {
			return nil, err
		}
		lengths := make([]uint8, len(counts))
		for i, c := range counts {
			if c > 0xFF {
				return nil, fmt.Errorf("length %d out of range", c)
			}
			lengths[i] = uint8(c)
		}
		return lengths, nil
	case id <= propCharacterWidths:
		return decodeInto[[]float32](raw)
	case id <= propSelected:
		return decodeInto[bool](raw)
	case id == propTransform:
		return decodeInto[Affine](raw)
	case id == propBounds:
		return decodeInto[Rect](raw)
	case id == propTextSelection:
		return decodeInto[TextSelection](raw)
	case id == propCustomActions:
		return decodeInto[[]CustomAction](raw)
	}
	return unmarshalEnumProperty(id, raw)
}

func unmarshalEnumProperty(id propertyID, raw json.RawMessage) (any, error) {
	switch id {
	case propInvalid:
		return decodeInto[Invalid](raw)
	case propToggled:
		return decodeInto[Toggled](raw)
	case propLive:
		return decodeInto[Live](raw)
	case propTextDirection:
		return decodeInto[TextDirection](raw)
	case propOrientation:
		return decodeInto[Orientation](raw)
	case propSortDirection:
		return decodeInto[SortDirection](raw)
	case propAriaCurrent:
		return decodeInto[AriaCurrent](raw)
	case propAutoComplete:
		return decodeInto[AutoComplete](raw)
	case propHasPopup:
		return decodeInto[HasPopup](raw)
	case propListStyle:
		return decodeInto[ListStyle](raw)
	case propTextAlign:
		return decodeInto[TextAlign](raw)
	case propVerticalOffset:
		return decodeInto[VerticalOffset](raw)
	}
	return nil, fmt.Errorf("unhandled property id %d", id)
}
