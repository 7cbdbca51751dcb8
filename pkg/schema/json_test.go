package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNodeJSONRoundTrip(t *testing.T) {
	n := NewNode(RoleTextField)
	n.AddAction(ActionFocus)
	n.AddAction(ActionSetValue)
	n.SetReadOnly()
	n.SetLabel("Name")
	n.SetValue("Ada")
	n.SetChildren([]NodeID{{Lo: 2}, {Hi: 1, Lo: 0}})
	n.SetCharacterLengths([]uint8{1, 1, 1})
	n.SetCharacterPositions([]float32{0, 8, 16})
	n.SetNumericValue(3.5)
	n.SetLevel(2)
	n.SetToggled(ToggledMixed)
	n.SetTextDirection(TextDirectionLeftToRight)
	n.SetTransform(Affine{1, 0, 0, 1, 10, 20})
	n.SetBounds(Rect{X0: 0, Y0: 0, X1: 100, Y1: 24})
	n.SetTextSelection(TextSelection{
		Anchor: TextPosition{Node: NodeID{Lo: 2}, CharacterIndex: 0},
		Focus:  TextPosition{Node: NodeID{Lo: 2}, CharacterIndex: 3},
	})
	n.SetCustomActions([]CustomAction{{ID: 1, Description: "archive"}})

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Node
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !n.Equal(&decoded) {
		t.Errorf("round trip changed the node\n  json: %s", data)
	}
}

func TestNodeJSONFormat(t *testing.T) {
	n := NewNode(RoleButton)
	n.SetHidden()
	n.SetCharacterLengths([]uint8{2, 3})

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"role":"button"`, `"hidden":true`, `"characterLengths":[2,3]`} {
		if !strings.Contains(s, want) {
			t.Errorf("marshaled node %s missing %s", s, want)
		}
	}
}

func TestNodeJSONRejectsUnknownField(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{"role":"button","bogus":1}`), &n)
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("unmarshal with unknown field: %v", err)
	}
}

func TestTreeUpdateJSON(t *testing.T) {
	root := NewNode(RoleWindow)
	root.SetChildren([]NodeID{{Lo: 2}})
	child := NewNode(RoleButton)

	u := TreeUpdate{
		Nodes: []NodeEntry{
			{ID: NodeID{Lo: 1}, Node: root},
			{ID: NodeID{Lo: 2}, Node: child},
		},
		Tree:  NewTree(NodeID{Lo: 1}),
		Focus: NodeID{Lo: 2},
	}
	data, err := json.Marshal(&u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"focus":"2"`) {
		t.Errorf("update JSON missing focus: %s", data)
	}

	var decoded TreeUpdate
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Nodes) != 2 || decoded.Nodes[0].ID != (NodeID{Lo: 1}) {
		t.Fatalf("decoded nodes wrong: %+v", decoded.Nodes)
	}
	if decoded.Tree == nil || decoded.Tree.Root != (NodeID{Lo: 1}) {
		t.Errorf("decoded tree wrong: %+v", decoded.Tree)
	}
	if decoded.Focus != (NodeID{Lo: 2}) {
		t.Errorf("decoded focus = %v", decoded.Focus)
	}
	if !decoded.Nodes[0].Node.Equal(root) {
		t.Error("decoded root differs")
	}
}

func TestTreeUpdateRequiresFocus(t *testing.T) {
	var u TreeUpdate
	err := json.Unmarshal([]byte(`{"nodes":[]}`), &u)
	if !errors.Is(err, ErrMissingFocus) {
		t.Errorf("unmarshal without focus: %v", err)
	}
}

func TestActionRequestJSON(t *testing.T) {
	cases := []struct {
		name string
		req  ActionRequest
		want string
	}{
		{
			name: "no data",
			req:  ActionRequest{Action: ActionClick, Target: NodeID{Lo: 5}},
			want: `"action":"click"`,
		},
		{
			name: "numeric value",
			req: ActionRequest{
				Action: ActionSetValue,
				Target: NodeID{Lo: 5},
				Data:   NumericValueData(42),
			},
			want: `"numericValue":42`,
		},
		{
			name: "scroll to point",
			req: ActionRequest{
				Action: ActionScrollToPoint,
				Target: NodeID{Lo: 5},
				Data:   ScrollToPointData{X: 1, Y: 2},
			},
			want: `"scrollToPoint"`,
		},
		{
			name: "text selection",
			req: ActionRequest{
				Action: ActionSetTextSelection,
				Target: NodeID{Lo: 5},
				Data: SetTextSelectionData{
					Anchor: TextPosition{Node: NodeID{Lo: 6}},
					Focus:  TextPosition{Node: NodeID{Lo: 6}, CharacterIndex: 2},
				},
			},
			want: `"characterIndex":2`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.req)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if !strings.Contains(string(data), tc.want) {
				t.Errorf("marshaled request %s missing %s", data, tc.want)
			}
			var decoded ActionRequest
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if decoded.Action != tc.req.Action || decoded.Target != tc.req.Target {
				t.Errorf("decoded request = %+v", decoded)
			}
			if decoded.Data != tc.req.Data {
				t.Errorf("decoded data = %#v, want %#v", decoded.Data, tc.req.Data)
			}
		})
	}
}
