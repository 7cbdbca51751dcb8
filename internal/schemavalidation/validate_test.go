package schemavalidation

import (
	"encoding/json"
	"testing"

	"accesstree/pkg/schema"
)

func TestValidateSerializedUpdate(t *testing.T) {
	root := schema.NewNode(schema.RoleWindow)
	root.SetChildren([]schema.NodeID{{Lo: 2}})
	button := schema.NewNode(schema.RoleButton)
	button.SetLabel("OK")
	button.AddAction(schema.ActionClick)

	update := schema.TreeUpdate{
		Nodes: []schema.NodeEntry{
			{ID: schema.NodeID{Lo: 1}, Node: root},
			{ID: schema.NodeID{Lo: 2}, Node: button},
		},
		Tree:  schema.NewTree(schema.NodeID{Lo: 1}),
		Focus: schema.NodeID{Lo: 2},
	}
	doc, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := Validate(doc); err != nil {
		t.Errorf("Validate rejected a canonical update: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing focus", `{"nodes": []}`},
		{"missing nodes", `{"focus": "1"}`},
		{"non-numeric id", `{"nodes": [], "focus": "abc"}`},
		{"entry not a pair", `{"nodes": [["1"]], "focus": "1"}`},
		{"node without role", `{"nodes": [["1", {}]], "focus": "1"}`},
		{"tree without root", `{"nodes": [], "tree": {}, "focus": "1"}`},
		{"unknown top-level field", `{"nodes": [], "focus": "1", "extra": true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate([]byte(tc.doc)); err == nil {
				t.Errorf("Validate accepted %s", tc.doc)
			}
		})
	}
}
