package consumer

import (
	"accesstree/pkg/schema"
)

func nid(lo uint64) schema.NodeID { return schema.NodeID{Lo: lo} }

func entry(id schema.NodeID, node *schema.Node) schema.NodeEntry {
	return schema.NodeEntry{ID: id, Node: node}
}

// Fixture tree used by the navigation tests:
//
//	window (1)
//	├── paragraph (2)
//	│   └── static text (3) "text0"
//	├── generic container (4)
//	│   ├── button (5) "One"
//	│   └── button (6) "Two"
//	├── hidden generic container (7)
//	│   └── button (8) "Three"
//	└── paragraph (9)
//	    └── static text (10) "text3"
//
// Under CommonFilter the filtered children of the window are 2, 5, 6 and 9:
// the containers are spliced out and the hidden subtree is dropped.
var (
	navRootID       = nid(1)
	navParagraph0ID = nid(2)
	navText0ID      = nid(3)
	navContainerID  = nid(4)
	navButton1ID    = nid(5)
	navButton2ID    = nid(6)
	navHiddenID     = nid(7)
	navButton3ID    = nid(8)
	navParagraph3ID = nid(9)
	navText3ID      = nid(10)
)

func navTestUpdate() schema.TreeUpdate {
	root := schema.NewNode(schema.RoleWindow)
	root.SetChildren([]schema.NodeID{navParagraph0ID, navContainerID, navHiddenID, navParagraph3ID})

	paragraph0 := schema.NewNode(schema.RoleParagraph)
	paragraph0.SetChildren([]schema.NodeID{navText0ID})
	text0 := schema.NewNode(schema.RoleStaticText)
	text0.SetValue("text0")

	container := schema.NewNode(schema.RoleGenericContainer)
	container.SetChildren([]schema.NodeID{navButton1ID, navButton2ID})
	button1 := schema.NewNode(schema.RoleButton)
	button1.SetLabel("One")
	button2 := schema.NewNode(schema.RoleButton)
	button2.SetLabel("Two")

	hidden := schema.NewNode(schema.RoleGenericContainer)
	hidden.SetHidden()
	hidden.SetChildren([]schema.NodeID{navButton3ID})
	button3 := schema.NewNode(schema.RoleButton)
	button3.SetLabel("Three")

	paragraph3 := schema.NewNode(schema.RoleParagraph)
	paragraph3.SetChildren([]schema.NodeID{navText3ID})
	text3 := schema.NewNode(schema.RoleStaticText)
	text3.SetValue("text3")

	return schema.TreeUpdate{
		Nodes: []schema.NodeEntry{
			entry(navRootID, root),
			entry(navParagraph0ID, paragraph0),
			entry(navText0ID, text0),
			entry(navContainerID, container),
			entry(navButton1ID, button1),
			entry(navButton2ID, button2),
			entry(navHiddenID, hidden),
			entry(navButton3ID, button3),
			entry(navParagraph3ID, paragraph3),
			entry(navText3ID, text3),
		},
		Tree:  schema.NewTree(navRootID),
		Focus: navRootID,
	}
}

func navTestTree() *Tree {
	return New(navTestUpdate(), true, nil, CommonFilter)
}

func idsEqual(got []schema.NodeID, want []schema.NodeID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
