package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingFocus is returned when a serialized tree update omits the focus
// field; every update must state which node has focus.
var ErrMissingFocus = errors.New("schema: tree update missing focus")

// Tree carries tree-wide metadata. It rides along on the update that
// defines (or replaces) the root and on any update that changes the
// metadata.
type Tree struct {
	Root           NodeID `json:"root"`
	AppName        string `json:"appName,omitempty"`
	ToolkitName    string `json:"toolkitName,omitempty"`
	ToolkitVersion string `json:"toolkitVersion,omitempty"`
}

// NewTree returns tree metadata naming root as the root node.
func NewTree(root NodeID) *Tree {
	return &Tree{Root: root}
}

// NodeEntry pairs a node id with its (complete) new state. The JSON form is
// a two-element [id, node] array.
type NodeEntry struct {
	ID   NodeID
	Node *Node
}

func (e NodeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.ID, e.Node})
}

func (e *NodeEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("schema: node entry must be an [id, node] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.ID); err != nil {
		return err
	}
	e.Node = new(Node)
	return json.Unmarshal(pair[1], e.Node)
}

// TreeUpdate is the unit of communication from producer to consumer: a set
// of complete node states, optional tree metadata, and the focused node id.
//
// The nodes may arrive in any order; if an id appears more than once the
// last entry wins. An update is interpreted against the consumer's current
// state: nodes not mentioned are unchanged, nodes that become unreachable
// from the root are removed. Focus is mandatory; producers that have no
// focus to report repeat the current focus (or the root).
type TreeUpdate struct {
	Nodes []NodeEntry
	Tree  *Tree
	Focus NodeID
}

func (u TreeUpdate) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"nodes": u.Nodes,
		"focus": u.Focus,
	}
	if u.Nodes == nil {
		m["nodes"] = []NodeEntry{}
	}
	if u.Tree != nil {
		m["tree"] = u.Tree
	}
	return json.Marshal(m)
}

func (u *TreeUpdate) UnmarshalJSON(data []byte) error {
	var aux struct {
		Nodes []NodeEntry `json:"nodes"`
		Tree  *Tree       `json:"tree"`
		Focus *NodeID     `json:"focus"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Focus == nil {
		return ErrMissingFocus
	}
	u.Nodes = aux.Nodes
	u.Tree = aux.Tree
	u.Focus = *aux.Focus
	return nil
}
