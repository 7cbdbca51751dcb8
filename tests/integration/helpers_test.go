//go:build integration

// Package integration exercises the full update pipeline: a producer
// writing a JSONL update log, the log validated, recorded to SQLite,
// replayed into a consumer tree, and streamed live over the IPC socket.
//
// Run with: go test -tags=integration ./tests/integration/...
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"accesstree/internal/updatelog"
	"accesstree/pkg/consumer"
	"accesstree/pkg/schema"
)

// TestEnv holds the shared pieces of a pipeline test.
type TestEnv struct {
	T       *testing.T
	TempDir string
	LogPath string
	DBPath  string
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	tempDir := t.TempDir()
	return &TestEnv{
		T:       t,
		TempDir: tempDir,
		LogPath: filepath.Join(tempDir, "updates.jsonl"),
		DBPath:  filepath.Join(tempDir, "updates.db"),
	}
}

// WriteLog writes the updates to the JSONL log file.
func (env *TestEnv) WriteLog(updates []schema.TreeUpdate) {
	env.T.Helper()
	f, err := os.Create(env.LogPath)
	if err != nil {
		env.T.Fatalf("create log: %v", err)
	}
	defer f.Close()
	w := updatelog.NewWriter(f)
	for _, update := range updates {
		if err := w.Write(update); err != nil {
			env.T.Fatalf("write update: %v", err)
		}
	}
}

// openAppend opens the log for appending.
func openAppend(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o600)
}

// ReadLog reads every update back from the JSONL log file.
func (env *TestEnv) ReadLog() []schema.TreeUpdate {
	env.T.Helper()
	f, err := os.Open(env.LogPath)
	if err != nil {
		env.T.Fatalf("open log: %v", err)
	}
	defer f.Close()
	updates, err := updatelog.NewReader(f).ReadAll()
	if err != nil {
		env.T.Fatalf("read log: %v", err)
	}
	return updates
}

// Fixture updates: a window holding a text field that grows a line at a
// time, plus a button the focus moves to at the end.

var (
	rootID   = schema.NodeID{Lo: 1}
	fieldID  = schema.NodeID{Lo: 2}
	buttonID = schema.NodeID{Lo: 3}
	box1ID   = schema.NodeID{Lo: 4}
	box2ID   = schema.NodeID{Lo: 5}
)

func textBox(value string, wordLengths []uint8) *schema.Node {
	n := schema.NewNode(schema.RoleInlineTextBox)
	n.SetValue(value)
	lengths := make([]uint8, len(value))
	for i := range lengths {
		lengths[i] = 1
	}
	n.SetCharacterLengths(lengths)
	n.SetWordLengths(wordLengths)
	return n
}

// editSession returns the update sequence of a short editing session.
func editSession() []schema.TreeUpdate {
	root := schema.NewNode(schema.RoleWindow)
	root.SetChildren([]schema.NodeID{fieldID, buttonID})
	field := schema.NewNode(schema.RoleMultilineTextField)
	field.SetChildren([]schema.NodeID{box1ID})
	button := schema.NewNode(schema.RoleButton)
	button.SetLabel("Send")
	button.AddAction(schema.ActionClick)

	initial := schema.TreeUpdate{
		Nodes: []schema.NodeEntry{
			{ID: rootID, Node: root},
			{ID: fieldID, Node: field},
			{ID: buttonID, Node: button},
			{ID: box1ID, Node: textBox("hello\n", []uint8{6})},
		},
		Tree:  schema.NewTree(rootID),
		Focus: fieldID,
	}

	grownField := schema.NewNode(schema.RoleMultilineTextField)
	grownField.SetChildren([]schema.NodeID{box1ID, box2ID})
	secondLine := schema.TreeUpdate{
		Nodes: []schema.NodeEntry{
			{ID: fieldID, Node: grownField},
			{ID: box2ID, Node: textBox("world", []uint8{5})},
		},
		Focus: fieldID,
	}

	focusButton := schema.TreeUpdate{Focus: buttonID}

	return []schema.TreeUpdate{initial, secondLine, focusButton}
}

// replay folds the updates into a fresh consumer tree.
func replay(t *testing.T, updates []schema.TreeUpdate, handler consumer.ChangeHandler) *consumer.Tree {
	t.Helper()
	if len(updates) == 0 {
		t.Fatal("no updates to replay")
	}
	tree := consumer.New(updates[0], true, nil, nil)
	for _, update := range updates[1:] {
		tree.UpdateAndProcessChanges(update, handler)
	}
	return tree
}

func AssertEqual[T comparable](t *testing.T, expected, actual T, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}
