package updatelog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"accesstree/pkg/schema"
)

func sampleUpdate(focusLo uint64) schema.TreeUpdate {
	root := schema.NewNode(schema.RoleWindow)
	return schema.TreeUpdate{
		Nodes: []schema.NodeEntry{{ID: schema.NodeID{Lo: 1}, Node: root}},
		Tree:  schema.NewTree(schema.NodeID{Lo: 1}),
		Focus: schema.NodeID{Lo: focusLo},
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := uint64(1); i <= 3; i++ {
		if err := w.Write(sampleUpdate(i)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Fatalf("wrote %d lines, want 3", got)
	}

	updates, err := NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(updates) != 3 || updates[0].Focus.Lo != 1 || updates[2].Focus.Lo != 3 {
		t.Errorf("updates = %+v", updates)
	}
}

func TestReaderSkipsBlankLinesAndReportsPosition(t *testing.T) {
	input := `{"nodes":[],"focus":"1"}` + "\n\n" + `{broken` + "\n"
	r := NewReader(strings.NewReader(input))

	if _, err := r.Next(); err != nil {
		t.Fatalf("first update: %v", err)
	}
	_, err := r.Next()
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error = %v, want line 3 decode failure", err)
	}
}

func TestReaderEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next on empty input = %v, want io.EOF", err)
	}
}

func waitForUpdate(t *testing.T, tailer *Tailer) schema.TreeUpdate {
	t.Helper()
	select {
	case update, ok := <-tailer.Updates():
		if !ok {
			t.Fatal("update channel closed")
		}
		return update
	case err := <-tailer.Errors():
		t.Fatalf("tailer error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for update")
	}
	return schema.TreeUpdate{}
}

func TestTailer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "updates.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	defer f.Close()
	w := NewWriter(f)
	if err := w.Write(sampleUpdate(1)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	tailer, err := NewTailer(path)
	if err != nil {
		t.Fatalf("NewTailer: %v", err)
	}
	if err := tailer.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer tailer.Close()

	// Existing content is emitted first.
	if got := waitForUpdate(t, tailer); got.Focus.Lo != 1 {
		t.Errorf("first update focus = %v, want 1", got.Focus)
	}

	// Appends show up as they land.
	if err := w.Write(sampleUpdate(2)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := waitForUpdate(t, tailer); got.Focus.Lo != 2 {
		t.Errorf("second update focus = %v, want 2", got.Focus)
	}
}

func TestTailerIgnoresPartialLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "updates.jsonl")
	if err := os.WriteFile(path, []byte(`{"nodes":[],"focus":"7"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tailer, err := NewTailer(path)
	if err != nil {
		t.Fatalf("NewTailer: %v", err)
	}
	if err := tailer.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer tailer.Close()

	select {
	case update := <-tailer.Updates():
		t.Fatalf("got update %+v from a line with no newline", update)
	case <-time.After(100 * time.Millisecond):
	}

	// Completing the line releases the update.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Write([]byte("\n")); err != nil {
		t.Fatalf("append newline: %v", err)
	}
	f.Close()

	if got := waitForUpdate(t, tailer); got.Focus.Lo != 7 {
		t.Errorf("update focus = %v, want 7", got.Focus)
	}
}
