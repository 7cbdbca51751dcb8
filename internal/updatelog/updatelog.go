// Package updatelog reads and writes JSONL streams of tree updates: one
// serialized TreeUpdate per line. The Tailer follows a growing log file and
// emits updates as they are appended.
package updatelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"accesstree/pkg/schema"
)

// maxLineSize bounds a single serialized update. Large trees serialize to
// long lines.
const maxLineSize = 16 << 20

// Writer appends updates to a JSONL stream.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one update as a single line.
func (w *Writer) Write(update schema.TreeUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	payload = append(payload, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.Write(payload); err != nil {
		return fmt.Errorf("write update: %w", err)
	}
	return nil
}

// Reader decodes updates from a JSONL stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxLineSize)
	return &Reader{scanner: scanner}
}

// Next returns the next update. It returns io.EOF at the end of the
// stream. Blank lines are skipped.
func (r *Reader) Next() (schema.TreeUpdate, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var update schema.TreeUpdate
		if err := json.Unmarshal(line, &update); err != nil {
			return schema.TreeUpdate{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return update, nil
	}
	if err := r.scanner.Err(); err != nil {
		return schema.TreeUpdate{}, fmt.Errorf("line %d: %w", r.line+1, err)
	}
	return schema.TreeUpdate{}, io.EOF
}

// ReadAll decodes the remaining updates.
func (r *Reader) ReadAll() ([]schema.TreeUpdate, error) {
	var updates []schema.TreeUpdate
	for {
		update, err := r.Next()
		if err == io.EOF {
			return updates, nil
		}
		if err != nil {
			return updates, err
		}
		updates = append(updates, update)
	}
}
