package updatelog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"accesstree/pkg/schema"
)

// Tailer follows a JSONL update log, emitting existing updates first and
// then new ones as the file grows. Only complete lines are consumed; a
// partially written line is picked up once its newline arrives.
type Tailer struct {
	path      string
	fsWatcher *fsnotify.Watcher

	updates chan schema.TreeUpdate
	errors  chan error

	offset int64
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewTailer creates a tailer for the given log file. The file does not
// need to exist yet; its directory does.
func NewTailer(path string) (*Tailer, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Tailer{
		path:      absPath,
		fsWatcher: fsWatcher,
		updates:   make(chan schema.TreeUpdate, 100),
		errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}, nil
}

// Updates returns the channel of decoded updates.
func (t *Tailer) Updates() <-chan schema.TreeUpdate {
	return t.updates
}

// Errors returns the channel of errors.
func (t *Tailer) Errors() <-chan error {
	return t.errors
}

// Start begins following the file. The directory is watched rather than
// the file so creation and rotation are observed.
func (t *Tailer) Start() error {
	if err := t.fsWatcher.Add(filepath.Dir(t.path)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	t.readAvailable()

	t.wg.Add(1)
	go t.eventLoop()
	return nil
}

// Close stops the tailer. The update channel is closed once the event
// loop drains.
func (t *Tailer) Close() error {
	close(t.done)
	err := t.fsWatcher.Close()
	t.wg.Wait()
	close(t.updates)
	return err
}

func (t *Tailer) eventLoop() {
	defer t.wg.Done()
	for {
		select {
		case <-t.done:
			return
		case event, ok := <-t.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != t.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			t.readAvailable()
		case err, ok := <-t.fsWatcher.Errors:
			if !ok {
				return
			}
			t.reportError(err)
		}
	}
}

// readAvailable consumes the complete lines appended since the last read.
func (t *Tailer) readAvailable() {
	f, err := os.Open(t.path)
	if err != nil {
		if !os.IsNotExist(err) {
			t.reportError(err)
		}
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		t.reportError(err)
		return
	}
	// Truncation restarts the stream.
	if info.Size() < t.offset {
		t.offset = 0
	}
	if info.Size() == t.offset {
		return
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		t.reportError(err)
		return
	}
	data := make([]byte, info.Size()-t.offset)
	if _, err := io.ReadFull(f, data); err != nil {
		t.reportError(err)
		return
	}

	for {
		newline := bytes.IndexByte(data, '\n')
		if newline < 0 {
			return
		}
		line := data[:newline]
		data = data[newline+1:]
		t.offset += int64(newline + 1)

		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var update schema.TreeUpdate
		if err := json.Unmarshal(line, &update); err != nil {
			t.reportError(fmt.Errorf("decode update at offset %d: %w", t.offset, err))
			continue
		}
		select {
		case t.updates <- update:
		case <-t.done:
			return
		}
	}
}

func (t *Tailer) reportError(err error) {
	select {
	case t.errors <- err:
	default:
	}
}
