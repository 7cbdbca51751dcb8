package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"accesstree/internal/ipc"
	"accesstree/internal/schemavalidation"
	"accesstree/internal/store"
	"accesstree/internal/updatelog"
	"accesstree/pkg/consumer"
	"accesstree/pkg/schema"
)

// cmdValidate checks every line of a JSONL update log against the schema.
func cmdValidate(path string) {
	f, err := os.Open(path)
	if err != nil {
		fatal("open log: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)

	line := 0
	invalid := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}
		if err := schemavalidation.Validate(text); err != nil {
			invalid++
			fmt.Printf("line %d: %v\n", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fatal("read log: %v", err)
	}

	if invalid > 0 {
		fmt.Printf("%d of %d lines invalid\n", invalid, line)
		os.Exit(1)
	}
	fmt.Printf("%d lines valid\n", line)
}

// cmdDump applies a full log and prints the final tree.
func cmdDump(path string) {
	updates := readLog(path)
	tree := buildTree(updates, nil)

	tree.Read(func(state *consumer.TreeState) {
		printSubtree(state.Root(), 0)
		if focus, ok := state.Focus(); ok {
			fmt.Printf("\nfocus: %s\n", focus.ID())
		} else {
			fmt.Println("\nfocus: none")
		}
	})
}

// cmdReplay applies a log update by update, printing the change events
// each one produces. With follow it stays attached to the file.
func cmdReplay(path string, follow bool) {
	handler := &printHandler{}

	if !follow {
		updates := readLog(path)
		if len(updates) == 0 {
			fatal("log is empty")
		}
		tree := buildTree(updates[:1], handler)
		for _, update := range updates[1:] {
			tree.UpdateAndProcessChanges(update, handler)
		}
		return
	}

	tailer, err := updatelog.NewTailer(path)
	if err != nil {
		fatal("tail log: %v", err)
	}
	if err := tailer.Start(); err != nil {
		fatal("tail log: %v", err)
	}
	defer tailer.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	var tree *consumer.Tree
	for {
		select {
		case update := <-tailer.Updates():
			if tree == nil {
				tree = buildTree([]schema.TreeUpdate{update}, handler)
				continue
			}
			tree.UpdateAndProcessChanges(update, handler)
		case err := <-tailer.Errors():
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		case <-interrupt:
			return
		}
	}
}

// cmdRecord copies a JSONL log into the SQLite update database.
func cmdRecord(path string) {
	cfg := loadConfig()
	database := *dbPath
	if database == "" {
		database = cfg.Database
	}

	updates := readLog(path)

	db, err := store.Open(database)
	if err != nil {
		fatal("open database: %v", err)
	}
	defer db.Close()

	for _, update := range updates {
		if _, err := db.Append(update); err != nil {
			fatal("append update: %v", err)
		}
	}
	fmt.Printf("recorded %d updates to %s\n", len(updates), database)
}

// cmdServe listens on the unix socket and prints the change events the
// connected producer's updates generate.
func cmdServe() {
	cfg := loadConfig()
	logger := newLogger(cfg)

	socket := *socketPath
	if socket == "" {
		socket = cfg.Socket
	}

	server := ipc.NewServer(ipc.ServerConfig{
		SocketPath: socket,
		Logger:     logger,
	}, &printHandler{})
	if err := server.Start(); err != nil {
		fatal("start server: %v", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-interrupt

	if err := server.Stop(); err != nil {
		fatal("stop server: %v", err)
	}
}

func readLog(path string) []schema.TreeUpdate {
	f, err := os.Open(path)
	if err != nil {
		fatal("open log: %v", err)
	}
	defer f.Close()

	updates, err := updatelog.NewReader(f).ReadAll()
	if err != nil {
		fatal("read log: %v", err)
	}
	return updates
}

// buildTree constructs a tree from the first update and applies the rest.
// Malformed updates are fatal; the message names the violation.
func buildTree(updates []schema.TreeUpdate, handler consumer.ChangeHandler) *consumer.Tree {
	if len(updates) == 0 {
		fatal("log is empty")
	}
	defer func() {
		if r := recover(); r != nil {
			fatal("%v", r)
		}
	}()
	tree := consumer.New(updates[0], true, nil, nil)
	if handler != nil {
		tree.Read(func(state *consumer.TreeState) {
			handler.NodeAdded(state.Root())
		})
	}
	for _, update := range updates[1:] {
		if handler == nil {
			tree.Update(update)
			continue
		}
		tree.UpdateAndProcessChanges(update, handler)
	}
	return tree
}

func printSubtree(node consumer.Node, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), describe(node))
	children := node.Children()
	for {
		child, ok := children.Next()
		if !ok {
			break
		}
		printSubtree(child, depth+1)
	}
}

func describe(node consumer.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", node.Role(), node.ID())
	if label, ok := node.Label(); ok {
		fmt.Fprintf(&b, " %q", label)
	}
	if value, ok := node.Value(); ok {
		fmt.Fprintf(&b, " value=%q", value)
	}
	if node.IsFocused() {
		b.WriteString(" (focused)")
	}
	if node.IsHidden() {
		b.WriteString(" (hidden)")
	}
	return b.String()
}

func describeDetached(node *consumer.DetachedNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", node.Data().Role(), node.ID())
	if label, ok := node.Data().Label(); ok {
		fmt.Fprintf(&b, " %q", label)
	}
	return b.String()
}

// printHandler writes one line per change event.
type printHandler struct{}

func (h *printHandler) NodeAdded(node consumer.Node) {
	fmt.Printf("+ %s\n", describe(node))
}

func (h *printHandler) NodeUpdated(oldNode *consumer.DetachedNode, newNode consumer.Node) {
	fmt.Printf("~ %s\n", describe(newNode))
}

func (h *printHandler) FocusMoved(oldNode *consumer.DetachedNode, newNode *consumer.Node) {
	if newNode == nil {
		fmt.Println("! focus lost")
		return
	}
	fmt.Printf("! focus -> %s\n", describe(*newNode))
}

func (h *printHandler) NodeRemoved(node *consumer.DetachedNode) {
	fmt.Printf("- %s\n", describeDetached(node))
}
