// Package multitree composes the id spaces of several producers into one.
// Each producer gets a slot; its 64-bit local ids are mapped into the
// composed space by placing the slot in the high half of the NodeID. The
// composed updates can then feed a single consumer tree, and action
// requests coming back out of it resolve to the producer that owns the
// target.
package multitree

import (
	"fmt"
	"sync"

	"accesstree/pkg/schema"
)

// Composer allocates source slots and resolves composed ids back to their
// producers. Safe for concurrent use.
type Composer struct {
	mu      sync.RWMutex
	sources map[uint64]*Source
	host    *Source
	next    uint64
}

func NewComposer() *Composer {
	return &Composer{
		sources: make(map[uint64]*Source),
		next:    1,
	}
}

// Source is one producer's slot in the composed id space.
type Source struct {
	composer *Composer
	slot     uint64
}

// AddSource allocates the next slot. The first source added is the host:
// only its tree metadata survives rewriting.
func (c *Composer) AddSource() *Source {
	c.mu.Lock()
	defer c.mu.Unlock()
	source := &Source{composer: c, slot: c.next}
	c.sources[source.slot] = source
	c.next++
	if c.host == nil {
		c.host = source
	}
	return source
}

// RemoveSource retires a slot. Composed ids carrying it stop resolving;
// the slot is never reused.
func (c *Composer) RemoveSource(source *Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sources, source.slot)
	if c.host == source {
		c.host = nil
	}
}

// Resolve maps a composed id back to its source and producer-local id.
func (c *Composer) Resolve(global schema.NodeID) (*Source, schema.NodeID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	source, ok := c.sources[global.Hi]
	if !ok {
		return nil, schema.NodeID{}, false
	}
	return source, schema.NodeID{Lo: global.Lo}, true
}

// RouteAction resolves the request target and returns the request rewritten
// into the owning producer's local id space.
func (c *Composer) RouteAction(req schema.ActionRequest) (*Source, schema.ActionRequest, bool) {
	source, local, ok := c.Resolve(req.Target)
	if !ok {
		return nil, schema.ActionRequest{}, false
	}
	req.Target = local
	if data, ok := req.Data.(schema.SetTextSelectionData); ok {
		data.Anchor.Node = schema.NodeID{Lo: data.Anchor.Node.Lo}
		data.Focus.Node = schema.NodeID{Lo: data.Focus.Node.Lo}
		req.Data = data
	}
	return source, req, true
}

func (s *Source) Slot() uint64 { return s.slot }

// IsHost reports whether this source is the composer's host producer.
func (s *Source) IsHost() bool {
	s.composer.mu.RLock()
	defer s.composer.mu.RUnlock()
	return s.composer.host == s
}

// GlobalID maps a producer-local id into the composed space. Producers own
// only the low 64 bits; a nonzero high half means the producer is already
// emitting composed ids, which would nest slots.
func (s *Source) GlobalID(local schema.NodeID) schema.NodeID {
	if local.Hi != 0 {
		panic(fmt.Sprintf("multitree: local id %v uses the high half", local))
	}
	return schema.NodeID{Hi: s.slot, Lo: local.Lo}
}

// Rewrite returns a copy of update with every node id, in entries and in
// id-valued properties, mapped into the composed space. Non-host tree
// metadata is dropped so the composed tree keeps a single root.
func (s *Source) Rewrite(update schema.TreeUpdate) schema.TreeUpdate {
	out := schema.TreeUpdate{
		Nodes: make([]schema.NodeEntry, len(update.Nodes)),
		Focus: s.GlobalID(update.Focus),
	}
	for i, entry := range update.Nodes {
		node := entry.Node.Clone()
		node.MapIDs(s.GlobalID)
		out.Nodes[i] = schema.NodeEntry{ID: s.GlobalID(entry.ID), Node: node}
	}
	if update.Tree != nil && s.IsHost() {
		tree := *update.Tree
		tree.Root = s.GlobalID(tree.Root)
		out.Tree = &tree
	}
	return out
}
