// Package consumer maintains a live accessibility tree on behalf of an
// assistive technology or other consumer. It applies TreeUpdates from a
// producer, reports what changed, and offers filtered navigation and text
// range queries over the result.
package consumer

import "accesstree/pkg/schema"

// FilterResult decides how a node participates in filtered navigation.
type FilterResult uint8

const (
	// FilterInclude keeps the node.
	FilterInclude FilterResult = iota
	// FilterExcludeNode hides the node itself but hoists its children into
	// its place.
	FilterExcludeNode
	// FilterExcludeSubtree hides the node and everything under it.
	FilterExcludeSubtree
)

// Filter classifies nodes for navigation and focus resolution. Filters must
// be pure functions of the node; results are not cached.
type Filter func(Node) FilterResult

func includeAll(Node) FilterResult { return FilterInclude }

// CommonFilter is the baseline policy most consumers want: keep whatever is
// focused, drop hidden subtrees, and splice out pure structure (generic
// containers and the text runs that only exist to carry layout data).
//
// It tests the raw producer focus, not the resolved focus: resolving focus
// runs the tree's filter, so a filter that consulted the resolved focus
// would recurse.
func CommonFilter(node Node) FilterResult {
	if node.IsFocusedInTree() {
		return FilterInclude
	}
	if node.IsHidden() {
		return FilterExcludeSubtree
	}
	switch node.Role() {
	case schema.RoleGenericContainer, schema.RoleInlineTextBox:
		return FilterExcludeNode
	}
	return FilterInclude
}
