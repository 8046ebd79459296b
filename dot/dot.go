// Package dot implements deterministic Graphviz DOT serialization.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stepgraph/stepgraph/core"
)

// Fill color for highlighted nodes.
const highlightColor = "lightblue"

// Option configures serialization.
type Option func(*options)

type options struct {
	name      string
	highlight map[string]bool
}

// WithName sets the digraph name (default "stepgraph").
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithHighlight fills the given nodes, e.g. a record's visited set.
func WithHighlight(ids ...string) Option {
	return func(o *options) {
		for _, id := range ids {
			o.highlight[id] = true
		}
	}
}

// Marshal renders g as DOT text. Nodes appear in sorted ID order with
// their labels; edges follow snapshot insertion order.
func Marshal(g core.Graph, opts ...Option) []byte {
	o := options{name: "stepgraph", highlight: make(map[string]bool)}
	for _, fn := range opts {
		fn(&o)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", quote(o.name))
	b.WriteString("  rankdir=LR;\n")

	ids := g.NodeIDs()
	sort.Strings(ids)
	labels := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
	}
	for _, id := range ids {
		label := labels[id]
		if label == "" {
			label = id
		}
		if o.highlight[id] {
			fmt.Fprintf(&b, "  %s [label=%s, style=filled, fillcolor=%q];\n",
				quote(id), quote(label), highlightColor)
		} else {
			fmt.Fprintf(&b, "  %s [label=%s];\n", quote(id), quote(label))
		}
	}

	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %s -> %s;\n", quote(e.From), quote(e.To))
	}
	b.WriteString("}\n")

	return []byte(b.String())
}

// quote wraps s in double quotes, escaping embedded quotes.
func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
