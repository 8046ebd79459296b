// Package graphio implements the YAML graph fixture codec.
package graphio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/stepgraph/stepgraph/core"
)

// yamlNode mirrors core.Node in the fixture document.
type yamlNode struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label,omitempty"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
}

// yamlEdge mirrors core.Edge in the fixture document.
type yamlEdge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// yamlGraph is the top-level fixture document.
type yamlGraph struct {
	Nodes []yamlNode `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges,omitempty"`
}

// Load decodes a YAML fixture into a validated core.Graph. Labels default
// to the node ID. Returns a wrapped decode error for malformed YAML, or
// the core validation sentinels for structurally invalid snapshots.
func Load(r io.Reader) (core.Graph, error) {
	var doc yamlGraph
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return core.Graph{}, fmt.Errorf("graphio: decode: %w", err)
	}

	g := core.Graph{
		Nodes: make([]core.Node, len(doc.Nodes)),
		Edges: make([]core.Edge, len(doc.Edges)),
	}
	for i, n := range doc.Nodes {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		g.Nodes[i] = core.Node{ID: n.ID, Label: label, X: n.X, Y: n.Y}
	}
	for i, e := range doc.Edges {
		g.Edges[i] = core.Edge{From: e.From, To: e.To}
	}

	if err := g.Validate(); err != nil {
		return core.Graph{}, fmt.Errorf("graphio: %w", err)
	}

	return g, nil
}

// Save encodes g as a YAML fixture. The snapshot is written as-is; labels
// equal to the ID are omitted for brevity.
func Save(w io.Writer, g core.Graph) error {
	doc := yamlGraph{
		Nodes: make([]yamlNode, len(g.Nodes)),
		Edges: make([]yamlEdge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		label := n.Label
		if label == n.ID {
			label = ""
		}
		doc.Nodes[i] = yamlNode{ID: n.ID, Label: label, X: n.X, Y: n.Y}
	}
	for i, e := range g.Edges {
		doc.Edges[i] = yamlEdge{From: e.From, To: e.To}
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}
