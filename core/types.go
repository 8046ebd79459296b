// Package core provides the fundamental Node, Edge, and Graph snapshot
// types consumed by every stepgraph algorithm.
//
// This file declares the value types, sentinel errors, and small query
// helpers. Derived-structure builders live in adjacency.go and matrix.go;
// validation lives in validate.go.
package core

import "errors"

// Sentinel errors for graph validation.
var (
	// ErrDuplicateNodeID indicates two nodes in the snapshot share an ID.
	ErrDuplicateNodeID = errors.New("core: duplicate node ID")

	// ErrUnknownEndpoint indicates an edge references a node ID that is
	// not present in the node set.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not in node set")
)

// Node represents a single graph vertex.
//
// ID uniquely identifies the node within its Graph. Label is a display
// string for renderers. X and Y are layout hints produced by the random
// DAG builder; no algorithm in this module reads them.
type Node struct {
	// ID is the unique identifier for this node.
	ID string

	// Label is the display text shown by renderers; defaults to ID.
	Label string

	// X, Y are 2-D layout hints, ignored by all algorithms.
	X, Y float64
}

// Edge represents a directed arc From→To. Edges carry no weight.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the target node ID.
	To string
}

// Graph is an immutable snapshot of a directed graph: a node list plus an
// edge list, both in caller-defined insertion order.
//
// The core never mutates a Graph; algorithms derive fresh structures from
// it on every call. Acyclicity is NOT implied — run dfs.HasCycle before
// treating a topological trace as complete.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// NodeIDs returns the node IDs in snapshot insertion order.
// Complexity: O(V).
func (g Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// HasNode reports whether a node with the given ID exists in the snapshot.
// Complexity: O(V).
func (g Graph) HasNode(id string) bool {
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}

	return false
}
