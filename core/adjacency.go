// SPDX-License-Identifier: MIT
//
// adjacency.go — forward/reverse adjacency lists and in-degree counts.
//
// All three builders are pure and total: malformed edges (endpoints not in
// the node set) are incorporated as-is rather than rejected, matching the
// silent-degenerate contract of this core. Use Validate for the explicit
// rejection path.
package core

// AdjacencyList maps a node ID to its successor (or, for the reverse
// form, predecessor) IDs in edge-insertion order. Every node ID from the
// snapshot is present, even with an empty sequence.
type AdjacencyList map[string][]string

// InDegrees maps a node ID to its count of incoming edges.
type InDegrees map[string]int

// BuildAdjacency constructs the forward adjacency list of g.
//
// For each edge the target is appended to the source's successor sequence,
// preserving edge input order. A post-pass over the node set guarantees an
// entry for every node, including sinks — this is deliberate rather than
// left to map-default semantics, so consumers can range over the node set
// without nil checks.
//
// Complexity: O(V+E).
func BuildAdjacency(g Graph) AdjacencyList {
	adj := make(AdjacencyList, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	// Guarantee an entry for every node, even without outgoing edges.
	for _, n := range g.Nodes {
		if _, ok := adj[n.ID]; !ok {
			adj[n.ID] = []string{}
		}
	}

	return adj
}

// BuildReverseAdjacency constructs the predecessor list of g: for each
// edge, the source is appended to the target's sequence. Symmetric to
// BuildAdjacency, including the guaranteed per-node entry.
//
// Complexity: O(V+E).
func BuildReverseAdjacency(g Graph) AdjacencyList {
	rev := make(AdjacencyList, len(g.Nodes))
	for _, e := range g.Edges {
		rev[e.To] = append(rev[e.To], e.From)
	}
	for _, n := range g.Nodes {
		if _, ok := rev[n.ID]; !ok {
			rev[n.ID] = []string{}
		}
	}

	return rev
}

// InDegreeMap computes the in-degree of every node: each node starts at 0,
// then the count is incremented once per incoming edge. The map is
// recomputed from scratch on every call, never incrementally maintained.
//
// Complexity: O(V+E).
func InDegreeMap(g Graph) InDegrees {
	deg := make(InDegrees, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.ID] = 0
	}
	for _, e := range g.Edges {
		deg[e.To]++
	}

	return deg
}
