// Package dfs implements acyclicity checking via three-color depth-first
// search with an explicit "on recursion stack" marking.
//
// A back edge exists exactly when a traversal reaches a neighbor that is
// currently gray (on the recursion stack); the check short-circuits on the
// first one found. A shared descendant reached via two independent paths
// is black by the time the second path arrives, so diamonds are never
// misreported.
//
// Complexity: Time O(V+E), Memory O(V).
package dfs

import "github.com/stepgraph/stepgraph/core"

// Visitation states for cycle detection.
const (
	white = iota // undiscovered
	gray         // on the recursion stack
	black        // fully explored
)

// HasCycle reports whether g contains a directed cycle. Self-loops count
// as one-node cycles. The check is a separate, explicit validation: the
// trace generators never run it themselves.
func HasCycle(g core.Graph) bool {
	adj := core.BuildAdjacency(g)
	state := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		if state[n.ID] == white && cycleVisit(adj, n.ID, state) {
			return true
		}
	}

	return false
}

// cycleVisit recurses along forward adjacency from id, returning true on
// the first gray→gray back edge.
func cycleVisit(adj core.AdjacencyList, id string, state map[string]int) bool {
	state[id] = gray
	for _, nbr := range adj[id] {
		switch state[nbr] {
		case gray:
			return true
		case white:
			if cycleVisit(adj, nbr, state) {
				return true
			}
		}
	}
	state[id] = black

	return false
}
