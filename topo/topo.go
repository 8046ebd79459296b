// Package topo implements the Kahn's-algorithm trace generator.
package topo

import "github.com/stepgraph/stepgraph/core"

// Record is one snapshot of sort state after a single node removal.
//
// Ready and Visited are fresh copies: no two records share mutable state.
type Record struct {
	// Removed is the node taken out at this step.
	Removed string

	// Ready previews the zero-in-degree nodes available at the start of
	// the NEXT step, in original node-list order.
	Ready []string

	// Visited is a full node-ID → removed-flag copy.
	Visited map[string]bool
}

// Result is the tagged outcome of a topological trace.
//
// Complete is true iff every node was ordered; otherwise Unordered lists
// the stuck remainder (all of which retain nonzero residual in-degree),
// which is exactly the cycle-involved portion of the graph.
type Result struct {
	// Records holds one entry per removal, in removal order.
	Records []Record

	// Order is the removal sequence — a valid linearization iff Complete.
	Order []string

	// Complete reports whether all nodes were ordered.
	Complete bool

	// Unordered lists the nodes left behind by a cycle, in original
	// node-list order. Empty iff Complete.
	Unordered []string
}

// Option configures optional behavior of Trace.
type Option func(*Options)

// Options holds configurable parameters for topological tracing.
type Options struct {
	// OnRemove, if non-nil, runs after each node removal.
	OnRemove func(id string)
}

// DefaultOptions returns Options with no hook installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnRemove installs fn as the removal hook.
func WithOnRemove(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}

// Trace runs Kahn's algorithm over g and returns the tagged result.
//
// Each step removes the first zero-in-degree node in original node-list
// order, marks it visited, decrements the in-degree of each of its
// forward successors, then records the recomputed ready set as the
// look-ahead preview for the next step. A cyclic input yields
// Complete=false and a trace shorter than the node count — never an
// error. An empty snapshot yields an empty, complete result.
func Trace(g core.Graph, opts ...Option) *Result {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	ids := g.NodeIDs()
	adj := core.BuildAdjacency(g)
	deg := core.InDegreeMap(g) // live working copy, freshly allocated

	removed := make(map[string]bool, len(ids))
	visited := make(map[string]bool, len(ids))
	for _, id := range ids {
		visited[id] = false
	}

	res := &Result{
		Records: make([]Record, 0, len(ids)),
		Order:   make([]string, 0, len(ids)),
	}

	for {
		pick := firstReady(ids, removed, deg)
		if pick == "" {
			break
		}

		removed[pick] = true
		visited[pick] = true
		for _, nbr := range adj[pick] {
			deg[nbr]--
		}
		if o.OnRemove != nil {
			o.OnRemove(pick)
		}

		res.Order = append(res.Order, pick)
		res.Records = append(res.Records, Record{
			Removed: pick,
			Ready:   readySet(ids, removed, deg),
			Visited: copyVisited(visited),
		})
	}

	for _, id := range ids {
		if !removed[id] {
			res.Unordered = append(res.Unordered, id)
		}
	}
	res.Complete = len(res.Unordered) == 0

	return res
}

// firstReady returns the first remaining zero-in-degree node in original
// node-list order, or "" when none exists.
func firstReady(ids []string, removed map[string]bool, deg core.InDegrees) string {
	for _, id := range ids {
		if !removed[id] && deg[id] == 0 {
			return id
		}
	}

	return ""
}

// readySet collects every remaining zero-in-degree node, in original
// node-list order.
func readySet(ids []string, removed map[string]bool, deg core.InDegrees) []string {
	ready := []string{}
	for _, id := range ids {
		if !removed[id] && deg[id] == 0 {
			ready = append(ready, id)
		}
	}

	return ready
}

// copyVisited returns an independent copy of m.
func copyVisited(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
