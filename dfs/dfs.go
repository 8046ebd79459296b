// Package dfs implements the depth-first trace generator.
//
// Trace walks the forward adjacency with an explicit work stack of
// (node, next-successor-index) frames, reproducing the emission order of
// the recursive formulation without risking host call-stack limits.
package dfs

import (
	"fmt"

	"github.com/stepgraph/stepgraph/core"
)

// frame is one entry of the explicit work stack: the node plus the index
// of its next successor to examine.
type frame struct {
	id   string
	next int
}

// walker encapsulates mutable traversal state for one Trace call.
type walker struct {
	adj     core.AdjacencyList
	opts    Options
	stack   []frame
	visited map[string]bool
	records []Record
}

// Trace runs a depth-first traversal of g from the configured start node
// (default: the snapshot's first node) and returns the full record
// sequence: three records per visited node (push, visit, pop).
//
// An empty node list yields an empty trace and no error. Nodes
// unreachable from the start are never visited. Returns ErrStartNotFound
// if an explicit start ID is absent, or any error from the OnVisit hook.
func Trace(g core.Graph, opts ...Option) ([]Record, error) {
	if len(g.Nodes) == 0 {
		return nil, nil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start := o.Start
	if start == "" {
		start = g.Nodes[0].ID
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := &walker{
		adj:     core.BuildAdjacency(g),
		opts:    o,
		visited: blankVisited(g),
	}
	if err := w.run(start); err != nil {
		return nil, err
	}

	return w.records, nil
}

// run drives the explicit stack until the start node's frame is popped.
func (w *walker) run(start string) error {
	if err := w.push(start); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(w.adj[top.id]) {
			nbr := w.adj[top.id][top.next]
			top.next++
			if !w.visited[nbr] {
				if err := w.push(nbr); err != nil {
					return err
				}
			}

			continue
		}
		w.pop()
	}

	return nil
}

// push emits the node's push record (visited flag still false), marks it
// visited, emits the visit record, and fires the OnVisit hook.
func (w *walker) push(id string) error {
	w.stack = append(w.stack, frame{id: id})
	w.emit(id, PhasePush)

	w.visited[id] = true
	w.emit(id, PhaseVisit)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	return nil
}

// pop removes the finished top frame and emits its pop record, with the
// stack no longer containing the node.
func (w *walker) pop() {
	id := w.stack[len(w.stack)-1].id
	w.stack = w.stack[:len(w.stack)-1]
	w.emit(id, PhasePop)
}

// emit appends a record holding fresh copies of the stack and visited map.
func (w *walker) emit(id string, ph Phase) {
	stack := make([]string, len(w.stack))
	for i, f := range w.stack {
		stack[i] = f.id
	}
	w.records = append(w.records, Record{
		Node:    id,
		Phase:   ph,
		Stack:   stack,
		Visited: copyVisited(w.visited),
	})
}

// blankVisited allocates a visited map populated with every node ID set
// to false, so each record's copy covers the full node set.
func blankVisited(g core.Graph) map[string]bool {
	m := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		m[n.ID] = false
	}

	return m
}

// copyVisited returns an independent copy of m.
func copyVisited(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
