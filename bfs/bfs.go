// Package bfs implements the breadth-first trace generator.
package bfs

import (
	"fmt"

	"github.com/stepgraph/stepgraph/core"
)

// walker encapsulates mutable BFS state for one Trace call.
type walker struct {
	adj     core.AdjacencyList
	opts    Options
	queue   []string
	visited map[string]bool
	records []Record
}

// Trace runs a breadth-first traversal of g from the configured start
// node (default: the snapshot's first node) and returns the full record
// sequence: one seed record, then a dequeue record per processed node and
// an enqueue record per newly discovered successor.
//
// An empty node list yields an empty trace and no error. Returns
// ErrStartNotFound if an explicit start ID is absent.
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
		queue:   make([]string, 0, len(g.Nodes)),
		visited: blankVisited(g),
	}

	// Seed: the start is visited and enqueued before the first record, so
	// the first record reflects that initial state.
	w.mark(start)
	w.emit(start, EventSeed)

	w.loop()

	return w.records, nil
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		id := w.dequeue()
		w.emit(id, EventDequeue)

		for _, nbr := range w.adj[id] {
			if w.visited[nbr] {
				continue
			}
			w.mark(nbr)
			// Node stays the one being processed; the arrival sits at the
			// back of the queue snapshot.
			w.emit(id, EventEnqueue)
		}
	}
}

// mark flags id visited, appends it to the queue, and fires OnEnqueue.
func (w *walker) mark(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
	if w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(id)
	}
}

// dequeue removes and returns the front node, firing OnDequeue.
func (w *walker) dequeue() string {
	id := w.queue[0]
	w.queue = w.queue[1:]
	if w.opts.OnDequeue != nil {
		w.opts.OnDequeue(id)
	}

	return id
}

// emit appends a record holding fresh copies of the queue and visited map.
func (w *walker) emit(id string, ev Event) {
	queue := append([]string(nil), w.queue...)
	w.records = append(w.records, Record{
		Node:    id,
		Event:   ev,
		Queue:   queue,
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
