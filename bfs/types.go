// Package bfs defines the record shape, options, and error sentinels for
// breadth-first trace generation.
package bfs

import "errors"

// ErrStartNotFound is returned when the requested start node ID does not
// exist in the snapshot.
var ErrStartNotFound = errors.New("bfs: start node not found")

// Event identifies which observable step produced a Record.
type Event int

const (
	// EventSeed: the start node was marked visited and enqueued; emitted
	// exactly once, before any dequeue.
	EventSeed Event = iota

	// EventDequeue: the front node was removed from the queue.
	EventDequeue

	// EventEnqueue: an unvisited successor was marked visited and
	// appended to the queue.
	EventEnqueue
)

// String returns the lowercase event name.
func (e Event) String() string {
	switch e {
	case EventSeed:
		return "seed"
	case EventDequeue:
		return "dequeue"
	case EventEnqueue:
		return "enqueue"
	default:
		return "unknown"
	}
}

// Record is one snapshot of traversal state at an observable step.
//
// Queue is front-to-back order. Visited is fully populated over the node
// set. Both are fresh copies: no two records share mutable state.
type Record struct {
	// Node is the node being processed at this step. For enqueue records
	// it remains the node whose successors are being examined, not the
	// node that just joined the queue (which is the queue's last entry).
	Node string

	// Event tags which step produced this record.
	Event Event

	// Queue is the live traversal queue, front first.
	Queue []string

	// Visited is a full node-ID → visited-flag copy.
	Visited map[string]bool
}

// Option configures optional behavior of Trace.
type Option func(*Options)

// Options holds configurable parameters for breadth-first tracing.
type Options struct {
	// Start is the traversal root; empty means the snapshot's first node.
	Start string

	// OnEnqueue, if non-nil, runs after a node is marked visited and
	// enqueued (including the seed).
	OnEnqueue func(id string)

	// OnDequeue, if non-nil, runs when a node leaves the queue.
	OnDequeue func(id string)
}

// DefaultOptions returns Options with the first node as start and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithStart sets the traversal root. An empty ID keeps the default.
func WithStart(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.Start = id
		}
	}
}

// WithOnEnqueue installs fn as the enqueue hook.
func WithOnEnqueue(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs fn as the dequeue hook.
func WithOnDequeue(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
