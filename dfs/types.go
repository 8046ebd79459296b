// Package dfs defines the record shape, options, and error sentinels for
// depth-first trace generation.
package dfs

import "errors"

// ErrStartNotFound is returned when the requested start node ID does not
// exist in the snapshot.
var ErrStartNotFound = errors.New("dfs: start node not found")

// Phase identifies which of the three per-node observation points a
// Record captures.
type Phase int

const (
	// PhasePush: the node was just pushed; its visited flag is still false.
	PhasePush Phase = iota

	// PhaseVisit: same stack as the push record; the node is now visited.
	PhaseVisit

	// PhasePop: the node's unvisited successors are fully explored and it
	// has left the stack.
	PhasePop
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhasePush:
		return "push"
	case PhaseVisit:
		return "visit"
	case PhasePop:
		return "pop"
	default:
		return "unknown"
	}
}

// Record is one snapshot of traversal state at an observable step.
//
// Stack reflects call-stack order, root first. Visited is fully populated
// over the node set (false for unvisited). Both are fresh copies: no two
// records share mutable state.
type Record struct {
	// Node is the node this step observes.
	Node string

	// Phase tags which observation point produced this record.
	Phase Phase

	// Stack is the live traversal stack, root first.
	Stack []string

	// Visited is a full node-ID → visited-flag copy.
	Visited map[string]bool
}

// Option configures optional behavior of Trace.
type Option func(*Options)

// Options holds configurable parameters for depth-first tracing.
type Options struct {
	// Start is the traversal root; empty means the snapshot's first node.
	Start string

	// OnVisit, if non-nil, is invoked when a node is marked visited
	// (between its push and pop records). Returning an error aborts the
	// traversal with that error.
	OnVisit func(id string) error
}

// DefaultOptions returns Options with the first node as start and no hook.
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

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
