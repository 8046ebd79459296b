// SPDX-License-Identifier: MIT
//
// validate.go — the explicit rejection path for malformed snapshots.
//
// The representation builders in this package stay silent and total on
// malformed input. Callers that want strictness (fixture loaders, editors)
// run Validate first and branch with errors.Is on the sentinels.
package core

import "fmt"

// Validate checks the structural preconditions the algorithms assume:
//
//   - node IDs are unique (ErrDuplicateNodeID otherwise);
//   - every edge endpoint references an existing node (ErrUnknownEndpoint).
//
// Returns nil for an empty snapshot. The first violation found is
// reported, wrapped with the offending ID for context.
//
// Complexity: O(V+E).
func (g Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	for _, e := range g.Edges {
		if _, ok := seen[e.From]; !ok {
			return fmt.Errorf("%w: source %q", ErrUnknownEndpoint, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			return fmt.Errorf("%w: target %q", ErrUnknownEndpoint, e.To)
		}
	}

	return nil
}
