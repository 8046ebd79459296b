// SPDX-License-Identifier: MIT
//
// random_dag.go — implementation of the RandomDAG(n, m) generator.
//
// Contract:
//   - MinNodeCount ≤ n ≤ MaxNodeCount (else ErrNodeCountRange).
//   - MinEdgeCount ≤ m ≤ MaxEdgeCount (else ErrEdgeCountRange).
//   - Node IDs come from cfg.idFn in ascending index order; Label = ID;
//     positions are uniform over the configured canvas.
//   - Edge acceptance: source index strictly below target index (primary
//     acyclicity guarantee), no duplicate pair, and the dfs.HasCycle
//     safety net stays false over the candidate edge set.
//   - At most AttemptFactor×m draws; a short edge set is a non-error,
//     best-effort outcome.
//
// Determinism: fixed seed and options ⇒ identical node and edge sets,
// due to the fixed draw order.
package builder

import (
	"fmt"

	"github.com/stepgraph/stepgraph/core"
	"github.com/stepgraph/stepgraph/dfs"
)

// RandomDAG generates a random directed acyclic graph with n nodes and up
// to m edges. See the package documentation for the sampling contract.
func RandomDAG(n, m int, opts ...Option) (core.Graph, error) {
	if n < MinNodeCount || n > MaxNodeCount {
		return core.Graph{}, fmt.Errorf("%w: n=%d not in [%d,%d]",
			ErrNodeCountRange, n, MinNodeCount, MaxNodeCount)
	}
	if m < MinEdgeCount || m > MaxEdgeCount {
		return core.Graph{}, fmt.Errorf("%w: m=%d not in [%d,%d]",
			ErrEdgeCountRange, m, MinEdgeCount, MaxEdgeCount)
	}

	cfg := newBuilderConfig(opts...)

	// Nodes in ascending index order; positions are layout hints only.
	nodes := make([]core.Node, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		nodes[i] = core.Node{
			ID:    id,
			Label: id,
			X:     cfg.rng.Float64() * cfg.width,
			Y:     cfg.rng.Float64() * cfg.height,
		}
	}

	edges := make([]core.Edge, 0, m)
	used := make(map[string]struct{}, m)
	budget := AttemptFactor * m

	for attempt := 0; attempt < budget && len(edges) < m; attempt++ {
		i := cfg.rng.Intn(n)
		j := cfg.rng.Intn(n)
		// The index-ordering constraint enforces a topological order by
		// construction; it also rejects self-loops (i == j).
		if i >= j {
			continue
		}

		e := core.Edge{From: nodes[i].ID, To: nodes[j].ID}
		key := core.PairKey(e.From, e.To)
		if _, dup := used[key]; dup {
			continue
		}

		// Redundant safety net over the full candidate edge set. The
		// three-index append keeps the candidate from aliasing edges.
		candidate := append(edges[:len(edges):len(edges)], e)
		if dfs.HasCycle(core.Graph{Nodes: nodes, Edges: candidate}) {
			continue
		}

		edges = candidate
		used[key] = struct{}{}
	}

	return core.Graph{Nodes: nodes, Edges: edges}, nil
}
