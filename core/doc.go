// Package core defines the graph data model shared by every stepgraph
// algorithm: Node, Edge, and Graph snapshots, plus pure builders for the
// derived structures the trace generators and renderers consume.
//
// What
//
//   - Graph: a caller-owned snapshot of nodes and directed edges. The core
//     never mutates it; every derived structure is freshly allocated per
//     call, so two results never share mutable state.
//   - BuildAdjacency / BuildReverseAdjacency: successor / predecessor lists
//     in edge-insertion order, with an entry guaranteed for every node.
//   - InDegreeMap: node ID → incoming-edge count, recomputed per call.
//   - BuildMatrix: a pair-keyed ("row-col") sparse-backed dense adjacency
//     matrix with O(1) point lookup and an on-demand Dense() view.
//   - Validate: the explicit rejection path for duplicate node IDs and
//     edges with dangling endpoints.
//
// Why
//
//	The trace generators (topo, dfs, bfs) and the random DAG builder all
//	derive their working state from these structures. Keeping the builders
//	pure and total — malformed input degrades silently, never panics —
//	lets callers decide when validation matters via Validate.
//
// Determinism
//
//	Adjacency sequences follow edge insertion order; matrix and Dense()
//	ordering follow the lexicographically sorted ID list. Same snapshot in,
//	identical structures out.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - BuildAdjacency / BuildReverseAdjacency / InDegreeMap: O(V+E)
//   - BuildMatrix: O(V²+E) — acceptable only for the small educational
//     graphs this module targets (builder caps at 20 nodes)
//   - Validate: O(V+E)
//
// Errors
//
//   - ErrDuplicateNodeID — two nodes share an ID.
//   - ErrUnknownEndpoint — an edge references a node ID not in the set.
package core
