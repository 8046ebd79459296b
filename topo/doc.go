// Package topo implements a step-traced topological sort of a core.Graph
// snapshot using Kahn's algorithm.
//
// What
//
//   - Trace: iteratively removes zero-in-degree nodes, emitting one record
//     per removal. Selection is deterministic: the remaining nodes are
//     scanned in original node-list order and the FIRST zero-in-degree
//     node wins (tie-break: earliest in original order).
//   - Look-ahead Ready preview: after a removal updates the in-degrees,
//     the ready set for the NEXT step is recomputed and attached to THIS
//     step's record — so a consumer can render "what will be picked next".
//     This framing is intentional and preserved exactly.
//   - Tagged outcome: Result.Complete distinguishes a full ordering from a
//     partial one. A cyclic input is NOT an error — the algorithm stops
//     silently when no zero-in-degree node remains, and the stuck
//     remainder is reported in Result.Unordered. Callers wanting a hard
//     guarantee run dfs.HasCycle first.
//
// Why
//
//	Kahn's algorithm doubles as a cycle probe: the trace is shorter than
//	the node count exactly when a cycle exists, and every unordered node
//	has nonzero in-degree in the residual graph. Making the partial
//	outcome an explicit result variant, rather than a bare truncated
//	sequence, keeps that contract visible to callers.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time O(V·(V+E)) including the per-step ready-set scan and visited
//     snapshots, Memory O(V²) for the eager record slice
package topo
