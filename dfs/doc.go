// Package dfs implements depth-first traversal tracing and cycle
// detection over a core.Graph snapshot.
//
// What
//
//   - Trace: walks the forward adjacency from a start node and emits
//     exactly three records per visited node, in order:
//     Push  — the node just joined the stack; its visited flag is still false
//     Visit — same stack; the node is now marked visited
//     Pop   — all unvisited successors fully explored; node left the stack
//     Each record carries a fresh copy of the full visited map and of the
//     stack (call-stack order, root first).
//   - HasCycle: classic three-color DFS acyclicity check. Flags self-loops
//     as one-node cycles; never flags a diamond (a shared descendant
//     reached via two independent paths) — that is a defining correctness
//     property, not an incidental behavior.
//
// Why
//
//	The trace is consumed by steppable renderers: because every record is
//	a self-contained snapshot, a consumer can replay, rewind, or jump to
//	any step without re-running the algorithm. HasCycle is the explicit
//	validation the topological generator deliberately does not perform.
//
// Mechanics
//
//	Trace uses an explicit work stack of (node, next-successor-index)
//	frames instead of host recursion, so deep graphs cannot exhaust the
//	call stack, while the emission order is identical to the recursive
//	formulation. Successors are explored in edge-insertion order; already
//	visited successors are skipped via the visited map. Nodes unreachable
//	from the start never appear with a true visited flag.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Trace:    Time O(V·(V+E)) including per-record snapshots, Memory O(V²)
//     for the eager record slice (3 records per node, each O(V))
//   - HasCycle: Time O(V+E), Memory O(V)
//
// Errors
//
//   - ErrStartNotFound — the requested start node ID is absent.
package dfs
