// Package stepgraph is a small, deterministic playground for *watching*
// classic graph algorithms run: every traversal returns a full, replayable
// trace of its internal state, one snapshot per observable step.
//
// What stepgraph gives you:
//
//   - Core primitives: immutable node/edge snapshots, adjacency lists
//     (forward & reverse), in-degree maps, and a pair-keyed adjacency matrix
//   - Cycle detection: three-color DFS with correct self-loop and
//     diamond handling
//   - Trace generators: Kahn's topological sort, depth-first traversal,
//     and breadth-first traversal — each emitting a record per step with a
//     fresh copy of the visited map and the live queue or stack
//   - A random DAG builder: bounded rejection sampling with an
//     index-ordering constraint that guarantees acyclicity by construction
//   - DOT and YAML codecs, plus a demo CLI, for feeding external
//     renderers and for hand-edited fixtures
//
// Why traces instead of plain results?
//
//	Animation and teaching tools want to step backward, forward, or jump
//	to an arbitrary point. Every record is a fully self-contained state
//	snapshot — no record shares mutable state with any other, so a
//	consumer replays them in any order on its own clock.
//
// Packages:
//
//	core/     — Node, Edge, Graph types, validation, adjacency structures
//	dfs/      — depth-first trace generator + HasCycle
//	bfs/      — breadth-first trace generator
//	topo/     — Kahn's algorithm trace generator
//	builder/  — random DAG generation with functional options
//	dot/      — Graphviz DOT serialization
//	graphio/  — YAML graph fixtures
//	cmd/stepgraph — command-line demo driver
//
//	go get github.com/stepgraph/stepgraph
package stepgraph
