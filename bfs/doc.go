// Package bfs implements breadth-first traversal tracing over a
// core.Graph snapshot.
//
// What
//
//   - Trace: an iterative queue-based walk from a start node emitting one
//     record per observable step:
//     Seed    — the start node was marked visited and enqueued; the first
//     record reflects exactly that initial state (queue = [start])
//     Dequeue — the front node was removed; queue = the remainder; the
//     visited map is unchanged by the dequeue itself
//     Enqueue — an unvisited successor was marked visited and appended;
//     queue includes the new arrival; Node stays the node being
//     processed
//   - Successors are examined in edge-insertion order.
//
// Why
//
//	One record per enqueue is finer-grained than the traversal strictly
//	needs — deliberately so: a consumer can animate each enqueue
//	individually. Because a node is marked visited at enqueue time, the
//	queue never contains an unvisited node, and nodes become visited in
//	non-decreasing distance from the start.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time O(V·(V+E)) including per-record snapshots,
//     Memory O(V·(V+E)) for the eager record slice
//
// Errors
//
//   - ErrStartNotFound — the requested start node ID is absent.
package bfs
