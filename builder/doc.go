// Package builder synthesizes random directed acyclic graphs for the
// trace generators and their renderers.
//
// The generator produces n nodes (IDs from a configurable scheme,
// defaulting to Excel-style letters, with uniform random 2-D positions as
// layout hints) and up to m edges via bounded rejection sampling:
//
//   - a candidate pair of distinct random node indices (i, j) is accepted
//     only when i < j — this forward-index ordering constraint enforces a
//     topological order by construction and is the PRIMARY acyclicity
//     guarantee;
//   - exact duplicate (source, target) pairs are rejected;
//   - as a second, redundant safety net, a candidate is also rejected if
//     appending it would make dfs.HasCycle report true over the full
//     edge set so far;
//   - sampling stops after 10×m attempts. Reaching fewer than m edges is
//     an accepted best-effort outcome, not an error.
//
// Configuration follows the functional-options pattern: WithSeed /
// WithRand pin the RNG for reproducible fixtures, WithIDScheme swaps the
// vertex ID scheme, WithCanvas sets the layout extent. Invalid option
// values panic in the option constructor (programmer error); invalid
// build parameters return sentinel errors checked via errors.Is.
//
// Guarantees
//
//   - The returned edge set is acyclic and duplicate-free for every seed.
//   - Deterministic output for a fixed seed and fixed options.
//   - The caller-facing bounds (n ∈ [3,20], m ∈ [1,30]) are validated
//     here with ErrNodeCountRange / ErrEdgeCountRange.
//
// Complexity: O(n) node generation plus O(m) accepted edges over at most
// 10×m attempts, each attempt paying an O(V+E) safety-net cycle check.
package builder
