// Package dot serializes a core.Graph snapshot to Graphviz DOT text.
//
// Output is deterministic: nodes are emitted in sorted ID order, edges in
// snapshot insertion order. WithHighlight fills selected nodes, letting a
// consumer render one trace step per frame (e.g. the visited set or the
// live queue of a record).
//
// The serializer owns no file format beyond standard DOT; it never reads
// the X/Y layout hints — Graphviz computes its own layout.
package dot
