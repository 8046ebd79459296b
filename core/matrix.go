// SPDX-License-Identifier: MIT
//
// matrix.go — pair-keyed adjacency matrix.
//
// Node IDs are non-numeric strings with no canonical fixed ordering, so
// the canonical representation is a map keyed by "<row>-<col>" rather than
// a 2-D array. Consumers needing a dense view derive it on demand via
// Dense(), which orders rows/columns by the lexicographically sorted ID
// list — the dense form is computed, never stored.
package core

import "sort"

// pairSep joins row and column IDs into a matrix cell key.
const pairSep = "-"

// PairKey builds the cell key for the ordered pair (row, col).
// Complexity: O(len(row)+len(col)).
func PairKey(row, col string) string {
	return row + pairSep + col
}

// Matrix is a sparse-backed dense adjacency matrix over a node snapshot:
// every cell of the V×V cross product is populated (0 by default, 1 where
// an edge exists), keyed by PairKey.
type Matrix struct {
	ids   []string       // node IDs in snapshot order
	cells map[string]int // PairKey(row,col) → 0/1
}

// BuildMatrix constructs the adjacency matrix of g: all V² pairs
// initialized to 0, then each edge sets its cell to 1.
//
// Complexity: O(V²+E). Acceptable only for small educational graphs
// (the random DAG builder caps node count at 20).
func BuildMatrix(g Graph) *Matrix {
	m := &Matrix{
		ids:   g.NodeIDs(),
		cells: make(map[string]int, len(g.Nodes)*len(g.Nodes)),
	}
	for _, row := range m.ids {
		for _, col := range m.ids {
			m.cells[PairKey(row, col)] = 0
		}
	}
	for _, e := range g.Edges {
		m.cells[PairKey(e.From, e.To)] = 1
	}

	return m
}

// At returns 1 if the edge row→col exists, 0 otherwise.
// Unknown IDs read as 0. Complexity: O(1).
func (m *Matrix) At(row, col string) int {
	return m.cells[PairKey(row, col)]
}

// Cells returns a fresh copy of the full pair-keyed cell map, so callers
// can never alias the matrix's internal state.
// Complexity: O(V²).
func (m *Matrix) Cells() map[string]int {
	out := make(map[string]int, len(m.cells))
	for k, v := range m.cells {
		out[k] = v
	}

	return out
}

// SortedIDs returns the lexicographically sorted node ID list that
// defines the row/column order of Dense().
// Complexity: O(V log V).
func (m *Matrix) SortedIDs() []string {
	ids := append([]string(nil), m.ids...)
	sort.Strings(ids)

	return ids
}

// Dense derives a freshly allocated 2-D 0/1 view of the matrix, rows and
// columns ordered by SortedIDs. The dense form is computed on demand and
// never cached.
// Complexity: O(V² log V) including the sort.
func (m *Matrix) Dense() [][]int {
	ids := m.SortedIDs()
	out := make([][]int, len(ids))
	for i, row := range ids {
		out[i] = make([]int, len(ids))
		for j, col := range ids {
			out[i][j] = m.cells[PairKey(row, col)]
		}
	}

	return out
}
