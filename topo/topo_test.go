package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgraph/stepgraph/core"
	"github.com/stepgraph/stepgraph/topo"
)

// diamond builds the shared five-node fixture:
// A→B, A→C, B→D, C→D, D→E.
func diamond() core.Graph {
	return core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		Edges: []core.Edge{
			{From: "A", To: "B"},
			{From: "A", To: "C"},
			{From: "B", To: "D"},
			{From: "C", To: "D"},
			{From: "D", To: "E"},
		},
	}
}

// triangle builds the three-node cycle A→B→C→A.
func triangle() core.Graph {
	return core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{From: "A", To: "B"},
			{From: "B", To: "C"},
			{From: "C", To: "A"},
		},
	}
}

func TestTrace_DiamondFullRun(t *testing.T) {
	res := topo.Trace(diamond())

	assert.True(t, res.Complete)
	assert.Empty(t, res.Unordered)
	require.Len(t, res.Records, 5)

	// A is the only in-degree-0 node and must go first; the ready preview
	// immediately after is [B,C] in original node order.
	assert.Equal(t, "A", res.Records[0].Removed)
	assert.Equal(t, []string{"B", "C"}, res.Records[0].Ready)

	// The order must be a valid linearization.
	pos := make(map[string]int, len(res.Order))
	for i, id := range res.Order {
		pos[id] = i
	}
	for _, e := range diamond().Edges {
		assert.Less(t, pos[e.From], pos[e.To], "edge %s→%s violated", e.From, e.To)
	}
}

func TestTrace_ReadyIsLookAhead(t *testing.T) {
	res := topo.Trace(diamond())
	require.Len(t, res.Records, 5)

	// Each record's Ready previews exactly what the next step removes
	// from (its first element, given the first-in-order selection rule).
	for i := 0; i < len(res.Records)-1; i++ {
		require.NotEmpty(t, res.Records[i].Ready, "record %d", i)
		assert.Equal(t, res.Records[i+1].Removed, res.Records[i].Ready[0], "record %d", i)
	}
	assert.Empty(t, res.Records[len(res.Records)-1].Ready, "final record previews nothing")
}

func TestTrace_VisitedAccumulates(t *testing.T) {
	res := topo.Trace(diamond())
	require.Len(t, res.Records, 5)

	assert.True(t, res.Records[0].Visited["A"])
	assert.False(t, res.Records[0].Visited["E"])
	for i, r := range res.Records {
		n := 0
		for _, v := range r.Visited {
			if v {
				n++
			}
		}
		assert.Equal(t, i+1, n, "record %d must mark exactly %d nodes", i, i+1)
		assert.Len(t, r.Visited, 5, "visited map covers the full node set")
	}
}

func TestTrace_CycleYieldsEmptyTrace(t *testing.T) {
	res := topo.Trace(triangle())

	assert.False(t, res.Complete)
	assert.Empty(t, res.Records, "no node ever reaches in-degree 0")
	assert.Empty(t, res.Order)
	assert.Equal(t, []string{"A", "B", "C"}, res.Unordered)
}

func TestTrace_PartialOrderAroundCycle(t *testing.T) {
	// S feeds the triangle; only S can ever be removed.
	g := triangle()
	g.Nodes = append([]core.Node{{ID: "S"}}, g.Nodes...)
	g.Edges = append(g.Edges, core.Edge{From: "S", To: "A"})

	res := topo.Trace(g)

	assert.False(t, res.Complete)
	assert.Equal(t, []string{"S"}, res.Order)
	assert.Equal(t, []string{"A", "B", "C"}, res.Unordered)

	// The stuck remainder all retain nonzero residual in-degree.
	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Records[0].Ready)
}

func TestTrace_TieBreakByOriginalOrder(t *testing.T) {
	// B and A are both sources; B comes first in the node list.
	g := core.Graph{
		Nodes: []core.Node{{ID: "B"}, {ID: "A"}, {ID: "C"}},
		Edges: []core.Edge{{From: "B", To: "C"}, {From: "A", To: "C"}},
	}

	res := topo.Trace(g)
	require.True(t, res.Complete)
	assert.Equal(t, []string{"B", "A", "C"}, res.Order)
}

func TestTrace_EmptyGraph(t *testing.T) {
	res := topo.Trace(core.Graph{})

	assert.True(t, res.Complete)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Unordered)
}

func TestTrace_SnapshotsAreIndependent(t *testing.T) {
	res := topo.Trace(diamond())
	require.Greater(t, len(res.Records), 1)

	res.Records[0].Visited["E"] = true
	assert.False(t, res.Records[1].Visited["E"], "mutating one record must not affect another")

	first := topo.Trace(diamond())
	second := topo.Trace(diamond())
	first.Records[0].Ready[0] = "corrupted"
	assert.Equal(t, "B", second.Records[0].Ready[0], "calls never share state")
}

func TestTrace_OnRemoveHook(t *testing.T) {
	var seen []string
	res := topo.Trace(diamond(), topo.WithOnRemove(func(id string) { seen = append(seen, id) }))

	assert.Equal(t, res.Order, seen)
}
