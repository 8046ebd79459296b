package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepgraph/stepgraph/bfs"
	"github.com/stepgraph/stepgraph/core"
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

// discoveryOrder extracts nodes in the order they became visited: the
// seed node, then the back of the queue at each enqueue record.
func discoveryOrder(recs []bfs.Record) []string {
	var order []string
	for _, r := range recs {
		switch r.Event {
		case bfs.EventSeed:
			order = append(order, r.Node)
		case bfs.EventEnqueue:
			order = append(order, r.Queue[len(r.Queue)-1])
		}
	}

	return order
}

func TestTrace_DiamondDistanceOrder(t *testing.T) {
	recs, err := bfs.Trace(diamond())
	require.NoError(t, err)

	// A at distance 0; B,C at 1; D at 2; E at 3.
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, discoveryOrder(recs))
}

func TestTrace_DiamondRecordSequence(t *testing.T) {
	recs, err := bfs.Trace(diamond())
	require.NoError(t, err)
	require.Len(t, recs, 10)

	// Seed reflects the start already visited and enqueued.
	assert.Equal(t, bfs.EventSeed, recs[0].Event)
	assert.Equal(t, "A", recs[0].Node)
	assert.Equal(t, []string{"A"}, recs[0].Queue)
	assert.True(t, recs[0].Visited["A"])
	assert.False(t, recs[0].Visited["B"])

	// Dequeue A: queue is the remainder, visited untouched by the dequeue.
	assert.Equal(t, bfs.EventDequeue, recs[1].Event)
	assert.Equal(t, "A", recs[1].Node)
	assert.Empty(t, recs[1].Queue)

	// One enqueue record per discovered successor, Node still A.
	assert.Equal(t, bfs.EventEnqueue, recs[2].Event)
	assert.Equal(t, "A", recs[2].Node)
	assert.Equal(t, []string{"B"}, recs[2].Queue)
	assert.Equal(t, []string{"B", "C"}, recs[3].Queue)

	assert.Equal(t, bfs.EventDequeue, recs[4].Event)
	assert.Equal(t, "B", recs[4].Node)
	assert.Equal(t, []string{"C", "D"}, recs[5].Queue)

	// C dequeues without enqueues: D is already visited.
	assert.Equal(t, bfs.EventDequeue, recs[6].Event)
	assert.Equal(t, "C", recs[6].Node)
	assert.Equal(t, []string{"D"}, recs[6].Queue)

	assert.Equal(t, bfs.EventDequeue, recs[7].Event)
	assert.Equal(t, "D", recs[7].Node)
	assert.Equal(t, []string{"E"}, recs[8].Queue)

	assert.Equal(t, bfs.EventDequeue, recs[9].Event)
	assert.Equal(t, "E", recs[9].Node)
	assert.Empty(t, recs[9].Queue)
}

func TestTrace_QueueNeverHoldsUnvisited(t *testing.T) {
	recs, err := bfs.Trace(diamond())
	require.NoError(t, err)

	for i, r := range recs {
		for _, id := range r.Queue {
			assert.True(t, r.Visited[id], "record %d: queued node %s must be visited", i, id)
		}
	}
}

func TestTrace_EmptyGraph(t *testing.T) {
	recs, err := bfs.Trace(core.Graph{})
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestTrace_StartNotFound(t *testing.T) {
	_, err := bfs.Trace(diamond(), bfs.WithStart("Q"))
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
}

func TestTrace_ExplicitStart(t *testing.T) {
	recs, err := bfs.Trace(diamond(), bfs.WithStart("B"))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "D", "E"}, discoveryOrder(recs))
	final := recs[len(recs)-1]
	assert.False(t, final.Visited["A"])
	assert.False(t, final.Visited["C"])
}

func TestTrace_IsolatedStart(t *testing.T) {
	g := core.Graph{Nodes: []core.Node{{ID: "X"}}}
	recs, err := bfs.Trace(g)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, bfs.EventSeed, recs[0].Event)
	assert.Equal(t, bfs.EventDequeue, recs[1].Event)
}

func TestTrace_SnapshotsAreIndependent(t *testing.T) {
	recs, err := bfs.Trace(diamond())
	require.NoError(t, err)
	require.Greater(t, len(recs), 3)

	recs[0].Visited["E"] = true
	assert.False(t, recs[1].Visited["E"])

	recs[3].Queue[0] = "corrupted"
	assert.Equal(t, "B", recs[2].Queue[0])
}

func TestTrace_Hooks(t *testing.T) {
	var enq, deq []string
	recs, err := bfs.Trace(diamond(),
		bfs.WithOnEnqueue(func(id string) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, enq)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, deq)
}
