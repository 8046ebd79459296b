package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepgraph/stepgraph/core"
	"github.com/stepgraph/stepgraph/dot"
)

func fixture() core.Graph {
	return core.Graph{
		Nodes: []core.Node{{ID: "B", Label: "Bee"}, {ID: "A"}},
		Edges: []core.Edge{{From: "B", To: "A"}},
	}
}

func TestMarshal_Shape(t *testing.T) {
	out := string(dot.Marshal(fixture()))

	assert.True(t, strings.HasPrefix(out, "digraph \"stepgraph\" {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"B" -> "A";`)
	assert.Contains(t, out, `"B" [label="Bee"];`)
	assert.Contains(t, out, `"A" [label="A"];`, "empty label falls back to the ID")
}

func TestMarshal_NodesSorted(t *testing.T) {
	out := string(dot.Marshal(fixture()))

	// A precedes B despite B's earlier insertion.
	assert.Less(t, strings.Index(out, `"A" [`), strings.Index(out, `"B" [`))
}

func TestMarshal_Highlight(t *testing.T) {
	out := string(dot.Marshal(fixture(), dot.WithHighlight("A")))

	assert.Contains(t, out, `"A" [label="A", style=filled, fillcolor="lightblue"];`)
	assert.NotContains(t, out, `"B" [label="Bee", style=filled`)
}

func TestMarshal_CustomName(t *testing.T) {
	out := string(dot.Marshal(fixture(), dot.WithName("demo")))

	assert.True(t, strings.HasPrefix(out, `digraph "demo" {`))
}

func TestMarshal_Deterministic(t *testing.T) {
	assert.Equal(t, dot.Marshal(fixture()), dot.Marshal(fixture()))
}
