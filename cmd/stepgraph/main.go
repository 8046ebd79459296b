// stepgraph is a demo driver for the trace engine: it generates (or
// loads) a directed graph, runs one of the three trace generators, and
// prints every record — one line per observable step — so the traces can
// be eyeballed or piped into external tooling. Optionally writes the
// graph as DOT and/or YAML.
package main

import (
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/stepgraph/stepgraph/bfs"
	"github.com/stepgraph/stepgraph/builder"
	"github.com/stepgraph/stepgraph/core"
	"github.com/stepgraph/stepgraph/dfs"
	"github.com/stepgraph/stepgraph/dot"
	"github.com/stepgraph/stepgraph/graphio"
	"github.com/stepgraph/stepgraph/topo"
)

func main() {
	var (
		algo      = flag.String("algo", "topo", "algorithm to trace: topo, dfs, or bfs")
		nodeCount = flag.Int("n", 8, "generated node count (3-20)")
		edgeCount = flag.Int("m", 12, "generated edge count target (1-30)")
		seed      = flag.Int64("seed", 0, "RNG seed for generation; 0 means time-seeded")
		graphFile = flag.String("graph", "", "load the graph from this YAML file instead of generating")
		start     = flag.String("start", "", "start node for dfs/bfs (default: first node)")
		dotFile   = flag.String("dot", "", "also write the graph as DOT to this file")
		saveFile  = flag.String("save", "", "also write the graph as YAML to this file")
	)
	cli.ArgsHelp = "" // flags only, no positional arguments
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.Main() // parses flags, validates args, handles version/help

	g, err := obtainGraph(*graphFile, *nodeCount, *edgeCount, *seed)
	if err != nil {
		log.Fatalf("graph setup: %v", err)
	}
	log.Infof("graph ready: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	if *dotFile != "" {
		if err = os.WriteFile(*dotFile, dot.Marshal(g), 0o644); err != nil {
			log.Fatalf("writing DOT: %v", err)
		}
		log.Infof("wrote DOT to %s", *dotFile)
	}
	if *saveFile != "" {
		if err = saveYAML(*saveFile, g); err != nil {
			log.Fatalf("writing YAML: %v", err)
		}
		log.Infof("wrote YAML to %s", *saveFile)
	}

	if err = runTrace(*algo, g, *start); err != nil {
		log.Fatalf("%v", err)
	}
}

// obtainGraph loads a YAML fixture when path is set, otherwise generates
// a random DAG with the requested shape.
func obtainGraph(path string, n, m int, seed int64) (core.Graph, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return core.Graph{}, err
		}
		defer f.Close()

		return graphio.Load(f)
	}

	opts := []builder.Option{}
	if seed != 0 {
		opts = append(opts, builder.WithSeed(seed))
	}

	return builder.RandomDAG(n, m, opts...)
}

// saveYAML writes g as a YAML fixture to path.
func saveYAML(path string, g core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graphio.Save(f, g)
}

// runTrace dispatches on the algorithm name and prints one line per
// trace record.
func runTrace(algo string, g core.Graph, start string) error {
	switch algo {
	case "topo":
		if dfs.HasCycle(g) {
			log.Warnf("graph contains a cycle: the topological trace will be partial")
		}
		res := topo.Trace(g)
		for i, r := range res.Records {
			fmt.Printf("%3d remove %-4s next=%v\n", i, r.Removed, r.Ready)
		}
		if !res.Complete {
			fmt.Printf("    unordered: %v\n", res.Unordered)
		}
		fmt.Printf("order: %v complete=%t\n", res.Order, res.Complete)
	case "dfs":
		recs, err := dfs.Trace(g, dfs.WithStart(start))
		if err != nil {
			return err
		}
		for i, r := range recs {
			fmt.Printf("%3d %-5s %-4s stack=%v\n", i, r.Phase, r.Node, r.Stack)
		}
	case "bfs":
		recs, err := bfs.Trace(g, bfs.WithStart(start))
		if err != nil {
			return err
		}
		for i, r := range recs {
			fmt.Printf("%3d %-7s %-4s queue=%v\n", i, r.Event, r.Node, r.Queue)
		}
	default:
		return fmt.Errorf("unknown -algo %q (want topo, dfs, or bfs)", algo)
	}

	return nil
}
