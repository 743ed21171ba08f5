package dtg

import (
	"strconv"

	"github.com/katalvlaran/taskprep/bfs"
	"github.com/katalvlaran/taskprep/core"
)

// StronglyConnected reports whether every node of g is reachable from
// every other — a finite-range variable's DTG qualifies iff a forward
// BFS and a backward BFS from an arbitrary start node each reach every
// node. Numeric variables (single aggregate node) and variables with
// fewer than two nodes are trivially strongly connected.
//
// Built on the same core.Graph the causal graph stage uses, walked
// with the bfs package rather than a hand-rolled queue.
func (g *DomainTransitionGraph) StronglyConnected() bool {
	if len(g.Nodes) < 2 {
		return true
	}

	forward := core.NewGraph(core.WithDirected(true))
	backward := core.NewGraph(core.WithDirected(true))
	for _, n := range g.Nodes {
		id := strconv.Itoa(n)
		forward.AddVertex(id)
		backward.AddVertex(id)
	}
	for _, a := range g.Arcs {
		from, to := strconv.Itoa(a.From), strconv.Itoa(a.To)
		if from == to {
			continue
		}
		if !forward.HasEdge(from, to) {
			forward.AddEdge(from, to, 0)
		}
		if !backward.HasEdge(to, from) {
			backward.AddEdge(to, from, 0)
		}
	}

	start := strconv.Itoa(g.Nodes[0])
	return reachesAll(forward, start, len(g.Nodes)) && reachesAll(backward, start, len(g.Nodes))
}

// reachesAll runs bfs.BFS from start over g and reports whether it
// visited every one of wantCount vertices.
func reachesAll(g *core.Graph, start string, wantCount int) bool {
	result, err := bfs.BFS(g, start)
	if err != nil {
		return false
	}
	return len(result.Order) == wantCount
}
