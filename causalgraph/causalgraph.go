package causalgraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/taskprep/core"
	"github.com/katalvlaran/taskprep/entity"
)

// CausalGraph is the built dependency graph restricted to relevant
// Variables, together with the elimination order and tractability flag
// derived from it. Graph is exposed as a *core.Graph — vertex IDs are
// decimal Variable.Index strings — so the writer can enumerate its
// edges the same way it would any other core.Graph-backed structure.
type CausalGraph struct {
	Graph    *core.Graph
	Ordering []*entity.Variable
	Acyclic  bool
}

// Build derives the causal graph for task, runs relevance pruning
// (unless suppressRelevance is set), and assigns levels to every
// relevant Variable. Pruned Variables are left at Level == -1 and do
// not appear in Graph or Ordering.
func Build(task *entity.Task, suppressRelevance bool) (*CausalGraph, error) {
	vars := task.Variables()
	full := deriveEdges(task)
	relevant := relevance(vars, full, task, suppressRelevance)

	var relevantIdx []int
	for _, v := range vars {
		if relevant[v.Index] {
			relevantIdx = append(relevantIdx, v.Index)
		} else {
			v.Level = -1
		}
	}

	induced := make(adjacency)
	for u, tos := range full {
		if !relevant[u] {
			continue
		}
		for v := range tos {
			if relevant[v] {
				induced.add(u, v)
			}
		}
	}

	ordering, acyclic, err := assignLevels(relevantIdx, induced, task.Arena)
	if err != nil {
		return nil, fmt.Errorf("causalgraph: %w", err)
	}

	g := core.NewGraph(core.WithDirected(true))
	for _, idx := range relevantIdx {
		if err := g.AddVertex(strconv.Itoa(idx)); err != nil {
			return nil, fmt.Errorf("causalgraph: %w", err)
		}
	}
	for u, tos := range induced {
		from := strconv.Itoa(u)
		for v := range tos {
			to := strconv.Itoa(v)
			if g.HasEdge(from, to) {
				continue
			}
			if _, err := g.AddEdge(from, to, 0); err != nil {
				return nil, fmt.Errorf("causalgraph: %w", err)
			}
		}
	}

	return &CausalGraph{Graph: g, Ordering: ordering, Acyclic: acyclic}, nil
}
