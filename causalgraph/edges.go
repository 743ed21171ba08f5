// Package causalgraph builds the dependency graph between a task's
// Variables, runs relevance pruning against the goal, and assigns each
// surviving Variable a level — its rank in a deterministic elimination
// order that later stages (DTG, successor generator, writer) consume.
package causalgraph

import "github.com/katalvlaran/taskprep/entity"

// adjacency is a plain outgoing-edge set keyed by Variable.Index,
// deduplicated and self-loop free. It backs both the full pre-pruning
// edge set (used for relevance propagation) and the induced subgraph
// over relevant variables (used for SCC/level assignment).
type adjacency map[int]map[int]struct{}

func (a adjacency) add(u, v int) {
	if u == v {
		return
	}
	if a[u] == nil {
		a[u] = make(map[int]struct{})
	}
	a[u][v] = struct{}{}
}

// deriveEdges builds the full operator/axiom-induced edge set described
// in SPEC_FULL.md §4.C: for every effect target in an Operator, an edge
// from every operator-wide condition variable (prevails, plus each
// PrePost/PreBlock's own variable when its pre is an ordinary value
// condition) and from that effect's own EffConds. Axioms contribute
// edges from every body variable to the head.
func deriveEdges(task *entity.Task) adjacency {
	adj := make(adjacency)

	for _, op := range task.Operators {
		var condVars []int
		for _, pr := range op.Prevails {
			condVars = append(condVars, pr.Var.Index)
		}
		for _, pp := range op.PrePosts {
			if pp.Pre.Kind == entity.CondValue {
				condVars = append(condVars, pp.Var.Index)
			}
		}
		for _, pp := range op.PreBlocks {
			if pp.Pre.Kind == entity.CondValue {
				condVars = append(condVars, pp.Var.Index)
			}
		}

		applyEffect := func(pp entity.PrePost) {
			target := pp.Var.Index
			for _, u := range condVars {
				adj.add(u, target)
			}
			for _, ec := range pp.EffConds {
				adj.add(ec.Var.Index, target)
			}
		}
		for _, pp := range op.PrePosts {
			applyEffect(pp)
		}
		for _, pp := range op.PreBlocks {
			applyEffect(pp)
		}
	}

	for _, ax := range task.Axioms {
		target := ax.Effect.Var.Index
		for _, c := range ax.Conditions {
			adj.add(c.Var.Index, target)
		}
	}

	return adj
}
