package causalgraph

import "github.com/katalvlaran/taskprep/entity"

// relevance marks every Variable reachable from a goal or timed-goal
// fact along reversed edges. Seeds are goal variables (relevance
// monotonicity, SPEC_FULL.md §4.C, guarantees a goal Variable is never
// itself pruned, since it seeds its own relevance).
//
// When suppress is true, relevance analysis is skipped entirely and
// every Variable is treated as relevant — the behavior the CLI's extra
// positional argument (do_not_prune_variables) selects.
func relevance(vars []*entity.Variable, adj adjacency, task *entity.Task, suppress bool) map[int]bool {
	relevant := make(map[int]bool, len(vars))
	if suppress {
		for _, v := range vars {
			relevant[v.Index] = true
		}
		return relevant
	}

	var queue []int
	mark := func(idx int) {
		if !relevant[idx] {
			relevant[idx] = true
			queue = append(queue, idx)
		}
	}
	for _, g := range task.Goals {
		mark(g.Var.Index)
	}
	for _, tg := range task.TimedGoals {
		mark(tg.Var.Index)
		for _, f := range tg.Facts {
			mark(f.Var.Index)
		}
	}

	reverse := make(map[int][]int)
	for u, tos := range adj {
		for v := range tos {
			reverse[v] = append(reverse[v], u)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range reverse[v] {
			mark(u)
		}
	}

	return relevant
}
