package causalgraph

import (
	"sort"

	"github.com/katalvlaran/taskprep/entity"
)

// assignLevels computes the deterministic elimination order over the
// relevant Variables named by relevantIdx, writes the resulting rank
// into each Variable's Level field, and reports whether the induced
// subgraph was acyclic (no SCC of size > 1).
//
// Cycles are broken by collapsing each SCC into one condensation node
// and running Kahn's algorithm over the condensation DAG, picking among
// ready nodes the one whose smallest member variable index is smallest
// (SPEC_FULL.md §4.C); within a component, variables are leveled in
// ascending input-index order. This tie-break is what makes two runs on
// byte-identical input produce byte-identical variable orderings.
func assignLevels(relevantIdx []int, adj adjacency, arena *entity.VariableArena) (ordering []*entity.Variable, acyclic bool, err error) {
	comps := tarjan(relevantIdx, adj)

	acyclic = true
	for _, c := range comps {
		if len(c) > 1 {
			acyclic = false
			break
		}
	}

	compOf := make(map[int]int, len(relevantIdx))
	for ci, c := range comps {
		for _, v := range c {
			compOf[v] = ci
		}
	}

	nComp := len(comps)
	succ := make([]map[int]struct{}, nComp)
	indeg := make([]int, nComp)
	for i := range succ {
		succ[i] = make(map[int]struct{})
	}
	for u, tos := range adj {
		cu, ok := compOf[u]
		if !ok {
			continue
		}
		for v := range tos {
			cv, ok2 := compOf[v]
			if !ok2 || cv == cu {
				continue
			}
			if _, exists := succ[cu][cv]; !exists {
				succ[cu][cv] = struct{}{}
				indeg[cv]++
			}
		}
	}

	smallestVar := make([]int, nComp)
	for i, c := range comps {
		smallestVar[i] = c[0] // comps[i] is sorted ascending
	}

	var ready []int
	for i := 0; i < nComp; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	level := 0
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return smallestVar[ready[i]] < smallestVar[ready[j]] })
		ci := ready[0]
		ready = ready[1:]

		for _, varIdx := range comps[ci] {
			v, gerr := arena.Get(varIdx)
			if gerr != nil {
				return nil, false, gerr
			}
			v.Level = level
			level++
			ordering = append(ordering, v)
		}

		var newlyReady []int
		for cv := range succ[ci] {
			indeg[cv]--
			if indeg[cv] == 0 {
				newlyReady = append(newlyReady, cv)
			}
		}
		sort.Ints(newlyReady)
		ready = append(ready, newlyReady...)
	}

	return ordering, acyclic, nil
}
