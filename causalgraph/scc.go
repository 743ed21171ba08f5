package causalgraph

import "sort"

// tarjanState tracks one vertex's discovery index, low-link value, and
// stack membership during the SCC search — the standard three fields
// Tarjan's algorithm needs, kept here instead of three parallel maps.
type tarjanState struct {
	index, low int
	onStack    bool
}

// tarjan computes the strongly connected components of the subgraph
// induced by members, considering only edges whose both endpoints are
// in members. Components are returned with their variable indices
// sorted ascending; the slice of components itself is in Tarjan's
// natural reverse-topological finishing order (not used by callers,
// which instead re-derive a condensation order — see levels.go).
func tarjan(members []int, adj adjacency) [][]int {
	inSet := make(map[int]struct{}, len(members))
	for _, v := range members {
		inSet[v] = struct{}{}
	}

	order := append([]int(nil), members...)
	sort.Ints(order)

	states := make(map[int]*tarjanState, len(members))
	var stack []int
	var comps [][]int
	counter := 0

	var visit func(v int)
	visit = func(v int) {
		states[v] = &tarjanState{index: counter, low: counter, onStack: true}
		counter++
		stack = append(stack, v)

		var neighbors []int
		for w := range adj[v] {
			if _, ok := inSet[w]; ok {
				neighbors = append(neighbors, w)
			}
		}
		sort.Ints(neighbors)

		for _, w := range neighbors {
			if states[w] == nil {
				visit(w)
				if states[w].low < states[v].low {
					states[v].low = states[w].low
				}
			} else if states[w].onStack && states[w].index < states[v].low {
				states[v].low = states[w].index
			}
		}

		if states[v].low == states[v].index {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				states[w].onStack = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			sort.Ints(comp)
			comps = append(comps, comp)
		}
	}

	for _, v := range order {
		if states[v] == nil {
			visit(v)
		}
	}
	return comps
}
