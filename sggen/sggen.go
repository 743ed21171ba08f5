// Package sggen builds the successor generator: a decision trie over
// Variables in level order that, given a state, yields exactly the
// Operators applicable in it without scanning every Operator.
package sggen

import (
	"sort"

	"github.com/katalvlaran/taskprep/entity"
)

// Node is one node of the successor-generator trie. The three concrete
// implementations mirror the original's GeneratorEmpty / GeneratorLeaf
// / GeneratorSwitch class hierarchy.
type Node interface {
	// Generate appends to dst every Operator index immediately
	// applicable at this node or below it, given state, and returns the
	// extended slice.
	Generate(state *entity.State, dst []int) []int
}

// EmptyNode carries no operators; Generate is a no-op.
type EmptyNode struct{}

func (EmptyNode) Generate(_ *entity.State, dst []int) []int { return dst }

// LeafNode carries operators whose conditions are all exhausted along
// this path — they are unconditionally applicable once reached.
type LeafNode struct {
	Indices []int
}

func (n LeafNode) Generate(_ *entity.State, dst []int) []int {
	return append(dst, n.Indices...)
}

// SwitchNode branches on one Variable's value: Immediate holds operator
// indices that became applicable exactly at this node; Children[v] is
// the subtrie for state[Var] == v; Default is the subtrie for operators
// that never condition on Var.
type SwitchNode struct {
	Var       *entity.Variable
	Immediate []int
	Children  []Node
	Default   Node
}

func (n *SwitchNode) Generate(state *entity.State, dst []int) []int {
	dst = append(dst, n.Immediate...)
	value := state.Value(n.Var)
	if value >= 0 && value < len(n.Children) {
		dst = n.Children[value].Generate(state, dst)
	}
	return n.Default.Generate(state, dst)
}

// condition is one (Variable, required value) pair drawn from an
// Operator's prevails and ordinary-value PrePosts, used only to drive
// trie construction.
type condition struct {
	v     *entity.Variable
	value int
}

// workItem is one operator's position in the construction walk: which
// operator, and how far into its sorted condition list the recursion
// has already consumed. Carrying the cursor in the work item (rather
// than mutating a shared per-operator iterator, as the original does)
// lets each recursive branch own its partition without aliasing.
type workItem struct {
	opIndex int
	cursor  int
}

// Build constructs the trie over ordering (the level-ordered, relevant
// Variable list the causal graph produced) and operators. Each
// operator's conditions are pre-sorted by (level, value) so the cursor
// walk matches the level-order decision sequence exactly.
func Build(ordering []*entity.Variable, operators []entity.Operator) Node {
	conditions := make([][]condition, len(operators))
	for i, op := range operators {
		var conds []condition
		for _, pr := range op.Prevails {
			conds = append(conds, condition{v: pr.Var, value: pr.Value})
		}
		for _, pp := range op.PrePosts {
			if pp.Pre.Kind == entity.CondValue {
				conds = append(conds, condition{v: pp.Var, value: pp.Pre.Value})
			}
		}
		sort.Slice(conds, func(a, b int) bool {
			if conds[a].v.Level != conds[b].v.Level {
				return conds[a].v.Level < conds[b].v.Level
			}
			return conds[a].value < conds[b].value
		})
		conditions[i] = conds
	}

	work := make([]workItem, len(operators))
	for i := range work {
		work[i] = workItem{opIndex: i}
	}

	return construct(0, work, ordering, conditions)
}

// construct is the direct port of construct_recursive: it partitions
// the operators at work by their next unconsumed condition relative to
// varOrder[switchVarNo], recursing or emitting a Leaf/Empty node.
func construct(switchVarNo int, work []workItem, varOrder []*entity.Variable, conditions [][]condition) Node {
	if len(work) == 0 {
		return EmptyNode{}
	}

	for {
		if switchVarNo == len(varOrder) {
			return LeafNode{Indices: indicesOf(work)}
		}

		switchVar := varOrder[switchVarNo]
		if switchVar.Numeric() || switchVar.Range <= 0 {
			// No operator ever conditions on a numeric variable via an
			// ordinary value-equality pre, so it can never be "interesting"
			// here; skip straight to the next level.
			switchVarNo++
			continue
		}

		childWork := make([][]workItem, switchVar.Range)
		var defaultWork, immediate []workItem
		allImmediate := true
		varInteresting := false

		for _, item := range work {
			conds := conditions[item.opIndex]
			if item.cursor == len(conds) {
				varInteresting = true
				immediate = append(immediate, item)
				continue
			}
			allImmediate = false
			cond := conds[item.cursor]
			if cond.v == switchVar {
				varInteresting = true
				childWork[cond.value] = append(childWork[cond.value], workItem{opIndex: item.opIndex, cursor: item.cursor + 1})
			} else {
				defaultWork = append(defaultWork, item)
			}
		}

		if allImmediate {
			return LeafNode{Indices: indicesOf(immediate)}
		}
		if varInteresting {
			children := make([]Node, switchVar.Range)
			for v := 0; v < switchVar.Range; v++ {
				children[v] = construct(switchVarNo+1, childWork[v], varOrder, conditions)
			}
			def := construct(switchVarNo+1, defaultWork, varOrder, conditions)
			return &SwitchNode{Var: switchVar, Immediate: indicesOf(immediate), Children: children, Default: def}
		}

		// No operator at this node depends on switchVar: skip it without
		// emitting a Switch (trie compaction).
		switchVarNo++
		work = defaultWork
	}
}

func indicesOf(items []workItem) []int {
	if len(items) == 0 {
		return nil
	}
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.opIndex
	}
	return out
}
