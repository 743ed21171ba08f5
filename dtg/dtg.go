// Package dtg builds one domain transition graph per relevant Variable:
// a small graph whose nodes are the variable's possible values and
// whose arcs are the value transitions operators can cause.
package dtg

import "github.com/katalvlaran/taskprep/entity"

// Arc is one labeled value transition contributed by a single Operator
// effect: From -> To, guarded by the operator's own prevails plus that
// effect's EffConds (combined here since both are plain (Variable,
// value) guards once past the entity-model boundary).
type Arc struct {
	From, To   int
	Operator   string
	Conditions []entity.Prevail
}

// DomainTransitionGraph is the per-Variable transition graph: its node
// set (the value range 0..range-1 for finite-domain variables, or the
// single -1 aggregate node for numeric ones; finite-domain variables get
// no -1 node) and the arcs operators contribute between those nodes.
type DomainTransitionGraph struct {
	Variable *entity.Variable
	Nodes    []int
	Arcs     []Arc
}

// Build constructs one DomainTransitionGraph per Variable in ordering
// (the level-ordered, relevant-only Variable list the causal graph
// produced), from both Operator and Axiom effects — the original's
// build_DTGs consults both. Only ordinary PrePosts are consulted —
// blocking effects (PreBlocks) describe resource bookkeeping, not a
// value transition of their own, so no arc is added for them.
func Build(ordering []*entity.Variable, operators []entity.Operator, axioms []entity.Axiom) []*DomainTransitionGraph {
	graphs := make([]*DomainTransitionGraph, len(ordering))
	index := make(map[int]*DomainTransitionGraph, len(ordering))
	for i, v := range ordering {
		g := &DomainTransitionGraph{Variable: v, Nodes: nodesFor(v)}
		graphs[i] = g
		index[v.Index] = g
	}

	for _, op := range operators {
		for _, pp := range op.PrePosts {
			addArc(index, op.Prevails, op.Name, pp)
		}
	}
	for _, ax := range axioms {
		addArc(index, ax.Conditions, "", ax.Effect)
	}

	return graphs
}

// addArc records the value transition pp describes (guarded by the
// surrounding prevails/conditions plus pp's own EffConds) against the
// DTG of its target Variable, if that Variable survived pruning.
func addArc(index map[int]*DomainTransitionGraph, prevails []entity.Prevail, source string, pp entity.PrePost) {
	g, ok := index[pp.Var.Index]
	if !ok {
		return // target was pruned
	}
	conditions := make([]entity.Prevail, 0, len(prevails)+len(pp.EffConds))
	conditions = append(conditions, prevails...)
	for _, ec := range pp.EffConds {
		conditions = append(conditions, entity.Prevail{Var: ec.Var, Value: ec.Value})
	}

	switch {
	case pp.Pre.Kind == entity.CondValue:
		g.Arcs = append(g.Arcs, Arc{From: pp.Pre.Value, To: pp.Post, Operator: source, Conditions: conditions})
	case pp.Pre.Kind == entity.CondAny:
		for _, from := range g.Nodes {
			g.Arcs = append(g.Arcs, Arc{From: from, To: pp.Post, Operator: source, Conditions: conditions})
		}
	case pp.Pre.Kind == entity.CondNumericOp && g.Variable.Numeric():
		for _, from := range g.Nodes {
			g.Arcs = append(g.Arcs, Arc{From: from, To: pp.Post, Operator: source, Conditions: conditions})
		}
	}
}

// nodesFor returns a Variable's DTG node set: {0,...,range-1} for
// finite-domain variables, or the single aggregate node -1 for numeric
// ones.
func nodesFor(v *entity.Variable) []int {
	if v.Numeric() {
		return []int{-1}
	}
	nodes := make([]int, v.Range)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}
