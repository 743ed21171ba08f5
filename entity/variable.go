// Package entity defines the in-memory representation of a grounded,
// multi-valued planning task: Variables, State, Prevails, PrePosts,
// Operators, Axioms, goals, and the surrounding Task envelope.
//
// Later pipeline stages (causalgraph, stripper, dtg, sggen, writer) store
// stable references to Variables — inside Prevails, PrePosts, EffConds and
// downstream graphs — so the container holding them must guarantee
// identity stability for the lifetime of a run. VariableArena provides
// that guarantee: it preallocates its backing slice to its final length up
// front and only ever hands out pointers into that slice, never copies.
package entity

import "errors"

// ErrVariableIndexOutOfRange is returned when a variable index falls
// outside the arena's bounds.
var ErrVariableIndexOutOfRange = errors.New("entity: variable index out of range")

// Variable is one multi-valued state variable of the grounded task.
type Variable struct {
	// Index is the variable's position in the original input stream. It is
	// the variable's stable identity and never changes.
	Index int

	// Name is the variable's display name.
	Name string

	// Range is the number of discrete values the variable can take, or -1
	// if the variable is numeric (continuous-valued fluent).
	Range int

	// AxiomLayer is -1 for fluents, >=0 for derived (axiom) variables.
	// Preserved verbatim through the whole pipeline; never interpreted by
	// analysis here.
	AxiomLayer int

	// IsTotalTime marks the distinguished time-accumulator variable.
	IsTotalTime bool

	// Level is the variable's rank in the elimination order chosen by the
	// causal graph, or -1 if the variable was pruned as irrelevant. Unset
	// (pre-analysis) variables also read -1.
	Level int
}

// Numeric reports whether v is a numeric (continuous) variable.
func (v *Variable) Numeric() bool {
	return v.Range < 0
}

// Pruned reports whether v was dropped by relevance analysis.
func (v *Variable) Pruned() bool {
	return v.Level < 0
}

// VariableArena owns the Variable storage for one task. It is allocated
// once, to its final size, so that every *Variable handed out remains
// valid and stable for the lifetime of the run — no subsequent append can
// ever invalidate a previously returned pointer.
type VariableArena struct {
	vars []Variable
}

// NewVariableArena allocates an arena for exactly n variables. Callers
// must know the variable count up front (the Reader does, from the
// begin_variables section header) before any Variable is initialized.
func NewVariableArena(n int) *VariableArena {
	return &VariableArena{vars: make([]Variable, n)}
}

// Init sets the fields of the i-th variable and returns its stable handle.
// Level starts at -1 (unassigned) until the causal graph runs.
func (a *VariableArena) Init(i int, name string, rng, axiomLayer int, isTotalTime bool) (*Variable, error) {
	if i < 0 || i >= len(a.vars) {
		return nil, ErrVariableIndexOutOfRange
	}
	v := &a.vars[i]
	v.Index = i
	v.Name = name
	v.Range = rng
	v.AxiomLayer = axiomLayer
	v.IsTotalTime = isTotalTime
	v.Level = -1
	return v, nil
}

// Get returns the stable handle for variable index i.
func (a *VariableArena) Get(i int) (*Variable, error) {
	if i < 0 || i >= len(a.vars) {
		return nil, ErrVariableIndexOutOfRange
	}
	return &a.vars[i], nil
}

// Len returns the number of variables in the arena.
func (a *VariableArena) Len() int {
	return len(a.vars)
}

// All returns stable handles to every variable, in input-index order.
func (a *VariableArena) All() []*Variable {
	out := make([]*Variable, len(a.vars))
	for i := range a.vars {
		out[i] = &a.vars[i]
	}
	return out
}
