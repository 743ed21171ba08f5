package entity

// Task is the full in-memory grounded planning task as produced by the
// Reader and progressively enriched by the rest of the pipeline. Its
// arena transitions monotonically: "levels unassigned" right after
// reading, "levels assigned" after the causal graph runs, "stripped"
// after the stripper runs. Nothing downstream ever writes to an
// earlier-stage field; each stage only adds information (Level,
// relevance) the next stage consumes.
type Task struct {
	// Name is the task's display name, "" if the input said "gen".
	Name string

	// Metric is the raw dash-joined token run from begin_metric/end_metric,
	// with the framing words and the trailing "end" token stripped. See
	// SPEC_FULL.md §3.1 for the exact reconstruction the Writer performs.
	Metric string

	Arena        *VariableArena
	InitialState *State

	// SharedVars holds the destination variable of each begin_shared
	// declaration, mirroring the original's habit of keeping only the
	// second index of each (src, dst) pair.
	SharedVars []*Variable

	Goals      []Goal
	TimedGoals []TimedGoal
	Modules    []Module

	Operators []Operator
	Axioms    []Axiom
}

// Variables returns every Variable in input-index order.
func (t *Task) Variables() []*Variable {
	return t.Arena.All()
}
