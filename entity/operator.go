package entity

// Prevail is a condition that must hold throughout an operator's
// application and that the operator itself never changes: variable var
// must equal value for the whole duration.
type Prevail struct {
	Var   *Variable
	Value int
}

// EffCond guards a conditional effect: the effect only fires if Var
// equals Value in the state the operator is applied to.
type EffCond struct {
	Var   *Variable
	Value int
}

// PrePost is one effect record: Var transitions from Pre to Post,
// optionally guarded by EffConds, optionally carrying a runtime cost
// expression (meaningful only for numeric-op effects).
type PrePost struct {
	Var  *Variable
	Pre  Condition
	Post int

	// Cost is the float effect-local cost, meaningful for numeric-op
	// effects that did not carry a runtime expression.
	Cost float64

	// Conditional marks this as a guarded effect (EffConds is non-empty).
	Conditional bool
	EffConds    []EffCond

	// RuntimeCostEffect holds a verbatim cost expression (e.g. a
	// parenthesised arithmetic expression referencing other variables via
	// !i! tokens) attached to a numeric-op effect. HasRuntimeCostEffect
	// distinguishes "no expression" from an expression that happens to be
	// empty.
	RuntimeCostEffect    string
	HasRuntimeCostEffect bool
}

// Operator is one grounded action: a name, prevail conditions, a list of
// ordinary effects, a list of blocking effects (Pre in {PreBlockIncrease,
// PreBlockDecrease}), a base cost, and an optional runtime-cost
// expression for the operator as a whole.
//
// Invariant after stripping: every PrePost target of a surviving
// Operator has Level >= 0, and PrePosts is non-empty (operators whose
// surviving effect list is empty are dropped entirely — see package
// stripper). PreBlocks are not stripped, so a surviving Operator's
// PreBlocks may still target a pruned Variable (Level == -1).
type Operator struct {
	Name      string
	Prevails  []Prevail
	PrePosts  []PrePost
	PreBlocks []PrePost

	Cost float64

	HasRuntimeCost bool
	RuntimeCost    string
}

// Axiom has the same condition/effect shape as Operator for the purposes
// of causal-graph dependency analysis and stripping, but carries a single
// head effect rather than an effect list: Conditions is the axiom body
// (var=value facts that must all hold), Effect is the derived fact it
// produces.
type Axiom struct {
	Conditions []Prevail
	Effect     PrePost
}
