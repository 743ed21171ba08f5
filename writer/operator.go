package writer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/taskprep/entity"
)

// writeOperator emits one begin_operator/end_operator record with every
// condition and effect translated from input index to level, pre_block
// effects listed separately after pre_post, and any runtime-cost
// expression's "!i!" markers rewritten to ":level(i):".
func writeOperator(w io.Writer, op entity.Operator, arena *entity.VariableArena) {
	fmt.Fprintln(w, "begin_operator")
	fmt.Fprintln(w, op.Name)

	fmt.Fprintln(w, len(op.Prevails))
	for _, p := range op.Prevails {
		fmt.Fprintln(w, p.Var.Level, p.Value)
	}

	fmt.Fprintln(w, len(op.PrePosts))
	for _, pp := range op.PrePosts {
		writePrePostConditions(w, pp)
		writePrePostEffect(w, pp, arena)
	}

	fmt.Fprintln(w, len(op.PreBlocks))
	for _, pb := range op.PreBlocks {
		writePrePostConditions(w, pb)
		fmt.Fprintln(w, pb.Var.Level, pb.Pre.Wire(), pb.Post)
	}

	fmt.Fprintln(w, op.Cost)
	if op.HasRuntimeCost {
		fmt.Fprintln(w, "runtime")
		fmt.Fprintln(w, rewriteRuntimeTokens(op.RuntimeCost, arena))
	} else {
		fmt.Fprintln(w, "no-run")
		fmt.Fprintln(w, "-")
	}
	fmt.Fprintln(w, "end_operator")
}

func writePrePostConditions(w io.Writer, pp entity.PrePost) {
	fmt.Fprintln(w, len(pp.EffConds))
	for _, ec := range pp.EffConds {
		fmt.Fprintln(w, ec.Var.Level, ec.Value)
	}
}

func writePrePostEffect(w io.Writer, pp entity.PrePost, arena *entity.VariableArena) {
	if pp.Pre.Kind != entity.CondNumericOp {
		fmt.Fprintln(w, pp.Var.Level, pp.Pre.Wire(), pp.Post)
		return
	}
	if pp.HasRuntimeCostEffect {
		fmt.Fprintln(w, pp.Var.Level, pp.Pre.Wire(), pp.Post, rewriteRuntimeTokens(pp.RuntimeCostEffect, arena))
	} else {
		fmt.Fprintln(w, pp.Var.Level, pp.Pre.Wire(), pp.Post, strconv.FormatFloat(pp.Cost, 'g', -1, 64))
	}
}

// writeAxiom emits one begin_rule/end_rule record, the symmetric
// counterpart of readAxiom; see that function's comment for why this
// framing was invented rather than ported.
func writeAxiom(w io.Writer, ax entity.Axiom) {
	fmt.Fprintln(w, "begin_rule")
	fmt.Fprintln(w, len(ax.Conditions))
	for _, c := range ax.Conditions {
		fmt.Fprintln(w, c.Var.Level, c.Value)
	}
	fmt.Fprintln(w, ax.Effect.Var.Level, ax.Effect.Pre.Wire(), ax.Effect.Post)
	fmt.Fprintln(w, "end_rule")
}
