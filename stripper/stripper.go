// Package stripper removes the pieces of a grounded task that relevance
// pruning made unnecessary: effects on pruned Variables, and the
// Operators/Axioms left with nothing to do once those effects are gone.
package stripper

import (
	"fmt"
	"io"

	"github.com/katalvlaran/taskprep/entity"
)

// Strip rewrites task's Operators and Axioms in place: for each
// Operator, PrePosts whose target Variable was pruned (Level == -1) are
// removed (PreBlocks are left untouched, matching the original's own
// asymmetry — it only ever strips pre_post, never pre_block); an
// Operator left with no PrePosts is dropped entirely. The same rule
// drops an Axiom whose head effect targets a pruned Variable. Order is
// preserved among surviving PrePosts and surviving Operators/Axioms.
//
// Before/after operator and axiom counts are written to diag as
// free-form diagnostic lines; pass io.Discard to suppress them.
func Strip(task *entity.Task, diag io.Writer) {
	oldOpCount := len(task.Operators)
	keptOps := task.Operators[:0]
	for _, op := range task.Operators {
		op.PrePosts = stripPrePosts(op.PrePosts)
		if len(op.PrePosts) > 0 {
			keptOps = append(keptOps, op)
		}
	}
	task.Operators = keptOps
	fmt.Fprintf(diag, "%d of %d operators necessary.\n", len(task.Operators), oldOpCount)

	oldAxCount := len(task.Axioms)
	keptAxioms := task.Axioms[:0]
	for _, ax := range task.Axioms {
		if ax.Effect.Var.Level != -1 {
			keptAxioms = append(keptAxioms, ax)
		}
	}
	task.Axioms = keptAxioms
	fmt.Fprintf(diag, "%d of %d axioms necessary.\n", len(task.Axioms), oldAxCount)
}

func stripPrePosts(pp []entity.PrePost) []entity.PrePost {
	kept := pp[:0]
	for _, p := range pp {
		if p.Var.Level != -1 {
			kept = append(kept, p)
		}
	}
	return kept
}
