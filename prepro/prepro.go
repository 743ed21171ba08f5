// Package prepro wires the whole preprocessing pipeline together:
// Reader -> CausalGraph -> Stripper -> DTG builder -> tractability
// probe -> SuccessorGenerator -> Writer, in that order.
package prepro

import (
	"fmt"
	"io"

	"github.com/katalvlaran/taskprep/causalgraph"
	"github.com/katalvlaran/taskprep/dtg"
	"github.com/katalvlaran/taskprep/reader"
	"github.com/katalvlaran/taskprep/sggen"
	"github.com/katalvlaran/taskprep/stripper"
	"github.com/katalvlaran/taskprep/writer"
)

// Options controls the pipeline's optional behaviors.
type Options struct {
	// SuppressRelevance disables relevance pruning entirely — every
	// Variable is treated as relevant. Set by the CLI when an extra
	// argument is given on the command line.
	SuppressRelevance bool
	// Diagnostics receives the progress and count lines the original
	// pipeline prints to stdout. Defaults to io.Discard if nil.
	Diagnostics io.Writer
}

// Run reads a task from r, analyzes it, and writes the enriched result
// to w. It returns the task's name (for CLI output-filename derivation)
// and any fatal error encountered at any stage.
func Run(r io.Reader, w io.Writer, opts Options) (string, error) {
	diag := opts.Diagnostics
	if diag == nil {
		diag = io.Discard
	}

	task, err := reader.Read(r)
	if err != nil {
		return "", fmt.Errorf("prepro: reading task: %w", err)
	}

	fmt.Fprintln(diag, "Building causal graph...")
	cg, err := causalgraph.Build(task, opts.SuppressRelevance)
	if err != nil {
		return task.Name, fmt.Errorf("prepro: building causal graph: %w", err)
	}

	stripper.Strip(task, diag)

	fmt.Fprintln(diag, "Building domain transition graphs...")
	graphs := dtg.Build(cg.Ordering, task.Operators, task.Axioms)
	solvablePoly := dtg.SolvableInPolyTime(cg.Acyclic, graphs)
	fmt.Fprintln(diag, "solvable in poly time", boolDigit(solvablePoly))

	fmt.Fprintln(diag, "Building successor generator...")
	trie := sggen.Build(cg.Ordering, task.Operators)

	fmt.Fprintln(diag, "Writing output...")
	res := writer.Result{
		SolvablePoly: solvablePoly,
		CausalGraph:  cg,
		DTGs:         graphs,
		Trie:         trie,
	}
	if err := writer.Write(w, task, res); err != nil {
		return task.Name, fmt.Errorf("prepro: writing output: %w", err)
	}
	fmt.Fprintln(diag, "done")

	return task.Name, nil
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}
