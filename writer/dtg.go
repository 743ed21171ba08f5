package writer

import (
	"fmt"
	"io"

	"github.com/katalvlaran/taskprep/dtg"
)

// writeDTG emits one DomainTransitionGraph: the owning Variable's
// level, its node set, then its arcs — each as a "from to condition-count
// operator-name" line followed by one "level value" line per condition. The original's
// DomainTransitionGraph wire format was not among the retrieved
// sources; this shape was chosen to carry exactly the fields Build
// populates, symmetric with how the rest of this format lists a count
// before a run of fixed-shape records.
func writeDTG(w io.Writer, g *dtg.DomainTransitionGraph) {
	fmt.Fprintln(w, g.Variable.Level)
	fmt.Fprintln(w, len(g.Nodes))
	for _, n := range g.Nodes {
		fmt.Fprintln(w, n)
	}
	fmt.Fprintln(w, len(g.Arcs))
	for _, a := range g.Arcs {
		fmt.Fprintln(w, a.From, a.To, len(a.Conditions), a.Operator)
		for _, c := range a.Conditions {
			fmt.Fprintln(w, c.Var.Level, c.Value)
		}
	}
}
