package writer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/taskprep/causalgraph"
)

// writeCausalGraph emits the number of relevant Variables, then one line
// per relevant Variable, in level order: its level, the number of its
// outgoing causal edges, and the levels of every Variable it has a
// causal edge into. Like the DTG section, the original's CausalGraph
// wire format was not among the retrieved sources, so this reuses the
// same "count-then-records" shape the rest of the grammar follows,
// reading edges straight back off the core.Graph the causal graph
// stage built.
func writeCausalGraph(w io.Writer, cg *causalgraph.CausalGraph) {
	levelOf := make(map[string]int, len(cg.Ordering))
	for _, v := range cg.Ordering {
		levelOf[strconv.Itoa(v.Index)] = v.Level
	}

	fmt.Fprintln(w, len(cg.Ordering))
	for _, v := range cg.Ordering {
		targets, _ := cg.Graph.NeighborIDs(strconv.Itoa(v.Index))
		fmt.Fprint(w, v.Level, " ", len(targets))
		for _, t := range targets {
			fmt.Fprint(w, " ", levelOf[t])
		}
		fmt.Fprintln(w)
	}
}
