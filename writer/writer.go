// Package writer emits a fully analyzed Task back out in the wire
// format of the input grammar, enriched with the artifacts the rest of
// the pipeline produced: level-ordered Variables, a tractability
// Boolean, the successor generator trie, one domain transition graph
// per Variable, and the causal graph.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/taskprep/causalgraph"
	"github.com/katalvlaran/taskprep/dtg"
	"github.com/katalvlaran/taskprep/entity"
	"github.com/katalvlaran/taskprep/sggen"
)

// Result bundles the artifacts Write needs beyond the Task itself —
// everything prepro's pipeline stages produced.
type Result struct {
	SolvablePoly bool
	CausalGraph  *causalgraph.CausalGraph
	DTGs         []*dtg.DomainTransitionGraph
	Trie         sggen.Node
}

// Write serializes task and res to w in output-grammar order: name,
// solvable-poly Boolean, metric, variables/state/shared/goal/timed_goal
// in level order, modules, operators, axioms, then the successor
// generator, one DTG per Variable, and the causal graph.
func Write(w io.Writer, task *entity.Task, res Result) error {
	bw := bufio.NewWriter(w)

	name := task.Name
	if name == "" {
		name = "gen"
	}
	fmt.Fprintln(bw, name)
	fmt.Fprintln(bw, boolDigit(res.SolvablePoly))

	writeMetric(bw, task.Metric)

	ordering := res.CausalGraph.Ordering
	writeVariables(bw, ordering)
	writeState(bw, task.InitialState, ordering)
	writeShared(bw, task.SharedVars)
	writeGoal(bw, task.Goals)
	writeTimedGoal(bw, task.TimedGoals, ordering)
	writeModules(bw, task.Modules)

	fmt.Fprintln(bw, len(task.Operators))
	for _, op := range task.Operators {
		writeOperator(bw, op, task.Arena)
	}

	fmt.Fprintln(bw, len(task.Axioms))
	for _, ax := range task.Axioms {
		writeAxiom(bw, ax)
	}

	fmt.Fprintln(bw, "begin_SG")
	writeSGNode(bw, res.Trie)
	fmt.Fprintln(bw, "end_SG")

	for _, g := range res.DTGs {
		fmt.Fprintln(bw, "begin_DTG")
		writeDTG(bw, g)
		fmt.Fprintln(bw, "end_DTG")
	}

	fmt.Fprintln(bw, "begin_CG")
	writeCausalGraph(bw, res.CausalGraph)
	fmt.Fprintln(bw, "end_CG")

	return bw.Flush()
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// writeMetric reverses readMetric's dash-joining: the Reader turns
// "(a b c) end" into "-(a-b-c)", so the Writer splits on "-" and
// re-joins with spaces before appending the "end" terminator, matching
// generate_cpp_input's substr/ReplaceAll reconstruction.
func writeMetric(w io.Writer, metric string) {
	fmt.Fprintln(w, "begin_metric")
	spaced := strings.ReplaceAll(metric, "-", " ")
	fmt.Fprintln(w, strings.TrimPrefix(spaced, " ")+"end")
	fmt.Fprintln(w, "end_metric")
}

func writeVariables(w io.Writer, ordering []*entity.Variable) {
	fmt.Fprintln(w, "begin_variables")
	fmt.Fprintln(w, len(ordering))
	for _, v := range ordering {
		fmt.Fprintln(w, v.Name, v.Range, v.AxiomLayer, boolDigit(v.IsTotalTime))
	}
	fmt.Fprintln(w, "end_variables")
}

func writeState(w io.Writer, state *entity.State, ordering []*entity.Variable) {
	fmt.Fprintln(w, "begin_state")
	for _, v := range ordering {
		d := state.Value(v)
		if d == -1 {
			fmt.Fprintln(w, d, state.NumericValue(v))
		} else {
			fmt.Fprintln(w, d)
		}
	}
	fmt.Fprintln(w, "end_state")
}

// writeShared emits shared vars ordered ascending by Level, matching
// helper_functions.cc's ordered_shared_values construction (indexed by
// level, then scanned in order) rather than the order they were read in.
func writeShared(w io.Writer, shared []*entity.Variable) {
	sorted := append([]*entity.Variable(nil), shared...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	fmt.Fprintln(w, "begin_shared")
	fmt.Fprintln(w, len(sorted))
	for _, v := range sorted {
		fmt.Fprintln(w, v.Name, v.Level)
	}
	fmt.Fprintln(w, "end_shared")
}

// writeGoal emits goal facts ordered ascending by Variable Level,
// matching helper_functions.cc's i = 0..var_count scan rather than the
// order goals were read in.
func writeGoal(w io.Writer, goals []entity.Goal) {
	sorted := append([]entity.Goal(nil), goals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Var.Level < sorted[j].Var.Level })

	fmt.Fprintln(w, "begin_goal")
	fmt.Fprintln(w, len(sorted))
	for _, g := range sorted {
		fmt.Fprintln(w, g.Var.Level, g.Value)
	}
	fmt.Fprintln(w, "end_goal")
}

// writeTimedGoal deliberately emits the singular "begin_timed_goal"/
// "end_timed_goal" magic words even though helper_functions.cc's own
// generate_cpp_input writes the plural "begin_timed_goals"/
// "end_timed_goals" — the original's reader and writer disagree with
// each other on this token. read_timed_goal (helper_functions.cc:109)
// checks the singular form, and this repo's own reader does too, so
// the singular form is kept here for round-trip compatibility with it.
func writeTimedGoal(w io.Writer, timedGoals []entity.TimedGoal, ordering []*entity.Variable) {
	fmt.Fprintln(w, "begin_timed_goal")
	fmt.Fprintln(w, len(timedGoals))
	for _, tg := range timedGoals {
		fmt.Fprintln(w, tg.Var.Level, tg.Value, len(tg.Facts))
		for _, f := range tg.Facts {
			fmt.Fprintln(w, f.Var.Level, f.Value, f.Time)
		}
	}
	fmt.Fprintln(w, "end_timed_goal")
}

func writeModules(w io.Writer, modules []entity.Module) {
	fmt.Fprintln(w, "begin_modules")
	fmt.Fprintln(w, len(modules))
	for _, m := range modules {
		fmt.Fprintln(w, m.Name)
		fmt.Fprintln(w, len(m.Functions))
		for _, f := range m.Functions {
			fmt.Fprintln(w, f.Name)
			fmt.Fprintln(w, len(f.Args))
			for _, a := range f.Args {
				fmt.Fprintln(w, a.Name, a.Type)
			}
		}
	}
	fmt.Fprintln(w, "end_modules")
}

// rewriteRuntimeTokens replaces every "!i!" run in expr with ":level(i):",
// where i is the referenced Variable's input index and level(i) is that
// Variable's assigned Level, looked up through arena. Mirrors the
// original's substr/stringstream loop over successive "!" pairs.
func rewriteRuntimeTokens(expr string, arena *entity.VariableArena) string {
	var b strings.Builder
	rest := expr
	for {
		start := strings.IndexByte(rest, '!')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		rest = rest[start+1:]
		end := strings.IndexByte(rest, '!')
		if end < 0 {
			// Unterminated marker: emit verbatim rather than silently
			// dropping input.
			b.WriteByte('!')
			b.WriteString(rest)
			break
		}
		idxTok := rest[:end]
		rest = rest[end+1:]
		idx, err := strconv.Atoi(idxTok)
		if err != nil {
			b.WriteByte('!')
			b.WriteString(idxTok)
			b.WriteByte('!')
			continue
		}
		v, err := arena.Get(idx)
		if err != nil {
			b.WriteByte('!')
			b.WriteString(idxTok)
			b.WriteByte('!')
			continue
		}
		b.WriteString(":")
		b.WriteString(strconv.Itoa(v.Level))
		b.WriteString(":")
	}
	return b.String()
}
