package reader

import (
	"fmt"
	"io"

	"github.com/katalvlaran/taskprep/entity"
)

// Read parses a complete task description from r, in the order the
// grammar fixes: name, metric, variables, state, shared, goal,
// timed_goal, modules, operators, axioms. Any format error aborts
// immediately with a wrapped ErrMagicMismatch, ErrUnexpectedEOF or
// ErrMalformedNumber.
func Read(r io.Reader) (*entity.Task, error) {
	s := newScanner(r)

	name, err := s.nextToken()
	if err != nil {
		return nil, fmt.Errorf("reading task name: %w", err)
	}
	if name == "gen" {
		name = ""
	}

	metric, err := readMetric(s)
	if err != nil {
		return nil, fmt.Errorf("reading metric: %w", err)
	}

	arena, err := readVariables(s)
	if err != nil {
		return nil, fmt.Errorf("reading variables: %w", err)
	}

	state, err := readState(s, arena)
	if err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}

	shared, err := readShared(s, arena)
	if err != nil {
		return nil, fmt.Errorf("reading shared vars: %w", err)
	}

	goals, err := readGoal(s, arena)
	if err != nil {
		return nil, fmt.Errorf("reading goal: %w", err)
	}

	timedGoals, err := readTimedGoal(s, arena)
	if err != nil {
		return nil, fmt.Errorf("reading timed goal: %w", err)
	}

	modules, err := readModules(s)
	if err != nil {
		return nil, fmt.Errorf("reading modules: %w", err)
	}

	operators, err := readOperators(s, arena)
	if err != nil {
		return nil, fmt.Errorf("reading operators: %w", err)
	}

	axioms, err := readAxioms(s, arena)
	if err != nil {
		return nil, fmt.Errorf("reading axioms: %w", err)
	}

	return &entity.Task{
		Name:         name,
		Metric:       metric,
		Arena:        arena,
		InitialState: state,
		SharedVars:   shared,
		Goals:        goals,
		TimedGoals:   timedGoals,
		Modules:      modules,
		Operators:    operators,
		Axioms:       axioms,
	}, nil
}

// readMetric collects the dash-joined token run between begin_metric and
// the literal token "end", stripping both magic words and the
// terminator. The Writer reverses this reconstruction; see SPEC_FULL.md
// §3.1.
func readMetric(s *scanner) (string, error) {
	if err := s.magic("begin_metric"); err != nil {
		return "", err
	}
	var metric string
	for {
		tok, err := s.nextToken()
		if err != nil {
			return "", err
		}
		if tok == "end" {
			break
		}
		metric = metric + "-" + tok
	}
	if err := s.magic("end_metric"); err != nil {
		return "", err
	}
	return metric, nil
}

func readVariables(s *scanner) (*entity.VariableArena, error) {
	if err := s.magic("begin_variables"); err != nil {
		return nil, err
	}
	count, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	arena := entity.NewVariableArena(count)
	for i := 0; i < count; i++ {
		name, err := s.nextToken()
		if err != nil {
			return nil, err
		}
		rng, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		layer, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		isTotalTime, err := s.nextBool()
		if err != nil {
			return nil, err
		}
		if _, err := arena.Init(i, name, rng, layer, isTotalTime); err != nil {
			return nil, err
		}
	}
	if err := s.magic("end_variables"); err != nil {
		return nil, err
	}
	return arena, nil
}

func readState(s *scanner, arena *entity.VariableArena) (*entity.State, error) {
	if err := s.magic("begin_state"); err != nil {
		return nil, err
	}
	st := entity.NewState(arena.Len())
	for i := 0; i < arena.Len(); i++ {
		v, err := arena.Get(i)
		if err != nil {
			return nil, err
		}
		discrete, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		var numeric float64
		if discrete == -1 {
			numeric, err = s.nextFloat()
			if err != nil {
				return nil, err
			}
		}
		st.Set(v, discrete, numeric)
	}
	if err := s.magic("end_state"); err != nil {
		return nil, err
	}
	return st, nil
}

// readShared mirrors the original's habit of discarding the source
// index and keeping only the destination Variable of each (src, dst)
// pair.
func readShared(s *scanner, arena *entity.VariableArena) ([]*entity.Variable, error) {
	if err := s.magic("begin_shared"); err != nil {
		return nil, err
	}
	count, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	shared := make([]*entity.Variable, 0, count)
	for i := 0; i < count; i++ {
		if _, err := s.nextInt(); err != nil { // src index, discarded
			return nil, err
		}
		dst, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		v, err := arena.Get(dst)
		if err != nil {
			return nil, err
		}
		shared = append(shared, v)
	}
	if err := s.magic("end_shared"); err != nil {
		return nil, err
	}
	return shared, nil
}

func readGoal(s *scanner, arena *entity.VariableArena) ([]entity.Goal, error) {
	if err := s.magic("begin_goal"); err != nil {
		return nil, err
	}
	count, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	goals := make([]entity.Goal, 0, count)
	for i := 0; i < count; i++ {
		varNo, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		val, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		v, err := arena.Get(varNo)
		if err != nil {
			return nil, err
		}
		goals = append(goals, entity.Goal{Var: v, Value: val})
	}
	if err := s.magic("end_goal"); err != nil {
		return nil, err
	}
	return goals, nil
}

func readTimedGoal(s *scanner, arena *entity.VariableArena) ([]entity.TimedGoal, error) {
	if err := s.magic("begin_timed_goal"); err != nil {
		return nil, err
	}
	count, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	timedGoals := make([]entity.TimedGoal, 0, count)
	for i := 0; i < count; i++ {
		varNo, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		val, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		v, err := arena.Get(varNo)
		if err != nil {
			return nil, err
		}
		nFacts, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		facts := make([]entity.TimedFact, 0, nFacts)
		for j := 0; j < nFacts; j++ {
			fvarNo, err := s.nextInt()
			if err != nil {
				return nil, err
			}
			fval, err := s.nextInt()
			if err != nil {
				return nil, err
			}
			ftime, err := s.nextFloat()
			if err != nil {
				return nil, err
			}
			fv, err := arena.Get(fvarNo)
			if err != nil {
				return nil, err
			}
			facts = append(facts, entity.TimedFact{Var: fv, Value: fval, Time: ftime})
		}
		timedGoals = append(timedGoals, entity.TimedGoal{Var: v, Value: val, Facts: facts})
	}
	if err := s.magic("end_timed_goal"); err != nil {
		return nil, err
	}
	return timedGoals, nil
}

func readModules(s *scanner) ([]entity.Module, error) {
	if err := s.magic("begin_modules"); err != nil {
		return nil, err
	}
	mCount, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	modules := make([]entity.Module, 0, mCount)
	for i := 0; i < mCount; i++ {
		mName, err := s.nextToken()
		if err != nil {
			return nil, err
		}
		fCount, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		funcs := make([]entity.ModuleFunction, 0, fCount)
		for j := 0; j < fCount; j++ {
			fName, err := s.nextToken()
			if err != nil {
				return nil, err
			}
			aCount, err := s.nextInt()
			if err != nil {
				return nil, err
			}
			args := make([]entity.ModuleArg, 0, aCount)
			for k := 0; k < aCount; k++ {
				argName, err := s.nextToken()
				if err != nil {
					return nil, err
				}
				argType, err := s.nextToken()
				if err != nil {
					return nil, err
				}
				args = append(args, entity.ModuleArg{Name: argName, Type: argType})
			}
			funcs = append(funcs, entity.ModuleFunction{Name: fName, Args: args})
		}
		modules = append(modules, entity.Module{Name: mName, Functions: funcs})
	}
	if err := s.magic("end_modules"); err != nil {
		return nil, err
	}
	return modules, nil
}

func readOperators(s *scanner, arena *entity.VariableArena) ([]entity.Operator, error) {
	count, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	ops := make([]entity.Operator, 0, count)
	for i := 0; i < count; i++ {
		op, err := readOperator(s, arena)
		if err != nil {
			return nil, fmt.Errorf("operator %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func readAxioms(s *scanner, arena *entity.VariableArena) ([]entity.Axiom, error) {
	count, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	axioms := make([]entity.Axiom, 0, count)
	for i := 0; i < count; i++ {
		ax, err := readAxiom(s, arena)
		if err != nil {
			return nil, fmt.Errorf("axiom %d: %w", i, err)
		}
		axioms = append(axioms, ax)
	}
	return axioms, nil
}
