package reader

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/taskprep/entity"
)

// readOperator parses one begin_operator/end_operator record. Grounded
// on the original Operator(istream&) constructor: prevails, then a
// pre_post run split into ordinary effects and blocking effects by the
// pre sentinel, then a base cost and an optional runtime-cost
// expression.
//
// The pre>=-2 && pre<=-6 numeric-op branch reads its operands in the
// order the grammar documents (var, pre, post, cost-expr) rather than
// the re-read-var order the original source happens to use; both
// describe the same four values, and the grammar's order is what this
// reader and the matching writer agree on.
func readOperator(s *scanner, arena *entity.VariableArena) (entity.Operator, error) {
	if err := s.magic("begin_operator"); err != nil {
		return entity.Operator{}, err
	}
	name, err := s.nextLine()
	if err != nil {
		return entity.Operator{}, err
	}

	prevailCount, err := s.nextInt()
	if err != nil {
		return entity.Operator{}, err
	}
	prevails := make([]entity.Prevail, 0, prevailCount)
	for i := 0; i < prevailCount; i++ {
		varNo, err := s.nextInt()
		if err != nil {
			return entity.Operator{}, err
		}
		val, err := s.nextInt()
		if err != nil {
			return entity.Operator{}, err
		}
		v, err := arena.Get(varNo)
		if err != nil {
			return entity.Operator{}, err
		}
		prevails = append(prevails, entity.Prevail{Var: v, Value: val})
	}

	effectCount, err := s.nextInt()
	if err != nil {
		return entity.Operator{}, err
	}
	var prePosts, preBlocks []entity.PrePost
	for i := 0; i < effectCount; i++ {
		pp, isBlock, err := readPrePost(s, arena)
		if err != nil {
			return entity.Operator{}, err
		}
		if isBlock {
			preBlocks = append(preBlocks, pp)
		} else {
			prePosts = append(prePosts, pp)
		}
	}

	cost, err := s.nextFloat()
	if err != nil {
		return entity.Operator{}, err
	}
	hasRuntime, runtimeCost, err := readRuntimeCostMarker(s)
	if err != nil {
		return entity.Operator{}, err
	}

	if err := s.magic("end_operator"); err != nil {
		return entity.Operator{}, err
	}

	return entity.Operator{
		Name:           name,
		Prevails:       prevails,
		PrePosts:       prePosts,
		PreBlocks:      preBlocks,
		Cost:           cost,
		HasRuntimeCost: hasRuntime,
		RuntimeCost:    runtimeCost,
	}, nil
}

// readPrePost reads one effect record's effect-conditions, variable and
// pre/post pair, classifying it into an ordinary or blocking effect and
// attaching a numeric-op cost expression where the sentinel calls for
// one. The bool return is true for blocking effects (pre.Kind ==
// CondBlock).
func readPrePost(s *scanner, arena *entity.VariableArena) (entity.PrePost, bool, error) {
	effCondCount, err := s.nextInt()
	if err != nil {
		return entity.PrePost{}, false, err
	}
	effConds := make([]entity.EffCond, 0, effCondCount)
	for j := 0; j < effCondCount; j++ {
		cvar, err := s.nextInt()
		if err != nil {
			return entity.PrePost{}, false, err
		}
		cval, err := s.nextInt()
		if err != nil {
			return entity.PrePost{}, false, err
		}
		cv, err := arena.Get(cvar)
		if err != nil {
			return entity.PrePost{}, false, err
		}
		effConds = append(effConds, entity.EffCond{Var: cv, Value: cval})
	}

	varNo, err := s.nextInt()
	if err != nil {
		return entity.PrePost{}, false, err
	}
	pre, err := s.nextInt()
	if err != nil {
		return entity.PrePost{}, false, err
	}
	v, err := arena.Get(varNo)
	if err != nil {
		return entity.PrePost{}, false, err
	}

	cond := entity.ClassifyPre(pre)
	pp := entity.PrePost{
		Var:         v,
		Pre:         cond,
		Cost:        -1,
		Conditional: effCondCount > 0,
		EffConds:    effConds,
	}

	switch cond.Kind {
	case entity.CondBlock:
		post, err := s.nextInt()
		if err != nil {
			return entity.PrePost{}, false, err
		}
		pp.Post = post
		return pp, true, nil

	case entity.CondNumericOp:
		post, err := s.nextInt()
		if err != nil {
			return entity.PrePost{}, false, err
		}
		pp.Post = post
		costTok, err := s.nextToken()
		if err != nil {
			return entity.PrePost{}, false, err
		}
		if strings.Contains(costTok, "(") {
			pp.HasRuntimeCostEffect = true
			pp.RuntimeCostEffect = costTok
		} else {
			f, perr := strconv.ParseFloat(costTok, 64)
			if perr != nil {
				return entity.PrePost{}, false, ErrMalformedNumber
			}
			pp.Cost = f
		}
		return pp, false, nil

	default: // CondValue, CondAny
		post, err := s.nextInt()
		if err != nil {
			return entity.PrePost{}, false, err
		}
		pp.Post = post
		return pp, false, nil
	}
}

// readRuntimeCostMarker reads the ("runtime" <expr>) | ("no-run" "-")
// pair that follows an operator's base cost.
func readRuntimeCostMarker(s *scanner) (bool, string, error) {
	marker, err := s.nextToken()
	if err != nil {
		return false, "", err
	}
	if marker == "runtime" {
		expr, err := s.nextToken()
		if err != nil {
			return false, "", err
		}
		return true, expr, nil
	}
	if _, err := s.nextToken(); err != nil { // the "-" placeholder
		return false, "", err
	}
	return false, "", nil
}

// readAxiom parses one begin_rule/end_rule record: a conjunctive body
// of (var, value) conditions and a single head effect. The original
// source's Axiom wire format was not among the retrieved files; this
// follows the begin_rule/end_rule shape used elsewhere in the SAS+
// family of formats this one descends from.
func readAxiom(s *scanner, arena *entity.VariableArena) (entity.Axiom, error) {
	if err := s.magic("begin_rule"); err != nil {
		return entity.Axiom{}, err
	}
	condCount, err := s.nextInt()
	if err != nil {
		return entity.Axiom{}, err
	}
	conds := make([]entity.Prevail, 0, condCount)
	for i := 0; i < condCount; i++ {
		varNo, err := s.nextInt()
		if err != nil {
			return entity.Axiom{}, err
		}
		val, err := s.nextInt()
		if err != nil {
			return entity.Axiom{}, err
		}
		v, err := arena.Get(varNo)
		if err != nil {
			return entity.Axiom{}, err
		}
		conds = append(conds, entity.Prevail{Var: v, Value: val})
	}

	varNo, err := s.nextInt()
	if err != nil {
		return entity.Axiom{}, err
	}
	oldVal, err := s.nextInt()
	if err != nil {
		return entity.Axiom{}, err
	}
	newVal, err := s.nextInt()
	if err != nil {
		return entity.Axiom{}, err
	}
	v, err := arena.Get(varNo)
	if err != nil {
		return entity.Axiom{}, err
	}

	if err := s.magic("end_rule"); err != nil {
		return entity.Axiom{}, err
	}

	return entity.Axiom{
		Conditions: conds,
		Effect: entity.PrePost{
			Var:  v,
			Pre:  entity.ClassifyPre(oldVal),
			Post: newVal,
			Cost: -1,
		},
	}, nil
}
