package session

import (
	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/logic"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/metrics"
	"github.com/katalvlaran/lvlalg/report"
	"github.com/katalvlaran/lvlalg/set"
	"github.com/katalvlaran/lvlalg/vector"
)

// Operation labels used for metrics.
const (
	opAdd       = "add"
	opSub       = "sub"
	opMul       = "mul"
	opDot       = "dot"
	opCross     = "cross"
	opTranspose = "transpose"
	opRelations = "relations"
	opPowerSet  = "powerset"
	opInsert    = "insert"
	opRemove    = "remove"
)

// Evaluator runs module operations and builds their report tables.
// The zero value formats exactly and records no metrics.
type Evaluator struct {
	Formatter report.Formatter
	Metrics   *metrics.Recorder
}

// NewEvaluator returns an Evaluator with the given formatter and recorder (nil allowed).
func NewEvaluator(f report.Formatter, rec *metrics.Recorder) *Evaluator {
	return &Evaluator{Formatter: f, Metrics: rec}
}

func (e *Evaluator) record(m Module, op string, err error) {
	if e.Metrics != nil {
		e.Metrics.Operation(m.String(), op, err)
	}
}

// EvalVector computes a+b, a-b, a·b and a×b.
func (e *Evaluator) EvalVector(a, b vector.Vector) *report.Table {
	r := report.VectorResults{
		Sum:        vector.Add(a, b),
		Difference: vector.Sub(a, b),
		Dot:        vector.Dot(a, b),
		Cross:      vector.Cross(a, b),
	}
	for _, op := range []string{opAdd, opSub, opDot, opCross} {
		e.record(ModuleVector, op, nil)
	}

	return report.VectorTable(r, e.Formatter)
}

// EvalMatrix computes a+b, a-b, a×b and both transposes. Shape errors are
// recorded in the affected rows; the remaining operations still run.
func (e *Evaluator) EvalMatrix(a, b matrix.Matrix) *report.Table {
	grid := func(op string, m matrix.Matrix, err error) report.Outcome[[][]float64] {
		var rows [][]float64
		if err == nil {
			rows, err = matrix.ToRows(m)
		}
		e.record(ModuleMatrix, op, err)
		if err != nil {
			return report.Failed[[][]float64](err)
		}
		return report.Ok(rows)
	}

	var r report.MatrixResults
	sum, err := matrix.Add(a, b)
	r.Sum = grid(opAdd, sum, err)
	diff, err := matrix.Sub(a, b)
	r.Difference = grid(opSub, diff, err)
	prod, err := matrix.Mul(a, b)
	r.Product = grid(opMul, prod, err)
	t1, err := matrix.Transpose(a)
	r.Transposed1 = grid(opTranspose, t1, err)
	t2, err := matrix.Transpose(b)
	r.Transposed2 = grid(opTranspose, t2, err)

	return report.MatrixTable(r, e.Formatter)
}

// SetEdit describes the add/remove exercise on a scratch set.
// Add is applied before Remove; a nil field skips that step and its report row.
type SetEdit struct {
	Base        *set.Set
	Add, Remove *int
}

// EvalSet compares a with b, enumerates both power sets and, when edit is
// non-nil, applies it to a copy of edit.Base.
func (e *Evaluator) EvalSet(a, b *set.Set, edit *SetEdit) *report.Table {
	r := report.SetResults{
		Empty1:      a.IsEmpty(),
		Empty2:      b.IsEmpty(),
		Equal:       set.Equal(a, b),
		Unequal:     set.Unequal(a, b),
		Equivalent:  set.Equivalent(a, b),
		Overlapping: set.Overlapping(a, b),
		Disjoint:    set.Disjoint(a, b),
		Subset:      set.IsSubset(a, b),
		Superset:    set.IsSuperset(a, b),
	}
	e.record(ModuleSet, opRelations, nil)

	powerSet := func(s *set.Set) report.Outcome[[][]int] {
		ps, err := set.PowerSet(s)
		e.record(ModuleSet, opPowerSet, err)
		if err != nil {
			return report.Failed[[][]int](err)
		}
		return report.Ok(ps)
	}
	r.PowerSet1 = powerSet(a)
	r.PowerSet2 = powerSet(b)

	if edit != nil {
		scratch := set.New()
		if edit.Base != nil {
			scratch = edit.Base.Clone()
		}
		if edit.Add != nil {
			scratch.Add(*edit.Add)
			r.AfterAdd = scratch.Elements()
			e.record(ModuleSet, opInsert, nil)
		}
		if edit.Remove != nil {
			scratch.Remove(*edit.Remove)
			r.AfterRemove = scratch.Elements()
			e.record(ModuleSet, opRemove, nil)
		}
	}

	return report.SetTable(r)
}

// EvalLogic evaluates every connective over p.
func (e *Evaluator) EvalLogic(p logic.Pair) *report.Table {
	for _, c := range logic.Connectives {
		e.record(ModuleLogic, c.Name(), nil)
	}

	return report.LogicTable(p)
}

// EvalComplex computes a+b, a-b and a·b.
func (e *Evaluator) EvalComplex(a, b complexnum.Complex) *report.Table {
	r := report.ComplexResults{
		Sum:        complexnum.Add(a, b),
		Difference: complexnum.Sub(a, b),
		Product:    complexnum.Mul(a, b),
	}
	for _, op := range []string{opAdd, opSub, opMul} {
		e.record(ModuleComplex, op, nil)
	}

	return report.ComplexTable(r, e.Formatter)
}
