package report

import (
	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/logic"
	"github.com/katalvlaran/lvlalg/vector"
)

// Report file stems.
const (
	VectorName  = "vector_operations"
	MatrixName  = "matrix_operations"
	SetName     = "set_operations"
	LogicName   = "BooleanLogic_Operation"
	ComplexName = "Complex_Operations"
)

// Row labels.
const (
	LabelVectorAddition    = "Vector Addition"
	LabelVectorSubtraction = "Vector Subtraction"
	LabelDotProduct        = "Dot Product"
	LabelCrossProduct      = "Cross Product"

	LabelMatrixAddition       = "Matrix Addition"
	LabelMatrixSubtraction    = "Matrix Subtraction"
	LabelMatrixMultiplication = "Matrix Multiplication"
	LabelTransposed1          = "Transposed Matrix 1"
	LabelTransposed2          = "Transposed Matrix 2"

	LabelSet1Empty      = "Is Set 1 Empty"
	LabelSet2Empty      = "Is Set 2 Empty"
	LabelEqual          = "Is Equal Sets"
	LabelUnequal        = "Is Unequal Sets"
	LabelEquivalent     = "Is Equivalent Sets"
	LabelOverlapping    = "Is Overlapping Sets"
	LabelDisjoint       = "Is Disjoint Sets"
	LabelSubset         = "Is Subset"
	LabelSuperset       = "Is Superset"
	LabelPowerSet1      = "Power Set of Set 1"
	LabelPowerSet2      = "Power Set of Set 2"
	LabelSetAfterAdd    = "Set After Add"
	LabelSetAfterRemove = "Set After Remove"

	LabelSum        = "Sum"
	LabelDifference = "Difference"
	LabelProduct    = "Product"
)

// Outcome carries either a value or the error that prevented computing it.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Outcome[T] { return Outcome[T]{Value: v} }

// Failed wraps an error.
func Failed[T any](err error) Outcome[T] { return Outcome[T]{Err: err} }

// VectorResults are the four vector operations over (a, b).
type VectorResults struct {
	Sum, Difference vector.Vector
	Dot             float64
	Cross           vector.Vector
}

// VectorTable renders r as "Vector Operation,Result" rows.
func VectorTable(r VectorResults, f Formatter) *Table {
	t := NewTable(VectorName, "Vector Operation", "Result")
	triple := func(v vector.Vector) string {
		c := v.Components()
		return f.Floats(c[:])
	}
	t.Add(LabelVectorAddition, triple(r.Sum))
	t.Add(LabelVectorSubtraction, triple(r.Difference))
	t.Add(LabelDotProduct, f.Float(r.Dot))
	t.Add(LabelCrossProduct, triple(r.Cross))

	return t
}

// MatrixResults are the matrix operations over (m1, m2); each may have failed.
type MatrixResults struct {
	Sum, Difference, Product Outcome[[][]float64]
	Transposed1, Transposed2 Outcome[[][]float64]
}

// MatrixTable renders r as "Matrix Operation,Result" rows; a failed
// operation shows its error text instead of a grid.
func MatrixTable(r MatrixResults, f Formatter) *Table {
	t := NewTable(MatrixName, "Matrix Operation", "Result")
	add := func(label string, o Outcome[[][]float64]) {
		var cell string
		if o.Err == nil {
			cell = f.Grid(o.Value)
		}
		t.addOutcome(label, cell, o.Err)
	}
	add(LabelMatrixAddition, r.Sum)
	add(LabelMatrixSubtraction, r.Difference)
	add(LabelMatrixMultiplication, r.Product)
	add(LabelTransposed1, r.Transposed1)
	add(LabelTransposed2, r.Transposed2)

	return t
}

// SetResults are the relations between set 1 and set 2, their power sets and,
// optionally, a scratch set after one add and one remove.
type SetResults struct {
	Empty1, Empty2             bool
	Equal, Unequal, Equivalent bool
	Overlapping, Disjoint      bool
	Subset, Superset           bool
	PowerSet1, PowerSet2       Outcome[[][]int]
	AfterAdd, AfterRemove      []int // nil omits the row
}

// SetTable renders r as "Set Operation,Result" rows.
func SetTable(r SetResults) *Table {
	t := NewTable(SetName, "Set Operation", "Result")
	t.Add(LabelSet1Empty, Bool(r.Empty1))
	t.Add(LabelSet2Empty, Bool(r.Empty2))
	t.Add(LabelEqual, Bool(r.Equal))
	t.Add(LabelUnequal, Bool(r.Unequal))
	t.Add(LabelEquivalent, Bool(r.Equivalent))
	t.Add(LabelOverlapping, Bool(r.Overlapping))
	t.Add(LabelDisjoint, Bool(r.Disjoint))
	t.Add(LabelSubset, Bool(r.Subset))
	t.Add(LabelSuperset, Bool(r.Superset))
	ps := func(label string, o Outcome[[][]int]) {
		var cell string
		if o.Err == nil {
			cell = IntSets(o.Value)
		}
		t.addOutcome(label, cell, o.Err)
	}
	ps(LabelPowerSet1, r.PowerSet1)
	ps(LabelPowerSet2, r.PowerSet2)
	if r.AfterAdd != nil {
		t.Add(LabelSetAfterAdd, Ints(r.AfterAdd))
	}
	if r.AfterRemove != nil {
		t.Add(LabelSetAfterRemove, Ints(r.AfterRemove))
	}

	return t
}

// LogicTable renders every connective over p as "Boolean Operation,Result" rows.
func LogicTable(p logic.Pair) *Table {
	t := NewTable(LogicName, "Boolean Operation", "Result")
	for _, c := range logic.Connectives {
		t.Add(c.String(), Bool(logic.Evaluate(p, c)))
	}

	return t
}

// ComplexResults are the three complex operations over (a, b).
type ComplexResults struct {
	Sum, Difference, Product complexnum.Complex
}

// ComplexTable renders r with separate real and imaginary columns.
func ComplexTable(r ComplexResults, f Formatter) *Table {
	t := NewTable(ComplexName, "Operation", "Real", "Imaginary")
	t.Add(LabelSum, f.Float(r.Sum.Real), f.Float(r.Sum.Imag))
	t.Add(LabelDifference, f.Float(r.Difference.Real), f.Float(r.Difference.Imag))
	t.Add(LabelProduct, f.Float(r.Product.Real), f.Float(r.Product.Imag))

	return t
}
