package logic

import "fmt"

// Pair holds the two operands a and b.
type Pair struct {
	A, B bool
}

// New returns the pair (a, b).
func New(a, b bool) Pair { return Pair{A: a, B: b} }

// And returns a ∧ b.
func (p Pair) And() bool { return p.A && p.B }

// Or returns a ∨ b.
func (p Pair) Or() bool { return p.A || p.B }

// NotA returns ¬a.
func (p Pair) NotA() bool { return !p.A }

// NotB returns ¬b.
func (p Pair) NotB() bool { return !p.B }

// Connective names one of the operations on a Pair.
type Connective int

// Connectives in report order.
const (
	And Connective = iota
	Or
	NotA
	NotB
)

// Connectives lists every Connective in report order.
var Connectives = []Connective{And, Or, NotA, NotB}

// String returns the report label of c.
func (c Connective) String() string {
	switch c {
	case And:
		return "Logical AND (a && b)"
	case Or:
		return "Logical OR (a || b)"
	case NotA:
		return "Logical NOT for a (!a)"
	case NotB:
		return "Logical NOT for b (!b)"
	default:
		return fmt.Sprintf("Connective(%d)", int(c))
	}
}

// Name returns a short identifier for c: "and", "or", "not_a" or "not_b".
func (c Connective) Name() string {
	switch c {
	case And:
		return "and"
	case Or:
		return "or"
	case NotA:
		return "not_a"
	case NotB:
		return "not_b"
	default:
		return "unknown"
	}
}

// Evaluate applies c to p. An unknown connective yields false.
func Evaluate(p Pair, c Connective) bool {
	switch c {
	case And:
		return p.And()
	case Or:
		return p.Or()
	case NotA:
		return p.NotA()
	case NotB:
		return p.NotB()
	default:
		return false
	}
}

// Row is one line of a truth table.
type Row struct {
	Pair
	Result bool
}

// TruthTable evaluates c over the four inputs in the order
// (false,false), (false,true), (true,false), (true,true).
func TruthTable(c Connective) [4]Row {
	var out [4]Row
	for i := 0; i < 4; i++ {
		p := Pair{A: i&2 != 0, B: i&1 != 0}
		out[i] = Row{Pair: p, Result: Evaluate(p, c)}
	}

	return out
}
