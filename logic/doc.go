// Package logic evaluates the classical connectives over a pair of boolean
// operands: conjunction, disjunction and the negation of either operand.
// All operations are total and side-effect free.
package logic
