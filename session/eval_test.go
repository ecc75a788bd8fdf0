package session_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/logic"
	"github.com/katalvlaran/lvlalg/metrics"
	"github.com/katalvlaran/lvlalg/parse"
	"github.com/katalvlaran/lvlalg/report"
	"github.com/katalvlaran/lvlalg/session"
	"github.com/katalvlaran/lvlalg/set"
	"github.com/katalvlaran/lvlalg/vector"
)

func cell(t *testing.T, tbl *report.Table, label string) string {
	t.Helper()
	cells, ok := tbl.Lookup(label)
	require.True(t, ok, label)
	require.Len(t, cells, 1, label)

	return cells[0]
}

func TestEvalVector(t *testing.T) {
	rec := metrics.NewRecorder()
	e := session.NewEvaluator(report.DefaultFormatter, rec)

	tbl := e.EvalVector(vector.New(1, 2, 3), vector.New(4, 5, 6))
	assert.Equal(t, "[5 7 9]", cell(t, tbl, report.LabelVectorAddition))
	assert.Equal(t, "32", cell(t, tbl, report.LabelDotProduct))
	assert.Equal(t, "[-3 6 -3]", cell(t, tbl, report.LabelCrossProduct))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Operations.WithLabelValues("vector", "cross", metrics.OutcomeOK)))
}

func TestEvalMatrix_PartialFailure(t *testing.T) {
	rec := metrics.NewRecorder()
	e := session.NewEvaluator(report.DefaultFormatter, rec)

	a, err := parse.MatrixLiteral("1 2; 3 4")
	require.NoError(t, err)
	b, err := parse.MatrixLiteral("1; 2")
	require.NoError(t, err)

	tbl := e.EvalMatrix(a, b)
	assert.Contains(t, cell(t, tbl, report.LabelMatrixAddition), "error:")
	assert.Contains(t, cell(t, tbl, report.LabelMatrixSubtraction), "error:")
	assert.Equal(t, "[[5], [11]]", cell(t, tbl, report.LabelMatrixMultiplication))
	assert.Equal(t, "[[1, 3], [2, 4]]", cell(t, tbl, report.LabelTransposed1))
	assert.Equal(t, "[[1, 2]]", cell(t, tbl, report.LabelTransposed2))

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Operations.WithLabelValues("matrix", "add", metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Operations.WithLabelValues("matrix", "mul", metrics.OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Operations.WithLabelValues("matrix", "transpose", metrics.OutcomeOK)))
}

func TestEvalSet(t *testing.T) {
	var e session.Evaluator
	a, b := set.New(1, 2), set.New(1, 2, 3)

	tbl := e.EvalSet(a, b, nil)
	assert.Equal(t, "true", cell(t, tbl, report.LabelSubset))
	assert.Equal(t, "false", cell(t, tbl, report.LabelSuperset))
	assert.Equal(t, "[[], [1], [2], [1, 2]]", cell(t, tbl, report.LabelPowerSet1))
	_, ok := tbl.Lookup(report.LabelSetAfterAdd)
	assert.False(t, ok)

	add, remove := 9, 1
	base := set.New(1)
	tbl = e.EvalSet(a, b, &session.SetEdit{Base: base, Add: &add, Remove: &remove})
	assert.Equal(t, "[1, 9]", cell(t, tbl, report.LabelSetAfterAdd))
	assert.Equal(t, "[9]", cell(t, tbl, report.LabelSetAfterRemove))
	assert.Equal(t, []int{1}, base.Elements(), "base must not change")

	tbl = e.EvalSet(a, b, &session.SetEdit{Remove: &remove})
	_, ok = tbl.Lookup(report.LabelSetAfterAdd)
	assert.False(t, ok)
	assert.Equal(t, "[]", cell(t, tbl, report.LabelSetAfterRemove))
}

func TestEvalSet_PowerSetTooLarge(t *testing.T) {
	var e session.Evaluator
	big := set.New()
	for i := 0; i <= set.MaxPowerSetElements; i++ {
		big.Add(i)
	}

	tbl := e.EvalSet(big, set.New(), nil)
	assert.Contains(t, cell(t, tbl, report.LabelPowerSet1), "error:")
	assert.Equal(t, "[[]]", cell(t, tbl, report.LabelPowerSet2))
}

func TestEvalLogicAndComplex(t *testing.T) {
	rec := metrics.NewRecorder()
	e := session.NewEvaluator(report.Formatter{Precision: 2}, rec)

	tbl := e.EvalLogic(logic.New(false, true))
	assert.Equal(t, "true", cell(t, tbl, logic.Or.String()))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Operations.WithLabelValues("logic", "not_b", metrics.OutcomeOK)))

	a, err := parse.Complex("1 2")
	require.NoError(t, err)
	b, err := parse.Complex("3 4")
	require.NoError(t, err)
	tbl = e.EvalComplex(a, b)
	cells, ok := tbl.Lookup(report.LabelProduct)
	require.True(t, ok)
	assert.Equal(t, []string{"-5.00", "10.00"}, cells)
}
