package session_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlalg/metrics"
	"github.com/katalvlaran/lvlalg/report"
	"github.com/katalvlaran/lvlalg/session"
)

type fixture struct {
	dir  string
	out  *bytes.Buffer
	rec  *metrics.Recorder
	logs *observer.ObservedLogs
	s    *session.Session
}

func newFixture(t *testing.T, input string, opts ...session.Option) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir(), out: &bytes.Buffer{}, rec: metrics.NewRecorder()}
	exp, err := report.NewExporter(f.dir)
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	f.logs = logs
	opts = append([]session.Option{
		session.WithMetrics(f.rec),
		session.WithLogger(zap.New(core)),
	}, opts...)
	f.s = session.New(strings.NewReader(input), f.out, exp, opts...)

	return f
}

func (f *fixture) read(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(f.dir, name+".csv"))
	require.NoError(t, err)

	return string(b)
}

func TestSession_Vector(t *testing.T) {
	f := newFixture(t, "1\n1 2 3\n4 5 6\n7\n")

	require.NoError(t, f.s.Run(context.Background()))
	assert.Equal(t, session.StateExited, f.s.State())

	csv := f.read(t, report.VectorName)
	assert.Contains(t, csv, "Vector Addition,[5 7 9]\n")
	assert.Contains(t, csv, "Dot Product,32\n")
	assert.Contains(t, csv, "Cross Product,[-3 6 -3]\n")

	assert.Contains(t, f.out.String(), "Results have been written to")
	assert.Contains(t, f.out.String(), "Exit the program. Goodbye!")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.rec.ReportsWritten.WithLabelValues("csv")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.rec.Operations.WithLabelValues("vector", "dot", metrics.OutcomeOK)))
}

func TestSession_MatrixMismatch(t *testing.T) {
	// 2x2 then 3x1: every binary operation fails, transposes succeed.
	f := newFixture(t, "2\n2\n2\n1 2\n3 4\n3\n1\n1\n2\n3\n7\n")

	require.NoError(t, f.s.Run(context.Background()))
	csv := f.read(t, report.MatrixName)
	assert.Regexp(t, `(?m)^Matrix Multiplication,"?error: `, csv)
	assert.Contains(t, csv, `Transposed Matrix 1,"[[1, 3], [2, 4]]"`)
	assert.Contains(t, csv, "Transposed Matrix 2,\"[[1, 2, 3]]\"")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.rec.Operations.WithLabelValues("matrix", "mul", metrics.OutcomeError)))
}

func TestSession_MatrixRepromptsBadRow(t *testing.T) {
	f := newFixture(t, "2\n1\n2\n1\n1 2\n2\n1\n3\n4\n7\n")

	require.NoError(t, f.s.Run(context.Background()))
	assert.Contains(t, f.out.String(), "Invalid input")
	assert.Contains(t, f.read(t, report.MatrixName), "Matrix Multiplication,[[11]]")
}

func TestSession_Set(t *testing.T) {
	f := newFixture(t, "3\n1 2\n2 3\n5\n7\n5\n7\n")

	require.NoError(t, f.s.Run(context.Background()))
	csv := f.read(t, report.SetName)
	assert.Contains(t, csv, "Is Overlapping Sets,true\n")
	assert.Contains(t, csv, "Set After Add,\"[5, 7]\"\n")
	assert.Contains(t, csv, "Set After Remove,[7]\n")
	assert.Contains(t, f.out.String(), "Set 1: {1, 2}")
}

func TestSession_LogicAndComplex(t *testing.T) {
	f := newFixture(t, "4\nTRUE\nmaybe\nfalse\n5\n1\n2\nx\n3\n4\n7\n")

	require.NoError(t, f.s.Run(context.Background()))
	assert.Contains(t, f.read(t, report.LogicName), "Logical OR (a || b),true\n")
	assert.Contains(t, f.read(t, report.ComplexName), "Product,-5,10\n")
	assert.Equal(t, 2, strings.Count(f.out.String(), "Invalid input"))
}

func TestSession_MenuChoices(t *testing.T) {
	f := newFixture(t, "9\nhello\n6\n7\n")

	require.NoError(t, f.s.Run(context.Background()))
	assert.Equal(t, 2, strings.Count(f.out.String(), "Invalid choice. Please try again."))
	assert.Equal(t, 4, strings.Count(f.out.String(), "Select your options:"))

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSession_Steps(t *testing.T) {
	f := newFixture(t, "4\ntrue\nfalse\n")

	ctx := context.Background()
	require.NoError(t, f.s.Step(ctx))
	assert.Equal(t, session.StateModuleSelected, f.s.State())
	require.NoError(t, f.s.Step(ctx))
	assert.Equal(t, session.StateCompleted, f.s.State())
	require.NoError(t, f.s.Step(ctx))
	assert.Equal(t, session.StateMenu, f.s.State())
	require.ErrorIs(t, f.s.Step(ctx), session.ErrCancelled)
}

func TestSession_ContextCancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	core, logs := observer.New(zap.InfoLevel)
	s := session.New(pr, io.Discard, nil, session.WithLogger(zap.New(core)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.AfterFunc(50*time.Millisecond, cancel)
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
	assert.Equal(t, session.StateMenu, s.State())
	assert.Equal(t, 1, logs.FilterMessage("session interrupted").Len())
}

func TestSession_ContextCancelledMidModule(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	s := session.New(pr, io.Discard, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	_, err := io.WriteString(pw, "2\n1\n")
	require.NoError(t, err)
	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}

func TestSession_EndOfInputCancels(t *testing.T) {
	f := newFixture(t, "3\n1 2\n")

	require.ErrorIs(t, f.s.Run(context.Background()), session.ErrCancelled)
	assert.Equal(t, session.StateModuleSelected, f.s.State())
	assert.Equal(t, 1, f.logs.FilterMessage("session cancelled").Len())
}

func TestSession_ContextCancelled(t *testing.T) {
	f := newFixture(t, "7\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, f.s.Run(ctx), context.Canceled)
	assert.Equal(t, session.StateMenu, f.s.State())
}

func TestSession_RunIDInLogs(t *testing.T) {
	id := uuid.MustParse("6f1c2d1e-8a4b-4c3d-9e2f-0a1b2c3d4e5f")
	f := newFixture(t, "4\ntrue\ntrue\n7\n", session.WithRunID(id))

	require.NoError(t, f.s.Run(context.Background()))
	assert.Equal(t, id, f.s.ID())

	evaluated := f.logs.FilterMessage("module evaluated").All()
	require.Len(t, evaluated, 1)
	fields := evaluated[0].ContextMap()
	assert.Equal(t, id.String(), fields["run_id"])
	assert.Equal(t, "logic", fields["module"])
	assert.Equal(t, filepath.Join(f.dir, "BooleanLogic_Operation.csv"), fields["path"])
}

func TestSession_NoExporter(t *testing.T) {
	var out bytes.Buffer
	s := session.New(strings.NewReader("5\n1\n1\n1\n1\n7\n"), &out, nil,
		session.WithFormatter(report.Formatter{Precision: 1}))

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Sum")
	assert.Contains(t, out.String(), "2.0")
	assert.NotContains(t, out.String(), "written to")
}
