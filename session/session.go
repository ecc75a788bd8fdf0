package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/logic"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/metrics"
	"github.com/katalvlaran/lvlalg/parse"
	"github.com/katalvlaran/lvlalg/report"
	"github.com/katalvlaran/lvlalg/vector"
)

// Session is one interactive run of the menu.
type Session struct {
	id       uuid.UUID
	state    State
	module   Module
	prompt   *Prompter
	out      io.Writer
	eval     *Evaluator
	exporter *report.Exporter
	metrics  *metrics.Recorder
	log      *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger; the default discards.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records operations and written reports on rec.
func WithMetrics(rec *metrics.Recorder) Option { return func(s *Session) { s.metrics = rec } }

// WithFormatter sets the report cell formatter (default exact).
func WithFormatter(f report.Formatter) Option {
	return func(s *Session) { s.eval.Formatter = f }
}

// WithRunID overrides the generated run id.
func WithRunID(id uuid.UUID) Option { return func(s *Session) { s.id = id } }

// New returns a Session in StateMenu reading from in, printing to out and
// exporting every completed module through exporter (nil disables export).
func New(in io.Reader, out io.Writer, exporter *report.Exporter, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New(),
		state:    StateMenu,
		prompt:   NewPrompter(in, out),
		out:      out,
		eval:     NewEvaluator(report.DefaultFormatter, nil),
		exporter: exporter,
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.eval.Metrics = s.metrics
	s.log = s.log.With(zap.String("run_id", s.id.String()))

	return s
}

// ID returns the run id attached to every log entry of s.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Run steps the state machine until StateExited. It returns nil on a regular
// exit, ErrCancelled when input ends first, or the context error when ctx is
// done, including while a prompt waits for input.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started")
	for s.state != StateExited {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(ctx); err != nil {
			switch {
			case errors.Is(err, ErrCancelled):
				s.log.Info("session cancelled", zap.Stringer("state", s.state))
			case ctx.Err() != nil:
				s.log.Info("session interrupted", zap.Stringer("state", s.state))
			}
			return err
		}
	}
	s.log.Info("session finished")

	return nil
}

// Step performs one transition from the current state. Prompts abort with
// ctx.Err() once ctx is done.
func (s *Session) Step(ctx context.Context) error {
	switch s.state {
	case StateMenu:
		line, err := s.prompt.Line(ctx, menuText)
		if err != nil {
			return err
		}
		next, m, ok := transition(line)
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		s.state, s.module = next, m
		if next == StateExited {
			fmt.Fprintln(s.out, "Exit the program. Goodbye!")
		}

	case StateModuleSelected:
		if err := s.runModule(ctx, s.module); err != nil {
			return err
		}
		s.state = StateCompleted

	case StateCompleted:
		s.module = 0
		s.state = StateMenu

	case StateExited:
	}

	return nil
}

// runModule reads operands for m, evaluates, prints and exports the results.
func (s *Session) runModule(ctx context.Context, m Module) error {
	var (
		tbl *report.Table
		err error
	)
	log := s.log.With(zap.Stringer("module", m))
	start := time.Now()

	switch m {
	case ModuleVector:
		tbl, err = s.runVector(ctx)
	case ModuleMatrix:
		tbl, err = s.runMatrix(ctx)
	case ModuleSet:
		tbl, err = s.runSet(ctx)
	case ModuleLogic:
		tbl, err = s.runLogic(ctx)
	case ModuleComplex:
		tbl, err = s.runComplex(ctx)
	default:
		return fmt.Errorf("session: unknown module %v", m)
	}
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.ModuleDone(m.String(), start)
	}

	fmt.Fprintln(s.out)
	if err := report.WriteText(s.out, tbl); err != nil {
		return fmt.Errorf("session: print results: %w", err)
	}

	if s.exporter == nil {
		log.Info("module evaluated", zap.Int("rows", len(tbl.Rows)))
		return nil
	}
	path, err := s.exporter.Export(tbl)
	if err != nil {
		fmt.Fprintf(s.out, "Failed to write results: %v\n", err)
		log.Error("export failed", zap.Error(err))
		return nil
	}
	if s.metrics != nil {
		s.metrics.ReportWritten(string(s.exporter.Format()))
	}
	fmt.Fprintf(s.out, "Results have been written to %s\n", path)
	log.Info("module evaluated", zap.String("path", path), zap.Int("rows", len(tbl.Rows)))

	return nil
}

func (s *Session) runVector(ctx context.Context) (*report.Table, error) {
	read := func(which string) (vector.Vector, error) {
		fmt.Fprintf(s.out, "Enter your %s vector values:\n", which)
		return Ask(ctx, s.prompt, "Enter x y z coordinates (space-separated):", parse.Vector)
	}
	a, err := read("first")
	if err != nil {
		return nil, err
	}
	b, err := read("second")
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "First: %v\nSecond: %v\n", a, b)

	return s.eval.EvalVector(a, b), nil
}

func (s *Session) readMatrix(ctx context.Context, n int) (*matrix.Dense, error) {
	fmt.Fprintf(s.out, "Enter Matrix %d:\n", n)
	rows, err := Ask(ctx, s.prompt, "Enter number of rows:", parse.Count)
	if err != nil {
		return nil, err
	}
	cols, err := Ask(ctx, s.prompt, "Enter number of columns:", parse.Count)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(s.out, "Enter matrix elements (row-wise, space-separated):")
	data := make([][]float64, rows)
	for i := range data {
		data[i], err = Ask(ctx, s.prompt, fmt.Sprintf("Row %d:", i+1), func(line string) ([]float64, error) {
			return parse.Row(line, cols)
		})
		if err != nil {
			return nil, err
		}
	}

	return matrix.NewFromRows(rows, cols, data)
}

func (s *Session) runMatrix(ctx context.Context) (*report.Table, error) {
	a, err := s.readMatrix(ctx, 1)
	if err != nil {
		return nil, err
	}
	b, err := s.readMatrix(ctx, 2)
	if err != nil {
		return nil, err
	}

	return s.eval.EvalMatrix(a, b), nil
}

const setQuestion = "Enter elements of the set (space-separated integers):"

func (s *Session) runSet(ctx context.Context) (*report.Table, error) {
	a, err := Ask(ctx, s.prompt, setQuestion, parse.Set)
	if err != nil {
		return nil, err
	}
	b, err := Ask(ctx, s.prompt, setQuestion, parse.Set)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "Set 1: %v\nSet 2: %v\n", a, b)

	fmt.Fprintln(s.out, "Enter new set to add or remove the element:")
	base, err := Ask(ctx, s.prompt, setQuestion, parse.Set)
	if err != nil {
		return nil, err
	}
	add, err := Ask(ctx, s.prompt, "Enter element to add:", parse.Int)
	if err != nil {
		return nil, err
	}
	remove, err := Ask(ctx, s.prompt, "Enter element to remove:", parse.Int)
	if err != nil {
		return nil, err
	}

	return s.eval.EvalSet(a, b, &SetEdit{Base: base, Add: &add, Remove: &remove}), nil
}

func (s *Session) runLogic(ctx context.Context) (*report.Table, error) {
	a, err := Ask(ctx, s.prompt, "Enter value for 'a' (true or false):", parse.Bool)
	if err != nil {
		return nil, err
	}
	b, err := Ask(ctx, s.prompt, "Enter value for 'b' (true or false):", parse.Bool)
	if err != nil {
		return nil, err
	}

	return s.eval.EvalLogic(logic.New(a, b)), nil
}

func (s *Session) runComplex(ctx context.Context) (*report.Table, error) {
	read := func(which string) (complexnum.Complex, error) {
		fmt.Fprintf(s.out, "Enter %s complex:\n", which)
		re, err := Ask(ctx, s.prompt, "Enter real part:", parse.Float)
		if err != nil {
			return complexnum.Complex{}, err
		}
		im, err := Ask(ctx, s.prompt, "Enter imaginary part:", parse.Float)
		if err != nil {
			return complexnum.Complex{}, err
		}
		return complexnum.New(re, im), nil
	}
	a, err := read("first")
	if err != nil {
		return nil, err
	}
	b, err := read("second")
	if err != nil {
		return nil, err
	}

	return s.eval.EvalComplex(a, b), nil
}
