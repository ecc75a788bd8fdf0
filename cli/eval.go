package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/logic"
	"github.com/katalvlaran/lvlalg/parse"
	"github.com/katalvlaran/lvlalg/report"
	"github.com/katalvlaran/lvlalg/session"
)

// EvalResult is the payload of every one-shot command.
type EvalResult struct {
	RunID string        `json:"run_id"`
	Table *report.Table `json:"table"`
	Path  string        `json:"path,omitempty"`
}

// WriteText prints the table followed by the report location.
func (r *EvalResult) WriteText(w io.Writer) error {
	if err := report.WriteText(w, r.Table); err != nil {
		return err
	}
	if r.Path != "" {
		_, err := fmt.Fprintf(w, "Results have been written to %s\n", r.Path)
		return err
	}
	return nil
}

// operands holds the --a and --b flag values.
type operands struct {
	a, b string
}

func (o *operands) bind(cmd *cobra.Command, example string) {
	cmd.Flags().StringVar(&o.a, "a", "", "first operand, e.g. "+example)
	cmd.Flags().StringVar(&o.b, "b", "", "second operand")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
}

// evalFunc parses the operands and evaluates one module.
type evalFunc func(e *session.Evaluator) (*report.Table, error)

func newEvalCommand(rootOpts *RootOptions, module session.Module, use, short, long string, fn evalFunc) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd, module, fn)
		},
	}
}

func runEval(opts *RootOptions, cmd *cobra.Command, module session.Module, fn evalFunc) error {
	out := opts.formatter(cmd)
	log := opts.log.With(zap.Stringer("module", module))
	eval := session.NewEvaluator(opts.cfg.Formatter(), opts.metrics)

	tbl, err := fn(eval)
	if err != nil {
		_ = out.Error(ErrCodeInvalidInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid operands", err)
	}
	res := &EvalResult{RunID: opts.runID.String(), Table: tbl}

	path, err := opts.exporter.Export(tbl)
	if err != nil {
		log.Error("export failed", zap.Error(err))
		_ = out.Error(ErrCodeExport, err.Error(), res)
		return WrapExitError(ExitFailure, "export", err)
	}
	opts.metrics.ReportWritten(string(opts.exporter.Format()))
	res.Path = path
	out.VerboseLog("wrote %s", path)

	if len(tbl.Failed) > 0 {
		msg := fmt.Sprintf("failed operations: %s", strings.Join(tbl.Failed, ", "))
		log.Warn("module evaluated with failures", zap.Strings("failed", tbl.Failed), zap.String("path", path))
		_ = out.Error(ErrCodeOperation, msg, res)
		return NewExitError(ExitFailure, msg)
	}
	log.Info("module evaluated", zap.String("path", path), zap.Int("rows", len(tbl.Rows)))

	return out.Success(res)
}

// NewVectorCommand creates the vector command.
func NewVectorCommand(rootOpts *RootOptions) *cobra.Command {
	var ops operands
	cmd := newEvalCommand(rootOpts, session.ModuleVector,
		"vector", "Add, subtract, dot and cross two 3D vectors",
		`Evaluate a+b, a-b, a·b and a×b for vectors given as "x y z".`,
		func(e *session.Evaluator) (*report.Table, error) {
			a, err := parse.Vector(ops.a)
			if err != nil {
				return nil, fmt.Errorf("--a: %w", err)
			}
			b, err := parse.Vector(ops.b)
			if err != nil {
				return nil, fmt.Errorf("--b: %w", err)
			}
			return e.EvalVector(a, b), nil
		})
	ops.bind(cmd, `"1 2 3"`)

	return cmd
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	var ops operands
	cmd := newEvalCommand(rootOpts, session.ModuleMatrix,
		"matrix", "Add, subtract, multiply and transpose two matrices",
		`Evaluate a+b, a-b, a×b and both transposes. Matrices are written row by
row with rows separated by ';', e.g. "1 2; 3 4". Operations whose shapes do
not fit are reported as failures; the others still run.`,
		func(e *session.Evaluator) (*report.Table, error) {
			a, err := parse.MatrixLiteral(ops.a)
			if err != nil {
				return nil, fmt.Errorf("--a: %w", err)
			}
			b, err := parse.MatrixLiteral(ops.b)
			if err != nil {
				return nil, fmt.Errorf("--b: %w", err)
			}
			return e.EvalMatrix(a, b), nil
		})
	ops.bind(cmd, `"1 2; 3 4"`)

	return cmd
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		ops         operands
		add, remove int
		cmd         *cobra.Command
	)
	cmd = newEvalCommand(rootOpts, session.ModuleSet,
		"set", "Compare two integer sets and enumerate their power sets",
		`Evaluate emptiness, equality, overlap, subset and superset relations
between sets a and b and list both power sets. With --add and/or --remove the
element is inserted into, then removed from, a copy of a.`,
		func(e *session.Evaluator) (*report.Table, error) {
			a, err := parse.Set(ops.a)
			if err != nil {
				return nil, fmt.Errorf("--a: %w", err)
			}
			b, err := parse.Set(ops.b)
			if err != nil {
				return nil, fmt.Errorf("--b: %w", err)
			}
			var edit *session.SetEdit
			if cmd.Flags().Changed("add") || cmd.Flags().Changed("remove") {
				edit = &session.SetEdit{Base: a}
				if cmd.Flags().Changed("add") {
					edit.Add = &add
				}
				if cmd.Flags().Changed("remove") {
					edit.Remove = &remove
				}
			}
			return e.EvalSet(a, b, edit), nil
		})
	ops.bind(cmd, `"1 2 3"`)
	cmd.Flags().IntVar(&add, "add", 0, "element to insert into a copy of a")
	cmd.Flags().IntVar(&remove, "remove", 0, "element to remove from that copy")

	return cmd
}

// NewLogicCommand creates the logic command.
func NewLogicCommand(rootOpts *RootOptions) *cobra.Command {
	var ops operands
	cmd := newEvalCommand(rootOpts, session.ModuleLogic,
		"logic", "Evaluate AND, OR and NOT over two booleans",
		`Evaluate a AND b, a OR b, NOT a and NOT b. Values are "true" or "false"
in any letter case.`,
		func(e *session.Evaluator) (*report.Table, error) {
			a, err := parse.Bool(ops.a)
			if err != nil {
				return nil, fmt.Errorf("--a: %w", err)
			}
			b, err := parse.Bool(ops.b)
			if err != nil {
				return nil, fmt.Errorf("--b: %w", err)
			}
			return e.EvalLogic(logic.New(a, b)), nil
		})
	ops.bind(cmd, "true")

	return cmd
}

// NewComplexCommand creates the complex command.
func NewComplexCommand(rootOpts *RootOptions) *cobra.Command {
	var ops operands
	cmd := newEvalCommand(rootOpts, session.ModuleComplex,
		"complex", "Add, subtract and multiply two complex numbers",
		`Evaluate a+b, a-b and a·b for complex numbers given as "real imag".`,
		func(e *session.Evaluator) (*report.Table, error) {
			a, err := parse.Complex(ops.a)
			if err != nil {
				return nil, fmt.Errorf("--a: %w", err)
			}
			b, err := parse.Complex(ops.b)
			if err != nil {
				return nil, fmt.Errorf("--b: %w", err)
			}
			return e.EvalComplex(a, b), nil
		})
	ops.bind(cmd, `"1 2"`)

	return cmd
}
