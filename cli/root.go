package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/config"
	"github.com/katalvlaran/lvlalg/logging"
	"github.com/katalvlaran/lvlalg/metrics"
	"github.com/katalvlaran/lvlalg/report"
)

// RootOptions holds global flags for all commands and the state derived
// from them before any subcommand runs.
type RootOptions struct {
	ConfigPath   string
	Verbose      bool
	Format       string // "json" | "text"
	ReportDir    string
	ReportFormat string
	Compress     bool

	// NewLogger builds the logger from the resolved configuration.
	// Defaults to logging.New.
	NewLogger func(logging.Config) (*zap.Logger, error)

	cfg      *config.Config
	baseLog  *zap.Logger // without run_id
	log      *zap.Logger
	metrics  *metrics.Recorder
	exporter *report.Exporter
	runID    uuid.UUID
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lvlalg CLI.
// Run without a subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvlalg",
		Short: "lvlalg - vector, matrix, set, logic and complex algebra",
		Long: `Evaluate 3D vector, matrix, integer set, boolean and complex number
operations, print the results and export them as report files.

Without a subcommand lvlalg starts the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setup(cmd); err != nil {
				_ = opts.formatter(cmd).Error(ErrCodeConfig, err.Error(), nil)
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.finish(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(opts, cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVar(&opts.ReportDir, "report-dir", "", "directory for report files (overrides config)")
	pf.StringVar(&opts.ReportFormat, "report-format", "", "report encoding csv|json|yaml|toml (overrides config)")
	pf.BoolVar(&opts.Compress, "compress", false, "gzip report files (overrides config)")

	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewVectorCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewLogicCommand(opts))
	cmd.AddCommand(NewComplexCommand(opts))

	return cmd
}

// setup resolves configuration (file, then environment, then flags) and
// builds the logger, metrics recorder and exporter shared by every command.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.LoadFile(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load configuration", err)
	}
	flags := cmd.Flags()
	if flags.Changed("report-dir") {
		cfg.ReportDir = o.ReportDir
	}
	if flags.Changed("report-format") {
		cfg.ReportFormat = o.ReportFormat
	}
	if flags.Changed("compress") {
		cfg.ReportCompress = o.Compress
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}

	newLogger := o.NewLogger
	if newLogger == nil {
		newLogger = logging.New
	}
	log, err := newLogger(cfg.Logging())
	if err != nil {
		return WrapExitError(ExitCommandError, "create logger", err)
	}

	o.cfg = cfg
	o.runID = uuid.New()
	o.baseLog = log
	o.log = log.With(zap.String("run_id", o.runID.String()))
	o.metrics = metrics.NewRecorder()
	o.exporter, err = report.NewExporter(cfg.ReportDir,
		report.WithFormat(report.Format(cfg.ReportFormat)),
		report.WithCompression(cfg.ReportCompress),
		report.WithLogger(o.log))
	if err != nil {
		return WrapExitError(ExitCommandError, "configure exporter", err)
	}
	o.log.Debug("configuration resolved",
		zap.String("report_dir", cfg.ReportDir),
		zap.String("report_format", cfg.ReportFormat),
		zap.Bool("compress", cfg.ReportCompress),
		zap.Int("precision", cfg.Precision))

	return nil
}

// finish logs the metrics summary on verbose runs and flushes the logger.
// Cobra skips it when the command fails; Execute flushes in that case.
func (o *RootOptions) finish(cmd *cobra.Command) {
	if o.Verbose && o.metrics != nil {
		out := o.formatter(cmd)
		if summary, err := o.metrics.Summary(); err == nil {
			for _, k := range metrics.SummaryKeys(summary) {
				out.VerboseLog("%s %g", k, summary[k])
			}
		}
	}
	o.sync()
}

func (o *RootOptions) sync() {
	if o.log != nil {
		_ = o.log.Sync()
	}
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// Execute runs the command tree with args and returns the process exit code.
// ExitError values have already been reported through the OutputFormatter;
// any other error comes from cobra itself (unknown command or flag) and is
// printed to errOut.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	opts := &RootOptions{}
	return execute(ctx, opts, args, in, out, errOut)
}

func execute(ctx context.Context, opts *RootOptions, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	opts.sync()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		err = WrapExitError(ExitCommandError, "command line", err)
	}

	return GetExitCode(err)
}
