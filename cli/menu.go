package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/session"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu (default)",
		Long: `Run the interactive menu on standard input and output.

Each completed module prints its results and writes a report file to the
configured directory. The menu ends on choice 7 or at end of input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(rootOpts, cmd)
		},
	}
}

func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	// The session attaches run_id itself.
	s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts.exporter,
		session.WithRunID(opts.runID),
		session.WithLogger(opts.baseLog),
		session.WithMetrics(opts.metrics),
		session.WithFormatter(opts.cfg.Formatter()))

	err := s.Run(cmd.Context())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrCancelled):
		_ = opts.formatter(cmd).Error(ErrCodeCancelled, "input ended before exit was chosen", nil)
		return WrapExitError(ExitFailure, "menu", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		_ = opts.formatter(cmd).Error(ErrCodeCancelled, "interrupted", nil)
		return WrapExitError(ExitFailure, "menu", err)
	default:
		_ = opts.formatter(cmd).Error(ErrCodeOperation, err.Error(), nil)
		return WrapExitError(ExitFailure, "menu", err)
	}
}
