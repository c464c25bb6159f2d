package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/ucc"
)

// ComposeOptions holds flags for the compose command.
type ComposeOptions struct {
	DateOptions
	Year   int64
	Triad  int
	Day    int64
	Hour   int64
	Minute int64
	Second int64
	Millis int64
}

// NewComposeCommand creates the compose command.
func NewComposeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComposeOptions{DateOptions: DateOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a UCC date from its fields",
		Long: `Build a UCC date from year, triad and day (plus an optional time of day)
and print it.

Triad 0 is the pair of ZERO days that open the year.

Examples:
  ucc compose --year 13521 --triad 10 --day 8
  ucc compose --year 13525 --triad 0 --day 0 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(opts, cmd)
		},
	}

	addDateFlags(cmd, &opts.DateOptions)
	cmd.Flags().Int64Var(&opts.Year, "year", 0, "UCC year")
	cmd.Flags().IntVar(&opts.Triad, "triad", 0, "triad (0-12)")
	cmd.Flags().Int64Var(&opts.Day, "day", 0, "day of the triad")
	cmd.Flags().Int64Var(&opts.Hour, "hour", 0, "hour of the day")
	cmd.Flags().Int64Var(&opts.Minute, "minute", 0, "minute of the hour")
	cmd.Flags().Int64Var(&opts.Second, "second", 0, "second of the minute")
	cmd.Flags().Int64Var(&opts.Millis, "ms", 0, "millisecond of the second")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("triad")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func runCompose(opts *ComposeOptions, cmd *cobra.Command) error {
	d, err := ucc.FromFields(opts.Year, opts.Triad, opts.Day, opts.Hour, opts.Minute, opts.Second, opts.Millis)
	if err != nil {
		_ = opts.formatter(cmd).Error(ErrCodeRange, err.Error(), map[string]any{
			"code":  string(ucc.ErrorCode(err)),
			"triad": opts.Triad,
		})
		return WrapExitError(ExitCommandError, "cannot compose date", err)
	}
	return printDate(&opts.DateOptions, cmd, d)
}
