package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/ucc"
)

// maxLeapCount bounds the number of rows the leap command prints.
const maxLeapCount = 10000

// LeapOptions holds flags for the leap command.
type LeapOptions struct {
	*RootOptions
	Count int
}

// LeapRow describes one year of the leap cycle.
type LeapRow struct {
	Year       int64 `json:"year" yaml:"year"`
	Leap       bool  `json:"leap" yaml:"leap"`
	StartDay   int64 `json:"start_day" yaml:"start_day"`
	LeapDays   int64 `json:"leap_days" yaml:"leap_days"`
	LeapCycle  int64 `json:"leap_cycle" yaml:"leap_cycle"`
	LeapOffset int64 `json:"leap_offset" yaml:"leap_offset"`
}

// NewLeapCommand creates the leap command.
func NewLeapCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LeapOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "leap <year>",
		Short: "Show the leap status of UCC years",
		Long: `Show whether UCC years are leap years under the 33-year cycle, with the
first day of each year counted from the epoch.

Examples:
  ucc leap 13525
  ucc leap 13500 --count 33`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeap(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 1, "number of consecutive years")
	return cmd
}

func runLeap(opts *LeapOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	year, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("invalid year %q: must be an integer", arg)
		_ = formatter.Error(ErrCodeInvalidArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	if opts.Count < 1 || opts.Count > maxLeapCount {
		msg := fmt.Sprintf("invalid count %d: must be between 1 and %d", opts.Count, maxLeapCount)
		_ = formatter.Error(ErrCodeInvalidArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	rows := LeapRows(year, opts.Count)
	if formatter.Structured() {
		return formatter.Success(rows)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tLEAP\tSTART DAY\tCYCLE\tOFFSET\tLEAP DAYS")
	for _, r := range rows {
		leap := "no"
		if r.Leap {
			leap = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n", r.Year, leap, r.StartDay, r.LeapCycle, r.LeapOffset, r.LeapDays)
	}
	return tw.Flush()
}

// LeapRows describes count consecutive years starting at year.
func LeapRows(year int64, count int) []LeapRow {
	rows := make([]LeapRow, 0, count)
	for i := range count {
		y := year + int64(i)
		rows = append(rows, LeapRow{
			Year:       y,
			Leap:       ucc.IsLeapYear(y),
			StartDay:   ucc.YearToDays(y),
			LeapDays:   ucc.LeapDays(y),
			LeapCycle:  ucc.LeapCycle(y),
			LeapOffset: ucc.LeapOffset(y),
		})
	}
	return rows
}
