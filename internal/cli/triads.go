package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/report"
)

// NewTriadsCommand creates the triads command.
func NewTriadsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "triads",
		Short: "List the triads of the UCC year",
		Long: `List the ZERO days and the twelve triads with the day-of-year span
each one covers.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			rows := report.Triads()
			if formatter.Structured() {
				return formatter.Success(rows)
			}

			tw := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tWORD\tNAME\tSYMBOL\tDOY\tDAYS")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d-%d\t%d\n", r.Number, r.Word, r.Name, r.Symbol, r.FirstDoy, r.LastDoy, r.Days)
			}
			return tw.Flush()
		},
	}
}
