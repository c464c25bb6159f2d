package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/ucc"
)

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current UCC date",
		Long: `Print the current date in the UCC calendar.

Examples:
  ucc now
  ucc now --style short
  ucc now --all --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := rootOpts.deps.Clock
			if clock == nil {
				clock = ucc.SystemClock{}
			}
			return printDate(opts, cmd, ucc.Now(clock))
		},
	}

	addDateFlags(cmd, opts)
	return cmd
}
