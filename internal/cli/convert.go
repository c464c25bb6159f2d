package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/ucc"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	DateOptions
	Unix bool // input is Unix milliseconds rather than an internal instant
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{DateOptions: DateOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "convert <ms>",
		Short: "Convert an instant to a UCC date",
		Long: `Convert a millisecond instant to a UCC date.

The argument is an internal-epoch instant unless --unix is given, in which
case it is milliseconds since 1970-01-01T00:00:00Z. Negative values must
follow "--".

Examples:
  ucc convert 426705926400000
  ucc convert --unix 0
  ucc convert --unix --all -- -86400000`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	addDateFlags(cmd, &opts.DateOptions)
	cmd.Flags().BoolVar(&opts.Unix, "unix", false, "treat the argument as Unix milliseconds")
	return cmd
}

func runConvert(opts *ConvertOptions, arg string, cmd *cobra.Command) error {
	ms, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("invalid milliseconds %q: must be an integer", arg)
		_ = opts.formatter(cmd).Error(ErrCodeInvalidArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	d := ucc.FromInstant(ms)
	if opts.Unix {
		d = ucc.FromUnixMilli(ms)
	}
	return printDate(&opts.DateOptions, cmd, d)
}
