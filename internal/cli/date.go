package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/report"
	"github.com/roach88/uccal/internal/ucc"
)

// DateOptions holds the rendering flags shared by date-printing commands.
type DateOptions struct {
	*RootOptions
	Style string // one of report.Styles(); empty uses the configured style
	All   bool   // print the full report
}

// DateResult is the structured payload of a single-style date.
type DateResult struct {
	Instant   int64  `json:"instant" yaml:"instant"`
	UnixMilli int64  `json:"unix_ms" yaml:"unix_ms"`
	Style     string `json:"style" yaml:"style"`
	Value     string `json:"value" yaml:"value"`
}

func addDateFlags(cmd *cobra.Command, opts *DateOptions) {
	cmd.Flags().StringVar(&opts.Style, "style", "", fmt.Sprintf("date style %v", report.Styles()))
	cmd.Flags().BoolVar(&opts.All, "all", false, "print every derived field")
}

// resolvedStyle prefers an explicit --style over configuration.
func (o *DateOptions) resolvedStyle(cmd *cobra.Command) (report.Style, error) {
	if cmd.Flags().Changed("style") || o.RootOptions.Config == nil {
		if o.Style == "" {
			return report.StyleFull, nil
		}
		return report.ParseStyle(o.Style)
	}
	return o.RootOptions.style(), nil
}

// printDate writes d in the configured format.
func printDate(opts *DateOptions, cmd *cobra.Command, d ucc.Date) error {
	formatter := opts.formatter(cmd)

	style, err := opts.resolvedStyle(cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidArgument, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid style", err)
	}

	opts.logger().Debug("rendering date", "instant", d.Instant(), "style", style, "all", opts.All)

	if opts.All {
		r := report.Build(d, opts.pantheon())
		if formatter.Structured() {
			return formatter.Success(r)
		}
		return writeReportText(formatter.Writer, r)
	}

	value, err := report.Render(d, style)
	if err != nil {
		_ = formatter.Error(ErrCodeRange, err.Error(), map[string]any{
			"instant": d.Instant(),
			"doy":     d.Doy(),
			"code":    string(ucc.ErrorCode(err)),
		})
		return WrapExitError(ExitFailure, "cannot render date", err)
	}

	if formatter.Structured() {
		return formatter.Success(DateResult{
			Instant:   d.Instant(),
			UnixMilli: d.UnixMilli(),
			Style:     string(style),
			Value:     value,
		})
	}
	return formatter.Success(value)
}

// writeReportText prints a report as aligned "field value" lines.
func writeReportText(w io.Writer, r report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(k string, v any) { fmt.Fprintf(tw, "%s\t%v\n", k, v) }

	row("instant", r.Instant)
	row("unix_ms", r.UnixMilli)
	row("gregorian", r.Gregorian)
	row("year", r.Year)
	row("doy", r.Doy)
	if r.Error != nil {
		row("error", fmt.Sprintf("%s: %s", r.Error.Code, r.Error.Message))
	} else {
		row("full", r.Full)
		row("long", r.Long)
		row("medium", r.Medium)
		row("short", r.Short)
		row("sortable", r.Sortable)
		row("format", r.Format)
		row("triad", fmt.Sprintf("%d %s %s", r.Triad, r.TriadName, r.TriadSymbol))
		row("day", r.Day)
		row("quarter", r.Quarter)
		row("decan", fmt.Sprintf("%d %s", r.Decan, r.DecanSymbol))
		row("decan_day", fmt.Sprintf("%s (%s)", r.DecanDay, r.Pantheon))
	}
	row("leap", r.Leap)
	row("leap_cycle", fmt.Sprintf("%d offset %d, %d leap days", r.LeapCycle, r.LeapOffset, r.LeapDays))
	if r.Intercal != "" {
		row("intercal", r.Intercal+" "+r.IntercalSymbol)
	}
	row("intercals", r.Intercals)
	if r.Festival != "" {
		row("festival", fmt.Sprintf("%d %s %s", r.FestivalNumber, r.Festival, r.FestivalSymbol))
	}
	row("moon", fmt.Sprintf("%s %s (%.2f days)", r.MoonPhase, r.MoonSymbol, r.MoonAge))
	row("yuga", r.Yuga)
	row("zodiac_age", r.ZodiacAge)
	return tw.Flush()
}
