package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/config"
	"github.com/roach88/uccal/internal/report"
	"github.com/roach88/uccal/internal/ucc"
)

// RootOptions holds global flags and the settings resolved from them.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigFile string
	Pantheon   string

	// Resolved in PersistentPreRunE.
	Config *config.Config
	Logger *slog.Logger

	deps Deps
}

// Deps are the injectable collaborators of the CLI.
type Deps struct {
	// Clock is read by the "now" command.
	Clock ucc.Clock

	// IDs generates the trace_id of JSON and YAML responses.
	IDs IDGenerator

	// SearchPaths are the config files tried when --config is not given.
	SearchPaths []string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the ucc CLI, reading the
// system clock and generating UUIDv7 trace IDs.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(Deps{
		Clock:       ucc.SystemClock{},
		IDs:         UUIDv7Generator{},
		SearchPaths: config.DefaultSearchPaths(),
	})
}

// NewRootCommandWith creates the root command with explicit dependencies.
func NewRootCommandWith(deps Deps) *cobra.Command {
	opts := &RootOptions{deps: deps}

	cmd := &cobra.Command{
		Use:   "ucc",
		Short: "UCC - Universal Calendar Converter",
		Long: `Convert instants between Unix milliseconds and the UCC calendar.

The UCC calendar counts years of 365.242424242 days from its own epoch,
divides each year into two ZERO days and twelve zodiac triads, and names
every day, e.g. "8th TEN-Capricorn♑ 13521".

Settings are read from --config, ./ucc.toml or ~/.config/ucc/config.toml,
then from UCC_* environment variables, then from flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (TOML)")
	cmd.PersistentFlags().StringVar(&opts.Pantheon, "pantheon", ucc.Western.String(), "decan day names (western|greek|hindu)")

	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewComposeCommand(opts))
	cmd.AddCommand(NewTriadsCommand(opts))
	cmd.AddCommand(NewLeapCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// resolve loads configuration, lets changed flags override it, and sets up
// the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	v, err := config.New(o.ConfigFile, o.deps.SearchPaths)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	for _, key := range []string{config.KeyFormat, config.KeyPantheon, config.KeyStyle} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return WrapExitError(ExitCommandError, "failed to bind flag", err)
			}
		}
	}
	if o.Verbose {
		v.Set(config.KeyLogLevel, "debug")
	}

	cfg, err := config.Load(v)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	o.Config = cfg
	o.Format = cfg.Format
	o.Pantheon = cfg.Pantheon

	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	o.Logger.Debug("configuration resolved",
		"config_file", v.ConfigFileUsed(),
		"format", cfg.Format,
		"style", cfg.Style,
		"pantheon", cfg.Pantheon,
	)
	return nil
}

// formatter returns an OutputFormatter writing to cmd's streams.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		IDs:       o.deps.IDs,
	}
}

// pantheon returns the resolved pantheon.
func (o *RootOptions) pantheon() ucc.Pantheon {
	if o.Config != nil {
		return o.Config.PantheonValue()
	}
	p, _ := ucc.ParsePantheon(o.Pantheon)
	return p
}

// style returns the resolved date style.
func (o *RootOptions) style() report.Style {
	if o.Config != nil {
		return o.Config.StyleValue()
	}
	return report.StyleFull
}

// logger returns the resolved logger, or a discarding one before
// resolution.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
