package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/uccal/internal/harness"
)

// FileValidation holds the validation result of one scenario file.
type FileValidation struct {
	File   string                `json:"file" yaml:"file"`
	Valid  bool                  `json:"valid" yaml:"valid"`
	Errors []harness.SchemaError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool             `json:"valid" yaml:"valid"`
	Files []FileValidation `json:"files" yaml:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario-file>...",
		Short: "Validate scenario files without running them",
		Long: `Validate scenario files against the scenario schema.

Reports every violation with its line and column. Faster than test for
authoring feedback since no scenario is executed.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, files []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result := ValidationResult{Valid: true, Files: make([]FileValidation, 0, len(files))}
	errCount := 0
	for _, file := range files {
		formatter.VerboseLog("Validating %s", file)

		errs, err := harness.ValidateFile(file)
		if err != nil {
			msg := fmt.Sprintf("%s: %v", file, err)
			_ = formatter.Error(ErrCodeNotFound, msg, nil)
			return WrapExitError(ExitCommandError, "cannot read scenario", err)
		}
		fv := FileValidation{File: file, Valid: len(errs) == 0, Errors: errs}
		if !fv.Valid {
			result.Valid = false
			errCount += len(errs)
		}
		result.Files = append(result.Files, fv)
	}

	if formatter.Structured() {
		resp := CLIResponse{Status: "ok", Data: result}
		if !result.Valid {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    ErrCodeInvalidScenario,
				Message: fmt.Sprintf("validation failed with %d error(s)", errCount),
			}
		}
		if err := formatter.Respond(resp); err != nil {
			return err
		}
	} else {
		outputValidateText(formatter, result)
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", errCount))
	}
	return nil
}

func outputValidateText(formatter *OutputFormatter, result ValidationResult) {
	w := formatter.Writer
	for _, fv := range result.Files {
		if fv.Valid {
			fmt.Fprintf(w, "✓ %s\n", fv.File)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", fv.File)
		for _, e := range fv.Errors {
			if e.Line > 0 {
				fmt.Fprintf(w, "  line %d:%d", e.Line, e.Column)
				if e.Path != "" {
					fmt.Fprintf(w, " (%s)", e.Path)
				}
				fmt.Fprintf(w, ": %s\n", e.Message)
				continue
			}
			fmt.Fprintf(w, "  %s\n", e.Message)
		}
	}
}
