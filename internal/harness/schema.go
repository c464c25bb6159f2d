package harness

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

// SchemaError is one schema violation in a scenario file.
type SchemaError struct {
	Path    string `json:"path,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// ValidateFile checks a scenario file against the scenario schema and
// against the loader's own rules. It returns the violations found; the
// error is non-nil only when the file cannot be read.
func ValidateFile(path string) ([]SchemaError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ValidateSchema(path, data), nil
}

// ValidateSchema checks scenario YAML against the embedded CUE schema.
// When the schema accepts the document, the stricter Go loader runs as well
// so that op arguments are checked too.
func ValidateSchema(filename string, data []byte) []SchemaError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return []SchemaError{{Message: fmt.Sprintf("compiling schema: %v", err)}}
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return convertCUEErrors(err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return convertCUEErrors(err)
	}

	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return convertCUEErrors(err)
	}

	if _, err := ParseScenario(data); err != nil {
		return []SchemaError{{Message: err.Error()}}
	}
	return nil
}

// convertCUEErrors flattens a CUE error list, attaching the first position
// that points into the scenario file rather than the schema.
func convertCUEErrors(err error) []SchemaError {
	var out []SchemaError
	for _, e := range cueerrors.Errors(err) {
		se := SchemaError{
			Path:    strings.Join(e.Path(), "."),
			Message: e.Error(),
		}
		if pos := scenarioPos(cueerrors.Positions(e)); pos.IsValid() {
			se.Line = pos.Line()
			se.Column = pos.Column()
		}
		out = append(out, se)
	}
	if len(out) == 0 {
		out = append(out, SchemaError{Message: err.Error()})
	}
	return out
}

func scenarioPos(positions []token.Pos) token.Pos {
	for _, p := range positions {
		if p.IsValid() && p.Filename() != "schema.cue" {
			return p
		}
	}
	return token.NoPos
}
