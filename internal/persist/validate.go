package persist

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaCUE string

// vetDocument checks the raw document bytes against the embedded schema.
// The path is used only for error positions.
func vetDocument(path string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}
	docSchema := schema.LookupPath(cue.ParsePath("#Document"))
	if err := docSchema.Err(); err != nil {
		return fmt.Errorf("lookup #Document: %w", err)
	}

	expr, err := cuejson.Extract(path, data)
	if err != nil {
		return fmt.Errorf("not valid JSON: %s", cueerrors.Details(err, nil))
	}

	val := ctx.BuildExpr(expr)
	if err := val.Err(); err != nil {
		return fmt.Errorf("build document value: %w", err)
	}

	unified := docSchema.Unify(val)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return fmt.Errorf("document does not match schema: %s", cueerrors.Details(err, nil))
	}
	return nil
}
