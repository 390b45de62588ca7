package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// functions available to every settings expression.
func functions() map[string]function.Function {
	return map[string]function.Function{
		"concat":   stdlib.ConcatFunc,
		"distinct": stdlib.DistinctFunc,
		"length":   stdlib.LengthFunc,
		"lower":    stdlib.LowerFunc,
		"upper":    stdlib.UpperFunc,
	}
}

// newEvalContext exposes s as the `defaults` variable.
func newEvalContext(s *config.Settings) (*hcl.EvalContext, error) {
	doc := toDefaultsDoc(s)
	ty, err := gocty.ImpliedType(doc)
	if err != nil {
		return nil, fmt.Errorf("deriving defaults type: %w", err)
	}
	val, err := gocty.ToCtyValue(doc, ty)
	if err != nil {
		return nil, fmt.Errorf("converting defaults: %w", err)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"defaults": val},
		Functions: functions(),
	}, nil
}
