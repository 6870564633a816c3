package funcs

import (
	"context"

	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Table returns every function available to documents: module_path and
// exists bound to resolver and checker, plus a small general-purpose set.
func Table(ctx context.Context, resolver *modulepath.Resolver, checker *modulepath.Checker) map[string]function.Function {
	table := map[string]function.Function{
		ModulePathName: ModulePathFunc(ctx, resolver),
		ExistsName:     ExistsFunc(ctx, checker),

		"try": tryfunc.TryFunc,
		"can": tryfunc.CanFunc,
	}
	for name, fn := range builtins {
		table[name] = fn
	}
	return table
}

var builtins = map[string]function.Function{
	"abs":        stdlib.AbsoluteFunc,
	"coalesce":   stdlib.CoalesceFunc,
	"concat":     stdlib.ConcatFunc,
	"contains":   stdlib.ContainsFunc,
	"format":     stdlib.FormatFunc,
	"join":       stdlib.JoinFunc,
	"jsonencode": stdlib.JSONEncodeFunc,
	"keys":       stdlib.KeysFunc,
	"length":     stdlib.LengthFunc,
	"lower":      stdlib.LowerFunc,
	"max":        stdlib.MaxFunc,
	"merge":      stdlib.MergeFunc,
	"min":        stdlib.MinFunc,
	"replace":    stdlib.ReplaceFunc,
	"split":      stdlib.SplitFunc,
	"trimspace":  stdlib.TrimSpaceFunc,
	"upper":      stdlib.UpperFunc,
	"values":     stdlib.ValuesFunc,
}
