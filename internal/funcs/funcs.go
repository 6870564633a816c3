package funcs

import (
	"context"

	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

const (
	// ModulePathName is the name module_path is registered under.
	ModulePathName = "module_path"
	// ExistsName is the name exists is registered under.
	ExistsName = "exists"
)

// variadicArgs accepts anything so argument errors come from
// singleStringArg rather than from cty's own type checks.
var variadicArgs = &function.Parameter{
	Name:             "args",
	Type:             cty.DynamicPseudoType,
	AllowNull:        true,
	AllowUnknown:     true,
	AllowDynamicType: true,
}

// ModulePathFunc returns module_path(name), which evaluates to the root
// directory of the named module in the resolver's environment.
//
// ctx is captured for logging; cty functions receive no context of their own.
func ModulePathFunc(ctx context.Context, resolver *modulepath.Resolver) function.Function {
	return function.New(&function.Spec{
		Description: "Returns the root directory of the named module in the active environment.",
		VarParam:    variadicArgs,
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			name, known, err := singleStringArg(ModulePathName, args)
			if err != nil {
				return cty.UnknownVal(retType), err
			}
			if !known {
				return cty.UnknownVal(retType), nil
			}

			root, err := resolver.ModulePath(ctx, name)
			if err != nil {
				return cty.UnknownVal(retType), err
			}
			return cty.StringVal(root), nil
		},
	})
}

// ExistsFunc returns exists(reference), which evaluates to whether a plain
// path or module-relative reference points at an existing filesystem entry.
func ExistsFunc(ctx context.Context, checker *modulepath.Checker) function.Function {
	return function.New(&function.Spec{
		Description: "Returns whether a file or directory exists. Accepts puppet:///modules/<module>/<path> references.",
		VarParam:    variadicArgs,
		Type:        function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			ref, known, err := singleStringArg(ExistsName, args)
			if err != nil {
				return cty.UnknownVal(retType), err
			}
			if !known {
				return cty.UnknownVal(retType), nil
			}

			found, err := checker.Exists(ctx, ref)
			if err != nil {
				return cty.UnknownVal(retType), err
			}
			return cty.BoolVal(found), nil
		},
	})
}
