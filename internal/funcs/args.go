package funcs

import (
	"fmt"

	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/zclconf/go-cty/cty"
)

// singleStringArg normalises a variadic argument list to the one string the
// named function expects. known is false when the argument is not yet known.
func singleStringArg(name string, args []cty.Value) (value string, known bool, err error) {
	if len(args) > 0 && isSequence(args[0]) {
		if !args[0].IsKnown() {
			return "", false, nil
		}
		args = args[0].AsValueSlice()
	}

	if len(args) != 1 {
		return "", false, fmt.Errorf("%w: %s(): wrong number of arguments given (%d for 1)", modulepath.ErrInvalidArgument, name, len(args))
	}

	arg := args[0]
	if arg.IsNull() {
		return "", false, fmt.Errorf("%w: %s(): requires a string, got null", modulepath.ErrInvalidArgument, name)
	}
	if !arg.Type().Equals(cty.String) && !arg.Type().Equals(cty.DynamicPseudoType) {
		return "", false, fmt.Errorf("%w: %s(): requires a string, got %s", modulepath.ErrInvalidArgument, name, arg.Type().FriendlyName())
	}
	if !arg.IsKnown() {
		return "", false, nil
	}
	return arg.AsString(), true, nil
}

// isSequence reports whether v is a non-null list, tuple or set.
func isSequence(v cty.Value) bool {
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return false
	}
	return !v.IsNull()
}
