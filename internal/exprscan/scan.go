package exprscan

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, suitable for use as a map key, e.g. "var.foo[0].bar".
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// scan walks expressions and collects unique variable traversals and called
// function names, both sorted.
func scan(exprs ...hcl.Expression) ([]hcl.Traversal, []string) {
	traversals := make(map[string]hcl.Traversal)
	functions := make(map[string]struct{})

	for _, expr := range exprs {
		if expr == nil {
			continue
		}

		for _, traversal := range expr.Variables() {
			traversals[TraversalKey(traversal)] = traversal
		}

		// Only native syntax has a walkable tree; JSON expressions carry no calls.
		if node, ok := expr.(hclsyntax.Node); ok {
			hclsyntax.VisitAll(node, func(n hclsyntax.Node) hcl.Diagnostics {
				if call, ok := n.(*hclsyntax.FunctionCallExpr); ok {
					functions[call.Name] = struct{}{}
				}
				return nil
			})
		}
	}

	keys := make([]string, 0, len(traversals))
	for k := range traversals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	refs := make([]hcl.Traversal, 0, len(keys))
	for _, k := range keys {
		refs = append(refs, traversals[k])
	}

	calls := make([]string, 0, len(functions))
	for f := range functions {
		calls = append(calls, f)
	}
	sort.Strings(calls)

	return refs, calls
}
