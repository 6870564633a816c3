package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// EvalError carries the diagnostics of a failed parse or evaluation. When a
// function call caused the failure, Unwrap returns the function's own error
// so callers can match it with errors.Is.
type EvalError struct {
	Diags hcl.Diagnostics
	Err   error
}

// Error renders the diagnostics, including source locations.
func (e *EvalError) Error() string {
	return e.Diags.Error()
}

// Unwrap returns the underlying function error, if any.
func (e *EvalError) Unwrap() error {
	return e.Err
}

// diagsError converts diagnostics into an error, or nil when they contain
// no errors.
func diagsError(diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}

	evalErr := &EvalError{Diags: diags}
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if extra, ok := hcl.DiagnosticExtra[hclsyntax.FunctionCallDiagExtra](diag); ok {
			if err := extra.FunctionCallError(); err != nil {
				evalErr.Err = err
				break
			}
		}
	}
	return evalErr
}
