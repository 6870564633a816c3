package cli

import "fmt"

const (
	// ExitFailure is the exit code for evaluation and resolution errors.
	ExitFailure = 1
	// ExitUsage is the exit code for invalid arguments, flags or settings.
	ExitUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}
