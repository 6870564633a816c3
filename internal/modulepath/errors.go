package modulepath

import "errors"

var (
	// ErrInvalidArgument reports a wrong argument count, a wrong argument type or
	// a malformed reference.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrModuleNotFound reports a module that is absent from the active environment.
	ErrModuleNotFound = errors.New("module not found")

	// ErrEnvironmentNotFound reports an environment that does not exist.
	ErrEnvironmentNotFound = errors.New("environment not found")
)
