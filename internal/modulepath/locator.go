package modulepath

import "context"

// Locator finds the root directory of a module inside an environment.
//
// Implementations return an absolute path, or an error wrapping
// ErrModuleNotFound when the environment has no module of that name.
type Locator interface {
	Locate(ctx context.Context, moduleName, environment string) (string, error)
}

// LocatorFunc adapts an ordinary function to the Locator interface.
type LocatorFunc func(ctx context.Context, moduleName, environment string) (string, error)

// Locate calls f(ctx, moduleName, environment).
func (f LocatorFunc) Locate(ctx context.Context, moduleName, environment string) (string, error) {
	return f(ctx, moduleName, environment)
}
