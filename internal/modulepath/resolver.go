package modulepath

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/modfuncs/internal/ctxlog"
)

// Resolver turns references into absolute paths for a single environment.
type Resolver struct {
	locator     Locator
	environment string
}

// NewResolver creates a Resolver that looks modules up in the given environment.
func NewResolver(locator Locator, environment string) *Resolver {
	if locator == nil {
		panic("modulepath: locator must not be nil")
	}
	return &Resolver{
		locator:     locator,
		environment: environment,
	}
}

// Environment returns the environment the resolver is bound to.
func (r *Resolver) Environment() string {
	return r.environment
}

// ModulePath returns the root directory of the named module.
func (r *Resolver) ModulePath(ctx context.Context, moduleName string) (string, error) {
	if moduleName == "" {
		return "", fmt.Errorf("%w: module name must not be empty", ErrInvalidArgument)
	}

	root, err := r.locator.Locate(ctx, moduleName, r.environment)
	if err != nil {
		return "", err
	}

	ctxlog.FromContext(ctx).Debug("Module located.", "module", moduleName, "environment", r.environment, "root", root)
	return root, nil
}

// Resolve returns the absolute path a reference points to.
//
// Module-relative references resolve to <module root>/files/<path>. Anything
// else is treated as a plain path and returned in absolute, cleaned form
// without consulting the locator. ".." segments are not restricted in either
// case.
func (r *Resolver) Resolve(ctx context.Context, reference string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if reference == "" {
		return "", fmt.Errorf("%w: reference must not be empty", ErrInvalidArgument)
	}

	moduleName, relPath, ok := SplitReference(reference)
	if !ok {
		resolved, err := expandPath(reference)
		if err != nil {
			return "", err
		}
		logger.Debug("Resolved plain path.", "reference", reference, "path", resolved)
		return resolved, nil
	}

	if moduleName == "" {
		return "", fmt.Errorf("%w: reference %q does not name a module", ErrInvalidArgument, reference)
	}

	root, err := r.ModulePath(ctx, moduleName)
	if err != nil {
		return "", err
	}

	resolved := filepath.Join(root, FilesDir, filepath.FromSlash(relPath))
	logger.Debug("Resolved module reference.", "reference", reference, "module", moduleName, "path", resolved)
	return resolved, nil
}

// expandPath makes p absolute relative to the working directory, expanding a
// leading "~" to the current user's home directory.
func expandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %q: %w", p, err)
		}
		p = filepath.Join(home, p[1:])
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to make %q absolute: %w", p, err)
	}
	return abs, nil
}
