package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/spf13/afero"
)

var (
	environmentNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	moduleNameRe      = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// Options configures a Registry.
type Options struct {
	// EnvironmentPath is the directory holding one subdirectory per
	// environment. When empty, every environment name is accepted and sees
	// only BaseModulePath.
	EnvironmentPath string

	// BaseModulePath is the global module path shared by all environments.
	BaseModulePath []string
}

// Registry looks environments and modules up on a filesystem.
type Registry struct {
	fs              afero.Fs
	environmentPath string
	baseModulePath  []string
}

var _ modulepath.Locator = (*Registry)(nil)

// New creates a Registry reading from fs. Relative directories in opts are
// made absolute against the current working directory.
func New(fs afero.Fs, opts Options) (*Registry, error) {
	r := &Registry{fs: fs}

	if opts.EnvironmentPath != "" {
		abs, err := filepath.Abs(opts.EnvironmentPath)
		if err != nil {
			return nil, fmt.Errorf("invalid environment path %q: %w", opts.EnvironmentPath, err)
		}
		r.environmentPath = abs
	}

	for _, dir := range opts.BaseModulePath {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid base module path entry %q: %w", dir, err)
		}
		r.baseModulePath = append(r.baseModulePath, abs)
	}

	return r, nil
}

// Locate returns the root directory of moduleName in the named environment.
func (r *Registry) Locate(ctx context.Context, moduleName, environment string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if moduleName == "" {
		return "", fmt.Errorf("%w: module name must not be empty", modulepath.ErrInvalidArgument)
	}

	env, err := r.Environment(ctx, environment)
	if err != nil {
		return "", err
	}

	// Only valid module names can name a module directory; this also keeps
	// "..", "." and nested paths from escaping the module path entries.
	if !moduleNameRe.MatchString(moduleName) {
		logger.Debug("Rejected invalid module name.", "module", moduleName, "environment", environment)
		return "", fmt.Errorf("%w: invalid module name %q in environment %q", modulepath.ErrModuleNotFound, moduleName, environment)
	}

	for _, dir := range env.ModulePath {
		candidate := filepath.Join(dir, moduleName)
		ok, err := afero.DirExists(r.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to inspect %s: %w", candidate, err)
		}
		if ok {
			logger.Debug("Found module in module path.", "module", moduleName, "environment", environment, "dir", dir)
			return candidate, nil
		}
	}

	logger.Debug("Module not found in any module path entry.", "module", moduleName, "environment", environment, "module_path", env.ModulePath)
	return "", fmt.Errorf("%w: invalid module name %q in environment %q", modulepath.ErrModuleNotFound, moduleName, environment)
}
