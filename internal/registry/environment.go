package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	// ConfFileName is the per-environment settings file.
	ConfFileName = "environment.conf"

	// BaseModulePathToken expands to the base module path inside modulepath.
	BaseModulePathToken = "$basemodulepath"

	defaultModulePath = "modules" + string(os.PathListSeparator) + BaseModulePathToken
)

// Environment is a named, ordered set of module directories.
type Environment struct {
	Name string
	// Dir is empty when the registry has no environment path.
	Dir        string
	ModulePath []string
}

// Environment loads the named environment.
func (r *Registry) Environment(ctx context.Context, name string) (*Environment, error) {
	logger := ctxlog.FromContext(ctx)

	if !environmentNameRe.MatchString(name) {
		return nil, fmt.Errorf("%w: invalid environment name %q", modulepath.ErrInvalidArgument, name)
	}

	if r.environmentPath == "" {
		return &Environment{
			Name:       name,
			ModulePath: append([]string(nil), r.baseModulePath...),
		}, nil
	}

	dir := filepath.Join(r.environmentPath, name)
	ok, err := afero.DirExists(r.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect environment directory %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q (looked in %s)", modulepath.ErrEnvironmentNotFound, name, r.environmentPath)
	}

	raw, err := r.readModulePathSetting(dir)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		Name:       name,
		Dir:        dir,
		ModulePath: r.expandModulePath(dir, raw),
	}
	logger.Debug("Loaded environment.", "environment", name, "dir", dir, "module_path", env.ModulePath)
	return env, nil
}

// Environments lists the names of all environments, sorted. It returns nil
// when the registry has no environment path.
func (r *Registry) Environments(ctx context.Context) ([]string, error) {
	if r.environmentPath == "" {
		return nil, nil
	}

	entries, err := afero.ReadDir(r.fs, r.environmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list environments in %s: %w", r.environmentPath, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && environmentNameRe.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	ctxlog.FromContext(ctx).Debug("Listed environments.", "path", r.environmentPath, "count", len(names))
	return names, nil
}

// readModulePathSetting returns the raw modulepath setting of the environment
// in dir, or the default when environment.conf is absent or does not set it.
func (r *Registry) readModulePathSetting(dir string) (string, error) {
	confPath := filepath.Join(dir, ConfFileName)

	data, err := afero.ReadFile(r.fs, confPath)
	if os.IsNotExist(err) {
		return defaultModulePath, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", confPath, err)
	}

	conf, err := ini.Load(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", confPath, err)
	}

	key := conf.Section(ini.DefaultSection).Key("modulepath")
	if value := strings.TrimSpace(key.String()); value != "" {
		return value, nil
	}
	return defaultModulePath, nil
}

// expandModulePath splits a modulepath setting and resolves every entry to an
// absolute directory.
func (r *Registry) expandModulePath(envDir, raw string) []string {
	var dirs []string
	for _, entry := range filepath.SplitList(raw) {
		entry = strings.TrimSpace(entry)
		switch {
		case entry == "":
			continue
		case entry == BaseModulePathToken:
			dirs = append(dirs, r.baseModulePath...)
		case filepath.IsAbs(entry):
			dirs = append(dirs, filepath.Clean(entry))
		default:
			dirs = append(dirs, filepath.Join(envDir, entry))
		}
	}
	return dirs
}
