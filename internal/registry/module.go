package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/spf13/afero"
)

// MetadataFileName is the optional module metadata document.
const MetadataFileName = "metadata.json"

// Module is a module visible in an environment.
type Module struct {
	Name        string    `json:"name" yaml:"name"`
	Path        string    `json:"path" yaml:"path"`
	Environment string    `json:"environment" yaml:"environment"`
	Metadata    *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Metadata holds the fields of metadata.json that listings display.
type Metadata struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
	License string `json:"license,omitempty" yaml:"license,omitempty"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Modules lists the modules visible in the named environment, sorted by
// name. A module shadowed by an earlier module path entry is not listed.
func (r *Registry) Modules(ctx context.Context, environment string) ([]*Module, error) {
	logger := ctxlog.FromContext(ctx)

	env, err := r.Environment(ctx, environment)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var modules []*Module
	for _, dir := range env.ModulePath {
		entries, err := afero.ReadDir(r.fs, dir)
		if os.IsNotExist(err) {
			logger.Debug("Module path entry does not exist, skipping.", "dir", dir)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list modules in %s: %w", dir, err)
		}

		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() || seen[name] {
				continue
			}
			if !moduleNameRe.MatchString(name) {
				logger.Warn("Skipping directory with an invalid module name.", "dir", dir, "name", name)
				continue
			}
			seen[name] = true

			mod := &Module{
				Name:        name,
				Path:        filepath.Join(dir, name),
				Environment: environment,
			}
			mod.Metadata, err = r.readMetadata(mod.Path)
			if err != nil {
				logger.Warn("Ignoring unreadable module metadata.", "module", name, "error", err)
			}
			modules = append(modules, mod)
		}
	}

	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	return modules, nil
}

// readMetadata loads metadata.json from a module root. It returns nil
// without an error when the file does not exist.
func (r *Registry) readMetadata(moduleRoot string) (*Metadata, error) {
	path := filepath.Join(moduleRoot, MetadataFileName)

	data, err := afero.ReadFile(r.fs, path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &meta, nil
}
