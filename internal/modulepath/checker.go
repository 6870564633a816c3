package modulepath

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/spf13/afero"
)

// Checker reports whether references point at existing filesystem entries.
type Checker struct {
	resolver *Resolver
	fs       afero.Fs
}

// NewChecker creates a Checker that resolves references with resolver and
// stats the result on fs.
func NewChecker(resolver *Resolver, fs afero.Fs) *Checker {
	return &Checker{
		resolver: resolver,
		fs:       fs,
	}
}

// Exists resolves reference and reports whether anything exists at the
// resulting path. Files, directories and other entries all count; symlinks
// are followed. Resolution errors are returned as they are, never as false.
func (c *Checker) Exists(ctx context.Context, reference string) (bool, error) {
	path, err := c.resolver.Resolve(ctx, reference)
	if err != nil {
		return false, err
	}

	found, err := afero.Exists(c.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ctxlog.FromContext(ctx).Debug("Checked path existence.", "reference", reference, "path", path, "exists", found)
	return found, nil
}
