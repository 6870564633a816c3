package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/specialistvlad/modfuncs/internal/hcl"
	"github.com/specialistvlad/modfuncs/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// ModulePath returns the root directory of the named module in the active
// environment.
func (a *App) ModulePath(ctx context.Context, name string) (string, error) {
	return a.resolver.ModulePath(a.withLogger(ctx), name)
}

// Resolve turns a plain path or module reference into an absolute path.
func (a *App) Resolve(ctx context.Context, reference string) (string, error) {
	return a.resolver.Resolve(a.withLogger(ctx), reference)
}

// Exists reports whether reference resolves to an existing file or directory.
func (a *App) Exists(ctx context.Context, reference string) (bool, error) {
	return a.checker.Exists(a.withLogger(ctx), reference)
}

// Eval evaluates a single HCL expression.
func (a *App) Eval(ctx context.Context, expr string) (cty.Value, error) {
	return a.evaluator.EvalExpression(a.withLogger(ctx), expr)
}

// Render evaluates the HCL documents at path.
func (a *App) Render(ctx context.Context, path string) ([]*hcl.Document, error) {
	ctx = a.withLogger(ctx)
	docs, err := a.evaluator.EvalPath(ctx, path)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("Documents rendered.", "path", path, "count", len(docs))
	return docs, nil
}

// Check parses the HCL documents at path without evaluating them, so their
// function calls and references can be inspected.
func (a *App) Check(ctx context.Context, path string) ([]*hcl.Document, error) {
	ctx = a.withLogger(ctx)
	docs, err := a.evaluator.ParsePath(ctx, path)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx)
	for _, doc := range docs {
		for _, name := range doc.Scan.CalledFunctions() {
			if _, ok := a.functions[name]; !ok {
				logger.Warn("Document calls an unknown function.", "path", doc.Path, "function", name)
			}
		}
		for _, ref := range doc.Scan.References() {
			if name := ref.RootName(); name != EnvironmentVariable {
				logger.Warn("Document references an unknown variable.", "path", doc.Path, "variable", name)
			}
		}
	}
	return docs, nil
}

// Modules lists the modules visible in the active environment.
func (a *App) Modules(ctx context.Context) ([]*registry.Module, error) {
	modules, err := a.registry.Modules(a.withLogger(ctx), a.settings.Environment)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	return modules, nil
}

// Environments lists the available environments.
func (a *App) Environments(ctx context.Context) ([]string, error) {
	return a.registry.Environments(a.withLogger(ctx))
}
