package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/modfuncs/internal/config"
	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/specialistvlad/modfuncs/internal/funcs"
	"github.com/specialistvlad/modfuncs/internal/hcl"
	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/specialistvlad/modfuncs/internal/registry"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// EnvironmentVariable is the HCL variable holding the active environment name.
const EnvironmentVariable = "environment"

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger    *slog.Logger
	settings  *config.Settings
	registry  *registry.Registry
	resolver  *modulepath.Resolver
	checker   *modulepath.Checker
	functions map[string]function.Function
	evaluator *hcl.Evaluator
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger writing to logW. Every
// filesystem read goes through fs.
func NewApp(logW io.Writer, settings *config.Settings, fs afero.Fs) (*App, error) {
	if settings == nil {
		panic("app: settings must not be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg, err := registry.New(fs, registry.Options{
		EnvironmentPath: settings.EnvironmentPath,
		BaseModulePath:  settings.BaseModulePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create module registry: %w", err)
	}
	logger.Debug("Module registry created.", "environment_path", settings.EnvironmentPath, "base_module_path", settings.BaseModulePath)

	resolver := modulepath.NewResolver(reg, settings.Environment)
	checker := modulepath.NewChecker(resolver, fs)

	// The functions outlive this call; they log through ctx.
	functions := funcs.Table(ctxlog.With(ctx, "environment", settings.Environment), resolver, checker)
	variables := map[string]cty.Value{
		EnvironmentVariable: cty.StringVal(settings.Environment),
	}
	logger.Debug("Function table built.", "count", len(functions))

	return &App{
		logger:    logger,
		settings:  settings,
		registry:  reg,
		resolver:  resolver,
		checker:   checker,
		functions: functions,
		evaluator: hcl.NewEvaluator(fs, functions, variables),
	}, nil
}

// Settings returns the settings the app was built with.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// withLogger attaches the app logger to ctx.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
