package testutil

import (
	"context"
	"fmt"
	"maps"
	"os"
	"testing"

	"github.com/specialistvlad/modfuncs/internal/app"
	"github.com/specialistvlad/modfuncs/internal/config"
)

// LogsEnvVar enables dumping captured logs from harness runs.
const LogsEnvVar = "MODFUNCS_TEST_LOGS"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// Settings returns debug-level settings pointing at the PuppetTree layout.
func Settings() *config.Settings {
	s := config.Default()
	s.EnvironmentPath = EnvironmentPath
	s.BaseModulePath = []string{BaseModulePath}
	s.LogLevel = "debug"
	return s
}

// RunIntegrationTest builds an App over an in-memory filesystem holding
// PuppetTree plus files, then calls fn with it.
func RunIntegrationTest(t *testing.T, files map[string]string, fn func(context.Context, *app.App) error) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithSettings(t, files, Settings(), fn)
}

// RunIntegrationTestWithSettings is RunIntegrationTest with caller-provided
// settings.
func RunIntegrationTestWithSettings(t *testing.T, files map[string]string, settings *config.Settings, fn func(context.Context, *app.App) error) *HarnessResult {
	t.Helper()

	tree := maps.Clone(PuppetTree)
	maps.Copy(tree, files)
	fs := NewFs(t, tree)

	logBuffer := &SafeBuffer{}
	testApp, err := app.NewApp(logBuffer, settings, fs)
	if err != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup failed: %w", err),
		}
	}

	runErr := fn(context.Background(), testApp)

	if os.Getenv(LogsEnvVar) == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
