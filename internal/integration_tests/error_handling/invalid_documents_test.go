package integration_tests

import (
	"context"
	"testing"

	"github.com/specialistvlad/modfuncs/internal/app"
	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/specialistvlad/modfuncs/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestErrorHandling_Documents(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		hcl     string
		wantErr error
		errText string
	}{
		{
			name:    "syntax error is rejected",
			hcl:     "root = module_path(\"ssh\"\n",
			errText: "failed to parse",
		},
		{
			name:    "blocks are rejected",
			hcl:     "module \"ssh\" {\n  path = module_path(\"ssh\")\n}\n",
			errText: "failed to decode",
		},
		{
			name:    "missing module stops evaluation",
			hcl:     "root = module_path(\"nonexistent_module\")\n",
			wantErr: modulepath.ErrModuleNotFound,
			errText: `failed to evaluate "root"`,
		},
		{
			name:    "wrong argument count",
			hcl:     "root = module_path()\n",
			wantErr: modulepath.ErrInvalidArgument,
			errText: "module_path(): wrong number of arguments given (0 for 1)",
		},
		{
			name:    "wrong argument type",
			hcl:     "found = exists({ path = \"/etc\" })\n",
			wantErr: modulepath.ErrInvalidArgument,
			errText: "exists(): requires a string, got object",
		},
		{
			name:    "parent directory is not a module",
			hcl:     "root = module_path(\"..\")\n",
			wantErr: modulepath.ErrModuleNotFound,
			errText: `invalid module name ".."`,
		},
		{
			name:    "empty module name",
			hcl:     "found = exists(\"puppet:///modules//x\")\n",
			wantErr: modulepath.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			files := map[string]string{"/work/main.hcl": tc.hcl}
			result := testutil.RunIntegrationTest(t, files, func(ctx context.Context, a *app.App) error {
				_, err := a.Render(ctx, "/work/main.hcl")
				return err
			})

			require.Error(t, result.Err)
			if tc.wantErr != nil {
				require.ErrorIs(t, result.Err, tc.wantErr)
			}
			require.Contains(t, result.Err.Error(), tc.errText)
		})
	}
}

func TestErrorHandling_StartupFailure(t *testing.T) {
	t.Parallel()

	settings := testutil.Settings()
	settings.LogLevel = "verbose"

	result := testutil.RunIntegrationTestWithSettings(t, nil, settings, func(context.Context, *app.App) error {
		t.Fatal("app should not have been built")
		return nil
	})
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "application startup failed")
	require.Nil(t, result.App)
}
