package integration_tests

import (
	"context"
	"testing"

	"github.com/specialistvlad/modfuncs/internal/app"
	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/specialistvlad/modfuncs/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestEnvironments_ModulePathOrder(t *testing.T) {
	t.Parallel()

	env := testutil.EnvironmentPath + "/ordered"
	files := map[string]string{
		env + "/environment.conf":            "modulepath = first:second:$basemodulepath\n",
		env + "/first/shared/files/which":    "first\n",
		env + "/second/shared/files/which":   "second\n",
		env + "/second/only_second/files/ok": "ok\n",
	}

	testCases := []struct {
		module string
		want   string
	}{
		{module: "shared", want: env + "/first/shared"},
		{module: "only_second", want: env + "/second/only_second"},
		{module: "stdlib", want: testutil.BaseModulePath + "/stdlib"},
	}

	settings := testutil.Settings()
	settings.Environment = "ordered"

	result := testutil.RunIntegrationTestWithSettings(t, files, settings, func(ctx context.Context, a *app.App) error {
		for _, tc := range testCases {
			got, err := a.ModulePath(ctx, tc.module)
			require.NoError(t, err, tc.module)
			require.Equal(t, tc.want, got, tc.module)
		}

		modules, err := a.Modules(ctx)
		require.NoError(t, err)
		var names []string
		for _, m := range modules {
			names = append(names, m.Name)
		}
		require.Equal(t, []string{"only_second", "shared", "ssh", "stdlib"}, names)
		return nil
	})
	require.NoError(t, result.Err)
}

func TestEnvironments_WithoutBaseModulePath(t *testing.T) {
	t.Parallel()

	env := testutil.EnvironmentPath + "/isolated"
	files := map[string]string{
		env + "/environment.conf":        "modulepath = site\n",
		env + "/site/profile/files/motd": "hello\n",
	}

	settings := testutil.Settings()
	settings.Environment = "isolated"

	result := testutil.RunIntegrationTestWithSettings(t, files, settings, func(ctx context.Context, a *app.App) error {
		found, err := a.Exists(ctx, "puppet:///profile/motd")
		require.NoError(t, err)
		require.True(t, found)

		_, err = a.ModulePath(ctx, "stdlib")
		return err
	})
	require.ErrorIs(t, result.Err, modulepath.ErrModuleNotFound)
}

func TestEnvironments_EnvironmentVariableInDocuments(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"/work/ssh.hcl": `
config   = "puppet:///ssh/sshd_config"
resolved = module_path("ssh")
env      = environment
`,
	}

	for _, tc := range []struct {
		env  string
		want string
	}{
		{env: "production", want: testutil.EnvironmentPath + "/production/modules/ssh"},
		{env: "staging", want: testutil.EnvironmentPath + "/staging/site/ssh"},
	} {
		t.Run(tc.env, func(t *testing.T) {
			t.Parallel()

			settings := testutil.Settings()
			settings.Environment = tc.env

			result := testutil.RunIntegrationTestWithSettings(t, files, settings, func(ctx context.Context, a *app.App) error {
				docs, err := a.Render(ctx, "/work/ssh.hcl")
				require.NoError(t, err)
				require.Len(t, docs, 1)
				require.Equal(t, tc.want, docs[0].Values["resolved"].AsString())
				require.Equal(t, tc.env, docs[0].Values["env"].AsString())
				return nil
			})
			require.NoError(t, result.Err)
		})
	}
}
