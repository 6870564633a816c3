package app_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/modfuncs/internal/app"
	"github.com/specialistvlad/modfuncs/internal/config"
	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/specialistvlad/modfuncs/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewApp_InvalidSettings(t *testing.T) {
	t.Parallel()

	settings := testutil.Settings()
	settings.LogFormat = "xml"

	_, err := app.NewApp(&bytes.Buffer{}, settings, afero.NewMemMapFs())
	require.ErrorIs(t, err, config.ErrInvalidSettings)
}

func TestNewApp_NilSettingsPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = app.NewApp(&bytes.Buffer{}, nil, afero.NewMemMapFs())
	})
}

func TestApp_Resolution(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, nil, func(ctx context.Context, a *app.App) error {
		root, err := a.ModulePath(ctx, "my_module")
		require.NoError(t, err)
		require.Equal(t, testutil.EnvironmentPath+"/production/modules/my_module", root)

		path, err := a.Resolve(ctx, "puppet:///modules/ssh/sshd_config")
		require.NoError(t, err)
		require.Equal(t, testutil.EnvironmentPath+"/production/modules/ssh/files/sshd_config", path)

		path, err = a.Resolve(ctx, "puppet:///stdlib/README")
		require.NoError(t, err)
		require.Equal(t, testutil.BaseModulePath+"/stdlib/files/README", path)

		found, err := a.Exists(ctx, "puppet:///my_module/conf.d/app.conf")
		require.NoError(t, err)
		require.True(t, found)

		found, err = a.Exists(ctx, "/this/does/not/exist")
		require.NoError(t, err)
		require.False(t, found)

		_, err = a.ModulePath(ctx, "nonexistent_module")
		require.ErrorIs(t, err, modulepath.ErrModuleNotFound)
		return nil
	})
	require.NoError(t, result.Err)
	require.Contains(t, result.LogOutput, "Found module in module path.")
}

func TestApp_StagingEnvironment(t *testing.T) {
	t.Parallel()

	settings := testutil.Settings()
	settings.Environment = "staging"

	result := testutil.RunIntegrationTestWithSettings(t, nil, settings, func(ctx context.Context, a *app.App) error {
		path, err := a.Resolve(ctx, "puppet:///ssh/sshd_config")
		require.NoError(t, err)
		require.Equal(t, testutil.EnvironmentPath+"/staging/site/ssh/files/sshd_config", path)

		val, err := a.Eval(ctx, "environment")
		require.NoError(t, err)
		require.Equal(t, cty.StringVal("staging"), val)

		_, err = a.ModulePath(ctx, "my_module")
		return err
	})
	require.ErrorIs(t, result.Err, modulepath.ErrModuleNotFound)
}

func TestApp_UnknownEnvironment(t *testing.T) {
	t.Parallel()

	settings := testutil.Settings()
	settings.Environment = "qa"

	result := testutil.RunIntegrationTestWithSettings(t, nil, settings, func(ctx context.Context, a *app.App) error {
		_, err := a.Eval(ctx, `module_path("ssh")`)
		return err
	})
	require.ErrorIs(t, result.Err, modulepath.ErrEnvironmentNotFound)
}

func TestApp_RenderAndCheck(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"/work/site.hcl": `
ssh_root = module_path("ssh")
override = exists("puppet:///ssh/sshd_config.${environment}")
`,
		"/work/lint.hcl": "a = nope(var.x)\n",
	}

	result := testutil.RunIntegrationTest(t, files, func(ctx context.Context, a *app.App) error {
		docs, err := a.Render(ctx, "/work/site.hcl")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, cty.StringVal(testutil.EnvironmentPath+"/production/modules/ssh"), docs[0].Values["ssh_root"])
		require.Equal(t, cty.False, docs[0].Values["override"])

		docs, err = a.Check(ctx, "/work")
		require.NoError(t, err)
		require.Len(t, docs, 2)
		return nil
	})
	require.NoError(t, result.Err)
	require.Contains(t, result.LogOutput, "Document calls an unknown function.")
	require.Contains(t, result.LogOutput, "Document references an unknown variable.")
}

func TestApp_Listings(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, nil, func(ctx context.Context, a *app.App) error {
		envs, err := a.Environments(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"production", "staging"}, envs)

		modules, err := a.Modules(ctx)
		require.NoError(t, err)
		var names []string
		for _, m := range modules {
			names = append(names, m.Name)
		}
		require.Equal(t, []string{"my_module", "ssh", "stdlib"}, names)
		require.NotNil(t, modules[0].Metadata)
		require.Equal(t, "1.2.3", modules[0].Metadata.Version)
		return nil
	})
	require.NoError(t, result.Err)
	require.Equal(t, "production", result.App.Settings().Environment)
}

func TestApp_JSONLogs(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	settings := testutil.Settings()
	settings.LogFormat = "json"

	a, err := app.NewApp(&logs, settings, testutil.NewFs(t, testutil.PuppetTree))
	require.NoError(t, err)

	_, err = a.ModulePath(context.Background(), "ssh")
	require.NoError(t, err)
	require.Contains(t, logs.String(), `"msg":"Found module in module path."`)
}
