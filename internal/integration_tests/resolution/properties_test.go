package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/modfuncs/internal/app"
	"github.com/specialistvlad/modfuncs/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestResolution_ModulesSegmentIsOptional(t *testing.T) {
	t.Parallel()

	paths := []string{"exists", "conf.d/app.conf", "missing/deeper", "", "../metadata.json"}

	result := testutil.RunIntegrationTest(t, nil, func(ctx context.Context, a *app.App) error {
		for _, rel := range paths {
			long, err := a.Resolve(ctx, "puppet:///modules/my_module/"+rel)
			require.NoError(t, err)
			short, err := a.Resolve(ctx, "puppet:///my_module/"+rel)
			require.NoError(t, err)
			require.Equal(t, long, short, "relative path %q", rel)
		}
		return nil
	})
	require.NoError(t, result.Err)
}

func TestResolution_PlainPathsIgnoreRegistry(t *testing.T) {
	t.Parallel()

	cwd, err := os.Getwd()
	require.NoError(t, err)

	testCases := []struct {
		ref  string
		want string
	}{
		{ref: "/etc/resolv.conf", want: "/etc/resolv.conf"},
		{ref: "/etc//puppet/./modules/", want: "/etc/puppet/modules"},
		{ref: "relative/file", want: filepath.Join(cwd, "relative/file")},
		{ref: "puppet:/not/a/reference", want: filepath.Join(cwd, "puppet:/not/a/reference")},
	}

	settings := testutil.Settings()
	settings.Environment = "environment_that_does_not_exist"

	result := testutil.RunIntegrationTestWithSettings(t, nil, settings, func(ctx context.Context, a *app.App) error {
		for _, tc := range testCases {
			got, err := a.Resolve(ctx, tc.ref)
			require.NoError(t, err, tc.ref)
			require.Equal(t, tc.want, got, tc.ref)
		}
		return nil
	})
	require.NoError(t, result.Err)
}

func TestResolution_Idempotent(t *testing.T) {
	t.Parallel()

	const ref = "puppet:///modules/ssh/sshd_config"

	result := testutil.RunIntegrationTest(t, nil, func(ctx context.Context, a *app.App) error {
		first, err := a.Resolve(ctx, ref)
		require.NoError(t, err)
		second, err := a.Resolve(ctx, ref)
		require.NoError(t, err)
		require.Equal(t, first, second)

		found, err := a.Exists(ctx, ref)
		require.NoError(t, err)
		require.True(t, found)
		return nil
	})
	require.NoError(t, result.Err)
}
