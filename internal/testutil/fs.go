package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	// EnvironmentPath is where the fixture tree keeps its environments.
	EnvironmentPath = "/etc/puppetlabs/code/environments"
	// BaseModulePath is the fixture's global module directory.
	BaseModulePath = "/etc/puppetlabs/code/modules"
)

// PuppetTree is the default fixture layout: a production environment with
// my_module and an environment.conf-driven staging environment, plus a
// shared base module.
var PuppetTree = map[string]string{
	EnvironmentPath + "/production/modules/my_module/files/exists":          "present\n",
	EnvironmentPath + "/production/modules/my_module/files/conf.d/app.conf": "key=value\n",
	EnvironmentPath + "/production/modules/my_module/metadata.json":         `{"name": "acme-my_module", "version": "1.2.3", "summary": "Fixture module"}`,
	EnvironmentPath + "/production/modules/ssh/files/sshd_config":           "PermitRootLogin no\n",
	EnvironmentPath + "/staging/environment.conf":                           "modulepath = site:$basemodulepath\n",
	EnvironmentPath + "/staging/site/ssh/files/sshd_config":                 "PermitRootLogin prohibit-password\n",
	BaseModulePath + "/stdlib/files/README":                                 "stdlib\n",
	BaseModulePath + "/ssh/files/sshd_config":                               "shadowed\n",
	"/etc/resolv.conf": "nameserver 127.0.0.1\n",
}

// NewFs returns an in-memory filesystem populated with files. Keys are
// absolute paths; parent directories are created as needed.
func NewFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	WriteFiles(t, fs, files)
	return fs
}

// WriteFiles writes files onto fs, creating parent directories.
func WriteFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()

	for name, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
}
